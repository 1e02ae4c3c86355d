package attempt

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/skillforge-2025.net/internal/domain"
)

// IAttemptService drives a candidate through an assessment's ordered
// questions inside an optional time box
type IAttemptService interface {
	// Start creates a new in-memory attempt for the given candidate and
	// assessment. The deadline, when the assessment is timed, is fixed at
	// start and never extended.
	Start(ctx context.Context, userID string, assessmentID uuid.UUID) (*domain.AttemptState, error)

	// Submit grades the code against the current question, records the
	// submission exactly once, and advances the attempt. The final question
	// moves the attempt to its terminal phase.
	Submit(ctx context.Context, attemptID uuid.UUID, code string) (*domain.GradeReport, *domain.AttemptState, error)

	// Navigate moves the view index by delta, clamped to the question range.
	// Recorded results and the deadline are unaffected.
	Navigate(ctx context.Context, attemptID uuid.UUID, delta int) (*domain.AttemptState, error)

	// Tick re-evaluates the deadline of a timed attempt and forces the
	// terminal phase once it has passed
	Tick(ctx context.Context, attemptID uuid.UUID) (*domain.AttemptState, error)

	// State returns a snapshot of the attempt
	State(ctx context.Context, attemptID uuid.UUID) (*domain.AttemptState, error)

	// Submissions returns the recorded submissions for a question, newest first
	Submissions(ctx context.Context, questionID uuid.UUID) ([]*domain.Submission, error)
}
