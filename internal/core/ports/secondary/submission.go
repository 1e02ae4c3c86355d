package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/skillforge-2025.net/internal/domain"
)

// SubmissionRepository is the persistence hook the attempt flow calls exactly
// once per submit resolution with the full grading outcome.
type SubmissionRepository interface {
	// SaveSubmission records one grading outcome
	SaveSubmission(ctx context.Context, submission *domain.Submission) error

	// GetSubmissionsByQuestion retrieves submissions for a question, newest first
	GetSubmissionsByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Submission, error)
}
