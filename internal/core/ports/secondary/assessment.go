package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/skillforge-2025.net/internal/domain"
)

// AssessmentRepository is the read side of the assessment store. Questions
// and test cases come back ordered by their explicit sort keys.
type AssessmentRepository interface {
	// GetAssessmentWithQuestions retrieves an assessment together with its
	// ordered questions and their test cases. Returns nil when not found.
	GetAssessmentWithQuestions(ctx context.Context, assessmentID uuid.UUID) (*domain.Assessment, error)
}

// AssessmentCache caches assembled assessment bundles in front of the store
type AssessmentCache interface {
	// GetAssessment returns the cached bundle or nil on a miss
	GetAssessment(ctx context.Context, assessmentID uuid.UUID) (*domain.Assessment, error)

	// SaveAssessment caches a bundle with the adapter's expiration policy
	SaveAssessment(ctx context.Context, assessment *domain.Assessment) error
}
