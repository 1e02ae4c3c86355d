// package submissionrepository contains the PostgreSQL implementation of the
// submission persistence hook
package submissionrepository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/skillforge-2025.net/internal/core/ports/primary"
	"gitlab.com/skillforge-2025.net/internal/domain"
)

// SubmissionRepository implements the SubmissionRepository interface with PostgreSQL
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSubmission inserts one grading outcome. Submissions are immutable, so
// this is a plain insert with no conflict handling.
func (r *SubmissionRepository) SaveSubmission(ctx context.Context, submission *domain.Submission) error {
	query := `
		INSERT INTO submissions (
			id, assessment_id, question_id, user_id, code, language,
			is_correct, score, passed_test_cases, total_test_cases,
			output, status, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		submission.ID,
		submission.AssessmentID,
		submission.QuestionID,
		submission.UserID,
		submission.Code,
		submission.Language,
		submission.IsCorrect,
		submission.Score,
		submission.PassedTestCases,
		submission.TotalTestCases,
		submission.Output,
		submission.Status,
		submission.SubmittedAt,
	)

	if err != nil {
		r.logger.Error("Failed to save submission", "submissionId", submission.ID, "error", err)
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

// GetSubmissionsByQuestion retrieves submissions for a question, newest first
func (r *SubmissionRepository) GetSubmissionsByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Submission, error) {
	query := `
		SELECT id, assessment_id, question_id, user_id, code, language,
		       is_correct, score, passed_test_cases, total_test_cases,
		       output, status, submitted_at
		FROM submissions
		WHERE question_id = $1
		ORDER BY submitted_at DESC
	`

	var submissions []*domain.Submission
	if err := r.db.SelectContext(ctx, &submissions, query, questionID); err != nil {
		r.logger.Error("Failed to get submissions", "questionId", questionID, "error", err)
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}

	return submissions, nil
}
