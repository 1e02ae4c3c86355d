// package assessmentrepository contains the PostgreSQL read side of the
// assessment store
package assessmentrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/skillforge-2025.net/internal/core/ports/primary"
	"gitlab.com/skillforge-2025.net/internal/domain"
)

// AssessmentRepository implements the AssessmentRepository interface with PostgreSQL
type AssessmentRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewAssessmentRepository creates a new PostgreSQL assessment repository
func NewAssessmentRepository(db *sqlx.DB, logger primary.Logger) *AssessmentRepository {
	return &AssessmentRepository{
		db:     db,
		logger: logger,
	}
}

// GetAssessmentWithQuestions retrieves an assessment with its ordered
// questions and test cases. Returns nil, nil when the assessment does not exist.
func (r *AssessmentRepository) GetAssessmentWithQuestions(ctx context.Context, assessmentID uuid.UUID) (*domain.Assessment, error) {
	assessmentQuery := `
		SELECT id, title, description, language, time_limit_minutes, created_by
		FROM assessments
		WHERE id = $1
	`

	var assessment domain.Assessment
	if err := r.db.GetContext(ctx, &assessment, assessmentQuery, assessmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get assessment", "assessmentId", assessmentID, "error", err)
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}

	questionQuery := `
		SELECT id, assessment_id, title, description, starter_code, language, position
		FROM questions
		WHERE assessment_id = $1
		ORDER BY position ASC
	`

	var questions []domain.Question
	if err := r.db.SelectContext(ctx, &questions, questionQuery, assessmentID); err != nil {
		r.logger.Error("Failed to get questions", "assessmentId", assessmentID, "error", err)
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	testCaseQuery := `
		SELECT tc.id, tc.question_id, tc.input, tc.expected_output, tc.position
		FROM test_cases tc
		JOIN questions q ON q.id = tc.question_id
		WHERE q.assessment_id = $1
		ORDER BY tc.position ASC
	`

	var testCases []domain.TestCase
	if err := r.db.SelectContext(ctx, &testCases, testCaseQuery, assessmentID); err != nil {
		r.logger.Error("Failed to get test cases", "assessmentId", assessmentID, "error", err)
		return nil, fmt.Errorf("failed to get test cases: %w", err)
	}

	byQuestion := make(map[uuid.UUID][]domain.TestCase, len(questions))
	for _, tc := range testCases {
		byQuestion[tc.QuestionID] = append(byQuestion[tc.QuestionID], tc)
	}
	for i := range questions {
		questions[i].TestCases = byQuestion[questions[i].ID]
	}
	assessment.Questions = questions

	return &assessment, nil
}
