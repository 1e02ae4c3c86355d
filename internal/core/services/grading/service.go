package grading

import (
	"context"

	"gitlab.com/skillforge-2025.net/internal/domain"
)

// IGradingService defines the interface for grading a submission against a
// question's test cases
type IGradingService interface {
	// Grade runs the code once per test case and compares trimmed stdout to
	// the expected output for exact equality. It never fails: execution
	// problems come back as a zero-score report carrying the broker's
	// advisory message.
	Grade(ctx context.Context, code, lang string, testCases []domain.TestCase) (*domain.GradeReport, error)
}
