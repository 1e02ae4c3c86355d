package grading

import (
	"context"
	"fmt"
	"math"
	"strings"

	"gitlab.com/skillforge-2025.net/internal/core/ports/primary"
	"gitlab.com/skillforge-2025.net/internal/core/services/execution"
	"gitlab.com/skillforge-2025.net/internal/domain"
)

var _ IGradingService = (*GradingService)(nil)

// GradingService implements the exact-match grading policy
type GradingService struct {
	executor execution.IExecutionService
	logger   primary.Logger
}

// NewGradingService creates a new grading service
func NewGradingService(executor execution.IExecutionService, logger primary.Logger) *GradingService {
	return &GradingService{
		executor: executor,
		logger:   logger,
	}
}

// Grade runs the code against every test case and aggregates the verdicts
func (s *GradingService) Grade(ctx context.Context, code, lang string, testCases []domain.TestCase) (*domain.GradeReport, error) {
	total := len(testCases)
	if total == 0 {
		// A question without test cases must never silently pass.
		s.logger.Warn("Grading requested for a question with no test cases")
		return &domain.GradeReport{
			IsCorrect: false,
			Score:     0,
			Passed:    0,
			Total:     0,
			Output:    "Question has no test cases.",
		}, nil
	}

	passed := 0
	var lastOutput string
	for i, tc := range testCases {
		result, err := s.executor.Execute(ctx, domain.ExecutionRequest{
			Code:     code,
			Language: lang,
			Stdin:    tc.Input,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to execute test case %d: %w", i, err)
		}

		// A degraded execution means no verdict at all, not a wrong answer.
		// Report zero passed and surface the advisory instead of guessing.
		if result.Degraded() {
			s.logger.Warn("Grading inconclusive", "testCase", i, "advisory", result.Advisory)
			return &domain.GradeReport{
				IsCorrect: false,
				Score:     0,
				Passed:    0,
				Total:     total,
				Output:    result.Advisory,
			}, nil
		}

		lastOutput = result.Output
		// Compare the run phase's real stdout, not the display-normalized
		// Output with its placeholder and compile-phase substitutions.
		if strings.TrimSpace(result.RunOutput) == strings.TrimSpace(tc.ExpectedOutput) {
			passed++
		}
	}

	score := int(math.Round(float64(passed) / float64(total) * 100))
	report := &domain.GradeReport{
		IsCorrect: passed == total,
		Score:     score,
		Passed:    passed,
		Total:     total,
	}
	if report.IsCorrect {
		report.Output = "All test cases passed!"
	} else {
		report.Output = fmt.Sprintf("%d of %d test cases passed. Last output: %s", passed, total, lastOutput)
	}

	s.logger.Info("Graded submission", "passed", passed, "total", total, "score", score)
	return report, nil
}
