package grading_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gitlab.com/skillforge-2025.net/internal/core/services/grading"
	"gitlab.com/skillforge-2025.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

// fakeExecutor maps stdin to a canned result
type fakeExecutor struct {
	outputs  map[string]string
	advisory string
	calls    int
}

func (f *fakeExecutor) Execute(ctx context.Context, req domain.ExecutionRequest) (*domain.ExecutionResult, error) {
	f.calls++
	if f.advisory != "" {
		return &domain.ExecutionResult{ExitCode: -1, Advisory: f.advisory}, nil
	}
	// Mirror the broker: Output is display-normalized, RunOutput is the raw
	// run stdout.
	out := f.outputs[req.Stdin]
	display := strings.TrimSpace(out)
	if display == "" {
		display = "No output"
	}
	return &domain.ExecutionResult{Output: display, RunOutput: out, ExitCode: 0}, nil
}

func cases(pairs ...[2]string) []domain.TestCase {
	tcs := make([]domain.TestCase, 0, len(pairs))
	for i, p := range pairs {
		tcs = append(tcs, domain.TestCase{Input: p[0], ExpectedOutput: p[1], Position: i})
	}
	return tcs
}

func TestGradeAllPass(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{outputs: map[string]string{"[1,2,3]": "6\n", "[4,5]": " 9 "}}
	svc := grading.NewGradingService(executor, nopLogger{})

	report, err := svc.Grade(context.Background(), "code", "python", cases(
		[2]string{"[1,2,3]", "6"},
		[2]string{"[4,5]", "9"},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.IsCorrect {
		t.Fatal("expected correct report")
	}
	if report.Passed != 2 || report.Total != 2 {
		t.Fatalf("expected 2/2, got %d/%d", report.Passed, report.Total)
	}
	if report.Score != 100 {
		t.Fatalf("expected score 100, got %d", report.Score)
	}
	if executor.calls != 2 {
		t.Fatalf("expected one execution per test case, got %d", executor.calls)
	}
}

func TestGradeNonePass(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{outputs: map[string]string{"in": "wrong"}}
	svc := grading.NewGradingService(executor, nopLogger{})

	report, err := svc.Grade(context.Background(), "code", "python", cases([2]string{"in", "right"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.IsCorrect {
		t.Fatal("expected incorrect report")
	}
	if report.Passed != 0 || report.Score != 0 {
		t.Fatalf("expected 0 passed and score 0, got %d and %d", report.Passed, report.Score)
	}
}

func TestGradeScoreRounding(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		passed    int
		total     int
		wantScore int
	}{
		{name: "two thirds", passed: 2, total: 3, wantScore: 67},
		{name: "one third", passed: 1, total: 3, wantScore: 33},
		{name: "one sixth", passed: 1, total: 6, wantScore: 17},
		{name: "five sixths", passed: 5, total: 6, wantScore: 83},
		{name: "half", passed: 1, total: 2, wantScore: 50},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			outputs := make(map[string]string, tt.total)
			tcs := make([]domain.TestCase, 0, tt.total)
			for i := 0; i < tt.total; i++ {
				in := fmt.Sprintf("in%d", i)
				if i < tt.passed {
					outputs[in] = "ok"
				} else {
					outputs[in] = "nope"
				}
				tcs = append(tcs, domain.TestCase{Input: in, ExpectedOutput: "ok", Position: i})
			}
			svc := grading.NewGradingService(&fakeExecutor{outputs: outputs}, nopLogger{})

			report, err := svc.Grade(context.Background(), "code", "go", tcs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if report.Score != tt.wantScore {
				t.Fatalf("expected score %d, got %d", tt.wantScore, report.Score)
			}
			if report.Passed != tt.passed {
				t.Fatalf("expected %d passed, got %d", tt.passed, report.Passed)
			}
		})
	}
}

func TestGradeZeroTestCases(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{}
	svc := grading.NewGradingService(executor, nopLogger{})

	report, err := svc.Grade(context.Background(), "code", "python", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.IsCorrect {
		t.Fatal("a question with no test cases must not pass")
	}
	if report.Total != 0 || report.Passed != 0 || report.Score != 0 {
		t.Fatalf("expected zeroed report, got %+v", report)
	}
	if executor.calls != 0 {
		t.Fatalf("expected no executions, got %d", executor.calls)
	}
}

func TestGradeDegradedExecutionIsInconclusive(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{advisory: "The code execution service is currently unavailable. Please try again later."}
	svc := grading.NewGradingService(executor, nopLogger{})

	report, err := svc.Grade(context.Background(), "code", "python", cases(
		[2]string{"a", "1"},
		[2]string{"b", "2"},
		[2]string{"c", "3"},
	))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.IsCorrect || report.Passed != 0 {
		t.Fatalf("expected inconclusive zero report, got %+v", report)
	}
	if report.Total != 3 {
		t.Fatalf("expected total 3, got %d", report.Total)
	}
	if report.Output != executor.advisory {
		t.Fatalf("expected advisory as output summary, got %q", report.Output)
	}
	if executor.calls != 1 {
		t.Fatalf("expected grading to stop after the first degraded call, got %d calls", executor.calls)
	}
}

func TestGradeEmptyExpectedOutput(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{outputs: map[string]string{"silent": ""}}
	svc := grading.NewGradingService(executor, nopLogger{})

	report, err := svc.Grade(context.Background(), "code", "python", cases([2]string{"silent", ""}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.IsCorrect {
		t.Fatalf("a program printing nothing must match an empty expected output, got %+v", report)
	}
	if report.Passed != 1 || report.Score != 100 {
		t.Fatalf("expected 1 passed with score 100, got %d passed score %d", report.Passed, report.Score)
	}
}

func TestGradeDisplayPlaceholderDoesNotMatch(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{outputs: map[string]string{"silent": ""}}
	svc := grading.NewGradingService(executor, nopLogger{})

	report, err := svc.Grade(context.Background(), "code", "python", cases([2]string{"silent", "No output"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.IsCorrect || report.Passed != 0 {
		t.Fatalf("the display placeholder must not count as real output, got %+v", report)
	}
}

func TestGradeTrimsBeforeComparing(t *testing.T) {
	t.Parallel()
	executor := &fakeExecutor{outputs: map[string]string{"x": "\n  42  \n"}}
	svc := grading.NewGradingService(executor, nopLogger{})

	report, err := svc.Grade(context.Background(), "code", "python", cases([2]string{"x", "  42"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.IsCorrect {
		t.Fatal("expected trimmed comparison to match")
	}
}
