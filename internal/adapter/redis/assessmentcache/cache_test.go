package assessmentcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/skillforge-2025.net/internal/adapter/redis/assessmentcache"
	"gitlab.com/skillforge-2025.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

func newTestCache(t *testing.T) (*assessmentcache.AssessmentCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return assessmentcache.NewAssessmentCache(client, nopLogger{}), mr
}

func TestSaveAndGetAssessment(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	limit := 30
	assessment := &domain.Assessment{
		ID:               uuid.New(),
		Title:            "Arrays Warmup",
		Language:         "python",
		TimeLimitMinutes: &limit,
		Questions: []domain.Question{
			{
				ID:    uuid.New(),
				Title: "Sum of Array Elements",
				TestCases: []domain.TestCase{
					{Input: "[1,2,3]", ExpectedOutput: "6"},
				},
			},
		},
	}

	if err := cache.SaveAssessment(ctx, assessment); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	got, err := cache.GetAssessment(ctx, assessment.ID)
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached assessment, got nil")
	}
	if got.Title != "Arrays Warmup" || got.Language != "python" {
		t.Fatalf("unexpected assessment: %+v", got)
	}
	if got.TimeLimitMinutes == nil || *got.TimeLimitMinutes != 30 {
		t.Fatalf("expected time limit 30, got %+v", got.TimeLimitMinutes)
	}
	if len(got.Questions) != 1 || len(got.Questions[0].TestCases) != 1 {
		t.Fatalf("expected questions with test cases to survive the roundtrip, got %+v", got.Questions)
	}
}

func TestGetAssessmentMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.GetAssessment(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected nil error on miss, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil assessment on miss, got %+v", got)
	}
}

func TestGetAssessmentAfterExpiration(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	assessment := &domain.Assessment{ID: uuid.New(), Title: "Graphs"}
	if err := cache.SaveAssessment(ctx, assessment); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	mr.FastForward(6 * time.Minute)

	got, err := cache.GetAssessment(ctx, assessment.ID)
	if err != nil {
		t.Fatalf("expected nil error after expiration, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected expired entry to miss, got %+v", got)
	}
}
