package attempt

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"gitlab.com/skillforge-2025.net/internal/core/ports/primary"
	"gitlab.com/skillforge-2025.net/internal/core/ports/secondary"
	"gitlab.com/skillforge-2025.net/internal/core/services/grading"
	"gitlab.com/skillforge-2025.net/internal/domain"
	"gitlab.com/skillforge-2025.net/internal/static/errs"
)

// terminalRetention is how long a finished attempt stays readable before the
// janitor discards it
const terminalRetention = 1 * time.Hour

var _ IAttemptService = (*AttemptService)(nil)

// attemptEntry pairs an attempt with its in-flight submission guard
type attemptEntry struct {
	attempt        *domain.Attempt
	submitInFlight bool
	finishedAt     *time.Time
}

// AttemptService implements the attempt state machine over an in-memory
// session store. Attempts are private to their session; the only shared
// state is the map itself, guarded by mu. Grading runs outside the lock so a
// slow backend call never blocks navigation or state reads.
type AttemptService struct {
	assessmentRepo secondary.AssessmentRepository
	cache          secondary.AssessmentCache
	grader         grading.IGradingService
	submissionRepo secondary.SubmissionRepository
	logger         primary.Logger

	mu       sync.Mutex
	attempts map[uuid.UUID]*attemptEntry
	now      func() time.Time
}

// NewAttemptService creates a new attempt service
func NewAttemptService(
	assessmentRepo secondary.AssessmentRepository,
	cache secondary.AssessmentCache,
	grader grading.IGradingService,
	submissionRepo secondary.SubmissionRepository,
	logger primary.Logger,
) *AttemptService {
	return &AttemptService{
		assessmentRepo: assessmentRepo,
		cache:          cache,
		grader:         grader,
		submissionRepo: submissionRepo,
		logger:         logger,
		attempts:       make(map[uuid.UUID]*attemptEntry),
		now:            time.Now,
	}
}

// Start creates a new attempt from the assessment bundle
func (s *AttemptService) Start(ctx context.Context, userID string, assessmentID uuid.UUID) (*domain.AttemptState, error) {
	assessment, err := s.getAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, errs.AssessmentNotFound
	}
	if len(assessment.Questions) == 0 {
		return nil, errs.NoQuestions
	}

	// Questions without their own language inherit the assessment's.
	questions := make([]domain.Question, len(assessment.Questions))
	copy(questions, assessment.Questions)
	for i := range questions {
		if questions[i].Language == "" {
			questions[i].Language = assessment.Language
		}
	}

	now := s.now()
	a := &domain.Attempt{
		ID:           uuid.New(),
		AssessmentID: assessment.ID,
		UserID:       userID,
		Questions:    questions,
		CurrentIndex: 0,
		Results:      make(map[uuid.UUID]bool),
		Phase:        domain.AttemptPhaseInProgress,
		StartedAt:    now,
	}
	if assessment.TimeLimitMinutes != nil {
		deadline := now.Add(time.Duration(*assessment.TimeLimitMinutes) * time.Minute)
		a.Deadline = &deadline
	}

	s.mu.Lock()
	s.attempts[a.ID] = &attemptEntry{attempt: a}
	s.mu.Unlock()

	s.logger.Info("Attempt started",
		"attemptId", a.ID,
		"assessmentId", assessment.ID,
		"userId", userID,
		"questions", len(a.Questions),
		"timed", a.Deadline != nil)

	return s.snapshot(a), nil
}

// Submit grades the current question and advances the attempt. The grading
// call runs without the lock; its outcome is applied only if the attempt
// still points at the question it was issued for.
func (s *AttemptService) Submit(ctx context.Context, attemptID uuid.UUID, code string) (*domain.GradeReport, *domain.AttemptState, error) {
	s.mu.Lock()
	entry, ok := s.attempts[attemptID]
	if !ok {
		s.mu.Unlock()
		return nil, nil, errs.AttemptNotFound
	}
	a := entry.attempt
	s.expireLocked(entry)
	if a.Phase == domain.AttemptPhaseTerminal {
		state := s.snapshot(a)
		s.mu.Unlock()
		return nil, state, errs.AttemptTerminal
	}
	if entry.submitInFlight {
		s.mu.Unlock()
		return nil, nil, errs.SubmitInFlight
	}
	entry.submitInFlight = true
	issuedIndex := a.CurrentIndex
	question := a.Questions[issuedIndex]
	userID := a.UserID
	assessmentID := a.AssessmentID
	s.mu.Unlock()

	lang := question.Language
	report, err := s.grader.Grade(ctx, code, lang, question.TestCases)

	s.mu.Lock()
	entry.submitInFlight = false
	s.mu.Unlock()

	if err != nil {
		return nil, nil, fmt.Errorf("failed to grade submission: %w", err)
	}

	// The persistence hook fires exactly once per submit resolution,
	// stale or not.
	submission := &domain.Submission{
		ID:              uuid.New(),
		AssessmentID:    assessmentID,
		QuestionID:      question.ID,
		UserID:          userID,
		Code:            code,
		Language:        lang,
		IsCorrect:       report.IsCorrect,
		Score:           report.Score,
		PassedTestCases: report.Passed,
		TotalTestCases:  report.Total,
		Output:          report.Output,
		Status:          domain.SubmissionStatusCompleted,
		SubmittedAt:     s.now(),
	}
	if err := s.submissionRepo.SaveSubmission(ctx, submission); err != nil {
		s.logger.Error("Failed to persist submission",
			"attemptId", attemptID,
			"questionId", question.ID,
			"error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked(entry)

	// A late result must not touch an attempt that has since gone terminal
	// or moved to a different question.
	if a.Phase == domain.AttemptPhaseTerminal || a.CurrentIndex != issuedIndex {
		s.logger.Warn("Discarding stale grading result",
			"attemptId", attemptID,
			"issuedIndex", issuedIndex,
			"currentIndex", a.CurrentIndex,
			"phase", a.Phase)
		return report, s.snapshot(a), nil
	}

	// Most recent submission per question wins on revisit.
	a.Results[question.ID] = report.IsCorrect
	if issuedIndex == len(a.Questions)-1 {
		s.terminateLocked(entry)
	} else {
		a.CurrentIndex++
	}

	return report, s.snapshot(a), nil
}

// Navigate moves the view index; it is purely a view operation
func (s *AttemptService) Navigate(ctx context.Context, attemptID uuid.UUID, delta int) (*domain.AttemptState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.attempts[attemptID]
	if !ok {
		return nil, errs.AttemptNotFound
	}
	a := entry.attempt
	s.expireLocked(entry)
	if a.Phase == domain.AttemptPhaseTerminal {
		return s.snapshot(a), errs.AttemptTerminal
	}

	idx := a.CurrentIndex + delta
	if idx < 0 {
		idx = 0
	}
	if last := len(a.Questions) - 1; idx > last {
		idx = last
	}
	a.CurrentIndex = idx

	return s.snapshot(a), nil
}

// Tick re-evaluates the deadline of one attempt
func (s *AttemptService) Tick(ctx context.Context, attemptID uuid.UUID) (*domain.AttemptState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.attempts[attemptID]
	if !ok {
		return nil, errs.AttemptNotFound
	}
	s.expireLocked(entry)
	return s.snapshot(entry.attempt), nil
}

// State returns a snapshot of the attempt
func (s *AttemptService) State(ctx context.Context, attemptID uuid.UUID) (*domain.AttemptState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.attempts[attemptID]
	if !ok {
		return nil, errs.AttemptNotFound
	}
	s.expireLocked(entry)
	return s.snapshot(entry.attempt), nil
}

// Submissions lists the persisted grading outcomes for one question
func (s *AttemptService) Submissions(ctx context.Context, questionID uuid.UUID) ([]*domain.Submission, error) {
	submissions, err := s.submissionRepo.GetSubmissionsByQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}
	return submissions, nil
}

// StartJanitor sweeps timed attempts once per second so expiry forces the
// terminal phase even when the session goes quiet, and drops terminal
// attempts after the retention window. Stops when ctx is done.
func (s *AttemptService) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *AttemptService) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, entry := range s.attempts {
		s.expireLocked(entry)
		if entry.finishedAt != nil && now.Sub(*entry.finishedAt) > terminalRetention {
			delete(s.attempts, id)
		}
	}
}

// expireLocked forces the terminal phase once a timed attempt's deadline has
// passed. Callers must hold mu.
func (s *AttemptService) expireLocked(entry *attemptEntry) {
	a := entry.attempt
	if a.Phase != domain.AttemptPhaseTerminal && a.Expired(s.now()) {
		s.logger.Info("Attempt expired", "attemptId", a.ID)
		s.terminateLocked(entry)
	}
}

// terminateLocked moves an attempt to its terminal phase. Callers must hold mu.
func (s *AttemptService) terminateLocked(entry *attemptEntry) {
	entry.attempt.Phase = domain.AttemptPhaseTerminal
	now := s.now()
	entry.finishedAt = &now
}

// snapshot builds the externally visible state. Callers must hold mu or own
// the attempt exclusively.
func (s *AttemptService) snapshot(a *domain.Attempt) *domain.AttemptState {
	state := &domain.AttemptState{
		AttemptID:      a.ID,
		AssessmentID:   a.AssessmentID,
		Phase:          a.Phase,
		CurrentIndex:   a.CurrentIndex,
		TotalQuestions: len(a.Questions),
		Results:        make(map[uuid.UUID]bool, len(a.Results)),
	}
	for id, correct := range a.Results {
		state.Results[id] = correct
	}

	if a.Phase == domain.AttemptPhaseTerminal {
		state.Summary = summarize(a)
		return state
	}

	state.RemainingSeconds = a.Remaining(s.now())
	q := a.Questions[a.CurrentIndex]
	state.Question = &q
	return state
}

// summarize aggregates the recorded results for the results screen.
// Unanswered questions count as unattempted, not incorrect.
func summarize(a *domain.Attempt) *domain.AttemptSummary {
	correct := 0
	for _, ok := range a.Results {
		if ok {
			correct++
		}
	}
	answered := len(a.Results)
	accuracy := 0
	if answered > 0 {
		accuracy = int(math.Round(float64(correct) / float64(answered) * 100))
	}
	return &domain.AttemptSummary{
		AttemptID:    a.ID,
		AssessmentID: a.AssessmentID,
		Correct:      correct,
		Incorrect:    answered - correct,
		Unattempted:  len(a.Questions) - answered,
		Accuracy:     accuracy,
	}
}

// getAssessment reads through the cache into the assessment store
func (s *AttemptService) getAssessment(ctx context.Context, assessmentID uuid.UUID) (*domain.Assessment, error) {
	if s.cache != nil {
		cached, err := s.cache.GetAssessment(ctx, assessmentID)
		if err != nil {
			s.logger.Warn("Assessment cache read failed", "assessmentId", assessmentID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	assessment, err := s.assessmentRepo.GetAssessmentWithQuestions(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}
	if assessment == nil {
		return nil, nil
	}

	if s.cache != nil {
		if err := s.cache.SaveAssessment(ctx, assessment); err != nil {
			s.logger.Warn("Assessment cache write failed", "assessmentId", assessmentID, "error", err)
		}
	}
	return assessment, nil
}
