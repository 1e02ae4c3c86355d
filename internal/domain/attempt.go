package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttemptPhase represents where an attempt is in its lifecycle
type AttemptPhase string

const (
	AttemptPhaseInProgress AttemptPhase = "IN_PROGRESS"
	AttemptPhaseTerminal   AttemptPhase = "TERMINAL"
)

// Attempt is one pass by a candidate through an assessment's ordered
// questions. It lives in memory for the duration of a solving session and is
// discarded once its results summary has been read.
//
// Invariants: CurrentIndex stays in [0, len(Questions)); once Phase is
// Terminal no further submissions are recorded; Deadline, when set, forces
// the terminal phase the moment it passes regardless of progress.
type Attempt struct {
	ID           uuid.UUID
	AssessmentID uuid.UUID
	UserID       string
	Questions    []Question
	CurrentIndex int
	Deadline     *time.Time
	Results      map[uuid.UUID]bool
	Phase        AttemptPhase
	StartedAt    time.Time
}

// Remaining returns the whole seconds left before the deadline, or nil for
// untimed attempts. Never negative.
func (a *Attempt) Remaining(now time.Time) *int {
	if a.Deadline == nil {
		return nil
	}
	secs := int(a.Deadline.Sub(now) / time.Second)
	if secs < 0 {
		secs = 0
	}
	return &secs
}

// Expired reports whether a timed attempt's deadline has passed
func (a *Attempt) Expired(now time.Time) bool {
	return a.Deadline != nil && !now.Before(*a.Deadline)
}

// AttemptSummary is the terminal results view of an attempt
type AttemptSummary struct {
	AttemptID    uuid.UUID `json:"attemptId"`
	AssessmentID uuid.UUID `json:"assessmentId"`
	Correct      int       `json:"correct"`
	Incorrect    int       `json:"incorrect"`
	Unattempted  int       `json:"unattempted"`
	Accuracy     int       `json:"accuracy"`
}

// AttemptState is the externally visible snapshot of an attempt
type AttemptState struct {
	AttemptID        uuid.UUID          `json:"attemptId"`
	AssessmentID     uuid.UUID          `json:"assessmentId"`
	Phase            AttemptPhase       `json:"phase"`
	CurrentIndex     int                `json:"currentIndex"`
	TotalQuestions   int                `json:"totalQuestions"`
	RemainingSeconds *int               `json:"remainingSeconds,omitempty"`
	Question         *Question          `json:"question,omitempty"`
	Results          map[uuid.UUID]bool `json:"results"`
	Summary          *AttemptSummary    `json:"summary,omitempty"`
}
