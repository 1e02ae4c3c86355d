package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus represents the lifecycle status of a submission record
type SubmissionStatus string

const (
	SubmissionStatusCompleted SubmissionStatus = "completed"
	SubmissionStatusFailed    SubmissionStatus = "failed"
)

// Submission represents the immutable grading outcome of one submit action.
// Exactly one is created per submit resolution; it is never updated.
type Submission struct {
	ID              uuid.UUID        `db:"id" json:"id"`
	AssessmentID    uuid.UUID        `db:"assessment_id" json:"assessmentId"`
	QuestionID      uuid.UUID        `db:"question_id" json:"questionId"`
	UserID          string           `db:"user_id" json:"userId"`
	Code            string           `db:"code" json:"code"`
	Language        string           `db:"language" json:"language"`
	IsCorrect       bool             `db:"is_correct" json:"isCorrect"`
	Score           int              `db:"score" json:"score"`
	PassedTestCases int              `db:"passed_test_cases" json:"passedTestCases"`
	TotalTestCases  int              `db:"total_test_cases" json:"totalTestCases"`
	Output          string           `db:"output" json:"output"`
	Status          SubmissionStatus `db:"status" json:"status"`
	SubmittedAt     time.Time        `db:"submitted_at" json:"submittedAt"`
}

// GradeReport is what the grading engine produces for one submit action
type GradeReport struct {
	IsCorrect bool   `json:"isCorrect"`
	Score     int    `json:"score"`
	Passed    int    `json:"passed"`
	Total     int    `json:"total"`
	Output    string `json:"output"`
}

