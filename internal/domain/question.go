package domain

import "github.com/google/uuid"

// TestCase represents a single input/expected-output pair of a question.
// Ordered within a question by Position; immutable once solving has started.
type TestCase struct {
	ID             uuid.UUID `db:"id" json:"id"`
	QuestionID     uuid.UUID `db:"question_id" json:"-"`
	Input          string    `db:"input" json:"input"`
	ExpectedOutput string    `db:"expected_output" json:"expectedOutput"`
	Position       int       `db:"position" json:"-"`
}

// Question represents one coding question of an assessment
type Question struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	AssessmentID uuid.UUID  `db:"assessment_id" json:"assessmentId"`
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description"`
	StarterCode  string     `db:"starter_code" json:"starterCode"`
	Language     string     `db:"language" json:"language"`
	Position     int        `db:"position" json:"-"`
	TestCases    []TestCase `db:"-" json:"testCases"`
}

// Assessment represents a timed or untimed collection of ordered questions
type Assessment struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	Title            string     `db:"title" json:"title"`
	Description      string     `db:"description" json:"description"`
	Language         string     `db:"language" json:"language"`
	TimeLimitMinutes *int       `db:"time_limit_minutes" json:"timeLimit,omitempty"`
	CreatedBy        *uuid.UUID `db:"created_by" json:"-"`
	Questions        []Question `db:"-" json:"questions"`
}

// GeneratedTestCase is a test case as produced by the question generator,
// before it is persisted and assigned ids.
type GeneratedTestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
}

// GeneratedQuestion is the question shape the generator always returns,
// whether it came from the generative backend or from a canned template.
type GeneratedQuestion struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	StarterCode string              `json:"starter_code"`
	Language    string              `json:"language"`
	TestCases   []GeneratedTestCase `json:"test_cases"`
}

