package attempts

import "gitlab.com/skillforge-2025.net/internal/domain"

// StartAttemptRequest represents a request to start a solving session
type StartAttemptRequest struct {
	AssessmentID string `json:"assessmentId"`
}

// SubmitRequest represents a submission for the current question
type SubmitRequest struct {
	Code string `json:"code"`
}

// NavigateRequest represents a view move between questions
type NavigateRequest struct {
	Delta int `json:"delta"`
}

// SubmitResponse carries the grading outcome and the updated attempt state
type SubmitResponse struct {
	Report *domain.GradeReport  `json:"report"`
	State  *domain.AttemptState `json:"state"`
}
