package questions

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/skillforge-2025.net/internal/core/ports/primary"
	"gitlab.com/skillforge-2025.net/internal/core/services/question"
	"gitlab.com/skillforge-2025.net/internal/handlers"
)

// QuestionHandler handles authoring-side question generation requests
type QuestionHandler struct {
	questionService question.IQuestionService
	logger          primary.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService question.IQuestionService, logger primary.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		logger:          logger,
	}
}

// RegisterRoutes registers the API routes for QuestionHandler
func (h *QuestionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/questions/generate", h.GenerateQuestion).Methods("POST")
}

// GenerateRequest represents a request to generate a question
type GenerateRequest struct {
	Difficulty string `json:"difficulty"`
	Language   string `json:"language"`
	Reference  string `json:"reference"`
}

// GenerateQuestion handles question generation requests. The service always
// produces a usable question, so the only client-visible failures are bad
// requests and context cancellation.
func (h *QuestionHandler) GenerateQuestion(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}
	if req.Language == "" {
		req.Language = "javascript"
	}
	if req.Reference == "" {
		req.Reference = "LeetCode"
	}

	q, err := h.questionService.Generate(r.Context(), req.Difficulty, req.Language, req.Reference)
	if err != nil {
		h.logger.Error("Failed to generate question", "error", err)
		http.Error(w, "Failed to generate question", http.StatusInternalServerError)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, map[string]interface{}{"question": q})
}
