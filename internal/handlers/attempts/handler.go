package attempts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/skillforge-2025.net/internal/core/ports/primary"
	"gitlab.com/skillforge-2025.net/internal/core/services/attempt"
	"gitlab.com/skillforge-2025.net/internal/handlers"
	"gitlab.com/skillforge-2025.net/internal/handlers/response"
	"gitlab.com/skillforge-2025.net/internal/static/errs"
)

// AttemptHandler handles solving-session API requests
type AttemptHandler struct {
	attemptService attempt.IAttemptService
	logger         primary.Logger
}

// NewAttemptHandler creates a new attempt handler
func NewAttemptHandler(attemptService attempt.IAttemptService, logger primary.Logger) *AttemptHandler {
	return &AttemptHandler{
		attemptService: attemptService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for AttemptHandler
func (h *AttemptHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/attempts", h.StartAttempt).Methods("POST")
	router.HandleFunc("/api/attempts/{attemptId}", h.GetAttempt).Methods("GET")
	router.HandleFunc("/api/attempts/{attemptId}/submissions", h.SubmitCode).Methods("POST")
	router.HandleFunc("/api/attempts/{attemptId}/navigate", h.Navigate).Methods("POST")
	router.HandleFunc("/api/questions/{questionId}/submissions", h.GetSubmissions).Methods("GET")
}

// StartAttempt handles attempt creation requests
func (h *AttemptHandler) StartAttempt(w http.ResponseWriter, r *http.Request) {
	var req StartAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	assessmentID, err := uuid.Parse(req.AssessmentID)
	if err != nil {
		h.logger.Error("Invalid assessment ID", "id", req.AssessmentID)
		http.Error(w, "Invalid assessment ID", http.StatusBadRequest)
		return
	}

	userID := handlers.IdentityFromContext(r.Context())
	state, err := h.attemptService.Start(r.Context(), userID, assessmentID)
	if err != nil {
		switch {
		case errors.Is(err, errs.AssessmentNotFound):
			http.Error(w, "Assessment not found", http.StatusNotFound)
		case errors.Is(err, errs.NoQuestions):
			http.Error(w, "Assessment has no questions", http.StatusUnprocessableEntity)
		default:
			h.logger.Error("Failed to start attempt", "error", err)
			http.Error(w, "Failed to start attempt", http.StatusInternalServerError)
		}
		return
	}

	handlers.ResponseWithJson(w, http.StatusCreated, state)
}

// GetAttempt handles attempt state requests
func (h *AttemptHandler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	attemptID, ok := h.attemptID(w, r)
	if !ok {
		return
	}

	state, err := h.attemptService.State(r.Context(), attemptID)
	if err != nil {
		if errors.Is(err, errs.AttemptNotFound) {
			http.Error(w, "Attempt not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get attempt", "attemptId", attemptID, "error", err)
		http.Error(w, "Failed to get attempt", http.StatusInternalServerError)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, state)
}

// SubmitCode handles submission requests for the current question
func (h *AttemptHandler) SubmitCode(w http.ResponseWriter, r *http.Request) {
	attemptID, ok := h.attemptID(w, r)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	report, state, err := h.attemptService.Submit(r.Context(), attemptID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, errs.AttemptNotFound):
			http.Error(w, "Attempt not found", http.StatusNotFound)
		case errors.Is(err, errs.AttemptTerminal):
			response.WriteError(w, response.ErrorMessage{Message: "Attempt is already finished", StatusCode: http.StatusConflict})
		case errors.Is(err, errs.SubmitInFlight):
			response.WriteError(w, response.ErrorMessage{Message: "A submission is already being graded", StatusCode: http.StatusConflict})
		default:
			h.logger.Error("Failed to submit code", "attemptId", attemptID, "error", err)
			http.Error(w, "Failed to submit code", http.StatusInternalServerError)
		}
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, SubmitResponse{
		Report: report,
		State:  state,
	})
}

// Navigate handles question navigation requests
func (h *AttemptHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	attemptID, ok := h.attemptID(w, r)
	if !ok {
		return
	}

	var req NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	state, err := h.attemptService.Navigate(r.Context(), attemptID, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, errs.AttemptNotFound):
			http.Error(w, "Attempt not found", http.StatusNotFound)
		case errors.Is(err, errs.AttemptTerminal):
			response.WriteError(w, response.ErrorMessage{Message: "Attempt is already finished", StatusCode: http.StatusConflict})
		default:
			h.logger.Error("Failed to navigate", "attemptId", attemptID, "error", err)
			http.Error(w, "Failed to navigate", http.StatusInternalServerError)
		}
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, state)
}

// GetSubmissions handles submission history requests for a question
func (h *AttemptHandler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	questionID, err := uuid.Parse(vars["questionId"])
	if err != nil {
		h.logger.Error("Invalid question ID", "id", vars["questionId"])
		http.Error(w, "Invalid question ID", http.StatusBadRequest)
		return
	}

	submissions, err := h.attemptService.Submissions(r.Context(), questionID)
	if err != nil {
		h.logger.Error("Failed to load submissions", "questionId", questionID, "error", err)
		http.Error(w, "Failed to load submissions", http.StatusInternalServerError)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, map[string]interface{}{"submissions": submissions})
}

func (h *AttemptHandler) attemptID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	idStr := vars["attemptId"]

	attemptID, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Error("Invalid attempt ID", "id", idStr)
		http.Error(w, "Invalid attempt ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return attemptID, true
}
