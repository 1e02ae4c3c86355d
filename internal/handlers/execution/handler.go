package execution

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/skillforge-2025.net/internal/core/ports/primary"
	"gitlab.com/skillforge-2025.net/internal/core/services/execution"
	"gitlab.com/skillforge-2025.net/internal/core/services/language"
	"gitlab.com/skillforge-2025.net/internal/domain"
	"gitlab.com/skillforge-2025.net/internal/handlers"
)

// ExecutionHandler handles ad-hoc code execution API requests
type ExecutionHandler struct {
	executionService execution.IExecutionService
	registry         *language.Registry
	logger           primary.Logger
}

// NewExecutionHandler creates a new execution handler
func NewExecutionHandler(
	executionService execution.IExecutionService,
	registry *language.Registry,
	logger primary.Logger,
) *ExecutionHandler {
	return &ExecutionHandler{
		executionService: executionService,
		registry:         registry,
		logger:           logger,
	}
}

// RegisterRoutes registers the API routes for ExecutionHandler
func (h *ExecutionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/execute", h.Execute).Methods("POST")
	router.HandleFunc("/api/languages", h.GetLanguages).Methods("GET")
	router.HandleFunc("/api/languages/{name}/starter", h.GetStarterTemplate).Methods("GET")
}

// Execute handles code execution requests
func (h *ExecutionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Language == "" {
		http.Error(w, "Language is required", http.StatusBadRequest)
		return
	}

	result, err := h.executionService.Execute(r.Context(), domain.ExecutionRequest{
		Code:     req.Code,
		Language: req.Language,
		Stdin:    req.Stdin,
	})
	if err != nil {
		h.logger.Error("Execution aborted", "error", err)
		http.Error(w, "Execution aborted", http.StatusInternalServerError)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, result)
}

// GetLanguages handles language listing requests
func (h *ExecutionHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	handlers.ResponseWithJson(w, http.StatusOK, map[string][]string{"languages": h.registry.Names()})
}

// GetStarterTemplate handles starter code template requests. This never
// fails: unknown languages get the default skeleton.
func (h *ExecutionHandler) GetStarterTemplate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	handlers.ResponseWithJson(w, http.StatusOK, map[string]string{
		"language":    name,
		"starterCode": language.StarterTemplate(name),
	})
}
