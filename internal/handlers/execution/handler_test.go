package execution_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"gitlab.com/skillforge-2025.net/internal/core/services/language"
	"gitlab.com/skillforge-2025.net/internal/domain"
	executionhandler "gitlab.com/skillforge-2025.net/internal/handlers/execution"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeExecutionService struct {
	lastReq domain.ExecutionRequest
	result  *domain.ExecutionResult
	err     error
}

func (f *fakeExecutionService) Execute(ctx context.Context, req domain.ExecutionRequest) (*domain.ExecutionResult, error) {
	f.lastReq = req
	return f.result, f.err
}

func newRouter(svc *fakeExecutionService) *mux.Router {
	router := mux.NewRouter()
	handler := executionhandler.NewExecutionHandler(svc, language.NewRegistry(), nopLogger{})
	handler.RegisterRoutes(router)
	return router
}

func TestExecuteEndpoint(t *testing.T) {
	svc := &fakeExecutionService{
		result: &domain.ExecutionResult{
			Output:   "6\n",
			ExitCode: 0,
			Language: "python",
			Version:  "3.10.0",
		},
	}
	router := newRouter(svc)

	body := `{"code": "print(sum([1,2,3]))", "language": "Python", "stdin": "[1,2,3]"}`
	req := httptest.NewRequest(http.MethodPost, "/api/execute", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastReq.Language != "Python" || svc.lastReq.Stdin != "[1,2,3]" {
		t.Fatalf("unexpected service request: %+v", svc.lastReq)
	}

	var result domain.ExecutionResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Output != "6\n" || result.Version != "3.10.0" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestExecuteEndpointRejectsMissingLanguage(t *testing.T) {
	svc := &fakeExecutionService{}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/execute", strings.NewReader(`{"code": "print(1)"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestExecuteEndpointRejectsMalformedBody(t *testing.T) {
	svc := &fakeExecutionService{}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/execute", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetLanguagesEndpoint(t *testing.T) {
	router := newRouter(&fakeExecutionService{})

	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string][]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	found := false
	for _, name := range resp["languages"] {
		if name == "python" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected python in languages, got %v", resp["languages"])
	}
}

func TestGetStarterTemplateEndpoint(t *testing.T) {
	router := newRouter(&fakeExecutionService{})

	req := httptest.NewRequest(http.MethodGet, "/api/languages/python/starter", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["language"] != "python" {
		t.Fatalf("unexpected language: %q", resp["language"])
	}
	if !strings.Contains(resp["starterCode"], "def ") {
		t.Fatalf("expected a python skeleton, got %q", resp["starterCode"])
	}
}
