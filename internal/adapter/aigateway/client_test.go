package aigateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gitlab.com/skillforge-2025.net/internal/adapter/aigateway"
	"gitlab.com/skillforge-2025.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

func TestCompleteSendsModelAndAuth(t *testing.T) {
	t.Parallel()
	var captured map[string]interface{}
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "{\"title\": \"Two Sum\"}"}}]}`))
	}))
	defer server.Close()

	client := aigateway.NewClient(server.URL, "test-key", "google/gemini-2.5-flash", nopLogger{})
	content, err := client.Complete(context.Background(), "generate a question")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != `{"title": "Two Sum"}` {
		t.Fatalf("unexpected content: %q", content)
	}

	if auth != "Bearer test-key" {
		t.Fatalf("expected bearer auth, got %q", auth)
	}
	if captured["model"] != "google/gemini-2.5-flash" {
		t.Fatalf("expected model in request, got %v", captured["model"])
	}
	if captured["temperature"] != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", captured["temperature"])
	}
	messages, ok := captured["messages"].([]interface{})
	if !ok || len(messages) != 1 {
		t.Fatalf("expected one message, got %v", captured["messages"])
	}
	msg := messages[0].(map[string]interface{})
	if msg["role"] != "user" || msg["content"] != "generate a question" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := aigateway.NewClient(server.URL, "test-key", "google/gemini-2.5-flash", nopLogger{})
	_, err := client.Complete(context.Background(), "generate a question")
	if !errors.Is(err, errs.MalformedBackendResponse) {
		t.Fatalf("expected MalformedBackendResponse, got %v", err)
	}
}

func TestCompleteMalformedBody(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := aigateway.NewClient(server.URL, "test-key", "google/gemini-2.5-flash", nopLogger{})
	_, err := client.Complete(context.Background(), "generate a question")
	if !errors.Is(err, errs.MalformedBackendResponse) {
		t.Fatalf("expected MalformedBackendResponse, got %v", err)
	}
}

func TestCompleteNonSuccessStatus(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := aigateway.NewClient(server.URL, "test-key", "google/gemini-2.5-flash", nopLogger{})
	_, err := client.Complete(context.Background(), "generate a question")
	if !errors.Is(err, errs.BackendUnavailable) {
		t.Fatalf("expected BackendUnavailable, got %v", err)
	}
}
