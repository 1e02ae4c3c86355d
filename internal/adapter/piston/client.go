// package piston contains the HTTP client for a Piston-compatible remote
// execution backend
package piston

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gitlab.com/skillforge-2025.net/internal/core/ports/primary"
	"gitlab.com/skillforge-2025.net/internal/core/ports/secondary"
	"gitlab.com/skillforge-2025.net/internal/domain"
	"gitlab.com/skillforge-2025.net/internal/static/errs"
)

// Fixed resource ceilings for every execution. These bound worst-case load
// on the backend and are deliberately not caller-configurable.
const (
	runTimeoutMs     = 10000
	compileTimeoutMs = 10000
	memoryLimitBytes = 256000000
)

var _ secondary.ExecutionBackend = (*Client)(nil)

// Client calls a Piston-compatible execute endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     primary.Logger
}

// NewClient creates a new Piston client. The HTTP timeout leaves headroom
// over the backend's own run+compile ceilings.
func NewClient(baseURL string, logger primary.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type executeRequest struct {
	Language           string        `json:"language"`
	Version            string        `json:"version"`
	Files              []executeFile `json:"files"`
	Stdin              string        `json:"stdin,omitempty"`
	RunTimeout         int           `json:"run_timeout"`
	CompileTimeout     int           `json:"compile_timeout"`
	CompileMemoryLimit int64         `json:"compile_memory_limit"`
	RunMemoryLimit     int64         `json:"run_memory_limit"`
}

type executeFile struct {
	Content string `json:"content"`
}

// Run issues one execution request. No retries: a remote failure surfaces
// immediately so end-to-end latency stays bounded for an interactive caller.
func (c *Client) Run(ctx context.Context, req secondary.BackendRunRequest) (*domain.BackendResponse, error) {
	body, err := json.Marshal(executeRequest{
		Language:           req.Language,
		Version:            req.Version,
		Files:              []executeFile{{Content: req.Code}},
		Stdin:              req.Stdin,
		RunTimeout:         runTimeoutMs,
		CompileTimeout:     compileTimeoutMs,
		CompileMemoryLimit: memoryLimitBytes,
		RunMemoryLimit:     memoryLimitBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal execute request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build execute request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.BackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Execution backend returned non-success status",
			"status", resp.StatusCode,
			"language", req.Language)
		return nil, fmt.Errorf("%w: status %d", errs.BackendUnavailable, resp.StatusCode)
	}

	var backendResp domain.BackendResponse
	if err := json.NewDecoder(resp.Body).Decode(&backendResp); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.BackendUnavailable, err)
	}

	return &backendResp, nil
}
