package execution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gitlab.com/skillforge-2025.net/internal/core/ports/primary"
	"gitlab.com/skillforge-2025.net/internal/core/ports/secondary"
	"gitlab.com/skillforge-2025.net/internal/core/services/language"
	"gitlab.com/skillforge-2025.net/internal/domain"
)

const (
	noOutputPlaceholder = "No output"
	unavailableAdvisory = "The code execution service is currently unavailable. Please try again later."
)

var _ IExecutionService = (*ExecutionService)(nil)

// ExecutionService implements the execution broker: resolve the language,
// make one backend call under fixed resource ceilings, and fold every
// failure mode into a normalized result.
type ExecutionService struct {
	registry *language.Registry
	backend  secondary.ExecutionBackend
	logger   primary.Logger
}

// NewExecutionService creates a new execution service
func NewExecutionService(
	registry *language.Registry,
	backend secondary.ExecutionBackend,
	logger primary.Logger,
) *ExecutionService {
	return &ExecutionService{
		registry: registry,
		backend:  backend,
		logger:   logger,
	}
}

// Execute runs one source snippet and normalizes the backend response
func (s *ExecutionService) Execute(ctx context.Context, req domain.ExecutionRequest) (*domain.ExecutionResult, error) {
	spec, err := s.registry.Resolve(req.Language)
	if err != nil {
		s.logger.Warn("Rejected execution for unknown language", "language", req.Language)
		return &domain.ExecutionResult{
			ExitCode: -1,
			Advisory: fmt.Sprintf("Unsupported language: %s", req.Language),
		}, nil
	}

	// Duration is measured around the whole backend round trip: this is time
	// as experienced by the caller, network latency included.
	start := time.Now()
	resp, err := s.backend.Run(ctx, secondary.BackendRunRequest{
		Language: spec.Backend,
		Version:  spec.Version,
		Code:     req.Code,
		Stdin:    req.Stdin,
	})
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Error("Execution backend call failed", "language", spec.Backend, "error", err)
		return &domain.ExecutionResult{
			ExitCode:        -1,
			ExecutionTimeMs: elapsed,
			Language:        spec.Backend,
			Version:         spec.Version,
			Advisory:        unavailableAdvisory,
		}, nil
	}

	result := normalize(resp)
	result.ExecutionTimeMs = elapsed
	result.Language = spec.Backend
	result.Version = spec.Version

	s.logger.Debug("Execution completed",
		"language", spec.Backend,
		"exitCode", result.ExitCode,
		"durationMs", elapsed)

	return result, nil
}

// normalize extracts output, stderr and exit code from the backend phases,
// preferring the run phase and falling back to the compile phase so compile
// errors of compiled languages still surface. Output is display-normalized;
// RunOutput keeps the run phase's stdout untouched for grading.
func normalize(resp *domain.BackendResponse) *domain.ExecutionResult {
	result := &domain.ExecutionResult{ExitCode: -1}

	output := ""
	if resp.Run != nil {
		result.RunOutput = resp.Run.Output
	}
	if resp.Run != nil && resp.Run.Output != "" {
		output = resp.Run.Output
	} else if resp.Compile != nil {
		output = resp.Compile.Output
	}
	if output == "" {
		output = noOutputPlaceholder
	}
	result.Output = strings.TrimSpace(output)

	if resp.Run != nil && resp.Run.Stderr != "" {
		result.Stderr = strings.TrimSpace(resp.Run.Stderr)
	} else if resp.Compile != nil {
		result.Stderr = strings.TrimSpace(resp.Compile.Stderr)
	}

	if resp.Run != nil && resp.Run.Code != nil {
		result.ExitCode = *resp.Run.Code
	} else if resp.Compile != nil && resp.Compile.Code != nil {
		result.ExitCode = *resp.Compile.Code
	}

	return result
}
