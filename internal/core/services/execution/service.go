package execution

import (
	"context"

	"gitlab.com/skillforge-2025.net/internal/domain"
)

// IExecutionService defines the interface for running candidate code
type IExecutionService interface {
	// Execute runs one source snippet on the remote backend and normalizes
	// the outcome. Transport failures and unknown languages come back as a
	// degraded result, never as an error; the only error returned is the
	// caller's own context cancellation.
	Execute(ctx context.Context, req domain.ExecutionRequest) (*domain.ExecutionResult, error)
}
