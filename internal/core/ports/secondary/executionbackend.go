package secondary

import (
	"context"

	"gitlab.com/skillforge-2025.net/internal/domain"
)

// BackendRunRequest carries everything the remote execution backend needs to
// run one source snippet. Resource ceilings are filled in by the adapter;
// they are policy constants, not caller choices.
type BackendRunRequest struct {
	Language string
	Version  string
	Code     string
	Stdin    string
}

// ExecutionBackend is the remote service that actually compiles and runs
// submitted source under resource limits. One call per execution, no retries.
type ExecutionBackend interface {
	Run(ctx context.Context, req BackendRunRequest) (*domain.BackendResponse, error)
}
