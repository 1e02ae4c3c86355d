package domain

// ExecutionRequest represents a single piece of source code to run
type ExecutionRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Stdin    string `json:"stdin,omitempty"`
}

// ExecutionResult represents the normalized outcome of one execution request.
// Transport failures never surface as errors; they are folded into a degraded
// result whose Advisory carries a user-renderable message.
type ExecutionResult struct {
	Output          string `json:"output"`
	Stderr          string `json:"stderr"`
	ExitCode        int    `json:"exitCode"`
	ExecutionTimeMs int64  `json:"executionTime"`
	Language        string `json:"language,omitempty"`
	Version         string `json:"version,omitempty"`
	Advisory        string `json:"error,omitempty"`

	// RunOutput is the run phase's stdout exactly as produced, before the
	// display substitutions applied to Output. Correctness comparisons use
	// this field so a program that legitimately prints nothing still matches
	// an empty expected output.
	RunOutput string `json:"-"`
}

// Degraded reports whether the execution never produced a real backend
// verdict (unsupported language or unreachable backend).
func (r *ExecutionResult) Degraded() bool {
	return r.Advisory != ""
}

// BackendPhase is one phase (compile or run) of a backend execution response.
type BackendPhase struct {
	Output string `json:"output"`
	Stderr string `json:"stderr"`
	Code   *int   `json:"code"`
}

// BackendResponse is the raw response of the remote execution backend. Either
// phase may be absent: interpreted languages carry no compile phase, and a
// compile failure carries no run phase.
type BackendResponse struct {
	Compile *BackendPhase `json:"compile,omitempty"`
	Run     *BackendPhase `json:"run,omitempty"`
}
