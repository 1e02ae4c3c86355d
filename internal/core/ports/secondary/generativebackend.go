package secondary

import "context"

// GenerativeBackend is the remote model endpoint the question generator
// delegates to. Complete returns the raw text content of the first choice.
type GenerativeBackend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
