package question

import (
	"context"

	"gitlab.com/skillforge-2025.net/internal/domain"
)

// IQuestionService defines the interface for authoring-side question
// generation
type IQuestionService interface {
	// Generate produces a new question for the given difficulty and
	// language, delegating to the generative backend and falling back to a
	// canned template on any failure. It never returns an error to the
	// caller beyond context cancellation: the authoring flow always gets a
	// usable question.
	Generate(ctx context.Context, difficulty, lang, reference string) (*domain.GeneratedQuestion, error)
}
