package question

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gitlab.com/skillforge-2025.net/internal/core/ports/primary"
	"gitlab.com/skillforge-2025.net/internal/core/ports/secondary"
	"gitlab.com/skillforge-2025.net/internal/core/services/language"
	"gitlab.com/skillforge-2025.net/internal/domain"
	"gitlab.com/skillforge-2025.net/internal/static/errs"
)

const promptTemplate = `Generate a coding problem for a %s difficulty level in %s, inspired by %s style problems.

Return ONLY valid JSON (no markdown, no code blocks) with this exact structure:
{
  "title": "problem title",
  "description": "detailed problem description with examples",
  "starter_code": "starter code template in %s",
  "language": "%s",
  "test_cases": [
    {"input": "example input", "expectedOutput": "expected output"},
    {"input": "example input 2", "expectedOutput": "expected output 2"}
  ]
}`

var _ IQuestionService = (*QuestionService)(nil)

// QuestionService implements question generation with a template fallback
type QuestionService struct {
	backend secondary.GenerativeBackend
	logger  primary.Logger
}

// NewQuestionService creates a new question service. A nil backend is
// allowed and makes every call take the template path.
func NewQuestionService(backend secondary.GenerativeBackend, logger primary.Logger) *QuestionService {
	return &QuestionService{
		backend: backend,
		logger:  logger,
	}
}

// Generate produces a new question, never failing outright
func (s *QuestionService) Generate(ctx context.Context, difficulty, lang, reference string) (*domain.GeneratedQuestion, error) {
	if s.backend != nil {
		q, err := s.generateFromBackend(ctx, difficulty, lang, reference)
		if err == nil {
			return q, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("Falling back to question template",
			"difficulty", difficulty,
			"language", lang,
			"error", err)
	}

	return templateQuestion(difficulty, lang), nil
}

func (s *QuestionService) generateFromBackend(ctx context.Context, difficulty, lang, reference string) (*domain.GeneratedQuestion, error) {
	prompt := fmt.Sprintf(promptTemplate, difficulty, lang, reference, lang, lang)

	content, err := s.backend.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generative backend call failed: %w", err)
	}

	block, ok := firstJSONObject(content)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object in model output", errs.MalformedBackendResponse)
	}

	var q domain.GeneratedQuestion
	if err := json.Unmarshal([]byte(block), &q); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.MalformedBackendResponse, err)
	}
	if q.Title == "" || q.Description == "" || len(q.TestCases) == 0 {
		return nil, fmt.Errorf("%w: missing required fields", errs.MalformedBackendResponse)
	}
	if q.Language == "" {
		q.Language = lang
	}
	if q.StarterCode == "" {
		q.StarterCode = language.StarterTemplate(lang)
	}

	s.logger.Info("Question generated", "difficulty", difficulty, "language", lang, "title", q.Title)
	return &q, nil
}

// firstJSONObject extracts the first balanced {...} block from the model
// output, tolerating prose or code fences around it.
func firstJSONObject(content string) (string, bool) {
	start := strings.IndexByte(content, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		c := content[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return content[start : i+1], true
			}
		}
	}
	return "", false
}
