package language

import (
	"fmt"
	"strings"

	"gitlab.com/skillforge-2025.net/internal/domain"
	"gitlab.com/skillforge-2025.net/internal/static/errs"
)

// Registry resolves user-facing language names to execution-backend
// language/version pairs. The recognized set is fixed at build time.
type Registry struct {
	specs map[string]domain.LanguageSpec
}

// backendVersions pins the backend runtime version per language
var backendVersions = map[string]domain.LanguageSpec{
	"javascript": {Name: "javascript", Backend: "javascript", Version: "18.15.0"},
	"python":     {Name: "python", Backend: "python", Version: "3.10.0"},
	"java":       {Name: "java", Backend: "java", Version: "15.0.2"},
	"c++":        {Name: "c++", Backend: "c++", Version: "10.2.0"},
	"cpp":        {Name: "cpp", Backend: "c++", Version: "10.2.0"},
	"c":          {Name: "c", Backend: "c", Version: "10.2.0"},
	"go":         {Name: "go", Backend: "go", Version: "1.16.2"},
	"rust":       {Name: "rust", Backend: "rust", Version: "1.68.2"},
	"typescript": {Name: "typescript", Backend: "typescript", Version: "5.0.3"},
}

// NewRegistry creates the registry with the built-in language set
func NewRegistry() *Registry {
	specs := make(map[string]domain.LanguageSpec, len(backendVersions))
	for name, spec := range backendVersions {
		specs[name] = spec
	}
	return &Registry{specs: specs}
}

// Resolve maps a language name to its backend spec. Lookup is
// case-insensitive; unknown names fail with errs.UnsupportedLanguage.
func (r *Registry) Resolve(name string) (domain.LanguageSpec, error) {
	spec, ok := r.specs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.LanguageSpec{}, fmt.Errorf("%w: %s", errs.UnsupportedLanguage, name)
	}
	return spec, nil
}

// Names returns the recognized language names in no particular order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	return names
}
