package domain

// LanguageSpec is the resolved execution-backend identity for a user-facing
// language name. The set of specs is fixed at process start and never mutated.
type LanguageSpec struct {
	Name    string `json:"name"`
	Backend string `json:"backend"`
	Version string `json:"version"`
}
