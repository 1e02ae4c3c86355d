package config

import "os"

// GeneratorConfig points at the generative backend used for question
// authoring. An empty ApiKey disables the backend entirely; the generator
// then always serves its canned templates.
type GeneratorConfig struct {
	Url    string
	ApiKey string
	Model  string
}

func NewGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{
		Url:    getEnv("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
		ApiKey: os.Getenv("AI_GATEWAY_API_KEY"),
		Model:  getEnv("AI_GATEWAY_MODEL", "google/gemini-2.5-flash"),
	}
}
