package provider

import "fmt"

// Variant identifies one of the supported AI backends.
type Variant string

const (
	Ollama Variant = "ollama"
	OpenAI Variant = "openai"
	Gemini Variant = "gemini"
)

// ParseVariant converts a user-supplied provider name into a Variant.
func ParseVariant(name string) (Variant, error) {
	switch Variant(name) {
	case Ollama, OpenAI, Gemini:
		return Variant(name), nil
	default:
		return "", fmt.Errorf("unknown provider: %s (supported: ollama, openai, gemini)", name)
	}
}

// DefaultModel returns the model used when none is configured.
func (v Variant) DefaultModel() string {
	switch v {
	case OpenAI:
		return "gpt-4o-mini"
	case Gemini:
		return "gemini-2.0-flash-lite"
	default:
		return "qwen2.5-coder"
	}
}

// DefaultBaseURL returns the variant's standard endpoint.
func (v Variant) DefaultBaseURL() string {
	switch v {
	case OpenAI:
		return "https://api.openai.com/v1"
	case Gemini:
		return "https://generativelanguage.googleapis.com"
	default:
		return "http://localhost:11434"
	}
}

// Provider defines the interface that all LLM backends must implement
type Provider interface {
	// GenerateText sends the prompt to the backend and returns the raw generated text.
	// Each call issues exactly one outbound HTTP request.
	GenerateText(prompt string) (string, error)
}

// Options holds everything needed to construct a Provider.
// APIKey is required for the hosted variants, BaseURL and Model
// fall back to the variant defaults when empty.
type Options struct {
	Variant Variant
	Model   string
	APIKey  string
	BaseURL string
	Verbose bool
}
