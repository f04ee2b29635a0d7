package provider

import (
	"fmt"

	"github.com/CJHwong/git-msg/internal/gemini"
	"github.com/CJHwong/git-msg/internal/ollama"
	"github.com/CJHwong/git-msg/internal/openai"
)

// New constructs the backend selected by opts.Variant. Construction is
// pure: no network I/O happens until GenerateText is called.
func New(opts Options) (Provider, error) {
	model := opts.Model
	if model == "" {
		model = opts.Variant.DefaultModel()
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = opts.Variant.DefaultBaseURL()
	}

	switch opts.Variant {
	case Ollama:
		return ollama.NewClient(baseURL, model, opts.Verbose), nil
	case OpenAI:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("API key is required for OpenAI (use --api-key or set GIT_MSG_API_KEY)")
		}
		return openai.NewClient(baseURL, model, opts.APIKey, opts.Verbose), nil
	case Gemini:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("API key is required for Gemini (use --api-key or set GIT_MSG_API_KEY)")
		}
		return gemini.NewClient(baseURL, model, opts.APIKey, opts.Verbose), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: ollama, openai, gemini)", opts.Variant)
	}
}
