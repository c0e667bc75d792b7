package render

import "context"

// PromptEnhancer rewrites a rendering prompt before it is sent to the
// image provider.
type PromptEnhancer interface {
	Enhance(ctx context.Context, prompt string) (string, error)
}

// GeminiEnhancer would enrich prompts through a Gemini-style language
// model. Enhancement is currently disabled and the prompt passes through
// unchanged; the key and model stay wired so enabling it is a config
// change.
type GeminiEnhancer struct {
	apiKey  string
	model   string
	enabled bool
}

// NewGeminiEnhancer creates the enhancer. enabled is forced off for now
// regardless of configuration.
func NewGeminiEnhancer(apiKey, model string, enabled bool) *GeminiEnhancer {
	// Hard-disabled: upstream model availability is too unstable to put
	// on the image generation path.
	return &GeminiEnhancer{apiKey: apiKey, model: model, enabled: false}
}

// Enhance returns the prompt unchanged while enhancement is disabled
func (e *GeminiEnhancer) Enhance(_ context.Context, prompt string) (string, error) {
	return prompt, nil
}
