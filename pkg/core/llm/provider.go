package llm

import (
	"context"
)

// Provider is the interface for all LLM providers.
//
// options carries provider-specific switches: "model" to override the
// default model, "response_format" {"type":"json_object"} for JSON
// mode, "google_search" for Gemini search grounding.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}
