package adgen

import "context"

// GenerateOptions configures a single generation call.
type GenerateOptions struct {
	// Search lets the model use web search to ground its answer.
	Search bool
}

// Generator produces text from a prompt using a generative model.
type Generator interface {
	// Generate returns the model's text response for the prompt.
	// Returns EUNAVAILABLE if the model returned no text.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}
