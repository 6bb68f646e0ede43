// Package gemini implements adgen.Generator and adgen.TokenCounter using
// Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/adgen"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements adgen.Generator at compile time.
var _ adgen.Generator = (*Generator)(nil)

// Generator implements adgen.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Model returns the model name used for generation.
func (g *Generator) Model() string {
	return g.model
}

// Generate returns the model's text response for the prompt.
func (g *Generator) Generate(ctx context.Context, prompt string, opts adgen.GenerateOptions) (string, error) {
	if prompt == "" {
		return "", adgen.Errorf(adgen.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(opts),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", adgen.Errorf(adgen.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", adgen.Errorf(adgen.EUNAVAILABLE, "the model returned an empty response")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Search grounding is attached only when requested.
func BuildConfig(opts adgen.GenerateOptions) *genai.GenerateContentConfig {
	temp := float32(0.7)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert marketing strategist and Google Ads copywriter. Follow the requested output structure exactly.",
			}},
		},
		Temperature: &temp,
	}
	if opts.Search {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return config
}
