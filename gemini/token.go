package gemini

import (
	"context"

	"github.com/fwojciec/adgen"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// TokenizerModel is used for counting when the generation model has no
// local tokenizer.
const TokenizerModel = "gemini-2.5-flash"

var _ adgen.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens locally using the Gemini tokenizer, so prompt
// budgets can be checked without an API call.
type TokenCounter struct {
	tok   *tokenizer.LocalTokenizer
	model string
}

// NewTokenCounter creates a new TokenCounter for the given model, falling
// back to TokenizerModel if the model is not supported locally.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil && model != TokenizerModel {
		model = TokenizerModel
		tok, err = tokenizer.NewLocalTokenizer(model)
	}
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok, model: model}, nil
}

// Model returns the model whose tokenizer is used.
func (tc *TokenCounter) Model() string {
	return tc.model
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{
		genai.NewContentFromText(text, "user"),
	}, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
