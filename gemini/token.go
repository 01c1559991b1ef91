package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/newsprint"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ newsprint.TokenCounter = (*TokenCounter)(nil)

// TokenCounter measures article text with the local Gemini tokenizer, so
// the summarizer can stay within its input budget without an API call.
type TokenCounter struct {
	model string
	tok   *tokenizer.LocalTokenizer
}

// NewTokenCounter returns a counter for model. Models unknown to the local
// tokenizer are reported as ECONFIG.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, newsprint.Errorf(newsprint.ECONFIG, "no local tokenizer for model %s: %v", model, err)
	}
	return &TokenCounter{model: model, tok: tok}, nil
}

// CountTokens counts text sent as a single user turn. Blank text is zero.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{
		genai.NewContentFromText(text, "user"),
	}, nil)
	if err != nil {
		return 0, fmt.Errorf("count %s tokens: %w", tc.model, err)
	}
	return int(result.TotalTokens), nil
}
