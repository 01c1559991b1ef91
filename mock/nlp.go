package mock

import (
	"context"

	"github.com/fwojciec/newsprint"
)

var (
	_ newsprint.StopWordsService = (*StopWordsService)(nil)
	_ newsprint.KeywordScorer    = (*KeywordScorer)(nil)
	_ newsprint.Summarizer       = (*Summarizer)(nil)
	_ newsprint.TokenCounter     = (*TokenCounter)(nil)
)

// StopWordsService is a mock implementation of newsprint.StopWordsService.
type StopWordsService struct {
	StopWordsFn func(language string) (newsprint.StopWords, error)
	LanguagesFn func() []string
}

func (s *StopWordsService) StopWords(language string) (newsprint.StopWords, error) {
	return s.StopWordsFn(language)
}

func (s *StopWordsService) Languages() []string {
	return s.LanguagesFn()
}

// KeywordScorer is a mock implementation of newsprint.KeywordScorer.
type KeywordScorer struct {
	KeywordsFn func(text string, stopWords newsprint.StopWords, limit int) []newsprint.Keyword
}

func (k *KeywordScorer) Keywords(text string, stopWords newsprint.StopWords, limit int) []newsprint.Keyword {
	return k.KeywordsFn(text, stopWords, limit)
}

// Summarizer is a mock implementation of newsprint.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, title, text string, stopWords newsprint.StopWords, maxSentences int) ([]string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, title, text string, stopWords newsprint.StopWords, maxSentences int) ([]string, error) {
	return s.SummarizeFn(ctx, title, text, stopWords, maxSentences)
}

// TokenCounter is a mock implementation of newsprint.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (t *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return t.CountTokensFn(ctx, text)
}
