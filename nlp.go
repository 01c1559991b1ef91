package newsprint

import (
	"cmp"
	"context"
	"slices"
	"strings"
)

// Keyword is a scored keyword candidate.
type Keyword struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// StopWords is a set of words ignored by keyword scoring and summarization.
type StopWords map[string]struct{}

// Has reports whether word is a stop word.
func (s StopWords) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// StopWordsService provides stop word lists per language.
type StopWordsService interface {
	// StopWords returns the list for language.
	// Returns ENOTFOUND if the language is not supported.
	StopWords(language string) (StopWords, error)

	// Languages returns the supported language codes.
	Languages() []string
}

// KeywordScorer scores the keywords of a text.
type KeywordScorer interface {
	// Keywords returns at most limit keywords ordered by descending score.
	Keywords(text string, stopWords StopWords, limit int) []Keyword
}

// Summarizer reduces a text to its most relevant sentences.
type Summarizer interface {
	// Summarize returns at most maxSentences sentences in output order.
	Summarize(ctx context.Context, title, text string, stopWords StopWords, maxSentences int) ([]string, error)
}

// TokenCounter measures text against a model's input budget.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

// MergeKeywords combines keywords scored on the body text with keywords
// scored on the title. Keys present in both take the mean of the two scores;
// other keys keep their score. The result is sorted by descending score,
// ties keeping text keywords first in their original order followed by
// title-only keywords, and truncated to limit entries (0 means no limit).
func MergeKeywords(text, title []Keyword, limit int) []Keyword {
	merged := make([]Keyword, 0, len(text)+len(title))
	index := make(map[string]int, len(text)+len(title))
	for _, k := range text {
		if _, ok := index[k.Word]; ok {
			continue
		}
		index[k.Word] = len(merged)
		merged = append(merged, k)
	}
	for _, k := range title {
		if i, ok := index[k.Word]; ok {
			merged[i].Score = (merged[i].Score + k.Score) / 2
			continue
		}
		index[k.Word] = len(merged)
		merged = append(merged, k)
	}

	slices.SortStableFunc(merged, func(a, b Keyword) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// KeywordWords returns the words of keywords in order.
func KeywordWords(keywords []Keyword) []string {
	words := make([]string, len(keywords))
	for i, k := range keywords {
		words[i] = k.Word
	}
	return words
}

// KeywordScoreMap returns keywords as a word to score mapping.
func KeywordScoreMap(keywords []Keyword) map[string]float64 {
	m := make(map[string]float64, len(keywords))
	for _, k := range keywords {
		m[k.Word] = k.Score
	}
	return m
}

// JoinSummary joins summary sentences one per line.
func JoinSummary(sentences []string) string {
	return strings.Join(sentences, "\n")
}
