// Package nlp implements frequency based keyword scoring and extractive
// summarization of article text.
package nlp

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/fwojciec/newsprint"
)

// Ensure KeywordScorer implements newsprint.KeywordScorer at compile time.
var _ newsprint.KeywordScorer = (*KeywordScorer)(nil)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}]+)*`)

// Words returns the lowercased words of text with punctuation removed.
func Words(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	for i, w := range words {
		words[i] = strings.ReplaceAll(w, "’", "'")
	}
	return words
}

// KeywordScorer scores words by their frequency in a text.
// A keyword scores 1 + 1.5 * count / total words, so scores fall in (1, 2.5].
type KeywordScorer struct{}

// NewKeywordScorer creates a new KeywordScorer.
func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{}
}

// Keywords returns the limit most frequent non stop words of text. Ties are
// broken by word in reverse lexical order. A limit of 0 returns every word.
func (s *KeywordScorer) Keywords(text string, stopWords newsprint.StopWords, limit int) []newsprint.Keyword {
	words := Words(text)
	if len(words) == 0 {
		return nil
	}

	counts := map[string]int{}
	for _, w := range words {
		if stopWords.Has(w) || isNumber(w) {
			continue
		}
		counts[w]++
	}

	keywords := make([]newsprint.Keyword, 0, len(counts))
	for w := range counts {
		keywords = append(keywords, newsprint.Keyword{Word: w})
	}
	slices.SortFunc(keywords, func(a, b newsprint.Keyword) int {
		if c := cmp.Compare(counts[b.Word], counts[a.Word]); c != 0 {
			return c
		}
		return strings.Compare(b.Word, a.Word)
	})
	if limit > 0 && len(keywords) > limit {
		keywords = keywords[:limit]
	}

	total := float64(len(words))
	for i := range keywords {
		keywords[i].Score = float64(counts[keywords[i].Word])/total*1.5 + 1
	}
	return keywords
}

func isNumber(w string) bool {
	for _, r := range w {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
