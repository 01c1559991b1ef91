// Package stopwords provides built-in stop word lists.
package stopwords

import (
	"slices"
	"strings"
	"sync"

	"github.com/fwojciec/newsprint"
)

// Ensure Service implements newsprint.StopWordsService at compile time.
var _ newsprint.StopWordsService = (*Service)(nil)

// Service serves the built-in lists. Lists are parsed on first use.
type Service struct {
	mu     sync.Mutex
	parsed map[string]newsprint.StopWords
}

// NewService creates a new Service.
func NewService() *Service {
	return &Service{parsed: map[string]newsprint.StopWords{}}
}

// StopWords returns the list for language.
// Returns ENOTFOUND if the language has no list.
func (s *Service) StopWords(language string) (newsprint.StopWords, error) {
	language = strings.ToLower(strings.TrimSpace(language))

	s.mu.Lock()
	defer s.mu.Unlock()

	if words, ok := s.parsed[language]; ok {
		return words, nil
	}
	raw, ok := lists[language]
	if !ok {
		return nil, newsprint.Errorf(newsprint.ENOTFOUND, "no stop words for language %q", language)
	}

	fields := strings.Fields(raw)
	words := make(newsprint.StopWords, len(fields))
	for _, w := range fields {
		words[w] = struct{}{}
	}
	s.parsed[language] = words
	return words, nil
}

// Languages returns the supported language codes in sorted order.
func (s *Service) Languages() []string {
	langs := make([]string, 0, len(lists))
	for lang := range lists {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}
