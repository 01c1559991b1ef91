package nlp

import (
	"cmp"
	"context"
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/fwojciec/newsprint"
)

// Ensure Summarizer implements newsprint.Summarizer at compile time.
var _ newsprint.Summarizer = (*Summarizer)(nil)

const (
	// idealSentenceWords is the sentence length scored highest.
	idealSentenceWords = 20

	// summaryKeywords is the number of body keywords sentences are scored on.
	summaryKeywords = 10
)

var sentenceEnd = regexp.MustCompile(`([.!?]+["'”’)]*)\s+`)

// SplitSentences splits text on terminal punctuation followed by whitespace.
func SplitSentences(text string) []string {
	marked := sentenceEnd.ReplaceAllString(strings.TrimSpace(text), "$1\x00")
	var sentences []string
	for _, s := range strings.Split(marked, "\x00") {
		if s = strings.Join(strings.Fields(s), " "); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Summarizer selects the sentences of a text that best cover its keywords
// and title. Selected sentences are returned in text order.
type Summarizer struct {
	scorer newsprint.KeywordScorer
}

// NewSummarizer creates a new Summarizer scoring sentences with scorer.
func NewSummarizer(scorer newsprint.KeywordScorer) *Summarizer {
	return &Summarizer{scorer: scorer}
}

// Summarize returns at most maxSentences sentences of text.
func (s *Summarizer) Summarize(ctx context.Context, title, text string, stopWords newsprint.StopWords, maxSentences int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if maxSentences <= 0 || strings.TrimSpace(text) == "" {
		return nil, nil
	}

	sentences := SplitSentences(text)
	if len(sentences) <= maxSentences {
		return sentences, nil
	}

	keywords := newsprint.KeywordScoreMap(s.scorer.Keywords(text, stopWords, summaryKeywords))
	titleWords := map[string]bool{}
	for _, w := range Words(title) {
		if !stopWords.Has(w) {
			titleWords[w] = true
		}
	}

	type ranked struct {
		index int
		score float64
	}
	scores := make([]ranked, len(sentences))
	for i, sentence := range sentences {
		words := Words(sentence)
		score := titleScore(words, titleWords)*1.5 +
			keywordScore(words, keywords)*2 +
			lengthScore(len(words)) +
			positionScore(i, len(sentences))
		scores[i] = ranked{index: i, score: score / 4}
	}

	slices.SortStableFunc(scores, func(a, b ranked) int {
		return cmp.Compare(b.score, a.score)
	})
	scores = scores[:maxSentences]
	slices.SortFunc(scores, func(a, b ranked) int {
		return cmp.Compare(a.index, b.index)
	})

	summary := make([]string, len(scores))
	for i, r := range scores {
		summary[i] = sentences[r.index]
	}
	return summary, nil
}

// titleScore is the share of title words found in the sentence.
func titleScore(words []string, titleWords map[string]bool) float64 {
	if len(titleWords) == 0 {
		return 0
	}
	found := map[string]bool{}
	for _, w := range words {
		if titleWords[w] {
			found[w] = true
		}
	}
	return float64(len(found)) / float64(len(titleWords))
}

// keywordScore combines the summed keyword weight of the sentence with how
// closely its keywords cluster.
func keywordScore(words []string, keywords map[string]float64) float64 {
	if len(words) == 0 || len(keywords) == 0 {
		return 0
	}

	var total float64
	var hits []int
	for i, w := range words {
		if score, ok := keywords[w]; ok {
			total += score
			hits = append(hits, i)
		}
	}
	sbs := total / float64(len(words)) / 10

	var dbs float64
	if len(hits) > 1 {
		var sum float64
		for i := 1; i < len(hits); i++ {
			gap := float64(hits[i] - hits[i-1])
			sum += keywords[words[hits[i-1]]] * keywords[words[hits[i]]] / (gap * gap)
		}
		dbs = sum / float64(len(hits)*(len(hits)+1)) / 10
	}

	return (sbs + dbs) / 2 * 10
}

// lengthScore is 1 for sentences of the ideal length and falls off linearly.
func lengthScore(n int) float64 {
	return math.Max(0, 1-math.Abs(float64(idealSentenceWords-n))/idealSentenceWords)
}

// positionScore favors the opening and closing sentences of a text.
func positionScore(i, total int) float64 {
	normalized := float64(i+1) / float64(total)
	switch {
	case normalized <= 0.1:
		return 0.17
	case normalized <= 0.2:
		return 0.23
	case normalized <= 0.3:
		return 0.14
	case normalized <= 0.4:
		return 0.08
	case normalized <= 0.5:
		return 0.05
	case normalized <= 0.6:
		return 0.04
	case normalized <= 0.7:
		return 0.06
	case normalized <= 0.8:
		return 0.04
	case normalized <= 0.9:
		return 0.04
	default:
		return 0.15
	}
}
