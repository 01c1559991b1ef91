package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/newsprint"
	"google.golang.org/genai"
)

// Model is the Gemini model used for summaries.
const Model = "gemini-2.5-flash"

// DefaultMaxInputTokens is the article token budget sent to the model.
const DefaultMaxInputTokens = 32000

// Ensure Summarizer implements newsprint.Summarizer at compile time.
var _ newsprint.Summarizer = (*Summarizer)(nil)

// Summarizer implements newsprint.Summarizer using Google Gemini. The model
// is asked to pick sentences from the article rather than write new ones.
type Summarizer struct {
	client    *genai.Client
	counter   newsprint.TokenCounter
	maxTokens int
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithMaxInputTokens sets the token budget for the article text.
func WithMaxInputTokens(n int) Option {
	return func(s *Summarizer) {
		s.maxTokens = n
	}
}

// NewSummarizer creates a new Summarizer. The counter is used to keep the
// article within the input token budget and may be nil to disable trimming.
func NewSummarizer(client *genai.Client, counter newsprint.TokenCounter, opts ...Option) *Summarizer {
	s := &Summarizer{
		client:    client,
		counter:   counter,
		maxTokens: DefaultMaxInputTokens,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize returns at most maxSentences sentences chosen by the model.
// Stop words are not used by the model.
func (s *Summarizer) Summarize(ctx context.Context, title, text string, _ newsprint.StopWords, maxSentences int) ([]string, error) {
	if maxSentences <= 0 || strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if s.client == nil {
		return nil, newsprint.Errorf(newsprint.ECONFIG, "gemini client required")
	}

	if s.counter != nil {
		var err error
		text, err = TruncateToTokens(ctx, s.counter, text, s.maxTokens)
		if err != nil {
			return nil, err
		}
	}

	result, err := s.client.Models.GenerateContent(ctx, Model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(title, text, maxSentences)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, newsprint.Errorf(newsprint.EINTERNAL, "gemini returned nil result")
	}

	return ParseSentences(result.Text(), maxSentences), nil
}

// BuildConfig returns the GenerateContentConfig for summary requests.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize news articles by selecting their most informative sentences. Copy sentences verbatim from the article, keep their original order and write one sentence per line with no numbering or commentary.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the prompt holding the article and the sentence limit.
func BuildUserPrompt(title, text string, maxSentences int) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	fmt.Fprintf(&sb, "<text>%s</text>\n", text)
	sb.WriteString("</article>\n\n")
	fmt.Fprintf(&sb, "Select at most %d sentences.", maxSentences)
	return sb.String()
}

var listMarker = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+`)

// ParseSentences splits a model response into at most limit sentences,
// dropping list markers and blank lines.
func ParseSentences(response string, limit int) []string {
	var sentences []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		sentences = append(sentences, line)
		if len(sentences) == limit {
			break
		}
	}
	return sentences
}

// TruncateToTokens shortens text at a paragraph or word boundary until it
// fits within budget tokens. A budget of 0 disables truncation.
func TruncateToTokens(ctx context.Context, counter newsprint.TokenCounter, text string, budget int) (string, error) {
	if budget <= 0 {
		return text, nil
	}
	for {
		n, err := counter.CountTokens(ctx, text)
		if err != nil {
			return "", fmt.Errorf("count tokens: %w", err)
		}
		if n <= budget || text == "" {
			return text, nil
		}

		// Shrink proportionally with a margin, then back off to a boundary.
		keep := len(text) * budget / n * 9 / 10
		if keep >= len(text) {
			keep = len(text) - 1
		}
		cut := text[:keep]
		if i := strings.LastIndex(cut, "\n\n"); i > 0 {
			cut = cut[:i]
		} else if i := strings.LastIndex(cut, " "); i > 0 {
			cut = cut[:i]
		}
		text = strings.TrimSpace(cut)
	}
}
