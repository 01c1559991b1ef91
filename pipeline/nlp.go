package pipeline

import (
	"context"

	"github.com/fwojciec/newsprint"
)

// NLP scores keywords on the body and the title, merges them, and
// summarizes the body. Returns EPRECONDITION unless the article was
// downloaded and parsed.
func (p *Processor) NLP(ctx context.Context, a *newsprint.Article) error {
	if err := a.RequireDownloaded(); err != nil {
		return err
	}
	if err := a.RequireParsed(); err != nil {
		return err
	}

	lang := a.Language()
	stopWords, err := p.StopWords.StopWords(lang)
	if newsprint.ErrorCode(err) == newsprint.ENOTFOUND {
		p.logger().Debug("no stop words for language", "url", a.URL, "language", lang)
		stopWords = newsprint.StopWords{}
	} else if err != nil {
		return err
	}

	limit := a.Config.MaxKeywords
	merged := newsprint.MergeKeywords(
		p.Scorer.Keywords(a.Text, stopWords, limit),
		p.Scorer.Keywords(a.Title, stopWords, limit),
		limit,
	)
	a.Keywords = a.Config.ClipKeywords(newsprint.KeywordWords(merged))
	a.KeywordScores = newsprint.KeywordScoreMap(merged)

	sentences, err := p.Summarizer.Summarize(ctx, a.Title, a.Text, stopWords, a.Config.MaxSummarySent)
	if err != nil {
		return err
	}
	a.Summary = a.Config.ClipSummary(newsprint.JoinSummary(sentences))
	return nil
}
