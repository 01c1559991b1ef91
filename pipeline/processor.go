// Package pipeline drives articles through their lifecycle: download,
// parse, keyword and summary extraction, and batch builds of many URLs.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/fwojciec/newsprint"
)

// Processor runs the article lifecycle against a set of collaborators.
// Fetcher, MetadataExtractor, Reducer, Cleaner, NodeSelector, Videos,
// Images, Formatter, StopWords, Scorer and Summarizer are required for the
// stages that use them. The remaining fields are optional.
type Processor struct {
	// Fetcher retrieves network URLs. Files, when set, serves file:// URLs.
	Fetcher newsprint.Fetcher
	Files   newsprint.Fetcher

	MetadataExtractor newsprint.MetadataExtractor
	Reducer           newsprint.Reducer
	Cleaner           newsprint.Cleaner
	NodeSelector      newsprint.NodeSelector
	Videos            newsprint.VideoExtractor
	Images            newsprint.ImageExtractor
	Formatter         newsprint.Formatter
	Sanitizer         newsprint.Sanitizer
	MetaRefresher     newsprint.MetaRefresher
	ReadMore          newsprint.ReadMoreFinder

	// Language guesses the language of pages that do not declare one.
	Language newsprint.LanguageDetector

	StopWords  newsprint.StopWordsService
	Scorer     newsprint.KeywordScorer
	Summarizer newsprint.Summarizer

	Logger *slog.Logger
}

// Build downloads, parses and analyzes a in succession. A failed download
// surfaces as the EPRECONDITION error returned by Parse.
func (p *Processor) Build(ctx context.Context, a *newsprint.Article, opts ...DownloadOption) error {
	if err := p.Download(ctx, a, opts...); err != nil {
		return err
	}
	if err := p.Parse(ctx, a); err != nil {
		return err
	}
	return p.NLP(ctx, a)
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
