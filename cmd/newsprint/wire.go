package main

import (
	"fmt"
	"log/slog"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/bluemonday"
	"github.com/fwojciec/newsprint/fs"
	"github.com/fwojciec/newsprint/goquery"
	"github.com/fwojciec/newsprint/htmlquery"
	lochttp "github.com/fwojciec/newsprint/http"
	"github.com/fwojciec/newsprint/nlp"
	"github.com/fwojciec/newsprint/pipeline"
	"github.com/fwojciec/newsprint/readability"
	"github.com/fwojciec/newsprint/rod"
	nslog "github.com/fwojciec/newsprint/slog"
	"github.com/fwojciec/newsprint/stopwords"
	"github.com/fwojciec/newsprint/trafilatura"
	"github.com/fwojciec/newsprint/whatlanggo"
)

// minReducedText is the shortest readability result trusted over the full page.
const minReducedText = 80

// NewProcessor returns a Processor wired with the default extraction stack.
// reducer selects the boilerplate reducer: "readability" or "trafilatura".
// A nil logger discards output.
func NewProcessor(fetcher newsprint.Fetcher, reducer string, logger *slog.Logger) *pipeline.Processor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var r newsprint.Reducer = readability.NewReducer(readability.WithMinTextLength(minReducedText))
	if reducer == "trafilatura" {
		r = trafilatura.NewReducer()
	}

	scorer := nlp.NewKeywordScorer()
	return &pipeline.Processor{
		Fetcher:           nslog.NewLoggingFetcher(fetcher, logger),
		Files:             fs.NewFetcher(),
		MetadataExtractor: goquery.NewMetadataExtractor(),
		Reducer:           nslog.NewLoggingReducer(r, logger),
		Cleaner:           goquery.NewCleaner(),
		NodeSelector:      goquery.NewNodeSelector(),
		Videos:            goquery.NewVideoExtractor(),
		Images:            goquery.NewImageExtractor(),
		Formatter:         goquery.NewFormatter(),
		Sanitizer:         bluemonday.NewSanitizer(),
		MetaRefresher:     goquery.NewMetaRefresher(),
		ReadMore:          htmlquery.NewReadMoreFinder(),
		Language:          whatlanggo.NewDetector(),
		StopWords:         stopwords.NewService(),
		Scorer:            scorer,
		Summarizer:        nlp.NewSummarizer(scorer),
		Logger:            logger,
	}
}

// newFetcher returns the network transport: a headless browser when browser
// is set, plain HTTP otherwise.
func newFetcher(cfg *newsprint.Config, browser bool) (newsprint.Fetcher, error) {
	if browser {
		f, err := rod.NewFetcher(
			rod.WithUserAgent(cfg.Transport.UserAgent),
			rod.WithFetchTimeout(cfg.Transport.Timeout),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser: %w (Chrome or Chromium must be installed)", err)
		}
		return f, nil
	}
	f, err := lochttp.NewFetcher(lochttp.WithTransport(cfg.Transport))
	if err != nil {
		return nil, err
	}
	return f, nil
}
