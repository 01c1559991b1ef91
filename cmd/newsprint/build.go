package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/fs"
	"github.com/fwojciec/newsprint/pipeline"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	var store *fs.FileStore
	if c.Out != "" {
		store = fs.NewFileStore(filepath.Dir(c.Out), filepath.Base(c.Out), deps.Converter)
	}

	var mu sync.Mutex
	progress := func(completed, total int, r pipeline.Result) {
		mu.Lock()
		defer mu.Unlock()
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", r.URL, newsprint.ErrorMessage(r.Err))
		}
	}

	results, err := deps.Batch.Build(deps.Ctx, c.URLs, progress)
	if err != nil {
		if store != nil {
			_ = store.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error building articles: %v\n", err)
		return err
	}

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		if err := c.emit(deps, store, r.Article); err != nil {
			if store != nil {
				_ = store.Abort()
			}
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsprint.ErrorMessage(err))
			return err
		}
	}

	if store != nil {
		if err := store.Commit(); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %d articles to %s\n", len(results)-failed, c.Out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d articles failed", failed, len(results))
	}
	return nil
}

func (c *BuildCmd) emit(deps *Dependencies, store *fs.FileStore, a *newsprint.Article) error {
	if store != nil {
		return store.WriteArticle(deps.Ctx, a)
	}

	if c.Format == "markdown" {
		body := a.Text
		if a.ArticleHTML != "" {
			var err error
			if body, err = deps.Converter.Convert(a.ArticleHTML); err != nil {
				return err
			}
		}
		out, err := fs.FormatArticle(a, body)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, out)
		return nil
	}

	data, err := a.ExportJSON()
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}

// downloadOptions translates the download flags. --title and --html apply
// to a single article only.
func (c *BuildCmd) downloadOptions() ([]pipeline.DownloadOption, error) {
	if (c.Title != "" || c.HTML != "") && len(c.URLs) > 1 {
		return nil, newsprint.Errorf(newsprint.EINVALID, "--title and --html require a single URL")
	}

	var opts []pipeline.DownloadOption
	if c.HTML != "" {
		data, err := os.ReadFile(c.HTML)
		if err != nil {
			return nil, newsprint.Errorf(newsprint.EINVALID, "cannot read %s: %v", c.HTML, err)
		}
		opts = append(opts, pipeline.WithInputHTML(string(data)))
	}
	if c.Title != "" {
		opts = append(opts, pipeline.WithTitle(c.Title))
	}
	if c.IgnoreReadMore {
		opts = append(opts, pipeline.IgnoreReadMore())
	}
	return opts, nil
}
