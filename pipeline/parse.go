package pipeline

import (
	"context"
	"slices"

	"github.com/fwojciec/newsprint"
)

// Parse builds the DOM views of a downloaded article and extracts its
// metadata, media and text. Returns EPRECONDITION unless the download
// succeeded. A page that cannot be parsed leaves the content fields empty
// and still marks the article parsed.
func (p *Processor) Parse(ctx context.Context, a *newsprint.Article) error {
	if err := a.RequireDownloaded(); err != nil {
		return err
	}
	defer func() { a.IsParsed = true }()

	a.Overrides = newsprint.Overrides{}
	a.SetDoc(nil)
	_ = a.SetCleanDoc(nil)
	a.SetTopNodeComplemented(nil)

	doc, err := newsprint.ParseTree(a.HTML)
	if err != nil {
		p.logger().Debug("unparseable document", "url", a.URL, "err", err)
		return nil
	}
	clean := doc.Clone()
	a.SetDoc(doc)
	if err := a.SetCleanDoc(clean); err != nil {
		return err
	}

	p.applyMetadata(a, p.MetadataExtractor.ExtractMetadata(a.URL, clean), clean)

	// The metadata view is done with; the working tree becomes the
	// reduced article fragment and earlier refs into it are dropped.
	if reduced := p.reduce(a); reduced != nil {
		a.SetDoc(reduced)
	}

	p.Cleaner.Clean(clean.Root())

	// Select on the clean tree first so the complemented node comes from doc.
	cleanSel := p.NodeSelector.SelectTopNode(clean)
	if err := a.SetCleanTopNode(cleanSel.Top); err != nil {
		return err
	}
	sel := p.NodeSelector.SelectTopNode(a.Doc())
	if err := a.SetTopNode(sel.Top); err != nil {
		return err
	}
	complemented := sel.Complemented
	if complemented == nil && !sel.Top.IsZero() {
		complemented = sel.Top.Detach()
	}
	a.SetTopNodeComplemented(complemented)

	a.Movies = movieURLs(a.URL, p.Videos.Videos(a.Doc(), a.TopNode()))
	p.applyImages(a, p.Images.ExtractImages(a.URL, clean, a.CleanTopNode()))

	if a.TopNode().IsZero() {
		return nil
	}
	p.formatBody(a)
	return nil
}

func (p *Processor) applyMetadata(a *newsprint.Article, meta *newsprint.Metadata, clean *newsprint.Tree) {
	if meta == nil {
		return
	}
	if meta.Title != "" {
		a.Title = a.Config.ClipTitle(meta.Title)
	}
	a.Authors = a.Config.ClipAuthors(meta.Authors)

	lang, declared := meta.Language, true
	if lang == "" && p.Language != nil {
		if guess, reliable := p.Language.DetectLanguage(clean.Text()); reliable {
			lang, declared = guess, false
		}
	}
	if p.supported(lang) {
		if declared {
			a.MetaLang = lang
		}
		if a.Config.UseMetaLanguage {
			a.Overrides.Language = lang
		}
	}

	a.MetaSiteName = meta.SiteName
	a.MetaDescription = meta.Description
	a.CanonicalLink = meta.CanonicalLink
	a.MetaType = meta.Type
	a.MetaKeywords = meta.Keywords
	a.Tags = meta.Tags
	a.MetaData = meta.Data
	if a.MetaData == nil {
		a.MetaData = map[string]string{}
	}
	a.PublishDate = meta.PublishDate
}

func (p *Processor) supported(lang string) bool {
	if lang == "" {
		return false
	}
	if p.StopWords == nil {
		return true
	}
	return slices.Contains(p.StopWords.Languages(), lang)
}

// reduce returns the readability-reduced tree, or nil when reduction fails
// or yields nothing, in which case the full document stays the working tree.
func (p *Processor) reduce(a *newsprint.Article) *newsprint.Tree {
	fragment, err := p.Reducer.Reduce(a.URL, a.HTML)
	if err != nil {
		p.logger().Warn("reduce failed, keeping full document", "url", a.URL, "err", err)
		return nil
	}
	t, err := newsprint.ParseTree(fragment)
	if err != nil {
		p.logger().Debug("reduced document is empty", "url", a.URL)
		return nil
	}
	return t
}

func (p *Processor) applyImages(a *newsprint.Article, imgs *newsprint.Images) {
	if imgs == nil {
		return
	}
	a.MetaImg = imgs.MetaImage
	a.TopImage = imgs.TopImage
	a.Images = imgs.Images
	a.MetaFavicon = imgs.Favicon
}

// formatBody renders the published text from the cleaned complemented node
// and the comparison text from the clean top node.
func (p *Processor) formatBody(a *newsprint.Article) {
	if complemented := a.TopNodeComplemented(); complemented != nil {
		p.Cleaner.Clean(complemented.Node())
		text, articleHTML, err := p.Formatter.Format(complemented.Node(), a.Title)
		if err != nil {
			p.logger().Warn("format failed", "url", a.URL, "err", err)
		} else {
			if p.Sanitizer != nil {
				articleHTML = p.Sanitizer.Sanitize(articleHTML)
			}
			a.Text = a.Config.ClipText(text)
			a.ArticleHTML = articleHTML
		}
	}

	if top := a.CleanTopNode(); !top.IsZero() {
		text, _, err := p.Formatter.Format(top.Node(), a.Title)
		if err != nil {
			p.logger().Warn("format clean text failed", "url", a.URL, "err", err)
			return
		}
		a.TextCleaned = a.Config.ClipText(text)
	}
}

// movieURLs reduces videos to their resolved source URLs, dropping any that
// are empty or cannot be resolved.
func movieURLs(pageURL string, videos []newsprint.Video) []string {
	var out []string
	for _, v := range videos {
		if v.Src == "" {
			continue
		}
		u, err := newsprint.PrepareURL(v.Src, pageURL)
		if err != nil || u == "" {
			continue
		}
		out = append(out, u)
	}
	return out
}
