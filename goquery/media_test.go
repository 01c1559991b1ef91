package goquery_test

import (
	"testing"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoExtractor_Videos(t *testing.T) {
	t.Parallel()

	const page = `<html><body><article id="a">
<iframe src="https://www.youtube.com/embed/abc" width="560" height="315"></iframe>
<iframe src="https://ads.example.com/frame"></iframe>
<video><source src="https://cdn.example.com/v.mp4"></video>
<video src=""></video>
<iframe src="https://www.youtube.com/embed/abc"></iframe>
</article>
<iframe src="https://player.vimeo.com/video/1"></iframe>
</body></html>`

	t.Run("scopes to top node", func(t *testing.T) {
		t.Parallel()

		tree := parseTree(t, page)
		top := tree.Ref(findByID(tree.Root(), "a"))

		videos := goquery.NewVideoExtractor().Videos(tree, top)

		assert.Equal(t, []newsprint.Video{
			{Src: "https://www.youtube.com/embed/abc", Provider: "youtube", Width: 560, Height: 315},
			{Src: "https://cdn.example.com/v.mp4", Provider: "file"},
		}, videos)
	})

	t.Run("scans the whole tree without top node", func(t *testing.T) {
		t.Parallel()

		tree := parseTree(t, page)

		videos := goquery.NewVideoExtractor().Videos(tree, newsprint.NodeRef{})

		require.Len(t, videos, 3)
		assert.Equal(t, "vimeo", videos[2].Provider)
	})
}

func TestImageExtractor_ExtractImages(t *testing.T) {
	t.Parallel()

	t.Run("prefers meta image", func(t *testing.T) {
		t.Parallel()

		tree := parseTree(t, `<html><head>
<meta property="og:image" content="/img/lead.jpg">
<link rel="shortcut icon" href="/favicon.ico">
</head><body>
<img src="/img/logo.png" width="50">
<article id="a"><img src="/img/body.jpg" width="600"><img src="data:image/png;base64,xx"></article>
<img src="/img/logo.png">
</body></html>`)
		top := tree.Ref(findByID(tree.Root(), "a"))

		images := goquery.NewImageExtractor().ExtractImages("https://example.com/news/a", tree, top)

		assert.Equal(t, "https://example.com/img/lead.jpg", images.MetaImage)
		assert.Equal(t, "https://example.com/img/lead.jpg", images.TopImage)
		assert.Equal(t, "https://example.com/favicon.ico", images.Favicon)
		assert.Equal(t, []string{"https://example.com/img/logo.png", "https://example.com/img/body.jpg"}, images.Images)
	})

	t.Run("falls back to first sizeable image", func(t *testing.T) {
		t.Parallel()

		tree := parseTree(t, `<html><body>
<img src="/img/logo.png" width="50">
<article><img src="/img/body.jpg" width="600"></article>
</body></html>`)

		images := goquery.NewImageExtractor().ExtractImages("https://example.com/news/a", tree, newsprint.NodeRef{})

		assert.Empty(t, images.MetaImage)
		assert.Equal(t, "https://example.com/img/body.jpg", images.TopImage)
	})
}
