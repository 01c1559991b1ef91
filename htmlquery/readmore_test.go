package htmlquery_test

import (
	"testing"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/htmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const previewHTML = `<html><body>
<div class="teaser"><p>Preview text.</p><a class="more">Read more</a></div>
<a class="continue" href="/full/story">Continue reading</a>
<a class="more" href="/full/other">More</a>
</body></html>`

func TestReadMoreFinder_ReadMoreLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns hrefs in document order", func(t *testing.T) {
		t.Parallel()

		links, err := htmlquery.NewReadMoreFinder().ReadMoreLinks(previewHTML, `//a[@class="more"]`)

		require.NoError(t, err)
		assert.Equal(t, []string{"", "/full/other"}, links)
	})

	t.Run("orders nested matches by position", func(t *testing.T) {
		t.Parallel()

		const page = `<html><body>
<div class="teaser"><section><a class="more" href="/first">Read more</a></section></div>
<a class="more" href="/second">More</a>
<p><a class="more" href="/third">Even more</a></p>
</body></html>`

		links, err := htmlquery.NewReadMoreFinder().ReadMoreLinks(page, `//a[@class="more"]`)

		require.NoError(t, err)
		assert.Equal(t, []string{"/first", "/second", "/third"}, links)
	})

	t.Run("evaluates unions", func(t *testing.T) {
		t.Parallel()

		links, err := htmlquery.NewReadMoreFinder().ReadMoreLinks(previewHTML, `//a[@class="continue"] | //a[@id="missing"]`)

		require.NoError(t, err)
		assert.Equal(t, []string{"/full/story"}, links)
	})

	t.Run("returns nothing without matches", func(t *testing.T) {
		t.Parallel()

		links, err := htmlquery.NewReadMoreFinder().ReadMoreLinks(previewHTML, `//a[@class="absent"]`)

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("ignores empty expression", func(t *testing.T) {
		t.Parallel()

		links, err := htmlquery.NewReadMoreFinder().ReadMoreLinks(previewHTML, "")

		require.NoError(t, err)
		assert.Nil(t, links)
	})

	t.Run("rejects invalid expression", func(t *testing.T) {
		t.Parallel()

		_, err := htmlquery.NewReadMoreFinder().ReadMoreLinks(previewHTML, `//a[`)

		require.Error(t, err)
		assert.Equal(t, newsprint.EINVALID, newsprint.ErrorCode(err))
	})
}
