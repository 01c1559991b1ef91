package newsprint_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/newsprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_ExportJSON(t *testing.T) {
	t.Parallel()

	t.Run("keeps field order and falls back to config", func(t *testing.T) {
		t.Parallel()

		cfg := newsprint.DefaultConfig()
		cfg.ArticleJSONFields = []string{"url", "title", "language", "max_title", "publish_date", "unknown"}
		a, err := newsprint.NewArticle("https://example.com/a", newsprint.WithConfig(cfg), newsprint.WithTitle("A title"))
		require.NoError(t, err)
		a.IsParsed = true
		a.Overrides.Language = "de"

		out, err := a.ExportJSON()
		require.NoError(t, err)

		s := string(out)
		assert.Less(t, strings.Index(s, `"url"`), strings.Index(s, `"title"`))
		assert.Less(t, strings.Index(s, `"title"`), strings.Index(s, `"language"`))

		var got map[string]any
		require.NoError(t, json.Unmarshal(out, &got))
		assert.Equal(t, "https://example.com/a", got["url"])
		assert.Equal(t, "A title", got["title"])
		assert.Equal(t, "de", got["language"])
		assert.InDelta(t, 200.0, got["max_title"], 0)
		assert.Nil(t, got["publish_date"])
		assert.Contains(t, got, "unknown")
		assert.Nil(t, got["unknown"])
	})

	t.Run("renders dates as RFC 3339", func(t *testing.T) {
		t.Parallel()

		cfg := newsprint.DefaultConfig()
		cfg.ArticleJSONFields = []string{"publish_date"}
		a, err := newsprint.NewArticle("https://example.com/a", newsprint.WithConfig(cfg))
		require.NoError(t, err)
		a.IsParsed = true
		a.PublishDate = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

		got, err := a.Export()
		require.NoError(t, err)

		assert.Equal(t, "2024-01-02T03:04:05Z", got["publish_date"])
	})

	t.Run("requires parse", func(t *testing.T) {
		t.Parallel()

		a, err := newsprint.NewArticle("https://example.com/a")
		require.NoError(t, err)

		_, err = a.ExportJSON()

		assert.Equal(t, newsprint.EPRECONDITION, newsprint.ErrorCode(err))
	})
}
