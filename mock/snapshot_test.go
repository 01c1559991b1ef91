package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleWriter_WriteArticle(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteArticleFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *newsprint.Article
		w := &mock.ArticleWriter{
			WriteArticleFn: func(_ context.Context, a *newsprint.Article) error {
				calledWith = a
				return nil
			},
		}
		a, err := newsprint.NewArticle("https://example.com/a")
		require.NoError(t, err)

		err = w.WriteArticle(context.Background(), a)

		require.NoError(t, err)
		assert.Same(t, a, calledWith)
	})
}
