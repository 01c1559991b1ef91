package newsprint

import "context"

// ArticleWriter persists built articles.
type ArticleWriter interface {
	WriteArticle(ctx context.Context, a *Article) error
}
