package ports

import (
	"context"
	"time"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// ArticleInput carries the writable fields of an article. It is shared by
// create and update: the original contract replaces the full document.
type ArticleInput struct {
	Title       string
	Content     string
	Thumbnail   string
	AuthorID    string
	CategoryIDs []string
	PublishedAt *time.Time
}

// ArticleService defines use-case operations for articles.
type ArticleService interface {
	List(ctx context.Context) ([]*domain.Article, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	Create(ctx context.Context, input ArticleInput) (*domain.Article, error)
	Update(ctx context.Context, id string, input ArticleInput) (*domain.Article, error)
	// Delete returns the removed article so callers can echo it back.
	Delete(ctx context.Context, id string) (*domain.Article, error)
}

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	List(ctx context.Context) ([]*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	Create(ctx context.Context, a *domain.Article) error
	Update(ctx context.Context, a *domain.Article) error
	Delete(ctx context.Context, id string) (*domain.Article, error)
}
