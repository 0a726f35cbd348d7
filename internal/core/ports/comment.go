package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// CommentInput carries the writable fields of a comment.
type CommentInput struct {
	UserID    string
	ArticleID string
	Content   string
}

// CommentService defines use-case operations for comments.
type CommentService interface {
	List(ctx context.Context) ([]*domain.Comment, error)
	Get(ctx context.Context, id string) (*domain.Comment, error)
	Create(ctx context.Context, input CommentInput) (*domain.Comment, error)
	Update(ctx context.Context, id string, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) (*domain.Comment, error)
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	List(ctx context.Context) ([]*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) error
	Update(ctx context.Context, c *domain.Comment) error
	Delete(ctx context.Context, id string) (*domain.Comment, error)
}
