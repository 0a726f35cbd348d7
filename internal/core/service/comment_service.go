package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/api/metrics"
	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

// CommentService implements comment CRUD. Comments are not cached: they
// change often and lists are small.
type CommentService struct {
	repo     ports.CommentRepository
	articles ports.ArticleRepository
	logger   zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, articles ports.ArticleRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, articles: articles, logger: logger}
}

func (s *CommentService) List(ctx context.Context) ([]*domain.Comment, error) {
	return s.repo.List(ctx)
}

func (s *CommentService) Get(ctx context.Context, id string) (*domain.Comment, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores a comment after checking the target article exists, so
// comments cannot dangle from day one.
func (s *CommentService) Create(ctx context.Context, input ports.CommentInput) (*domain.Comment, error) {
	if _, err := s.articles.FindByID(ctx, input.ArticleID); err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		ArticleID: input.ArticleID,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		s.logger.Error().Err(err).Str("article_id", input.ArticleID).Msg("failed to create comment")
		return nil, err
	}

	metrics.ResourceOpsTotal.WithLabelValues("comment", "create").Inc()
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, id string, content string) (*domain.Comment, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Content = content
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Str("comment_id", id).Msg("failed to update comment")
		return nil, err
	}

	metrics.ResourceOpsTotal.WithLabelValues("comment", "update").Inc()
	return existing, nil
}

func (s *CommentService) Delete(ctx context.Context, id string) (*domain.Comment, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.ResourceOpsTotal.WithLabelValues("comment", "delete").Inc()
	return deleted, nil
}
