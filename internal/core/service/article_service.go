package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/api/metrics"
	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

const (
	articleListKey   = "articles:all"
	articleKeyPrefix = "articles:"
)

// ArticleService implements article CRUD with a read-through cache in front
// of the repository. Cache failures are logged and degraded, never surfaced.
type ArticleService struct {
	repo   ports.ArticleRepository
	cache  Cache
	logger zerolog.Logger
}

func NewArticleService(repo ports.ArticleRepository, cache Cache, logger zerolog.Logger) *ArticleService {
	return &ArticleService{repo: repo, cache: cache, logger: logger}
}

func (s *ArticleService) List(ctx context.Context) ([]*domain.Article, error) {
	var cached []*domain.Article
	if found, err := s.cache.Get(ctx, articleListKey, &cached); err != nil {
		s.logger.Warn().Err(err).Msg("article list cache read failed")
	} else if found {
		metrics.CacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.CacheTotal.WithLabelValues("miss").Inc()

	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, articleListKey, articles, cacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("article list cache write failed")
	}
	return articles, nil
}

func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	var cached domain.Article
	if found, err := s.cache.Get(ctx, articleKeyPrefix+id, &cached); err != nil {
		s.logger.Warn().Err(err).Str("article_id", id).Msg("article cache read failed")
	} else if found {
		metrics.CacheTotal.WithLabelValues("hit").Inc()
		return &cached, nil
	}
	metrics.CacheTotal.WithLabelValues("miss").Inc()

	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, articleKeyPrefix+id, article, cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("article_id", id).Msg("article cache write failed")
	}
	return article, nil
}

func (s *ArticleService) Create(ctx context.Context, input ports.ArticleInput) (*domain.Article, error) {
	now := time.Now().UTC()
	article := &domain.Article{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Content:     input.Content,
		Thumbnail:   input.Thumbnail,
		AuthorID:    input.AuthorID,
		CategoryIDs: input.CategoryIDs,
		PublishedAt: input.PublishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, article); err != nil {
		s.logger.Error().Err(err).Msg("failed to create article")
		return nil, err
	}

	s.invalidate(ctx, articleListKey)
	metrics.ResourceOpsTotal.WithLabelValues("article", "create").Inc()
	s.logger.Info().Str("article_id", article.ID).Str("title", article.Title).Msg("article created")
	return article, nil
}

func (s *ArticleService) Update(ctx context.Context, id string, input ports.ArticleInput) (*domain.Article, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Content = input.Content
	existing.Thumbnail = input.Thumbnail
	existing.AuthorID = input.AuthorID
	existing.CategoryIDs = input.CategoryIDs
	existing.PublishedAt = input.PublishedAt
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Str("article_id", id).Msg("failed to update article")
		return nil, err
	}

	s.invalidate(ctx, articleListKey, articleKeyPrefix+id)
	metrics.ResourceOpsTotal.WithLabelValues("article", "update").Inc()
	return existing, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) (*domain.Article, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, articleListKey, articleKeyPrefix+id)
	metrics.ResourceOpsTotal.WithLabelValues("article", "delete").Inc()
	s.logger.Info().Str("article_id", id).Msg("article deleted")
	return deleted, nil
}

func (s *ArticleService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn().Err(err).Strs("keys", keys).Msg("article cache invalidation failed")
	}
}
