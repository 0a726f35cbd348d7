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

const categoryListKey = "categories:all"

// CategoryService implements category CRUD. The list is cached; single
// lookups go straight to the store (they are rare outside admin screens).
type CategoryService struct {
	repo   ports.CategoryRepository
	cache  Cache
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, cache Cache, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, cache: cache, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	var cached []*domain.Category
	if found, err := s.cache.Get(ctx, categoryListKey, &cached); err != nil {
		s.logger.Warn().Err(err).Msg("category list cache read failed")
	} else if found {
		metrics.CacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.CacheTotal.WithLabelValues("miss").Inc()

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, categoryListKey, categories, cacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("category list cache write failed")
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	now := time.Now().UTC()
	category := &domain.Category{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create category")
		return nil, err
	}

	s.invalidate(ctx)
	metrics.ResourceOpsTotal.WithLabelValues("category", "create").Inc()
	s.logger.Info().Str("category_id", category.ID).Str("name", name).Msg("category created")
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id, name string) (*domain.Category, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = name
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Str("category_id", id).Msg("failed to update category")
		return nil, err
	}

	s.invalidate(ctx)
	metrics.ResourceOpsTotal.WithLabelValues("category", "update").Inc()
	return existing, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) (*domain.Category, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	metrics.ResourceOpsTotal.WithLabelValues("category", "delete").Inc()
	s.logger.Info().Str("category_id", id).Msg("category deleted")
	return deleted, nil
}

func (s *CategoryService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, categoryListKey); err != nil {
		s.logger.Warn().Err(err).Msg("category cache invalidation failed")
	}
}
