package service

import (
	"context"
	"strings"
	"time"

	"github.com/markethub-api/internal/cache"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/repository"
)

const categoryListCacheKey = "categories:list"
const categoryListCacheTTL = 5 * time.Minute

// CategoryService handles category operations. The full list is small and
// read on nearly every storefront page, so it is cached when Redis is up.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a category service.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if hit, err := cache.GetJSON(ctx, categoryListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, categoryListCacheKey, categories, categoryListCacheTTL); err != nil {
		logger.Warnw("category_list_cache_set_failed", "error", err)
	}
	return categories, nil
}

// GetByID fetches a category.
func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create inserts a category after checking slug uniqueness.
func (s *CategoryService) Create(ctx context.Context, name, icon, slug string) (*models.Category, error) {
	normalized := strings.TrimSpace(strings.ToLower(slug))
	existing, err := s.categoryRepo.GetBySlug(normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}
	category := &models.Category{
		Name: strings.TrimSpace(name),
		Icon: strings.TrimSpace(icon),
		Slug: normalized,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	if err := cache.Del(ctx, categoryListCacheKey); err != nil {
		logger.Warnw("category_list_cache_del_failed", "error", err)
	}
	return category, nil
}
