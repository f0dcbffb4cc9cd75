package service

import (
	"context"
	"errors"
	"testing"

	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/repository"
)

func setupCategoryServiceTest(t *testing.T) *CategoryService {
	t.Helper()
	db := openServiceTestDB(t, &models.Category{})
	return NewCategoryService(repository.NewCategoryRepository(db))
}

func TestCategoryCreateNormalizesSlugAndRejectsDuplicates(t *testing.T) {
	svc := setupCategoryServiceTest(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, " Electronics ", "laptop", "  Electronics  ")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Slug != "electronics" {
		t.Fatalf("slug want electronics got %q", created.Slug)
	}
	if created.Name != "Electronics" {
		t.Fatalf("name want Electronics got %q", created.Name)
	}

	if _, err := svc.Create(ctx, "Gadgets", "cpu", "ELECTRONICS"); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("duplicate slug want ErrSlugTaken got %v", err)
	}
}

func TestCategoryListAndGet(t *testing.T) {
	svc := setupCategoryServiceTest(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "Books", "book", "books")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ctx, "Sports", "gamepad", "sports"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	categories, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("category count want 2 got %d", len(categories))
	}

	got, err := svc.GetByID(first.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Books" {
		t.Fatalf("get name want Books got %q", got.Name)
	}

	if _, err := svc.GetByID(first.ID + 999); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("missing category want ErrCategoryNotFound got %v", err)
	}
}
