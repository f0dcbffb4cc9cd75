package service

import (
	"errors"
	"testing"

	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/repository"
)

func setupProductServiceTest(t *testing.T) *ProductService {
	t.Helper()
	db := openServiceTestDB(t, &models.Product{})
	return NewProductService(repository.NewProductRepository(db))
}

func createServiceTestProduct(t *testing.T, svc *ProductService) *models.Product {
	t.Helper()
	desc := "Original description"
	product, err := svc.Create(CreateProductInput{
		VendorID:    1,
		CategoryID:  2,
		Name:        "Widget",
		Description: &desc,
		Price:       models.MustMoney("19.99"),
		Stock:       10,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductCreateDefaultsToActiveWithZeroedAggregates(t *testing.T) {
	svc := setupProductServiceTest(t)
	product := createServiceTestProduct(t, svc)

	if !product.IsActive {
		t.Fatalf("new product should default to active")
	}
	if product.ReviewCount != 0 {
		t.Fatalf("review count want 0 got %d", product.ReviewCount)
	}
	if !product.Rating.IsZero() {
		t.Fatalf("rating should start at zero")
	}
}

func TestProductUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc := setupProductServiceTest(t)
	product := createServiceTestProduct(t, svc)

	newPrice := models.MustMoney("24.99")
	newStock := 3
	updated, err := svc.Update(product.ID, UpdateProductInput{
		Price: &newPrice,
		Stock: &newStock,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.Price.Equal(newPrice.Decimal) {
		t.Fatalf("price want 24.99 got %s", updated.Price.String())
	}
	if updated.Stock != 3 {
		t.Fatalf("stock want 3 got %d", updated.Stock)
	}
	if updated.Name != "Widget" {
		t.Fatalf("untouched name changed to %s", updated.Name)
	}
	if updated.Description == nil || *updated.Description != "Original description" {
		t.Fatalf("untouched description changed: %v", updated.Description)
	}

	inactive := false
	updated, err = svc.Update(product.ID, UpdateProductInput{IsActive: &inactive})
	if err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("product should be inactive after update")
	}
}

func TestProductUpdateAndDeleteMissing(t *testing.T) {
	svc := setupProductServiceTest(t)

	if _, err := svc.Update(999, UpdateProductInput{}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("update missing want ErrProductNotFound got %v", err)
	}
	if err := svc.Delete(999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("delete missing want ErrProductNotFound got %v", err)
	}

	product := createServiceTestProduct(t, svc)
	if err := svc.Delete(product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("get after delete want ErrProductNotFound got %v", err)
	}
}
