package repository

import (
	"fmt"
	"testing"

	"github.com/markethub-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) *GormProductRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db)
}

func createTestProduct(t *testing.T, repo *GormProductRepository, name string, vendorID, categoryID uint, active bool, rating string) *models.Product {
	t.Helper()
	product := &models.Product{
		VendorID:   vendorID,
		CategoryID: categoryID,
		Name:       name,
		Price:      models.MustMoney("19.99"),
		Stock:      10,
		IsActive:   active,
		Rating:     models.MustRating(rating),
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductCreatePersistsInactiveFlag(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	created := createTestProduct(t, repo, "Draft Listing", 1, 1, false, "0.00")

	stored, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored == nil {
		t.Fatalf("product not found after create")
	}
	if stored.IsActive {
		t.Fatalf("product created with isActive=false was stored active")
	}
}

func TestProductListDefaultReturnsOnlyActive(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "Visible", 1, 1, true, "4.0")
	createTestProduct(t, repo, "Hidden", 1, 1, false, "4.0")

	products, err := repo.List(ProductListFilter{OnlyActive: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("product count want 1 got %d", len(products))
	}
	if products[0].Name != "Visible" {
		t.Fatalf("product name want Visible got %s", products[0].Name)
	}
}

func TestProductListFeaturedOrdersByRatingAndCaps(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	for i := 0; i < 10; i++ {
		rating := fmt.Sprintf("4.%d", i%10)
		createTestProduct(t, repo, fmt.Sprintf("Product %d", i), 1, 1, true, rating)
	}
	createTestProduct(t, repo, "Inactive Top", 1, 1, false, "5.0")

	products, err := repo.List(ProductListFilter{Featured: true})
	if err != nil {
		t.Fatalf("list featured failed: %v", err)
	}
	if len(products) != 8 {
		t.Fatalf("featured count want 8 got %d", len(products))
	}
	for i := 1; i < len(products); i++ {
		if products[i].Rating.GreaterThan(products[i-1].Rating.Decimal) {
			t.Fatalf("featured list not sorted by rating desc at index %d", i)
		}
	}
	for _, p := range products {
		if p.Name == "Inactive Top" {
			t.Fatalf("inactive product must not appear in featured list")
		}
	}
}

func TestProductListSearchIsCaseInsensitiveAndScansDescription(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	withDesc := createTestProduct(t, repo, "Coffee Table", 1, 3, true, "4.3")
	desc := "Stylish WOODEN centerpiece"
	withDesc.Description = &desc
	if err := repo.Update(withDesc); err != nil {
		t.Fatalf("update description failed: %v", err)
	}
	createTestProduct(t, repo, "Wooden Chair", 1, 3, true, "4.1")
	createTestProduct(t, repo, "Steel Lamp", 1, 3, true, "4.2")
	createTestProduct(t, repo, "Wooden Stool", 1, 3, false, "4.4")

	products, err := repo.List(ProductListFilter{Search: "wooden"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("search match count want 2 got %d", len(products))
	}
	for _, p := range products {
		if p.Name == "Wooden Stool" {
			t.Fatalf("search returned inactive product %q", p.Name)
		}
	}
}

func TestProductListByCategoryExcludesInactive(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "Active In Cat", 1, 7, true, "4.0")
	createTestProduct(t, repo, "Inactive In Cat", 1, 7, false, "4.0")
	createTestProduct(t, repo, "Other Cat", 1, 8, true, "4.0")

	products, err := repo.List(ProductListFilter{CategoryID: 7, OnlyActive: true})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("category match count want 1 got %d", len(products))
	}
	if products[0].Name != "Active In Cat" {
		t.Fatalf("category match want Active In Cat got %s", products[0].Name)
	}
}

func TestProductListByVendorIncludesInactive(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "Live", 9, 1, true, "4.0")
	createTestProduct(t, repo, "Draft", 9, 1, false, "4.0")
	createTestProduct(t, repo, "Someone Else", 10, 1, true, "4.0")

	products, err := repo.List(ProductListFilter{VendorID: 9})
	if err != nil {
		t.Fatalf("list by vendor failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("vendor listing count want 2 got %d", len(products))
	}
}

func TestProductDeleteReportsMissingRow(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "Doomed", 1, 1, true, "4.0")

	found, err := repo.Delete(product.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !found {
		t.Fatalf("delete of existing row should report found")
	}

	found, err = repo.Delete(product.ID)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if found {
		t.Fatalf("second delete should report not found")
	}
}
