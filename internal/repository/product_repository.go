package repository

import (
	"errors"
	"strings"

	"github.com/markethub-api/internal/constants"
	"github.com/markethub-api/internal/models"

	"gorm.io/gorm"
)

// ProductRepository is the product data access interface.
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) (bool, error)
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// List returns products matching the filter. Filter dimensions apply in
// priority order; search and category imply active-only, the vendor filter
// does not.
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Model(&models.Product{})

	switch {
	case filter.Featured:
		query = query.Where("is_active = ?", true).
			Order("rating DESC").
			Limit(constants.FeaturedProductLimit)
	case strings.TrimSpace(filter.Search) != "":
		like := "%" + strings.ToLower(strings.TrimSpace(filter.Search)) + "%"
		query = query.Where("is_active = ?", true).
			Where(
				"LOWER(name) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?",
				like, like,
			)
	case filter.CategoryID != 0:
		query = query.Where("category_id = ? AND is_active = ?", filter.CategoryID, true)
	case filter.VendorID != 0:
		query = query.Where("vendor_id = ?", filter.VendorID)
	default:
		if filter.OnlyActive {
			query = query.Where("is_active = ?", true)
		}
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID fetches a product by id.
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create inserts a product.
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update saves the full product record.
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete removes a product, reporting whether a row existed.
func (r *GormProductRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
