package repository

import (
	"errors"

	"github.com/markethub-api/internal/constants"
	"github.com/markethub-api/internal/models"

	"gorm.io/gorm"
)

// VendorRepository is the vendor data access interface.
type VendorRepository interface {
	List(filter VendorListFilter) ([]models.Vendor, error)
	GetByID(id uint) (*models.Vendor, error)
	GetByUserID(userID uint) (*models.Vendor, error)
	Create(vendor *models.Vendor) error
	Update(vendor *models.Vendor) error
	WithTx(tx *gorm.DB) VendorRepository
}

// GormVendorRepository is the GORM implementation.
type GormVendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a vendor repository.
func NewVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormVendorRepository) WithTx(tx *gorm.DB) VendorRepository {
	if tx == nil {
		return r
	}
	return &GormVendorRepository{db: tx}
}

// List returns vendors. Featured narrows to approved vendors ranked by
// rating, capped at the homepage limit.
func (r *GormVendorRepository) List(filter VendorListFilter) ([]models.Vendor, error) {
	var vendors []models.Vendor
	query := r.db.Model(&models.Vendor{})
	if filter.Featured {
		query = query.Where("is_approved = ?", true).
			Order("rating DESC").
			Limit(constants.FeaturedVendorLimit)
	}
	if err := query.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// GetByID fetches a vendor by id.
func (r *GormVendorRepository) GetByID(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

// GetByUserID fetches the vendor owned by a user.
func (r *GormVendorRepository) GetByUserID(userID uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.Where("user_id = ?", userID).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

// Create inserts a vendor.
func (r *GormVendorRepository) Create(vendor *models.Vendor) error {
	return r.db.Create(vendor).Error
}

// Update saves the full vendor record.
func (r *GormVendorRepository) Update(vendor *models.Vendor) error {
	return r.db.Save(vendor).Error
}
