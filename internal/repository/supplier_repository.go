package repository

import (
	"errors"

	"github.com/markethub-api/internal/models"

	"gorm.io/gorm"
)

// SupplierRepository is the supplier data access interface.
type SupplierRepository interface {
	ListByVendor(vendorID uint) ([]models.Supplier, error)
	GetByID(id uint) (*models.Supplier, error)
	Create(supplier *models.Supplier) error
	Update(supplier *models.Supplier) error
	Delete(id uint) (bool, error)
	WithTx(tx *gorm.DB) SupplierRepository
}

// GormSupplierRepository is the GORM implementation.
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a supplier repository.
func NewSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormSupplierRepository) WithTx(tx *gorm.DB) SupplierRepository {
	if tx == nil {
		return r
	}
	return &GormSupplierRepository{db: tx}
}

// ListByVendor returns a vendor's suppliers.
func (r *GormSupplierRepository) ListByVendor(vendorID uint) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.Where("vendor_id = ?", vendorID).Order("id ASC").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// GetByID fetches a supplier by id.
func (r *GormSupplierRepository) GetByID(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &supplier, nil
}

// Create inserts a supplier.
func (r *GormSupplierRepository) Create(supplier *models.Supplier) error {
	return r.db.Create(supplier).Error
}

// Update saves the full supplier record.
func (r *GormSupplierRepository) Update(supplier *models.Supplier) error {
	return r.db.Save(supplier).Error
}

// Delete removes a supplier, reporting whether a row existed.
func (r *GormSupplierRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Supplier{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
