package service

import (
	"strings"

	"github.com/markethub-api/internal/constants"
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/repository"
)

// SupplierService handles vendor supplier records.
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a supplier service.
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// CreateSupplierInput is the supplier creation payload.
type CreateSupplierInput struct {
	VendorID uint
	Name     string
	Contact  string
	Email    string
	Phone    *string
	Address  *string
	Products *string
	Status   string
}

// UpdateSupplierInput is the partial update payload; nil fields are left
// untouched.
type UpdateSupplierInput struct {
	Name     *string
	Contact  *string
	Email    *string
	Phone    *string
	Address  *string
	Products *string
	Status   *string
}

// ListByVendor returns a vendor's suppliers.
func (s *SupplierService) ListByVendor(vendorID uint) ([]models.Supplier, error) {
	return s.supplierRepo.ListByVendor(vendorID)
}

// Create inserts a supplier.
func (s *SupplierService) Create(input CreateSupplierInput) (*models.Supplier, error) {
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = constants.SupplierStatusActive
	}
	if !constants.IsValidSupplierStatus(status) {
		return nil, ErrInvalidSupplierStatus
	}

	supplier := &models.Supplier{
		VendorID: input.VendorID,
		Name:     strings.TrimSpace(input.Name),
		Contact:  strings.TrimSpace(input.Contact),
		Email:    strings.TrimSpace(input.Email),
		Phone:    input.Phone,
		Address:  input.Address,
		Products: input.Products,
		Status:   status,
	}
	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Update merges the supplied fields into an existing supplier.
func (s *SupplierService) Update(id uint, input UpdateSupplierInput) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}

	if input.Status != nil {
		status := strings.TrimSpace(*input.Status)
		if !constants.IsValidSupplierStatus(status) {
			return nil, ErrInvalidSupplierStatus
		}
		supplier.Status = status
	}
	if input.Name != nil {
		supplier.Name = strings.TrimSpace(*input.Name)
	}
	if input.Contact != nil {
		supplier.Contact = strings.TrimSpace(*input.Contact)
	}
	if input.Email != nil {
		supplier.Email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		supplier.Phone = input.Phone
	}
	if input.Address != nil {
		supplier.Address = input.Address
	}
	if input.Products != nil {
		supplier.Products = input.Products
	}

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete removes a supplier.
func (s *SupplierService) Delete(id uint) error {
	found, err := s.supplierRepo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrSupplierNotFound
	}
	return nil
}
