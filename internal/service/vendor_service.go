package service

import (
	"strings"

	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/repository"
)

// VendorService handles vendor storefront operations.
type VendorService struct {
	vendorRepo repository.VendorRepository
}

// NewVendorService creates a vendor service.
func NewVendorService(vendorRepo repository.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// CreateVendorInput is the vendor creation payload. Rating, totalSales and
// approval are server-owned and not accepted here.
type CreateVendorInput struct {
	UserID           uint
	StoreName        string
	StoreDescription *string
}

// List returns vendors, optionally narrowed to the featured set.
func (s *VendorService) List(featured bool) ([]models.Vendor, error) {
	return s.vendorRepo.List(repository.VendorListFilter{Featured: featured})
}

// GetByID fetches a vendor.
func (s *VendorService) GetByID(id uint) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	return vendor, nil
}

// GetByUserID fetches the vendor owned by a user.
func (s *VendorService) GetByUserID(userID uint) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	return vendor, nil
}

// Create registers a new vendor storefront with zeroed aggregates.
func (s *VendorService) Create(input CreateVendorInput) (*models.Vendor, error) {
	vendor := &models.Vendor{
		UserID:           input.UserID,
		StoreName:        strings.TrimSpace(input.StoreName),
		StoreDescription: input.StoreDescription,
	}
	if err := s.vendorRepo.Create(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}
