package service

import (
	"strings"

	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/repository"
)

// ProductService handles catalog operations.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a product service.
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput is the product creation payload. Rating and review
// count are server-owned and start at zero.
type CreateProductInput struct {
	VendorID      uint
	CategoryID    uint
	Name          string
	Description   *string
	Price         models.Money
	OriginalPrice *models.Money
	Stock         int
	ImageURL      *string
	IsActive      *bool
}

// UpdateProductInput is the partial update payload; nil fields are left
// untouched.
type UpdateProductInput struct {
	VendorID      *uint
	CategoryID    *uint
	Name          *string
	Description   *string
	Price         *models.Money
	OriginalPrice *models.Money
	Stock         *int
	ImageURL      *string
	IsActive      *bool
}

// List returns products matching the filter.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, error) {
	return s.productRepo.List(filter)
}

// GetByID fetches a product.
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create inserts a product with zeroed aggregates.
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	product := &models.Product{
		VendorID:      input.VendorID,
		CategoryID:    input.CategoryID,
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Stock:         input.Stock,
		ImageURL:      input.ImageURL,
		IsActive:      active,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update merges the supplied fields into an existing product.
func (s *ProductService) Update(id uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if input.VendorID != nil {
		product.VendorID = *input.VendorID
	}
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = input.OriginalPrice
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product.
func (s *ProductService) Delete(id uint) error {
	found, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrProductNotFound
	}
	return nil
}
