package service

import (
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/repository"

	"gorm.io/gorm"
)

// CartService handles shopping cart operations.
type CartService struct {
	cartRepo repository.CartRepository
}

// NewCartService creates a cart service.
func NewCartService(cartRepo repository.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// ListByUser returns a user's cart.
func (s *CartService) ListByUser(userID uint) ([]models.CartItem, error) {
	return s.cartRepo.ListByUser(userID)
}

// Add puts a product in a user's cart. If the (user, product) pair already
// has a row its quantity is incremented instead of inserting a duplicate.
// The read-modify-write runs in one transaction; a unique index on the pair
// backstops concurrent adds.
func (s *CartService) Add(userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var item *models.CartItem
	err := s.cartRepo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.cartRepo.WithTx(tx)
		existing, err := txRepo.GetByUserAndProduct(userID, productID)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.Quantity += quantity
			if err := txRepo.UpdateQuantity(existing.ID, existing.Quantity); err != nil {
				return err
			}
			item = existing
			return nil
		}
		item = &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		return txRepo.Create(item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity replaces a cart item's quantity.
func (s *CartService) UpdateQuantity(id uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.cartRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	if err := s.cartRepo.UpdateQuantity(id, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return item, nil
}

// Remove deletes a cart item.
func (s *CartService) Remove(id uint) error {
	found, err := s.cartRepo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrCartItemNotFound
	}
	return nil
}
