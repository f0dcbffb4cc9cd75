package service

import (
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/repository"

	"gorm.io/gorm"
)

// FavoriteService handles product bookmarks.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
}

// NewFavoriteService creates a favorite service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo}
}

// ListByUser returns a user's favorites.
func (s *FavoriteService) ListByUser(userID uint) ([]models.Favorite, error) {
	return s.favoriteRepo.ListByUser(userID)
}

// Add bookmarks a product. Adding an already-bookmarked product returns the
// existing row unchanged. The check-then-insert runs in one transaction; a
// unique index on the pair backstops concurrent adds.
func (s *FavoriteService) Add(userID, productID uint) (*models.Favorite, error) {
	var favorite *models.Favorite
	err := s.favoriteRepo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.favoriteRepo.WithTx(tx)
		existing, err := txRepo.GetByUserAndProduct(userID, productID)
		if err != nil {
			return err
		}
		if existing != nil {
			favorite = existing
			return nil
		}
		favorite = &models.Favorite{
			UserID:    userID,
			ProductID: productID,
		}
		return txRepo.Create(favorite)
	})
	if err != nil {
		return nil, err
	}
	return favorite, nil
}

// Remove deletes the bookmark for a (user, product) pair.
func (s *FavoriteService) Remove(userID, productID uint) error {
	found, err := s.favoriteRepo.DeleteByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if !found {
		return ErrFavoriteNotFound
	}
	return nil
}

// IsFavorite reports whether a (user, product) bookmark exists.
func (s *FavoriteService) IsFavorite(userID, productID uint) (bool, error) {
	existing, err := s.favoriteRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}
