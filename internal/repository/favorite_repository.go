package repository

import (
	"errors"

	"github.com/markethub-api/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository is the favorite data access interface.
type FavoriteRepository interface {
	ListByUser(userID uint) ([]models.Favorite, error)
	GetByUserAndProduct(userID, productID uint) (*models.Favorite, error)
	Create(favorite *models.Favorite) error
	DeleteByUserAndProduct(userID, productID uint) (bool, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) FavoriteRepository
}

// GormFavoriteRepository is the GORM implementation.
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a favorite repository.
func NewFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormFavoriteRepository) WithTx(tx *gorm.DB) FavoriteRepository {
	if tx == nil {
		return r
	}
	return &GormFavoriteRepository{db: tx}
}

// Transaction runs fn inside a database transaction.
func (r *GormFavoriteRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// ListByUser returns a user's favorites, newest first.
func (r *GormFavoriteRepository) ListByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// GetByUserAndProduct fetches the favorite row for a (user, product) pair.
func (r *GormFavoriteRepository) GetByUserAndProduct(userID, productID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

// Create inserts a favorite.
func (r *GormFavoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

// DeleteByUserAndProduct removes the favorite row for a (user, product)
// pair, reporting whether a row existed.
func (r *GormFavoriteRepository) DeleteByUserAndProduct(userID, productID uint) (bool, error) {
	res := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
