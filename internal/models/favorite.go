package models

import (
	"time"

	"gorm.io/gorm"
)

// Favorite is a user-to-product bookmark. Adding an existing (user, product)
// pair returns the existing row instead of duplicating it.
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_fav_user_product" json:"userId"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_fav_user_product" json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName sets the table name.
func (Favorite) TableName() string {
	return "favorites"
}

// BeforeCreate assigns the next marketplace-wide id.
func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == 0 {
		f.ID = NextID()
	}
	return nil
}
