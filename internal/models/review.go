package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a user's rating of a product. Reviews do not feed back into the
// product's rating or reviewCount aggregates; those are maintained
// independently.
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	ProductID uint      `gorm:"not null;index" json:"productId"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName sets the table name.
func (Review) TableName() string {
	return "reviews"
}

// BeforeCreate assigns the next marketplace-wide id.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == 0 {
		r.ID = NextID()
	}
	return nil
}
