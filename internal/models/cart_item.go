package models

import "gorm.io/gorm"

// CartItem is one product in a user's cart. At most one row exists per
// (user, product) pair; adding the same product again increments quantity.
type CartItem struct {
	ID        uint `gorm:"primarykey" json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity  int  `gorm:"not null" json:"quantity"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}

// BeforeCreate assigns the next marketplace-wide id.
func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == 0 {
		c.ID = NextID()
	}
	return nil
}
