package models

import "gorm.io/gorm"

// OrderItem is one line of an order. Price is a snapshot taken at purchase
// time, not a reference to the product's current price.
type OrderItem struct {
	ID        uint  `gorm:"primarykey" json:"id"`
	OrderID   uint  `gorm:"not null;index" json:"orderId"`
	ProductID uint  `gorm:"not null;index" json:"productId"`
	Quantity  int   `gorm:"not null" json:"quantity"`
	Price     Money `gorm:"type:decimal(10,2);not null" json:"price"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}

// BeforeCreate assigns the next marketplace-wide id.
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == 0 {
		i.ID = NextID()
	}
	return nil
}
