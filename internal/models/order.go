package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a purchase placed by a user against a single vendor.
type Order struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"userId"`
	VendorID        uint      `gorm:"not null;index" json:"vendorId"`
	Status          string    `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	TotalAmount     Money     `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	ShippingAddress string    `gorm:"not null" json:"shippingAddress"`
	CreatedAt       time.Time `json:"createdAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate assigns the next marketplace-wide id.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == 0 {
		o.ID = NextID()
	}
	return nil
}
