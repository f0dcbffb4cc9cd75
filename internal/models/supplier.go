package models

import (
	"time"

	"gorm.io/gorm"
)

// Supplier is a sourcing contact managed by a vendor.
type Supplier struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	VendorID  uint      `gorm:"not null;index" json:"vendorId"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Contact   string    `gorm:"type:varchar(100);not null" json:"contact"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone     *string   `gorm:"type:varchar(50)" json:"phone"`
	Address   *string   `json:"address"`
	Products  *string   `json:"products"` // free-text list of supplied goods
	Status    string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName sets the table name.
func (Supplier) TableName() string {
	return "suppliers"
}

// BeforeCreate assigns the next marketplace-wide id.
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == 0 {
		s.ID = NextID()
	}
	return nil
}
