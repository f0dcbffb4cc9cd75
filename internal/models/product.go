package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog listing owned by a vendor.
type Product struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	VendorID      uint      `gorm:"not null;index" json:"vendorId"`
	CategoryID    uint      `gorm:"not null;index" json:"categoryId"`
	Name          string    `gorm:"type:varchar(200);not null" json:"name"`
	Description   *string   `json:"description"`
	Price         Money     `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice *Money    `gorm:"type:decimal(10,2)" json:"originalPrice"`
	Stock         int       `gorm:"not null;default:0" json:"stock"`
	ImageURL      *string   `json:"imageUrl"`
	// No column default: GORM skips zero-value fields carrying a default tag
	// on insert, which would turn an explicit false back into true. The
	// service layer fills in true when the client omits the field.
	IsActive      bool      `gorm:"index" json:"isActive"`
	Rating        Rating    `gorm:"type:decimal(3,2);not null;default:0" json:"rating"` // derived, never client-set
	ReviewCount   int       `gorm:"not null;default:0" json:"reviewCount"`              // derived, never client-set
	CreatedAt     time.Time `json:"createdAt"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns the next marketplace-wide id.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == 0 {
		p.ID = NextID()
	}
	return nil
}
