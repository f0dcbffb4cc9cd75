package models

import (
	"time"

	"gorm.io/gorm"
)

// Vendor is a seller storefront owned by a user. A user may own more than
// one vendor record.
type Vendor struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"userId"`
	StoreName        string    `gorm:"type:varchar(200);not null" json:"storeName"`
	StoreDescription *string   `json:"storeDescription"`
	Rating           Rating    `gorm:"type:decimal(3,2);not null;default:0" json:"rating"` // derived, never client-set
	TotalSales       int       `gorm:"not null;default:0" json:"totalSales"`               // derived, never client-set
	IsApproved       bool      `gorm:"default:false" json:"isApproved"`
	CreatedAt        time.Time `json:"createdAt"`
}

// TableName sets the table name.
func (Vendor) TableName() string {
	return "vendors"
}

// BeforeCreate assigns the next marketplace-wide id.
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == 0 {
		v.ID = NextID()
	}
	return nil
}
