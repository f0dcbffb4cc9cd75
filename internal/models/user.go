package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a shopper account. Vendor accounts are separate records linked by
// Vendor.UserID.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"password,omitempty"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"lastName"`
	IsVendor  bool      `gorm:"default:false" json:"isVendor"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the next marketplace-wide id.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == 0 {
		u.ID = NextID()
	}
	return nil
}

// Sanitized returns a copy safe for API responses, with the credential
// removed.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
