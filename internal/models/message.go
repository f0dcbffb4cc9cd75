package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a contact-form message sent to a vendor.
type Message struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	VendorID    uint      `gorm:"not null;index" json:"vendorId"`
	SenderName  string    `gorm:"type:varchar(100);not null" json:"senderName"`
	SenderEmail string    `gorm:"type:varchar(255);not null" json:"senderEmail"`
	Subject     string    `gorm:"type:varchar(200);not null" json:"subject"`
	Message     string    `gorm:"not null" json:"message"`
	IsRead      bool      `gorm:"default:false" json:"isRead"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName sets the table name.
func (Message) TableName() string {
	return "messages"
}

// BeforeCreate assigns the next marketplace-wide id.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == 0 {
		m.ID = NextID()
	}
	return nil
}
