package models

import "gorm.io/gorm"

// Category is a product category.
type Category struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	Icon string `gorm:"type:varchar(50);not null" json:"icon"`
	Slug string `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}

// BeforeCreate assigns the next marketplace-wide id.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == 0 {
		c.ID = NextID()
	}
	return nil
}
