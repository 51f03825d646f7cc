package models

import "gorm.io/gorm"

// Creator represents a batik artisan selling items in the store.
type Creator struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string `json:"user_id" gorm:"type:varchar(36);index" validate:"required"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Items      []Item `json:"items,omitempty" gorm:"foreignKey:CreatorID"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
