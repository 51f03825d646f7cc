package models

import "gorm.io/gorm"

// Review represents a user's rating of a purchased item.
type Review struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ItemID     string `json:"item_id" gorm:"type:varchar(36);index" validate:"required"`
	UserID     string `json:"user_id" gorm:"type:varchar(36);index" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"omitempty,max=1000"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
