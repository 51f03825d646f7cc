package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item represents a catalog product owned by a creator.
// Price is the item's current list price; orders capture their own copy of
// the price at purchase time (see OrderItem).
type Item struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CreatorID  string          `json:"creator_id" gorm:"type:varchar(36);index" validate:"required,uuid"`
	Name       string          `json:"name" validate:"required,min=3,max=100"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(12,2)" validate:"required"`
	Category   string          `json:"category" validate:"required,oneof=shirt pants tablecloth other"`
	gorm.Model                 // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
