package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem represents a single line of an order.
// PriceAtPurchase is captured when the order is placed and is never
// recomputed from the item's current price.
type OrderItem struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID         string          `json:"order_id" gorm:"type:varchar(36);index"`
	ItemID          string          `json:"item_id" gorm:"type:varchar(36);index"`
	Item            *Item           `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Quantity        int             `json:"quantity" validate:"required,gt=0"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase" gorm:"type:decimal(12,2)"`
}

// Order represents a customer order.
type Order struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string          `json:"user_id" gorm:"type:varchar(36);index"`
	Items      []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(12,2)"`
	Status     string          `json:"status"` // e.g., "pending", "processing", "shipped", "delivered", "cancelled"
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
