package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatisticsQuery narrows the order set considered by the statistics
// aggregator. All fields are optional; the date bounds are inclusive on the
// order's creation time.
type OrderStatisticsQuery struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Status    string     `json:"status,omitempty"`
	CreatorID string     `json:"creator_id,omitempty"`
}

// ProductSales is one per-item row of a creator's sales summary.
type ProductSales struct {
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// CreatorSalesSummary aggregates a creator's full sales history.
// ItemsSoldByProduct is sorted by revenue descending; entries with equal
// revenue keep their first-encountered order.
type CreatorSalesSummary struct {
	TotalOrders        int             `json:"total_orders"`
	TotalItemsSold     int             `json:"total_items_sold"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	ItemsSoldByProduct []ProductSales  `json:"items_sold_by_product"`
}

// OrderStatistics summarizes a filtered order set. OrdersByStatus only
// contains statuses observed in the set; absent statuses count as zero.
type OrderStatistics struct {
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	OrdersByStatus    map[string]int  `json:"orders_by_status"`
}
