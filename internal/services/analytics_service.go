package services

import (
	"context"
	"log"
	"sort"

	"github.com/Ludovic42/my-batik-store-sub001/internal/models"
	"github.com/Ludovic42/my-batik-store-sub001/internal/repositories"

	"github.com/shopspring/decimal"
)

// AnalyticsService computes creator sales summaries and order statistics
// from the read-only store view. Every result is derived fresh from the data
// read during the request; nothing is cached or persisted, and concurrent
// requests share no mutable state.
type AnalyticsService struct {
	repo repositories.AnalyticsReadRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(repo repositories.AnalyticsReadRepository) *AnalyticsService {
	return &AnalyticsService{
		repo: repo,
	}
}

// ComputeCreatorSalesSummary aggregates the full sales history of a creator.
// Order items whose item reference can no longer be resolved are logged and
// skipped; they never abort the computation.
func (s *AnalyticsService) ComputeCreatorSalesSummary(ctx context.Context, creatorID string) (*models.CreatorSalesSummary, error) {
	orderItems, err := s.repo.FindOrderItemsByCreator(ctx, creatorID)
	if err != nil {
		return nil, &DataAccessError{Op: "load order items by creator", Err: err}
	}

	summary := &models.CreatorSalesSummary{
		TotalRevenue:       decimal.Zero,
		ItemsSoldByProduct: []models.ProductSales{},
	}
	seenOrders := make(map[string]struct{})
	perItem := make(map[string]*models.ProductSales)
	var itemIDs []string // first-encounter order, so equal-revenue ties stay deterministic

	for _, line := range orderItems {
		if line.Item == nil {
			log.Printf("Warning: order item %s references missing item %s, skipping", line.ID, line.ItemID)
			continue
		}

		lineRevenue := line.PriceAtPurchase.Mul(decimal.NewFromInt(int64(line.Quantity)))
		summary.TotalItemsSold += line.Quantity
		summary.TotalRevenue = summary.TotalRevenue.Add(lineRevenue)
		seenOrders[line.OrderID] = struct{}{}

		if entry, ok := perItem[line.ItemID]; ok {
			entry.Quantity += line.Quantity
			entry.Revenue = entry.Revenue.Add(lineRevenue)
			continue
		}
		perItem[line.ItemID] = &models.ProductSales{
			ItemID:   line.ItemID,
			ItemName: line.Item.Name,
			Quantity: line.Quantity,
			Revenue:  lineRevenue,
		}
		itemIDs = append(itemIDs, line.ItemID)
	}

	// An order with several qualifying line items still counts once.
	summary.TotalOrders = len(seenOrders)

	for _, id := range itemIDs {
		summary.ItemsSoldByProduct = append(summary.ItemsSoldByProduct, *perItem[id])
	}
	sort.SliceStable(summary.ItemsSoldByProduct, func(i, j int) bool {
		return summary.ItemsSoldByProduct[i].Revenue.GreaterThan(summary.ItemsSoldByProduct[j].Revenue)
	})

	return summary, nil
}

// ComputeOrderStatistics reduces the orders matching the query to summary
// statistics. Revenue is the sum of the stored order totals; it is not
// reconciled against each order's line items.
func (s *AnalyticsService) ComputeOrderStatistics(ctx context.Context, query models.OrderStatisticsQuery) (*models.OrderStatistics, error) {
	if query.StartDate != nil && query.EndDate != nil && query.EndDate.Before(*query.StartDate) {
		return nil, &InvalidFilterError{Reason: "end date is before start date"}
	}

	orders, err := s.resolveOrders(ctx, query)
	if err != nil {
		return nil, err
	}

	stats := &models.OrderStatistics{
		TotalOrders:       len(orders),
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		OrdersByStatus:    make(map[string]int),
	}
	for _, order := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(order.TotalPrice)
		stats.OrdersByStatus[order.Status]++
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(stats.TotalOrders)))
	}
	return stats, nil
}

// resolveOrders narrows the query to the concrete order set. Without a
// creator the date/status predicate applies to orders directly; with one,
// the creator is resolved in stages through its items and their order items.
func (s *AnalyticsService) resolveOrders(ctx context.Context, query models.OrderStatisticsQuery) ([]models.Order, error) {
	if query.CreatorID == "" {
		orders, err := s.repo.FindOrders(ctx, query)
		if err != nil {
			return nil, &DataAccessError{Op: "load orders by filter", Err: err}
		}
		return orders, nil
	}

	itemIDs, err := s.repo.FindItemIDsByCreator(ctx, query.CreatorID)
	if err != nil {
		return nil, &DataAccessError{Op: "find items by creator", Err: err}
	}
	// A creator with no items matches nothing. Stopping here also avoids an
	// empty IN () clause that would otherwise match every order item.
	if len(itemIDs) == 0 {
		return nil, nil
	}

	orderIDs, err := s.repo.FindOrderIDsByItemIDs(ctx, itemIDs, query)
	if err != nil {
		return nil, &DataAccessError{Op: "find orders by item set", Err: err}
	}
	if len(orderIDs) == 0 {
		return nil, nil
	}

	orders, err := s.repo.FindOrdersByIDs(ctx, orderIDs)
	if err != nil {
		return nil, &DataAccessError{Op: "load orders by IDs", Err: err}
	}
	return orders, nil
}
