package repositories

import (
	"context"

	"github.com/Ludovic42/my-batik-store-sub001/internal/models"
)

// AnalyticsReadRepository is the read-only view of the store consumed by the
// analytics service. Implementations must never mutate persisted state.
//
// Creator filtering is indirect (creator -> items -> order items -> orders),
// so a single analytics request may issue several dependent reads. The
// context lets callers bound the whole chain with a deadline. Consistency
// across the reads is whatever the underlying store's isolation level gives;
// concurrent writes between reads are accepted.
type AnalyticsReadRepository interface {
	// FindItemIDsByCreator returns the IDs of every item owned by the creator.
	FindItemIDsByCreator(ctx context.Context, creatorID string) ([]string, error)

	// FindOrderIDsByItemIDs returns the distinct IDs of orders containing at
	// least one of the given items, keeping only orders that match the
	// query's date range and status. The query's CreatorID is ignored here.
	FindOrderIDsByItemIDs(ctx context.Context, itemIDs []string, query models.OrderStatisticsQuery) ([]string, error)

	// FindOrdersByIDs loads the given orders sorted by creation time ascending.
	FindOrdersByIDs(ctx context.Context, orderIDs []string) ([]models.Order, error)

	// FindOrders loads orders matching the query's date range and status,
	// sorted by creation time ascending. The query's CreatorID is ignored.
	FindOrders(ctx context.Context, query models.OrderStatisticsQuery) ([]models.Order, error)

	// FindOrderItemsByCreator returns every order item referencing one of the
	// creator's items, with the Item association resolved where possible. An
	// order item whose item can no longer be resolved is returned with a nil
	// Item; the caller decides how to handle the gap.
	FindOrderItemsByCreator(ctx context.Context, creatorID string) ([]models.OrderItem, error)
}
