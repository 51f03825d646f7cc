package repositories

import (
	"context"
	"fmt"

	"github.com/Ludovic42/my-batik-store-sub001/internal/models"

	"gorm.io/gorm"
)

// GORMAnalyticsRepository is a GORM implementation of AnalyticsReadRepository.
// All methods are plain reads; nothing here writes to the database.
type GORMAnalyticsRepository struct {
	db *gorm.DB
}

// NewGORMAnalyticsRepository creates a new instance of GORMAnalyticsRepository.
func NewGORMAnalyticsRepository(db *gorm.DB) *GORMAnalyticsRepository {
	return &GORMAnalyticsRepository{
		db: db,
	}
}

// FindItemIDsByCreator returns the IDs of every item owned by the creator.
func (r *GORMAnalyticsRepository) FindItemIDsByCreator(ctx context.Context, creatorID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("creator_id = ?", creatorID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find item IDs for creator %s: %w", creatorID, err)
	}
	return ids, nil
}

// FindOrderIDsByItemIDs returns the distinct order IDs referenced by order
// items for the given items, constrained by the date/status predicate on the
// parent order.
func (r *GORMAnalyticsRepository) FindOrderIDsByItemIDs(ctx context.Context, itemIDs []string, query models.OrderStatisticsQuery) ([]string, error) {
	tx := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.item_id IN ?", itemIDs)
	tx = applyOrderPredicate(tx, "orders", query)

	var ids []string
	if err := tx.Distinct().Pluck("order_items.order_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to find order IDs by item set: %w", err)
	}
	return ids, nil
}

// FindOrdersByIDs loads the given orders sorted by creation time ascending.
func (r *GORMAnalyticsRepository) FindOrdersByIDs(ctx context.Context, orderIDs []string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id IN ?", orderIDs).
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load orders by IDs: %w", err)
	}
	return orders, nil
}

// FindOrders loads orders matching the query's date range and status.
func (r *GORMAnalyticsRepository) FindOrders(ctx context.Context, query models.OrderStatisticsQuery) ([]models.Order, error) {
	tx := applyOrderPredicate(r.db.WithContext(ctx), "orders", query)

	var orders []models.Order
	if err := tx.Preload("Items").Order("created_at ASC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to load orders by filter: %w", err)
	}
	return orders, nil
}

// FindOrderItemsByCreator returns every order item referencing one of the
// creator's items. Soft-deleted items still match the join but fail to
// preload, surfacing as a nil Item reference on the returned row.
func (r *GORMAnalyticsRepository) FindOrderItemsByCreator(ctx context.Context, creatorID string) ([]models.OrderItem, error) {
	var orderItems []models.OrderItem
	err := r.db.WithContext(ctx).
		Joins("JOIN items ON items.id = order_items.item_id").
		Where("items.creator_id = ?", creatorID).
		Preload("Item").
		Find(&orderItems).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find order items for creator %s: %w", creatorID, err)
	}
	return orderItems, nil
}

// applyOrderPredicate adds the query's inclusive date range and status
// conditions against the given orders table alias. CreatorID is resolved
// separately and intentionally not applied here.
func applyOrderPredicate(tx *gorm.DB, table string, query models.OrderStatisticsQuery) *gorm.DB {
	if query.StartDate != nil {
		tx = tx.Where(table+".created_at >= ?", *query.StartDate)
	}
	if query.EndDate != nil {
		tx = tx.Where(table+".created_at <= ?", *query.EndDate)
	}
	if query.Status != "" {
		tx = tx.Where(table+".status = ?", query.Status)
	}
	return tx
}
