package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Ludovic42/my-batik-store-sub001/internal/models"
	"github.com/Ludovic42/my-batik-store-sub001/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAnalyticsRepository is a mock implementation of repositories.AnalyticsReadRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) FindItemIDsByCreator(ctx context.Context, creatorID string) ([]string, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAnalyticsRepository) FindOrderIDsByItemIDs(ctx context.Context, itemIDs []string, query models.OrderStatisticsQuery) ([]string, error) {
	args := m.Called(ctx, itemIDs, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAnalyticsRepository) FindOrdersByIDs(ctx context.Context, orderIDs []string) ([]models.Order, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockAnalyticsRepository) FindOrders(ctx context.Context, query models.OrderStatisticsQuery) ([]models.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockAnalyticsRepository) FindOrderItemsByCreator(ctx context.Context, creatorID string) ([]models.OrderItem, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderItem), args.Error(1)
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func orderItem(orderID string, item *models.Item, quantity int, price string) models.OrderItem {
	line := models.OrderItem{
		ID:              fmt.Sprintf("oi-%s-%d", orderID, quantity),
		OrderID:         orderID,
		Quantity:        quantity,
		PriceAtPurchase: dec(price),
		Item:            item,
	}
	if item != nil {
		line.ItemID = item.ID
	}
	return line
}

func TestAnalyticsService_ComputeCreatorSalesSummary(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	itemA := &models.Item{ID: "item-a", Name: "Batik Shirt", CreatorID: "creator-1"}
	itemB := &models.Item{ID: "item-b", Name: "Batik Tablecloth", CreatorID: "creator-1"}

	// Two lines for item A and one for item B, all in the same order.
	lines := []models.OrderItem{
		orderItem("order-1", itemA, 2, "10"),
		orderItem("order-1", itemB, 1, "5"),
		orderItem("order-1", itemA, 1, "10"),
	}
	mockRepo.On("FindOrderItemsByCreator", mock.Anything, "creator-1").Return(lines, nil).Once()

	summary, err := service.ComputeCreatorSalesSummary(context.Background(), "creator-1")

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.TotalOrders) // one order, three lines
	assert.Equal(t, 4, summary.TotalItemsSold)
	assert.True(t, summary.TotalRevenue.Equal(dec("35")))
	assert.Len(t, summary.ItemsSoldByProduct, 2)

	// Sorted by revenue descending: A (30) before B (5), with repeat lines merged.
	assert.Equal(t, "item-a", summary.ItemsSoldByProduct[0].ItemID)
	assert.Equal(t, "Batik Shirt", summary.ItemsSoldByProduct[0].ItemName)
	assert.Equal(t, 3, summary.ItemsSoldByProduct[0].Quantity)
	assert.True(t, summary.ItemsSoldByProduct[0].Revenue.Equal(dec("30")))
	assert.Equal(t, "item-b", summary.ItemsSoldByProduct[1].ItemID)
	assert.Equal(t, 1, summary.ItemsSoldByProduct[1].Quantity)
	assert.True(t, summary.ItemsSoldByProduct[1].Revenue.Equal(dec("5")))
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_CreatorSummaryCountsDistinctOrders(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	itemA := &models.Item{ID: "item-a", Name: "Batik Shirt"}
	lines := []models.OrderItem{
		orderItem("order-1", itemA, 1, "10"),
		orderItem("order-1", itemA, 2, "10"),
		orderItem("order-2", itemA, 1, "10"),
	}
	mockRepo.On("FindOrderItemsByCreator", mock.Anything, "creator-1").Return(lines, nil).Once()

	summary, err := service.ComputeCreatorSalesSummary(context.Background(), "creator-1")

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 4, summary.TotalItemsSold)
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_CreatorSummaryIsIterationOrderIndependent(t *testing.T) {
	itemA := &models.Item{ID: "item-a", Name: "Batik Shirt"}
	itemB := &models.Item{ID: "item-b", Name: "Batik Pants"}
	lines := []models.OrderItem{
		orderItem("order-1", itemA, 2, "10"),
		orderItem("order-2", itemB, 3, "7"),
		orderItem("order-1", itemA, 1, "10"),
	}
	reversed := []models.OrderItem{lines[2], lines[1], lines[0]}

	var results []*models.CreatorSalesSummary
	for _, permutation := range [][]models.OrderItem{lines, reversed} {
		mockRepo := new(MockAnalyticsRepository)
		service := services.NewAnalyticsService(mockRepo)
		mockRepo.On("FindOrderItemsByCreator", mock.Anything, "creator-1").Return(permutation, nil).Once()

		summary, err := service.ComputeCreatorSalesSummary(context.Background(), "creator-1")
		assert.NoError(t, err)
		results = append(results, summary)
	}

	assert.Equal(t, results[0].TotalOrders, results[1].TotalOrders)
	assert.Equal(t, results[0].TotalItemsSold, results[1].TotalItemsSold)
	assert.True(t, results[0].TotalRevenue.Equal(results[1].TotalRevenue))
	assert.Equal(t, len(results[0].ItemsSoldByProduct), len(results[1].ItemsSoldByProduct))
}

func TestAnalyticsService_CreatorSummaryStableSortOnEqualRevenue(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	itemTop := &models.Item{ID: "item-top", Name: "Premium Tablecloth"}
	itemFirst := &models.Item{ID: "item-first", Name: "Batik Shirt"}
	itemSecond := &models.Item{ID: "item-second", Name: "Batik Pants"}
	// item-first and item-second both end at revenue 20; the first one
	// encountered must stay in front.
	lines := []models.OrderItem{
		orderItem("order-1", itemFirst, 2, "10"),
		orderItem("order-1", itemSecond, 4, "5"),
		orderItem("order-2", itemTop, 1, "100"),
	}
	mockRepo.On("FindOrderItemsByCreator", mock.Anything, "creator-1").Return(lines, nil).Once()

	summary, err := service.ComputeCreatorSalesSummary(context.Background(), "creator-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"item-top", "item-first", "item-second"}, []string{
		summary.ItemsSoldByProduct[0].ItemID,
		summary.ItemsSoldByProduct[1].ItemID,
		summary.ItemsSoldByProduct[2].ItemID,
	})
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_CreatorSummarySkipsUnresolvableItems(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	itemA := &models.Item{ID: "item-a", Name: "Batik Shirt"}
	dangling := orderItem("order-2", nil, 5, "99")
	dangling.ItemID = "item-gone"
	lines := []models.OrderItem{
		orderItem("order-1", itemA, 2, "10"),
		dangling,
	}
	mockRepo.On("FindOrderItemsByCreator", mock.Anything, "creator-1").Return(lines, nil).Once()

	summary, err := service.ComputeCreatorSalesSummary(context.Background(), "creator-1")

	// The dangling reference is skipped, not fatal.
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.TotalOrders)
	assert.Equal(t, 2, summary.TotalItemsSold)
	assert.True(t, summary.TotalRevenue.Equal(dec("20")))
	assert.Len(t, summary.ItemsSoldByProduct, 1)
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_CreatorSummaryEmptyHistory(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	mockRepo.On("FindOrderItemsByCreator", mock.Anything, "creator-1").Return([]models.OrderItem{}, nil).Once()

	summary, err := service.ComputeCreatorSalesSummary(context.Background(), "creator-1")

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, 0, summary.TotalItemsSold)
	assert.True(t, summary.TotalRevenue.Equal(decimal.Zero))
	assert.NotNil(t, summary.ItemsSoldByProduct)
	assert.Empty(t, summary.ItemsSoldByProduct)
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_CreatorSummaryDataAccessError(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	dbErr := fmt.Errorf("connection lost")
	mockRepo.On("FindOrderItemsByCreator", mock.Anything, "creator-1").Return(nil, dbErr).Once()

	summary, err := service.ComputeCreatorSalesSummary(context.Background(), "creator-1")

	assert.Nil(t, summary)
	var dataErr *services.DataAccessError
	assert.True(t, errors.As(err, &dataErr))
	assert.True(t, errors.Is(err, dbErr))
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_ComputeOrderStatisticsByStatus(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	query := models.OrderStatisticsQuery{Status: "delivered"}
	orders := []models.Order{
		{ID: "order-1", Status: "delivered", TotalPrice: dec("10")},
		{ID: "order-2", Status: "delivered", TotalPrice: dec("20")},
	}
	mockRepo.On("FindOrders", mock.Anything, query).Return(orders, nil).Once()

	stats, err := service.ComputeOrderStatistics(context.Background(), query)

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(dec("30")))
	assert.True(t, stats.AverageOrderValue.Equal(dec("15")))
	assert.Equal(t, map[string]int{"delivered": 2}, stats.OrdersByStatus)
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_OrderStatisticsGroupsByObservedStatus(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	orders := []models.Order{
		{ID: "order-1", Status: "delivered", TotalPrice: dec("10")},
		{ID: "order-2", Status: "pending", TotalPrice: dec("5")},
		{ID: "order-3", Status: "delivered", TotalPrice: dec("20")},
	}
	mockRepo.On("FindOrders", mock.Anything, mock.Anything).Return(orders, nil).Once()

	stats, err := service.ComputeOrderStatistics(context.Background(), models.OrderStatisticsQuery{})

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(dec("35")))
	// Only observed statuses appear; "cancelled" etc. are absent, not zero.
	assert.Equal(t, map[string]int{"delivered": 2, "pending": 1}, stats.OrdersByStatus)
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_OrderStatisticsEmptyResult(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	mockRepo.On("FindOrders", mock.Anything, mock.Anything).Return([]models.Order{}, nil).Once()

	stats, err := service.ComputeOrderStatistics(context.Background(), models.OrderStatisticsQuery{})

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.Zero))
	// Average must be exactly zero, never a division error.
	assert.True(t, stats.AverageOrderValue.Equal(decimal.Zero))
	assert.NotNil(t, stats.OrdersByStatus)
	assert.Empty(t, stats.OrdersByStatus)
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_CreatorWithNoItemsShortCircuits(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	query := models.OrderStatisticsQuery{CreatorID: "creator-1"}
	mockRepo.On("FindItemIDsByCreator", mock.Anything, "creator-1").Return([]string{}, nil).Once()

	stats, err := service.ComputeOrderStatistics(context.Background(), query)

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.Zero))
	assert.True(t, stats.AverageOrderValue.Equal(decimal.Zero))
	assert.Empty(t, stats.OrdersByStatus)
	// No further queries once the item set is known to be empty.
	mockRepo.AssertNotCalled(t, "FindOrderIDsByItemIDs", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "FindOrdersByIDs", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "FindOrders", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_CreatorWithNoMatchingOrdersShortCircuits(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	query := models.OrderStatisticsQuery{CreatorID: "creator-1", Status: "delivered"}
	mockRepo.On("FindItemIDsByCreator", mock.Anything, "creator-1").Return([]string{"item-a"}, nil).Once()
	mockRepo.On("FindOrderIDsByItemIDs", mock.Anything, []string{"item-a"}, query).Return([]string{}, nil).Once()

	stats, err := service.ComputeOrderStatistics(context.Background(), query)

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalOrders)
	mockRepo.AssertNotCalled(t, "FindOrdersByIDs", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_CreatorFilterResolvesInStages(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	query := models.OrderStatisticsQuery{
		StartDate: &start,
		EndDate:   &end,
		Status:    "delivered",
		CreatorID: "creator-1",
	}

	mockRepo.On("FindItemIDsByCreator", mock.Anything, "creator-1").Return([]string{"item-a", "item-b"}, nil).Once()
	mockRepo.On("FindOrderIDsByItemIDs", mock.Anything, []string{"item-a", "item-b"}, query).Return([]string{"order-1", "order-2"}, nil).Once()
	mockRepo.On("FindOrdersByIDs", mock.Anything, []string{"order-1", "order-2"}).Return([]models.Order{
		{ID: "order-1", Status: "delivered", TotalPrice: dec("40")},
		{ID: "order-2", Status: "delivered", TotalPrice: dec("20")},
	}, nil).Once()

	stats, err := service.ComputeOrderStatistics(context.Background(), query)

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(dec("60")))
	assert.True(t, stats.AverageOrderValue.Equal(dec("30")))
	mockRepo.AssertNotCalled(t, "FindOrders", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAnalyticsService_RejectsInvertedDateRange(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(-24 * time.Hour)
	query := models.OrderStatisticsQuery{StartDate: &start, EndDate: &end}

	stats, err := service.ComputeOrderStatistics(context.Background(), query)

	assert.Nil(t, stats)
	var invalidFilter *services.InvalidFilterError
	assert.True(t, errors.As(err, &invalidFilter))
	// Rejected before any read is issued.
	mockRepo.AssertNotCalled(t, "FindOrders", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "FindItemIDsByCreator", mock.Anything, mock.Anything)
}

func TestAnalyticsService_OrderStatisticsDataAccessError(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	service := services.NewAnalyticsService(mockRepo)

	dbErr := fmt.Errorf("query timeout")
	mockRepo.On("FindOrders", mock.Anything, mock.Anything).Return(nil, dbErr).Once()

	stats, err := service.ComputeOrderStatistics(context.Background(), models.OrderStatisticsQuery{})

	assert.Nil(t, stats)
	var dataErr *services.DataAccessError
	assert.True(t, errors.As(err, &dataErr))
	assert.True(t, errors.Is(err, dbErr))
	mockRepo.AssertExpectations(t)
}
