package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Ludovic42/my-batik-store-sub001/internal/models"
	"github.com/Ludovic42/my-batik-store-sub001/internal/repositories"
	"github.com/Ludovic42/my-batik-store-sub001/pkg/rabbitmq"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	itemRepo  repositories.ItemRepository
	mqClient  *rabbitmq.Client // RabbitMQ client, may be nil
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, itemRepo repositories.ItemRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		mqClient:  mqClient,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder creates a new order. Each line captures the item's price at
// purchase time; later catalog price changes do not affect stored orders.
func (s *OrderService) CreateOrder(orderRequest models.Order) (*models.Order, error) {
	totalPrice := decimal.Zero
	var processedItems []models.OrderItem

	for _, line := range orderRequest.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for item %s", line.Quantity, line.ItemID)
		}

		item, err := s.itemRepo.GetByID(line.ItemID)
		if err != nil {
			return nil, fmt.Errorf("item %s not found: %w", line.ItemID, err)
		}

		processedItems = append(processedItems, models.OrderItem{
			ID:              uuid.New().String(),
			ItemID:          item.ID,
			Quantity:        line.Quantity,
			PriceAtPurchase: item.Price,
		})
		totalPrice = totalPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	newOrder := &models.Order{
		ID:         uuid.New().String(),
		UserID:     orderRequest.UserID,
		Items:      processedItems,
		TotalPrice: totalPrice,
		Status:     "pending", // Initial status
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	// Publish an "order.created" event so downstream consumers (inventory,
	// notifications) can react. A publish failure is logged, not fatal.
	s.publishOrderEvent("order.created", newOrder)

	return newOrder, nil
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{"pending": true, "processing": true, "shipped": true, "delivered": true, "cancelled": true}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publishOrderEvent("order.status_updated", &models.Order{ID: id, Status: status})

	return nil
}

func (s *OrderService) publishOrderEvent(routingKey string, order *models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.TotalPrice,
	}
	messageBody, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event to JSON: %v", err)
		return
	}

	if err := s.mqClient.Publish(routingKey, messageBody); err != nil {
		log.Printf("Warning: Failed to publish %s event for order %s: %v", routingKey, order.ID, err)
	} else {
		log.Printf("Successfully published %s event for order %s", routingKey, order.ID)
	}
}
