package services

import (
	"github.com/Ludovic42/my-batik-store-sub001/internal/models"
	"github.com/Ludovic42/my-batik-store-sub001/internal/repositories"
)

// ItemService handles business logic related to catalog items.
type ItemService struct {
	repo repositories.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(repo repositories.ItemRepository) *ItemService {
	return &ItemService{
		repo: repo,
	}
}

// GetAllItems retrieves all items.
func (s *ItemService) GetAllItems() ([]models.Item, error) {
	return s.repo.GetAll()
}

// GetItemsByCreator retrieves all items owned by a creator.
func (s *ItemService) GetItemsByCreator(creatorID string) ([]models.Item, error) {
	return s.repo.GetByCreator(creatorID)
}

// GetItemByID retrieves a single item by its ID.
func (s *ItemService) GetItemByID(id string) (*models.Item, error) {
	return s.repo.GetByID(id)
}

// CreateItem creates a new item.
func (s *ItemService) CreateItem(item *models.Item) error {
	return s.repo.Create(item)
}

// UpdateItem updates an existing item.
func (s *ItemService) UpdateItem(item *models.Item) error {
	return s.repo.Update(item)
}

// DeleteItem deletes an item by its ID.
func (s *ItemService) DeleteItem(id string) error {
	return s.repo.Delete(id)
}
