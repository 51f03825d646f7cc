package repositories

import (
	"github.com/Ludovic42/my-batik-store-sub001/internal/models"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	GetByItem(itemID string) ([]models.Review, error)
	Create(review *models.Review) error
	Delete(id string) error
}
