package repositories

import (
	"github.com/Ludovic42/my-batik-store-sub001/internal/models"
)

// CreatorRepository defines the interface for creator data access.
type CreatorRepository interface {
	GetAll() ([]models.Creator, error)
	GetByID(id string) (*models.Creator, error)
	Create(creator *models.Creator) error
	Delete(id string) error
}
