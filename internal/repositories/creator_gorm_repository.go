package repositories

import (
	"fmt"

	"github.com/Ludovic42/my-batik-store-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCreatorRepository is a GORM implementation of CreatorRepository.
type GORMCreatorRepository struct {
	db *gorm.DB
}

// NewGORMCreatorRepository creates a new instance of GORMCreatorRepository.
func NewGORMCreatorRepository(db *gorm.DB) *GORMCreatorRepository {
	return &GORMCreatorRepository{
		db: db,
	}
}

// GetAll retrieves all creators from the database.
func (r *GORMCreatorRepository) GetAll() ([]models.Creator, error) {
	var creators []models.Creator
	if err := r.db.Find(&creators).Error; err != nil {
		return nil, fmt.Errorf("failed to get all creators: %w", err)
	}
	return creators, nil
}

// GetByID retrieves a single creator, with their items, by ID.
func (r *GORMCreatorRepository) GetByID(id string) (*models.Creator, error) {
	var creator models.Creator
	if err := r.db.Preload("Items").First(&creator, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("creator with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get creator by ID %s: %w", id, err)
	}
	return &creator, nil
}

// Create creates a new creator in the database.
func (r *GORMCreatorRepository) Create(creator *models.Creator) error {
	if creator.ID == "" {
		creator.ID = uuid.New().String()
	}
	if err := r.db.Create(creator).Error; err != nil {
		return fmt.Errorf("failed to create creator: %w", err)
	}
	return nil
}

// Delete deletes a creator by ID from the database.
func (r *GORMCreatorRepository) Delete(id string) error {
	res := r.db.Delete(&models.Creator{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete creator: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("creator with ID %s not found for deletion", id)
	}
	return nil
}
