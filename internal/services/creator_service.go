package services

import (
	"github.com/Ludovic42/my-batik-store-sub001/internal/models"
	"github.com/Ludovic42/my-batik-store-sub001/internal/repositories"
)

// CreatorService handles business logic related to creators.
type CreatorService struct {
	repo repositories.CreatorRepository
}

// NewCreatorService creates a new CreatorService.
func NewCreatorService(repo repositories.CreatorRepository) *CreatorService {
	return &CreatorService{
		repo: repo,
	}
}

// GetAllCreators retrieves all creators.
func (s *CreatorService) GetAllCreators() ([]models.Creator, error) {
	return s.repo.GetAll()
}

// GetCreatorByID retrieves a single creator, with their items, by ID.
func (s *CreatorService) GetCreatorByID(id string) (*models.Creator, error) {
	return s.repo.GetByID(id)
}

// CreateCreator creates a new creator.
func (s *CreatorService) CreateCreator(creator *models.Creator) error {
	return s.repo.Create(creator)
}

// DeleteCreator deletes a creator by ID.
func (s *CreatorService) DeleteCreator(id string) error {
	return s.repo.Delete(id)
}
