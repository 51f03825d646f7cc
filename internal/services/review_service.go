package services

import (
	"fmt"

	"github.com/Ludovic42/my-batik-store-sub001/internal/models"
	"github.com/Ludovic42/my-batik-store-sub001/internal/repositories"
)

// ReviewService handles business logic related to item reviews.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	itemRepo   repositories.ItemRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, itemRepo repositories.ItemRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		itemRepo:   itemRepo,
	}
}

// GetReviewsByItem retrieves all reviews for an item.
func (s *ReviewService) GetReviewsByItem(itemID string) ([]models.Review, error) {
	return s.reviewRepo.GetByItem(itemID)
}

// CreateReview creates a new review after checking the item exists.
func (s *ReviewService) CreateReview(review *models.Review) error {
	if _, err := s.itemRepo.GetByID(review.ItemID); err != nil {
		return fmt.Errorf("cannot review item %s: %w", review.ItemID, err)
	}
	return s.reviewRepo.Create(review)
}

// DeleteReview deletes a review by ID.
func (s *ReviewService) DeleteReview(id string) error {
	return s.reviewRepo.Delete(id)
}
