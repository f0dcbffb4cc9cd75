package service

import (
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/repository"
)

// ReviewService handles product reviews. Review writes deliberately leave
// the product's rating and reviewCount aggregates untouched; those columns
// are maintained out of band.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewService creates a review service.
func NewReviewService(reviewRepo repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

// ListByProduct returns a product's reviews.
func (s *ReviewService) ListByProduct(productID uint) ([]models.Review, error) {
	return s.reviewRepo.ListByProduct(productID)
}

// Create inserts a review.
func (s *ReviewService) Create(userID, productID uint, rating int, comment *string) (*models.Review, error) {
	review := &models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}
