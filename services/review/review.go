package review

import (
	"errors"
	"fmt"

	reviewRepo "hotelms/database/repository/review"
	"hotelms/models"

	"github.com/google/uuid"
)

// ErrServiceNotFound signals a review against a missing service.
var ErrServiceNotFound = errors.New("service not found")

// ErrAlreadyReviewed signals a second review from the same user.
var ErrAlreadyReviewed = errors.New("you have already reviewed this service")

// ErrInvalidRating signals a rating outside 1..5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// AddReview records a rating for a service, one per (user, service).
func (s *DefaultReviewService) AddReview(userID, serviceID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if comment == "" {
		return nil, fmt.Errorf("comment is required")
	}

	svc, err := s.ServiceRepo.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	var userName string
	if usr, err := s.UserRepo.GetByID(userID); err == nil && usr != nil {
		userName = usr.Name
	}

	r := &models.Review{
		ID:        uuid.New().String(),
		UserID:    userID,
		ServiceID: serviceID,
		Rating:    rating,
		Comment:   comment,
		UserName:  userName,
	}
	if err := s.Repo.Create(r); err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicate) {
			return nil, ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return r, nil
}

// ListServiceReviews returns a service's reviews, newest first.
func (s *DefaultReviewService) ListServiceReviews(serviceID string) ([]models.Review, error) {
	svc, err := s.ServiceRepo.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return s.Repo.ListByService(serviceID)
}
