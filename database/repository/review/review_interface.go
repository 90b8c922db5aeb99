package reviewRepo

import (
	"errors"

	"hotelms/models"
)

// ErrDuplicate is returned when a user reviews the same service twice.
var ErrDuplicate = errors.New("review already exists for this user and service")

// ReviewRepository defines data access for service reviews.
type ReviewRepository interface {
	// Create inserts a review. Returns ErrDuplicate if the (user, service)
	// pair already has one.
	Create(review *models.Review) error
	// ListByService returns a service's reviews, newest first.
	ListByService(serviceID string) ([]models.Review, error)
}
