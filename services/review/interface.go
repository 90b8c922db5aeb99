package review

import (
	catalogRepo "hotelms/database/repository/catalog"
	reviewRepo "hotelms/database/repository/review"
	userRepo "hotelms/database/repository/user"
	"hotelms/models"
)

// ReviewService manages service reviews.
type ReviewService interface {
	AddReview(userID, serviceID string, rating int, comment string) (*models.Review, error)
	ListServiceReviews(serviceID string) ([]models.Review, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo        reviewRepo.ReviewRepository
	ServiceRepo catalogRepo.ServiceRepository
	UserRepo    userRepo.UserRepository
}
