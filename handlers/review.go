package handlers

import (
	"errors"
	"net/http"

	"hotelms/services/review"
	"hotelms/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves the per-service review endpoints.
type ReviewHandler struct {
	Reviews review.ReviewService
}

// AddReviewHandler handles POST /api/services/:id/reviews.
func (h *ReviewHandler) AddReviewHandler(c *gin.Context) {
	serviceID := c.Param("id")

	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	r, err := h.Reviews.AddReview(c.GetString("userID"), serviceID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidRating):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, review.ErrServiceNotFound):
			respondError(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, review.ErrAlreadyReviewed):
			respondError(c, http.StatusConflict, err.Error())
		default:
			utils.GetLogger().Error("Failed to add review",
				zap.String("serviceId", serviceID), zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Failed to add review")
		}
		return
	}
	respond(c, http.StatusCreated, "Review added", r)
}

// ListReviewsHandler handles GET /api/services/:id/reviews.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	serviceID := c.Param("id")
	reviews, err := h.Reviews.ListServiceReviews(serviceID)
	if err != nil {
		if errors.Is(err, review.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, "Service not found")
			return
		}
		utils.GetLogger().Error("Failed to list reviews",
			zap.String("serviceId", serviceID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}
	respondList(c, http.StatusOK, "Reviews fetched", reviews, len(reviews))
}
