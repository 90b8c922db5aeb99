package handlers

import (
	"net/http"

	"hotelms/models"
	"hotelms/services/booking"
	"hotelms/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the reservation endpoints.
type BookingHandler struct {
	Engine booking.BookingEngine
}

// respondEngineError maps an engine error code to an HTTP status.
func respondEngineError(c *gin.Context, err error) {
	msg := booking.MessageOf(err)
	switch booking.CodeOf(err) {
	case booking.CodeInvalidInput:
		respondError(c, http.StatusBadRequest, msg)
	case booking.CodeNotFound:
		respondError(c, http.StatusNotFound, msg)
	case booking.CodeConflict:
		respondError(c, http.StatusConflict, msg)
	case booking.CodeForbidden:
		respondError(c, http.StatusForbidden, msg)
	default:
		utils.GetLogger().Error("Booking engine error", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Something went wrong")
	}
}

// CreateBookingHandler handles POST /api/bookings. Customers always book
// for themselves; staff may pass a userId to book on a guest's behalf.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req struct {
		ServiceID     string `json:"serviceId" binding:"required"`
		CheckInDate   string `json:"checkInDate" binding:"required"`
		CheckOutDate  string `json:"checkOutDate" binding:"required"`
		PaymentMethod string `json:"paymentMethod"`
		Status        string `json:"status"`
		UserID        string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID := c.GetString("userID")
	role := c.GetString("role")
	if req.UserID != "" && req.UserID != userID {
		if role != models.RoleAdmin && role != models.RoleManager {
			respondError(c, http.StatusForbidden, "Cannot book on behalf of another user")
			return
		}
		userID = req.UserID
	}

	bk, err := h.Engine.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		UserID:        userID,
		ServiceID:     req.ServiceID,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
	})
	if err != nil {
		respondEngineError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Booking created", bk)
}

// ListAllBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListAllBookingsHandler(c *gin.Context) {
	bookings, err := h.Engine.ListAllBookings()
	if err != nil {
		respondEngineError(c, err)
		return
	}
	respondList(c, http.StatusOK, "Bookings fetched", bookings, len(bookings))
}

// MyBookingsHandler handles GET /api/bookings/mine.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	bookings, err := h.Engine.ListUserBookings(c.GetString("userID"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	respondList(c, http.StatusOK, "Bookings fetched", bookings, len(bookings))
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	detail, err := h.Engine.GetBooking(c.Param("id"), c.GetString("userID"), c.GetString("role"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	respond(c, http.StatusOK, "Booking fetched", detail)
}

// UpdateBookingHandler handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var req struct {
		Status       string `json:"status"`
		CheckInDate  string `json:"checkInDate"`
		CheckOutDate string `json:"checkOutDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	bk, err := h.Engine.UpdateBooking(c.Param("id"), booking.UpdateBookingInput{
		Status:       req.Status,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
	})
	if err != nil {
		respondEngineError(c, err)
		return
	}
	respond(c, http.StatusOK, "Booking updated", bk)
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Engine.DeleteBooking(c.Param("id")); err != nil {
		respondEngineError(c, err)
		return
	}
	respond(c, http.StatusOK, "Booking deleted", nil)
}

// RevenueStatsHandler handles GET /api/bookings/stats.
func (h *BookingHandler) RevenueStatsHandler(c *gin.Context) {
	stats, err := h.Engine.GetRevenueStats(c.Request.Context())
	if err != nil {
		respondEngineError(c, err)
		return
	}
	respond(c, http.StatusOK, "Revenue stats fetched", stats)
}
