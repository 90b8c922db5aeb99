package bookingRepo

import (
	"context"
	"errors"
	"time"

	"hotelms/models"
)

// ErrNotFound is returned when a booking does not exist.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	// Create inserts the booking inside a session transaction so a
	// failed insert leaves no partial state.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns nil if absent.
	GetByID(id string) (*models.Booking, error)
	// Update replaces mutable fields of an existing booking.
	Update(booking *models.Booking) error
	// Delete removes a booking. Returns ErrNotFound if absent.
	Delete(id string) error
	// FindOverlapping returns active (confirmed/pending) bookings for the
	// service whose [checkIn, checkOut) interval overlaps the given one.
	// excludeID, when non-empty, skips that booking (used on updates).
	FindOverlapping(serviceID string, checkIn, checkOut time.Time, excludeID string) ([]models.Booking, error)
	// ExistsByReference reports whether any booking carries the reference code.
	ExistsByReference(ref string) (bool, error)
	// ListByUser returns a user's bookings, newest first.
	ListByUser(userID string) ([]models.Booking, error)
	// ListAllDetailed returns all bookings joined with user and service
	// summaries, newest first.
	ListAllDetailed() ([]models.BookingDetail, error)
	// RevenueStats aggregates confirmed bookings into revenue totals.
	RevenueStats() (*models.RevenueStats, error)
}
