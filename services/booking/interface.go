package booking

import (
	"context"

	bookingRepo "hotelms/database/repository/booking"
	catalogRepo "hotelms/database/repository/catalog"
	userRepo "hotelms/database/repository/user"
	"hotelms/models"

	"github.com/go-redis/redis/v8"
)

// CreateBookingInput carries the raw request fields for CreateBooking.
// Dates arrive as strings and are parsed/validated by the engine.
type CreateBookingInput struct {
	UserID        string
	ServiceID     string
	CheckInDate   string
	CheckOutDate  string
	PaymentMethod string
	Status        string
}

// UpdateBookingInput is the patch applied by UpdateBooking. Empty
// strings mean "leave unchanged".
type UpdateBookingInput struct {
	Status       string
	CheckInDate  string
	CheckOutDate string
}

// BookingEngine validates, prices and persists reservations against the
// shared service inventory.
type BookingEngine interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	GetBooking(id, requesterID, requesterRole string) (*models.BookingDetail, error)
	ListAllBookings() ([]models.BookingDetail, error)
	ListUserBookings(userID string) ([]models.Booking, error)
	UpdateBooking(id string, patch UpdateBookingInput) (*models.Booking, error)
	DeleteBooking(id string) error
	GetRevenueStats(ctx context.Context) (*models.RevenueStats, error)
	CheckAvailability(serviceID, checkInRaw, checkOutRaw string) (bool, error)
}

// DefaultBookingEngine implements BookingEngine.
type DefaultBookingEngine struct {
	BookingRepo bookingRepo.BookingRepository
	ServiceRepo catalogRepo.ServiceRepository
	UserRepo    userRepo.UserRepository
	Payments    PaymentHandler        // optional; nil disables card intents
	Reminders   ReminderScheduler     // optional; nil disables reminders
	Cache       redis.UniversalClient // optional; nil disables stats caching

	locks *serviceLocks
}

// NewDefaultBookingEngine wires the engine with its collaborators.
func NewDefaultBookingEngine(
	bookings bookingRepo.BookingRepository,
	services catalogRepo.ServiceRepository,
	users userRepo.UserRepository,
	payments PaymentHandler,
	reminders ReminderScheduler,
	cache redis.UniversalClient,
) *DefaultBookingEngine {
	return &DefaultBookingEngine{
		BookingRepo: bookings,
		ServiceRepo: services,
		UserRepo:    users,
		Payments:    payments,
		Reminders:   reminders,
		Cache:       cache,
		locks:       newServiceLocks(),
	}
}
