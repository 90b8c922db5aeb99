package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Payment methods and statuses.
const (
	PaymentMethodCard       = "Card"
	PaymentMethodPayAtHotel = "PayAtHotel"

	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

// Booking represents a reservation of a service for a date range.
// The interval is half-open: [CheckIn, CheckOut).
type Booking struct {
	ID               string    `bson:"id" json:"id"`
	BookingReference string    `bson:"bookingReference" json:"bookingReference"` // 6-digit human-facing code
	UserID           string    `bson:"userId" json:"userId"`
	ServiceID        string    `bson:"serviceId" json:"serviceId"`
	CheckIn          time.Time `bson:"checkInDate" json:"checkInDate"`
	CheckOut         time.Time `bson:"checkOutDate" json:"checkOutDate"`
	TotalPrice       float64   `bson:"totalPrice" json:"totalPrice"`
	Status           string    `bson:"status" json:"status"` // pending, confirmed or cancelled
	PaymentMethod    string    `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	PaymentStatus    string    `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	PaymentIntentID  string    `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the denormalized view embedded in booking listings.
type UserSummary struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// BookingDetail is a booking joined with its user and service summaries.
type BookingDetail struct {
	Booking `bson:",inline"`
	User    *UserSummary    `bson:"user,omitempty" json:"user,omitempty"`
	Service *ServiceSummary `bson:"service,omitempty" json:"service,omitempty"`
}

// RevenueStats aggregates confirmed bookings.
type RevenueStats struct {
	TotalRevenue  float64 `bson:"totalRevenue" json:"totalRevenue"`
	TotalBookings int64   `bson:"totalBookings" json:"totalBookings"`
	AvgPrice      float64 `bson:"avgPrice" json:"avgPrice"`
}

// Active reports whether the booking occupies its interval.
func (b *Booking) Active() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusPending
}
