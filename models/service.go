package models

import "time"

// Service categories.
const (
	CategoryRoom   = "Room"
	CategoryHall   = "Hall"
	CategoryOffice = "Office"
)

// Service represents a bookable inventory item: a room, hall or office.
// Availability is derived from active bookings, not stored on the
// document, so several non-overlapping reservations can share one item.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	ServiceName string    `bson:"serviceName" json:"serviceName"`
	Category    string    `bson:"category" json:"category"` // Room, Hall or Office
	Type        string    `bson:"type" json:"type"`         // e.g. Luxury, Standard
	Price       float64   `bson:"price" json:"price"`       // per-day rate
	Description string    `bson:"description" json:"description"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceSummary is the denormalized view embedded in booking listings.
type ServiceSummary struct {
	ID          string  `bson:"id" json:"id"`
	ServiceName string  `bson:"serviceName" json:"serviceName"`
	Category    string  `bson:"category" json:"category"`
	Price       float64 `bson:"price" json:"price"`
}
