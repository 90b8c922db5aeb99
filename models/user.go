package models

import "time"

// User roles.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleCustomer = "customer"
)

// User represents a registered account.
type User struct {
	ID            string         `bson:"id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Email         string         `bson:"email" json:"email"`
	Phone         string         `bson:"phone,omitempty" json:"phone,omitempty"`
	Role          string         `bson:"role" json:"role"` // admin, manager or customer
	PasswordHash  string         `bson:"passwordHash" json:"-"`
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// Notification is an in-document message appended to a user, e.g. a
// check-in reminder or a payment confirmation.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	Type      string         `bson:"type" json:"type"`
	Message   string         `bson:"message" json:"message"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}

// IsElevated reports whether the role may manage other users' resources.
func (u *User) IsElevated() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}
