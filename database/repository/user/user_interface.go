package userRepo

import "hotelms/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns nil if absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil if absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateFields applies a partial update to the user document.
	UpdateFields(id string, fields map[string]any) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// AppendNotification pushes a notification onto the user document.
	AppendNotification(id string, n models.Notification) error
}
