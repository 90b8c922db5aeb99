package catalogRepo

import "hotelms/models"

// ServiceRepository defines data access for bookable inventory items.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID. Returns nil if absent.
	GetByID(id string) (*models.Service, error)
	// GetAll retrieves all services.
	GetAll() ([]models.Service, error)
	// Create inserts a new service record.
	Create(svc *models.Service) error
	// UpdateFields applies a partial update to the service document.
	UpdateFields(id string, fields map[string]any) error
	// Delete removes a service record by its ID.
	Delete(id string) error
	// AddImage appends an uploaded image URL to the service document.
	AddImage(id, url string) error
}
