package catalog

import (
	"context"

	catalogRepo "hotelms/database/repository/catalog"
	"hotelms/models"
	"hotelms/services/storage"
)

// ServiceInput carries the fields accepted when creating or updating a
// catalog entry. On update, zero values mean unchanged.
type ServiceInput struct {
	ServiceName string
	Category    string
	Type        string
	Price       float64
	Description string
}

// CatalogService manages the bookable inventory (rooms, halls, offices).
type CatalogService interface {
	CreateService(input ServiceInput) (*models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
	GetAllServices() ([]models.Service, error)
	UpdateService(id string, input ServiceInput) (*models.Service, error)
	DeleteService(id string) error
	UploadServiceImage(ctx context.Context, id, localFilePath string) (string, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo    catalogRepo.ServiceRepository
	Storage storage.StorageService // optional; nil disables image upload
}
