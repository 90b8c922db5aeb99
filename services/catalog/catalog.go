package catalog

import (
	"context"
	"fmt"

	"hotelms/models"
	"hotelms/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// imageFolder is the object-store folder for service images.
const imageFolder = "hotel_images"

func validCategory(category string) bool {
	switch category {
	case models.CategoryRoom, models.CategoryHall, models.CategoryOffice:
		return true
	}
	return false
}

// CreateService inserts a new catalog entry.
func (s *DefaultCatalogService) CreateService(input ServiceInput) (*models.Service, error) {
	if input.ServiceName == "" || input.Type == "" || input.Description == "" {
		return nil, fmt.Errorf("serviceName, type and description are required")
	}
	if !validCategory(input.Category) {
		return nil, ErrInvalidCategory
	}
	if input.Price <= 0 {
		return nil, fmt.Errorf("price must be positive")
	}

	svc := &models.Service{
		ID:          uuid.New().String(),
		ServiceName: input.ServiceName,
		Category:    input.Category,
		Type:        input.Type,
		Price:       input.Price,
		Description: input.Description,
	}
	if err := s.Repo.Create(svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	utils.GetLogger().Info("Service created",
		zap.String("serviceId", svc.ID), zap.String("category", svc.Category))
	return svc, nil
}

// GetServiceByID retrieves a catalog entry.
func (s *DefaultCatalogService) GetServiceByID(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	return svc, nil
}

// GetAllServices retrieves all catalog entries.
func (s *DefaultCatalogService) GetAllServices() ([]models.Service, error) {
	return s.Repo.GetAll()
}

// UpdateService applies a partial update to a catalog entry.
func (s *DefaultCatalogService) UpdateService(id string, input ServiceInput) (*models.Service, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	fields := map[string]any{}
	if input.ServiceName != "" {
		fields["serviceName"] = input.ServiceName
	}
	if input.Category != "" {
		if !validCategory(input.Category) {
			return nil, ErrInvalidCategory
		}
		fields["category"] = input.Category
	}
	if input.Type != "" {
		fields["type"] = input.Type
	}
	if input.Price > 0 {
		fields["price"] = input.Price
	}
	if input.Description != "" {
		fields["description"] = input.Description
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return s.Repo.GetByID(id)
}

// DeleteService removes a catalog entry.
func (s *DefaultCatalogService) DeleteService(id string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch service: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.Repo.Delete(id)
}

// UploadServiceImage stores the image in the object store and appends
// its URL to the service document.
func (s *DefaultCatalogService) UploadServiceImage(ctx context.Context, id, localFilePath string) (string, error) {
	if s.Storage == nil {
		return "", ErrUploadsDisabled
	}

	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return "", fmt.Errorf("failed to fetch service: %w", err)
	}
	if existing == nil {
		return "", ErrNotFound
	}

	url, err := s.Storage.UploadFile(ctx, localFilePath, imageFolder)
	if err != nil {
		return "", fmt.Errorf("failed to upload service image: %w", err)
	}
	if err := s.Repo.AddImage(id, url); err != nil {
		return "", fmt.Errorf("failed to record service image: %w", err)
	}
	return url, nil
}
