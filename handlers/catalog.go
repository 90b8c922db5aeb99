package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"hotelms/services/booking"
	"hotelms/services/catalog"
	"hotelms/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxImageSize caps service image uploads at 5 MB.
const maxImageSize = 5 << 20

// CatalogHandler serves the bookable inventory endpoints.
type CatalogHandler struct {
	Catalog catalog.CatalogService
	Engine  booking.BookingEngine
}

// CreateServiceHandler handles POST /api/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var req struct {
		ServiceName string  `json:"serviceName" binding:"required"`
		Category    string  `json:"category" binding:"required"`
		Type        string  `json:"type" binding:"required"`
		Price       float64 `json:"price" binding:"required,gt=0"`
		Description string  `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	svc, err := h.Catalog.CreateService(catalog.ServiceInput{
		ServiceName: req.ServiceName,
		Category:    req.Category,
		Type:        req.Type,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidCategory) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.GetLogger().Error("Failed to create service", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}
	respond(c, http.StatusCreated, "Service created", svc)
}

// GetAllServicesHandler handles GET /api/services.
func (h *CatalogHandler) GetAllServicesHandler(c *gin.Context) {
	services, err := h.Catalog.GetAllServices()
	if err != nil {
		utils.GetLogger().Error("Failed to list services", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}
	respondList(c, http.StatusOK, "Services fetched", services, len(services))
}

// GetServiceByIDHandler handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceByIDHandler(c *gin.Context) {
	id := c.Param("id")
	svc, err := h.Catalog.GetServiceByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Service not found")
			return
		}
		utils.GetLogger().Error("Failed to fetch service", zap.String("id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch service")
		return
	}
	respond(c, http.StatusOK, "Service fetched", svc)
}

// UpdateServiceHandler handles PUT /api/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		ServiceName string  `json:"serviceName"`
		Category    string  `json:"category"`
		Type        string  `json:"type"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	svc, err := h.Catalog.UpdateService(id, catalog.ServiceInput{
		ServiceName: req.ServiceName,
		Category:    req.Category,
		Type:        req.Type,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			respondError(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, catalog.ErrInvalidCategory):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			utils.GetLogger().Error("Failed to update service", zap.String("id", id), zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Failed to update service")
		}
		return
	}
	respond(c, http.StatusOK, "Service updated", svc)
}

// DeleteServiceHandler handles DELETE /api/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Catalog.DeleteService(id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Service not found")
			return
		}
		utils.GetLogger().Error("Failed to delete service", zap.String("id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	respond(c, http.StatusOK, "Service deleted", nil)
}

// UploadImageHandler handles POST /api/services/:id/images. The file is
// spooled to a temp path, pushed to the object store, then cleaned up.
func (h *CatalogHandler) UploadImageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "An image file is required")
		return
	}
	if file.Size > maxImageSize {
		respondError(c, http.StatusBadRequest, "Image exceeds the 5MB limit")
		return
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("svc-%s-%s", id, filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Failed to spool upload", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to process upload")
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Catalog.UploadServiceImage(c.Request.Context(), id, tmpPath)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			respondError(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, catalog.ErrUploadsDisabled):
			respondError(c, http.StatusServiceUnavailable, "Image uploads are not configured")
		default:
			logger.Error("Failed to upload image", zap.String("id", id), zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Failed to upload image")
		}
		return
	}
	respond(c, http.StatusCreated, "Image uploaded", gin.H{"url": url})
}

// AvailabilityHandler handles GET /api/services/:id/availability.
// Query params checkIn and checkOut bound the stay being probed.
func (h *CatalogHandler) AvailabilityHandler(c *gin.Context) {
	id := c.Param("id")
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")
	if checkIn == "" || checkOut == "" {
		respondError(c, http.StatusBadRequest, "checkIn and checkOut query parameters are required")
		return
	}

	available, err := h.Engine.CheckAvailability(id, checkIn, checkOut)
	if err != nil {
		switch booking.CodeOf(err) {
		case booking.CodeInvalidInput:
			respondError(c, http.StatusBadRequest, booking.MessageOf(err))
		case booking.CodeNotFound:
			respondError(c, http.StatusNotFound, booking.MessageOf(err))
		default:
			utils.GetLogger().Error("Availability check failed", zap.String("id", id), zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Failed to check availability")
		}
		return
	}
	respond(c, http.StatusOK, "Availability checked", gin.H{
		"serviceId": id,
		"checkIn":   checkIn,
		"checkOut":  checkOut,
		"available": available,
	})
}
