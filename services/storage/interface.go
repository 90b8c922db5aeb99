package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService abstracts the object store holding service images.
type StorageService interface {
	// UploadFile uploads a local file into the destination folder and
	// returns its public URL.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
