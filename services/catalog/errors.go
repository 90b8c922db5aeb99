package catalog

import "errors"

// ErrNotFound signals a missing service record.
var ErrNotFound = errors.New("service not found")

// ErrInvalidCategory signals a category outside Room/Hall/Office.
var ErrInvalidCategory = errors.New("category must be Room, Hall or Office")

// ErrUploadsDisabled signals that no storage backend is configured.
var ErrUploadsDisabled = errors.New("image uploads are not configured")
