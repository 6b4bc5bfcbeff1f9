package services

import (
	"errors"
	"fmt"
)

// ErrCatalogLoad marks catalog fetch/parse failures
var ErrCatalogLoad = errors.New("catalog load failed")

// ErrUploadRejected marks uploads refused for MIME type or size
var ErrUploadRejected = errors.New("upload rejected")

// ErrPersistence marks failures writing the submission record or its files
var ErrPersistence = errors.New("persistence failed")

// ValidationError reports a missing required submission field.
// It never reaches the persistence boundary.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
