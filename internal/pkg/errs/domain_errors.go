package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")

	// Session errors
	ErrSessionInvalid = errors.New("session invalid")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStorageOperationFailed = errors.New("storage operation failed")
)
