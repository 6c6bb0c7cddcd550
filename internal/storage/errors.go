package storage

import "fmt"

// StorageError represents a storage-specific error with a code and message.
// Codes mirror the domain error codes to avoid a circular import; the
// handler layer maps them to HTTP status codes.
type StorageError struct {
	Code    string
	Message string
}

const (
	codeInternal = "internal"
	codeNotFound = "not_found"
)

func (e *StorageError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *StorageError) ErrorCode() string {
	return e.Code
}

// ErrFileNotFound creates an error for when a file is not found.
func ErrFileNotFound(key string) error {
	return &StorageError{
		Code:    codeNotFound,
		Message: fmt.Sprintf("file not found: %s", key),
	}
}
