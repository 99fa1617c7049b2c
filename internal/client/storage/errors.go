package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrOperationNotFound indicates that queued operation was not found
	ErrOperationNotFound = errors.New("queued operation not found")

	// ErrRecordNotFound indicates that cached record was not found
	ErrRecordNotFound = errors.New("cached record not found")

	// ErrMetadataNotFound indicates that sync metadata for a table was not found
	ErrMetadataNotFound = errors.New("sync metadata not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
