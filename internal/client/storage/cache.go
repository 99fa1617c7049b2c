package storage

import (
	"context"

	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

//go:generate moq -out cachestorage_mock.go . CacheStorage

// CacheStorage defines interface for the local cache of reference data
// (deliveries, planters, suppliers, warehouses)
type CacheStorage interface {
	// SaveRecord stores or updates a cached record
	SaveRecord(ctx context.Context, rec *models.CachedRecord) error

	// GetRecord retrieves a cached record
	// Returns ErrRecordNotFound if it doesn't exist
	GetRecord(ctx context.Context, table, recordID string) (*models.CachedRecord, error)

	// DeleteRecord removes a cached record
	DeleteRecord(ctx context.Context, table, recordID string) error

	// ListRecords returns all non-deleted records of a table
	ListRecords(ctx context.Context, table string) ([]*models.CachedRecord, error)

	// CountByTable returns the number of non-deleted records per table.
	// Used by the integrity check to detect platform-level data eviction.
	CountByTable(ctx context.Context) (map[string]int, error)
}
