package storage

import (
	"context"
	"time"

	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

//go:generate moq -out metadatastorage_mock.go . MetadataStorage

// MetadataStorage defines interface for storing per-table sync metadata
// and the last recorded activity timestamp
type MetadataStorage interface {
	// SaveSyncMetadata saves the sync cursor for a table
	SaveSyncMetadata(ctx context.Context, meta *models.SyncMetadata) error

	// GetSyncMetadata retrieves the sync cursor for a table
	// Returns ErrMetadataNotFound if the table has never been synced
	GetSyncMetadata(ctx context.Context, table string) (*models.SyncMetadata, error)

	// TouchActivity records the time of the last user/sync activity
	TouchActivity(ctx context.Context, at time.Time) error

	// GetLastActivity returns the time of the last recorded activity.
	// Returns zero time if no activity was ever recorded.
	GetLastActivity(ctx context.Context) (time.Time, error)
}
