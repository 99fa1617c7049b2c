package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Junior620/cocoatrack-sub003/internal/client/storage"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

var keyLastActivity = []byte("last_activity")

// metaKey строит ключ метаданных таблицы
func metaKey(table string) []byte {
	return []byte("table/" + table)
}

// SaveSyncMetadata saves the sync cursor for a table
func (s *Storage) SaveSyncMetadata(ctx context.Context, meta *models.SyncMetadata) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal sync metadata: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(metaKey(meta.Table), data)
	})
	if err != nil {
		return fmt.Errorf("save metadata transaction failed: %w", err)
	}
	return nil
}

// GetSyncMetadata retrieves the sync cursor for a table
func (s *Storage) GetSyncMetadata(ctx context.Context, table string) (*models.SyncMetadata, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var meta *models.SyncMetadata

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(metaKey(table))
		if data == nil {
			return storage.ErrMetadataNotFound
		}

		meta = &models.SyncMetadata{}
		if err := json.Unmarshal(data, meta); err != nil {
			return fmt.Errorf("failed to unmarshal sync metadata: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return meta, nil
}

// TouchActivity records the time of the last user/sync activity
func (s *Storage) TouchActivity(ctx context.Context, at time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		value := strconv.FormatInt(at.UnixMilli(), 10)
		return tx.Bucket(bucketMeta).Put(keyLastActivity, []byte(value))
	})
	if err != nil {
		return fmt.Errorf("touch activity transaction failed: %w", err)
	}
	return nil
}

// GetLastActivity returns the time of the last recorded activity
func (s *Storage) GetLastActivity(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var at time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keyLastActivity)
		if data == nil {
			// Активность ни разу не записывалась
			return nil
		}

		millis, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse last activity: %w", err)
		}
		at = time.UnixMilli(millis)
		return nil
	})

	if err != nil {
		return time.Time{}, err
	}
	return at, nil
}
