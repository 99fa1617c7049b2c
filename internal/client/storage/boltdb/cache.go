package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.etcd.io/bbolt"

	"github.com/Junior620/cocoatrack-sub003/internal/client/storage"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

// cacheKey строит ключ записи в кэше: "<table>/<recordID>"
func cacheKey(table, recordID string) []byte {
	return []byte(table + "/" + recordID)
}

// putCacheRecord сохраняет запись кэша внутри существующей транзакции
func putCacheRecord(tx *bbolt.Tx, rec *models.CachedRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal cached record: %w", err)
	}
	if err := tx.Bucket(bucketCache).Put(cacheKey(rec.Table, rec.RecordID), data); err != nil {
		return fmt.Errorf("failed to save cached record: %w", err)
	}
	return nil
}

// SaveRecord stores or updates a cached record
func (s *Storage) SaveRecord(ctx context.Context, rec *models.CachedRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return putCacheRecord(tx, rec)
	})
	if err != nil {
		return fmt.Errorf("save record transaction failed: %w", err)
	}
	return nil
}

// GetRecord retrieves a cached record
func (s *Storage) GetRecord(ctx context.Context, table, recordID string) (*models.CachedRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var rec *models.CachedRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketCache).Get(cacheKey(table, recordID))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		rec = &models.CachedRecord{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to unmarshal cached record: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteRecord removes a cached record
func (s *Storage) DeleteRecord(ctx context.Context, table, recordID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCache).Delete(cacheKey(table, recordID))
	})
	if err != nil {
		return fmt.Errorf("delete record transaction failed: %w", err)
	}
	return nil
}

// ListRecords returns all non-deleted records of a table
func (s *Storage) ListRecords(ctx context.Context, table string) ([]*models.CachedRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*models.CachedRecord
	prefix := []byte(table + "/")

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketCache).Cursor()
		for k, v := c.Seek(prefix); k != nil && strings.HasPrefix(string(k), string(prefix)); k, v = c.Next() {
			var rec models.CachedRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to unmarshal cached record: %w", err)
			}
			if !rec.Deleted {
				records = append(records, &rec)
			}
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// CountByTable returns the number of non-deleted records per table
func (s *Storage) CountByTable(ctx context.Context) (map[string]int, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	counts := make(map[string]int)

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCache).ForEach(func(k, v []byte) error {
			var rec models.CachedRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to unmarshal cached record: %w", err)
			}
			if !rec.Deleted {
				counts[rec.Table]++
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}
	return counts, nil
}
