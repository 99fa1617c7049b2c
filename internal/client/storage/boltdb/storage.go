package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketAuth       = []byte("auth")
	bucketQueue      = []byte("queue")
	bucketQueueIndex = []byte("queue_index") // op ID → seq
	bucketCache      = []byte("cache")
	bucketMeta       = []byte("sync_meta")
)

// Storage represents BoltDB storage implementation for the field-agent client.
// Держит очередь операций, кэш справочных данных, sync-метаданные и данные
// авторизации в одном файле.
type Storage struct {
	db         *bbolt.DB
	path       string
	quotaBytes int64
}

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file; quotaBytes is the local
// storage quota used for UsagePercent (0 disables the estimate).
func New(ctx context.Context, dbPath string, quotaBytes int64) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db, path: dbPath, quotaBytes: quotaBytes}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketQueue, bucketQueueIndex, bucketCache, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// UsagePercent returns the size of the database file relative to the quota
func (s *Storage) UsagePercent(ctx context.Context) (float64, error) {
	if s.db == nil {
		return 0, fmt.Errorf("storage is closed")
	}
	if s.quotaBytes <= 0 {
		return 0, nil
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat database file: %w", err)
	}
	return float64(info.Size()) / float64(s.quotaBytes) * 100, nil
}

// itob converts a uint64 into a big-endian byte slice.
// Big-endian сохраняет порядок сортировки ключей в bbolt.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// btoi converts a big-endian byte slice back into a uint64
func btoi(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}
