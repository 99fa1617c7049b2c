package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/Junior620/cocoatrack-sub003/internal/client/storage"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

// AppendOperation durably appends an operation to the queue and assigns op.Seq
func (s *Storage) AppendOperation(ctx context.Context, op *models.QueuedOperation) error {
	return s.AppendOperationWithCache(ctx, op, nil)
}

// AppendOperationWithCache appends an operation and applies the optimistic
// cache record in the same transaction. Либо обе записи фиксируются,
// либо ни одна.
func (s *Storage) AppendOperationWithCache(ctx context.Context, op *models.QueuedOperation, rec *models.CachedRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		queue := tx.Bucket(bucketQueue)
		index := tx.Bucket(bucketQueueIndex)

		// Назначаем порядковый номер из последовательности bucket'а
		seq, err := queue.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}
		op.Seq = seq

		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}

		if err := queue.Put(itob(seq), data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}
		if err := index.Put([]byte(op.ID), itob(seq)); err != nil {
			return fmt.Errorf("failed to index operation: %w", err)
		}

		// Оптимистичное обновление кэша в той же транзакции
		if rec != nil {
			if err := putCacheRecord(tx, rec); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("append transaction failed: %w", err)
	}
	return nil
}

// GetOperation retrieves an operation by its local ID
func (s *Storage) GetOperation(ctx context.Context, id string) (*models.QueuedOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var op *models.QueuedOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		seqKey := tx.Bucket(bucketQueueIndex).Get([]byte(id))
		if seqKey == nil {
			return storage.ErrOperationNotFound
		}

		data := tx.Bucket(bucketQueue).Get(seqKey)
		if data == nil {
			return storage.ErrOperationNotFound
		}

		op = &models.QueuedOperation{}
		if err := json.Unmarshal(data, op); err != nil {
			return fmt.Errorf("failed to unmarshal operation: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return op, nil
}

// UpdateOperation overwrites an existing operation (status transitions are atomic)
func (s *Storage) UpdateOperation(ctx context.Context, op *models.QueuedOperation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		seqKey := tx.Bucket(bucketQueueIndex).Get([]byte(op.ID))
		if seqKey == nil {
			return storage.ErrOperationNotFound
		}

		// Seq не меняется при обновлении статуса
		op.Seq = btoi(seqKey)

		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}
		if err := tx.Bucket(bucketQueue).Put(seqKey, data); err != nil {
			return fmt.Errorf("failed to update operation: %w", err)
		}
		return nil
	})

	if err != nil {
		if err == storage.ErrOperationNotFound {
			return err
		}
		return fmt.Errorf("update transaction failed: %w", err)
	}
	return nil
}

// DeleteOperation removes an operation from the queue
func (s *Storage) DeleteOperation(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		index := tx.Bucket(bucketQueueIndex)
		seqKey := index.Get([]byte(id))
		if seqKey == nil {
			return storage.ErrOperationNotFound
		}

		if err := tx.Bucket(bucketQueue).Delete(seqKey); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}
		if err := index.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete operation index: %w", err)
		}
		return nil
	})

	if err != nil {
		if err == storage.ErrOperationNotFound {
			return err
		}
		return fmt.Errorf("delete transaction failed: %w", err)
	}
	return nil
}

// ListOperations returns all queued operations in FIFO (Seq) order.
// bbolt итерирует ключи в байтовом порядке, big-endian seq сохраняет FIFO.
func (s *Storage) ListOperations(ctx context.Context) ([]*models.QueuedOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.QueuedOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketQueue).ForEach(func(k, v []byte) error {
			var op models.QueuedOperation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	return ops, nil
}

// CountByStatus returns the number of operations per status
func (s *Storage) CountByStatus(ctx context.Context) (map[models.OperationStatus]int, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	counts := make(map[models.OperationStatus]int)

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketQueue).ForEach(func(k, v []byte) error {
			var op models.QueuedOperation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			counts[op.Status]++
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to count operations: %w", err)
	}
	return counts, nil
}
