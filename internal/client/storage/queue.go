package storage

import (
	"context"

	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

//go:generate moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines interface for the durable operation queue on client.
// Операции хранятся в порядке добавления; Seq назначается хранилищем
// и задаёт FIFO порядок.
type QueueStorage interface {
	// AppendOperation durably appends an operation to the queue and assigns op.Seq.
	// The write is committed before return: a crash right after a user action
	// must not lose the mutation.
	AppendOperation(ctx context.Context, op *models.QueuedOperation) error

	// AppendOperationWithCache appends an operation and applies the optimistic
	// cache record in the same transaction
	AppendOperationWithCache(ctx context.Context, op *models.QueuedOperation, rec *models.CachedRecord) error

	// GetOperation retrieves an operation by its local ID
	// Returns ErrOperationNotFound if it doesn't exist
	GetOperation(ctx context.Context, id string) (*models.QueuedOperation, error)

	// UpdateOperation overwrites an existing operation (status transitions)
	UpdateOperation(ctx context.Context, op *models.QueuedOperation) error

	// DeleteOperation removes an operation from the queue (after server confirmation)
	DeleteOperation(ctx context.Context, id string) error

	// ListOperations returns all queued operations in FIFO (Seq) order
	ListOperations(ctx context.Context) ([]*models.QueuedOperation, error)

	// CountByStatus returns the number of operations per status
	CountByStatus(ctx context.Context) (map[models.OperationStatus]int, error)
}
