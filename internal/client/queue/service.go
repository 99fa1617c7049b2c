package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Junior620/cocoatrack-sub003/internal/client/storage"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
	"github.com/Junior620/cocoatrack-sub003/internal/validation"
)

// idempotencyNamespace пространство имён для детерминированных ключей
// идемпотентности (uuid v5). Значение фиксировано: один и тот же вход
// всегда даёт один и тот же ключ.
var idempotencyNamespace = uuid.MustParse("7c9e2f14-53ab-4b6e-9c1d-2f8a5e0d4b71")

// IdempotencyKey детерминированно выводит ключ идемпотентности операции
// из (table, recordID, type, локального ID операции). Повторная отправка
// той же операции всегда несёт тот же ключ, поэтому сервер может
// распознать повтор и вернуть сохранённый результат.
func IdempotencyKey(table, recordID string, opType models.OperationType, opID string) string {
	input := table + "|" + recordID + "|" + string(opType) + "|" + opID
	return uuid.NewSHA1(idempotencyNamespace, []byte(input)).String()
}

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс очереди отложенных операций
type Service interface {
	// Enqueue ставит локальную мутацию в очередь и применяет оптимистичное
	// обновление кэша в той же транзакции. Никогда не ходит в сеть.
	Enqueue(ctx context.Context, params EnqueueParams) (*models.QueuedOperation, error)

	// DequeueNext возвращает следующую операцию в FIFO-порядке per-record.
	// Возвращает (nil, nil) если отправлять нечего.
	DequeueNext(ctx context.Context) (*models.QueuedOperation, error)

	// MarkSyncing помечает операцию как отправляемую
	MarkSyncing(ctx context.Context, id string) error

	// MarkResolved удаляет подтверждённую сервером операцию из очереди
	MarkResolved(ctx context.Context, id string) error

	// MarkPending возвращает операцию в pending после неуспешной попытки
	MarkPending(ctx context.Context, id string, attempts int, lastErr string) error

	// MarkNeedsReview помечает операцию как требующую ручного разрешения
	// конфликта, сохраняя серверный снимок записи для последующего мержа
	MarkNeedsReview(ctx context.Context, id string, details []models.ConflictDetail, remote json.RawMessage, remoteVersion int64) error

	// MarkFailed помечает операцию как окончательно неуспешную
	MarkFailed(ctx context.Context, id string, reason string) error

	// Requeue возвращает операцию в pending с новыми данными и базой
	// (после разрешения конфликта)
	Requeue(ctx context.Context, id string, data json.RawMessage, baseVersion int64, baseSnapshot json.RawMessage) error

	// RetryFailed возвращает failed операцию в pending со сброшенным счётчиком попыток
	RetryFailed(ctx context.Context, id string) error

	// Get возвращает операцию по ID
	Get(ctx context.Context, id string) (*models.QueuedOperation, error)

	// List возвращает все операции в FIFO порядке
	List(ctx context.Context) ([]*models.QueuedOperation, error)

	// PendingCount возвращает количество неотправленных операций
	// (pending + syncing + failed)
	PendingCount(ctx context.Context) (int, error)

	// ConflictCount возвращает количество операций, ожидающих разрешения конфликта
	ConflictCount(ctx context.Context) (int, error)
}

// EnqueueParams параметры постановки операции в очередь
type EnqueueParams struct {
	Type     models.OperationType
	Table    string
	RecordID string
	Data     json.RawMessage

	// Base состояние записи, которое клиент видел перед мутацией.
	// nil для CREATE новых записей.
	Base *models.CachedRecord
}

type service struct {
	store  storage.QueueStorage
	logger *slog.Logger

	// onChange вызывается после каждой мутации очереди;
	// потребитель - degraded-mode менеджер
	onChange func()

	now func() time.Time
}

// Option настраивает queue service
type Option func(*service)

// WithOnChange устанавливает callback, вызываемый после каждой мутации очереди
func WithOnChange(fn func()) Option {
	return func(s *service) { s.onChange = fn }
}

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates a new operation queue service
func NewService(store storage.QueueStorage, logger *slog.Logger, opts ...Option) Service {
	s := &service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Enqueue ставит локальную мутацию в очередь
func (s *service) Enqueue(ctx context.Context, params EnqueueParams) (*models.QueuedOperation, error) {
	if err := validation.ValidateOperation(params.Type, params.Table, params.RecordID, params.Data); err != nil {
		return nil, fmt.Errorf("invalid operation: %w", err)
	}

	op := &models.QueuedOperation{
		ID:        uuid.New().String(),
		Type:      params.Type,
		Table:     params.Table,
		RecordID:  params.RecordID,
		Data:      params.Data,
		Status:    models.StatusPending,
		CreatedAt: s.now().UTC(),
	}
	op.IdempotencyKey = IdempotencyKey(op.Table, op.RecordID, op.Type, op.ID)

	if params.Base != nil {
		op.BaseVersion = params.Base.ServerVersion
		op.BaseSnapshot = params.Base.Data
	}

	// Оптимистичное локальное состояние: мутация сразу видна пользователю
	rec := &models.CachedRecord{
		Table:     op.Table,
		RecordID:  op.RecordID,
		Data:      op.Data,
		UpdatedAt: op.CreatedAt,
		Deleted:   op.Type == models.OpDelete,
	}
	if params.Base != nil {
		rec.ServerVersion = params.Base.ServerVersion
	}

	if err := s.store.AppendOperationWithCache(ctx, op, rec); err != nil {
		return nil, fmt.Errorf("failed to enqueue operation: %w", err)
	}

	s.logger.Debug("Operation enqueued",
		"op_id", op.ID,
		"type", op.Type,
		"table", op.Table,
		"record_id", op.RecordID,
		"idempotency_key", op.IdempotencyKey)

	s.notify()
	return op, nil
}

// DequeueNext возвращает следующую операцию для отправки.
// Порядок: FIFO per-record. Запись с более ранней заблокированной операцией
// (needs_review, failed, syncing) блокирует свои последующие операции;
// независимые записи не блокируют друг друга.
func (s *service) DequeueNext(ctx context.Context) (*models.QueuedOperation, error) {
	ops, err := s.store.ListOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	blocked := make(map[string]bool)
	for _, op := range ops {
		key := op.Table + "/" + op.RecordID
		if blocked[key] {
			continue
		}
		if op.Status.Blocks() {
			blocked[key] = true
			continue
		}
		if op.Status == models.StatusPending {
			return op, nil
		}
	}

	return nil, nil
}

// MarkSyncing помечает операцию как отправляемую
func (s *service) MarkSyncing(ctx context.Context, id string) error {
	return s.transition(ctx, id, func(op *models.QueuedOperation) {
		op.Status = models.StatusSyncing
		op.LastAttemptAt = s.now().UTC()
	})
}

// MarkResolved удаляет подтверждённую операцию из очереди
func (s *service) MarkResolved(ctx context.Context, id string) error {
	if err := s.store.DeleteOperation(ctx, id); err != nil {
		return fmt.Errorf("failed to remove resolved operation: %w", err)
	}
	s.notify()
	return nil
}

// MarkPending возвращает операцию в pending после временного сбоя
func (s *service) MarkPending(ctx context.Context, id string, attempts int, lastErr string) error {
	return s.transition(ctx, id, func(op *models.QueuedOperation) {
		op.Status = models.StatusPending
		op.Attempts = attempts
		op.Error = lastErr
	})
}

// MarkNeedsReview помечает операцию как требующую ручного разрешения
func (s *service) MarkNeedsReview(ctx context.Context, id string, details []models.ConflictDetail, remote json.RawMessage, remoteVersion int64) error {
	return s.transition(ctx, id, func(op *models.QueuedOperation) {
		op.Status = models.StatusNeedsReview
		op.Conflicts = details
		op.RemoteSnapshot = remote
		op.RemoteVersion = remoteVersion
	})
}

// MarkFailed помечает операцию как окончательно неуспешную.
// Операция остаётся в очереди и видна пользователю до ручного retry.
func (s *service) MarkFailed(ctx context.Context, id string, reason string) error {
	return s.transition(ctx, id, func(op *models.QueuedOperation) {
		op.Status = models.StatusFailed
		op.Error = reason
	})
}

// Requeue возвращает операцию в pending с новыми данными после разрешения конфликта
func (s *service) Requeue(ctx context.Context, id string, data json.RawMessage, baseVersion int64, baseSnapshot json.RawMessage) error {
	return s.transition(ctx, id, func(op *models.QueuedOperation) {
		op.Status = models.StatusPending
		op.Data = data
		op.BaseVersion = baseVersion
		op.BaseSnapshot = baseSnapshot
		op.Conflicts = nil
		op.RemoteSnapshot = nil
		op.RemoteVersion = 0
		op.Attempts = 0
		op.Error = ""
	})
}

// RetryFailed возвращает failed операцию в pending
func (s *service) RetryFailed(ctx context.Context, id string) error {
	op, err := s.store.GetOperation(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get operation: %w", err)
	}
	if op.Status != models.StatusFailed {
		return fmt.Errorf("operation %s is %s, only failed operations can be retried", id, op.Status)
	}

	return s.transition(ctx, id, func(op *models.QueuedOperation) {
		op.Status = models.StatusPending
		op.Attempts = 0
		op.Error = ""
	})
}

// Get возвращает операцию по ID
func (s *service) Get(ctx context.Context, id string) (*models.QueuedOperation, error) {
	return s.store.GetOperation(ctx, id)
}

// List возвращает все операции в FIFO порядке
func (s *service) List(ctx context.Context) ([]*models.QueuedOperation, error) {
	return s.store.ListOperations(ctx)
}

// PendingCount возвращает количество неотправленных операций
func (s *service) PendingCount(ctx context.Context) (int, error) {
	counts, err := s.store.CountByStatus(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count operations: %w", err)
	}
	return counts[models.StatusPending] + counts[models.StatusSyncing] + counts[models.StatusFailed], nil
}

// ConflictCount возвращает количество операций с неразрешённым конфликтом
func (s *service) ConflictCount(ctx context.Context) (int, error) {
	counts, err := s.store.CountByStatus(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count operations: %w", err)
	}
	return counts[models.StatusNeedsReview], nil
}

// transition применяет атомарный переход статуса
func (s *service) transition(ctx context.Context, id string, mutate func(*models.QueuedOperation)) error {
	op, err := s.store.GetOperation(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get operation: %w", err)
	}

	mutate(op)

	if err := s.store.UpdateOperation(ctx, op); err != nil {
		return fmt.Errorf("failed to update operation: %w", err)
	}

	s.notify()
	return nil
}
