// Package app собирает клиентские сервисы в единый фасад для UI слоёв
// (CLI, мобильная оболочка). Фасад гейтирует действия пользователя через
// degraded-mode менеджер и прячет от UI детали очереди и синхронизации.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Junior620/cocoatrack-sub003/internal/client/conflict"
	"github.com/Junior620/cocoatrack-sub003/internal/client/degraded"
	"github.com/Junior620/cocoatrack-sub003/internal/client/platform"
	"github.com/Junior620/cocoatrack-sub003/internal/client/queue"
	"github.com/Junior620/cocoatrack-sub003/internal/client/storage"
	"github.com/Junior620/cocoatrack-sub003/internal/client/syncer"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

//go:generate moq -out syncer_mock.go . Syncer

// Syncer определяет подмножество sync-движка, нужное фасаду
type Syncer interface {
	// Sync выполняет один проход синхронизации
	Sync(ctx context.Context, accessToken string) (*syncer.SyncResult, error)

	// IsSyncing сообщает, идёт ли проход прямо сейчас
	IsSyncing() bool
}

// ErrActionDisabled возвращается, когда действие заблокировано
// текущим деградированным режимом
var ErrActionDisabled = errors.New("action is disabled in the current mode")

// App фасад клиентского приложения
type App struct {
	queue     queue.Service
	syncer    Syncer
	degraded  *degraded.Manager
	resolver  *conflict.Resolver
	cache     storage.CacheStorage
	integrity *platform.IntegrityChecker
	logger    *slog.Logger
	now       func() time.Time
}

// Option настраивает фасад
type Option func(*App)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New creates the client application facade.
func New(q queue.Service, s Syncer, dm *degraded.Manager, resolver *conflict.Resolver, cache storage.CacheStorage, integrity *platform.IntegrityChecker, logger *slog.Logger, opts ...Option) *App {
	a := &App{
		queue:     q,
		syncer:    s,
		degraded:  dm,
		resolver:  resolver,
		cache:     cache,
		integrity: integrity,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SubmitOperation ставит локальную мутацию в очередь, если действие
// не заблокировано деградированным режимом
func (a *App) SubmitOperation(ctx context.Context, params queue.EnqueueParams) (*models.QueuedOperation, error) {
	if err := a.gate(actionFor(params.Type, params.Table)); err != nil {
		return nil, err
	}

	op, err := a.queue.Enqueue(ctx, params)
	if err != nil {
		return nil, err
	}

	a.refreshDegraded(ctx)
	return op, nil
}

// Sync выполняет один проход синхронизации
func (a *App) Sync(ctx context.Context, accessToken string) (*syncer.SyncResult, error) {
	if err := a.gate(models.ActionSync); err != nil {
		return nil, err
	}

	result, err := a.syncer.Sync(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	a.refreshDegraded(ctx)
	return result, nil
}

// IsSyncing сообщает, идёт ли sync-проход прямо сейчас
func (a *App) IsSyncing() bool {
	return a.syncer.IsSyncing()
}

// PendingCount возвращает количество неотправленных операций
func (a *App) PendingCount(ctx context.Context) (int, error) {
	return a.queue.PendingCount(ctx)
}

// ConflictCount возвращает количество неразрешённых конфликтов
func (a *App) ConflictCount(ctx context.Context) (int, error) {
	return a.queue.ConflictCount(ctx)
}

// Operations возвращает все операции очереди в FIFO порядке
func (a *App) Operations(ctx context.Context) ([]*models.QueuedOperation, error) {
	return a.queue.List(ctx)
}

// Conflicts возвращает операции, ожидающие ручного разрешения конфликта
func (a *App) Conflicts(ctx context.Context) ([]*models.QueuedOperation, error) {
	ops, err := a.queue.List(ctx)
	if err != nil {
		return nil, err
	}

	var conflicts []*models.QueuedOperation
	for _, op := range ops {
		if op.Status == models.StatusNeedsReview {
			conflicts = append(conflicts, op)
		}
	}
	return conflicts, nil
}

// ResolveConflict применяет явные выборы пользователя к конфликтующей
// операции и возвращает её в очередь, перебазированную на серверную версию.
// Каждое критичное конфликтующее поле обязано иметь выбор.
func (a *App) ResolveConflict(ctx context.Context, opID string, choices map[string]conflict.Choice) error {
	op, err := a.queue.Get(ctx, opID)
	if err != nil {
		return err
	}
	if op.Status != models.StatusNeedsReview {
		return fmt.Errorf("operation %s is %s, only conflicts awaiting review can be resolved", opID, op.Status)
	}

	merged, err := a.resolver.ApplyChoices(op.Table, op.BaseSnapshot, op.Data, op.RemoteSnapshot, choices)
	if err != nil {
		return err
	}

	if err := a.queue.Requeue(ctx, opID, merged, op.RemoteVersion, op.RemoteSnapshot); err != nil {
		return err
	}

	a.logger.Info("Conflict resolved",
		"op_id", opID,
		"table", op.Table,
		"record_id", op.RecordID)

	a.refreshDegraded(ctx)
	return nil
}

// DismissConflict отбрасывает локальную мутацию и принимает серверную
// версию записи целиком. Операция удаляется из очереди и перестаёт
// блокировать последующие операции той же записи.
func (a *App) DismissConflict(ctx context.Context, opID string) error {
	op, err := a.queue.Get(ctx, opID)
	if err != nil {
		return err
	}
	if op.Status != models.StatusNeedsReview {
		return fmt.Errorf("operation %s is %s, only conflicts awaiting review can be dismissed", opID, op.Status)
	}

	if err := a.queue.MarkResolved(ctx, opID); err != nil {
		return err
	}

	// Серверная версия становится локальной истиной
	if len(op.RemoteSnapshot) == 0 {
		if err := a.cache.DeleteRecord(ctx, op.Table, op.RecordID); err != nil {
			return fmt.Errorf("failed to drop local record: %w", err)
		}
	} else {
		rec := &models.CachedRecord{
			Table:         op.Table,
			RecordID:      op.RecordID,
			Data:          op.RemoteSnapshot,
			ServerVersion: op.RemoteVersion,
			UpdatedAt:     a.now().UTC(),
		}
		if err := a.cache.SaveRecord(ctx, rec); err != nil {
			return fmt.Errorf("failed to apply server record: %w", err)
		}
	}

	a.logger.Info("Conflict dismissed, server version kept",
		"op_id", opID,
		"table", op.Table,
		"record_id", op.RecordID)

	a.refreshDegraded(ctx)
	return nil
}

// Retry возвращает failed операцию в pending
func (a *App) Retry(ctx context.Context, opID string) error {
	if err := a.queue.RetryFailed(ctx, opID); err != nil {
		return err
	}
	a.refreshDegraded(ctx)
	return nil
}

// Records возвращает кэшированные записи таблицы
func (a *App) Records(ctx context.Context, table string) ([]*models.CachedRecord, error) {
	return a.cache.ListRecords(ctx, table)
}

// DegradedState возвращает последний снимок деградированного режима
func (a *App) DegradedState() models.DegradedState {
	return a.degraded.State()
}

// RefreshDegraded пересчитывает деградированный режим по текущим входам
func (a *App) RefreshDegraded(ctx context.Context) (models.DegradedState, error) {
	return a.degraded.Recompute(ctx)
}

// IsActionDisabled reports whether the action is blocked in the current mode.
func (a *App) IsActionDisabled(action models.Action) bool {
	return a.degraded.IsActionDisabled(action)
}

// DisabledTooltip returns the user-facing reason for the current restrictions.
func (a *App) DisabledTooltip() string {
	return a.degraded.Tooltip()
}

// IntegrityCheck проверяет локальный кэш на признаки вытеснения данных платформой
func (a *App) IntegrityCheck(ctx context.Context) (*platform.IntegrityReport, error) {
	return a.integrity.Check(ctx)
}

// gate возвращает ошибку, если действие заблокировано текущим режимом
func (a *App) gate(action models.Action) error {
	if !a.degraded.IsActionDisabled(action) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrActionDisabled, a.degraded.Tooltip())
}

// actionFor сопоставляет мутацию с гейтируемым действием
func actionFor(opType models.OperationType, table string) models.Action {
	if table != models.TableDeliveries {
		return models.ActionEditReference
	}
	switch opType {
	case models.OpUpdate:
		return models.ActionUpdateDelivery
	case models.OpDelete:
		return models.ActionDeleteDelivery
	default:
		return models.ActionCreateDelivery
	}
}

// refreshDegraded пересчитывает режим после мутации, не пробрасывая ошибку:
// снимок режима вторичен по отношению к результату операции
func (a *App) refreshDegraded(ctx context.Context) {
	if _, err := a.degraded.Recompute(ctx); err != nil {
		a.logger.Warn("Failed to recompute degraded mode", "error", err)
	}
}
