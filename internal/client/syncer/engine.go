// Package syncer реализует движок синхронизации: pull изменений с сервера,
// затем push отложенных операций с ретраями, классификацией сбоев и
// разрешением конфликтов версий.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	clientapi "github.com/Junior620/cocoatrack-sub003/internal/client/api"
	"github.com/Junior620/cocoatrack-sub003/internal/client/conflict"
	"github.com/Junior620/cocoatrack-sub003/internal/client/queue"
	"github.com/Junior620/cocoatrack-sub003/internal/client/storage"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
	"github.com/Junior620/cocoatrack-sub003/pkg/api"
)

//go:generate moq -out apiclient_mock.go . APIClient

// APIClient определяет подмножество серверного API, нужное движку
type APIClient interface {
	// PushOperation отправляет одну операцию.
	// Конфликт версий возвращается как *api.ConflictError.
	PushOperation(ctx context.Context, accessToken string, req api.PushOperationRequest) (*api.PushOperationResponse, error)

	// GetChanges запрашивает изменения таблицы начиная с курсора since
	GetChanges(ctx context.Context, accessToken, table string, since int64) (*api.ChangesResponse, error)
}

// State состояние движка
type State string

// Состояния движка
const (
	StateIdle     State = "idle"
	StateChecking State = "checking"
	StateSyncing  State = "syncing"
	StateDegraded State = "degraded"
)

// ErrSyncInProgress возвращается при попытке запустить второй проход,
// пока первый не завершён
var ErrSyncInProgress = errors.New("sync already in progress")

// SyncResult итог одного прохода синхронизации
type SyncResult struct {
	Errors    []string `json:"errors,omitempty"`
	Synced    int      `json:"synced"`
	Failed    int      `json:"failed"`
	Conflicts int      `json:"conflicts"`
	Pulled    int      `json:"pulled"`
	Success   bool     `json:"success"`
}

// Config параметры движка
type Config struct {
	// Tables таблицы, для которых выполняется pull
	Tables []string

	// MaxAttempts суммарный предел попыток отправки одной операции.
	// После предела операция переходит в failed до ручного retry.
	MaxAttempts int

	// BackoffMin начальная задержка экспоненциального backoff
	BackoffMin time.Duration

	// BackoffMax потолок задержки
	BackoffMax time.Duration
}

// Значения по умолчанию
const (
	DefaultMaxAttempts = 5
	DefaultBackoffMin  = 500 * time.Millisecond
	DefaultBackoffMax  = 30 * time.Second
)

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Tables:      models.KnownTables(),
		MaxAttempts: DefaultMaxAttempts,
		BackoffMin:  DefaultBackoffMin,
		BackoffMax:  DefaultBackoffMax,
	}
}

// Engine выполняет проходы синхронизации. Одновременно идёт не больше
// одного прохода: повторный вызов Sync возвращает ErrSyncInProgress.
type Engine struct {
	apiClient APIClient
	queue     queue.Service
	cache     storage.CacheStorage
	meta      storage.MetadataStorage
	resolver  *conflict.Resolver
	logger    *slog.Logger
	cfg       Config
	now       func() time.Time

	// afterPass вызывается после каждого прохода;
	// потребитель - degraded-mode менеджер
	afterPass func(ctx context.Context)

	mu       sync.Mutex
	state    State
	inFlight bool
}

// Option настраивает движок
type Option func(*Engine)

// WithAfterPass устанавливает hook, вызываемый после каждого прохода
func WithAfterPass(fn func(ctx context.Context)) Option {
	return func(e *Engine) { e.afterPass = fn }
}

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a sync engine.
func NewEngine(apiClient APIClient, q queue.Service, cache storage.CacheStorage, meta storage.MetadataStorage, resolver *conflict.Resolver, cfg Config, logger *slog.Logger, opts ...Option) *Engine {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BackoffMin <= 0 {
		cfg.BackoffMin = DefaultBackoffMin
	}
	if cfg.BackoffMax <= 0 {
		cfg.BackoffMax = DefaultBackoffMax
	}
	if len(cfg.Tables) == 0 {
		cfg.Tables = models.KnownTables()
	}

	e := &Engine{
		apiClient: apiClient,
		queue:     q,
		cache:     cache,
		meta:      meta,
		resolver:  resolver,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State возвращает текущее состояние движка
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// IsSyncing reports whether a sync pass is currently running.
func (e *Engine) IsSyncing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inFlight
}

// Sync выполняет один полный проход: pull изменений, затем push очереди.
// Сбой одной операции не прерывает проход; блокируются только последующие
// операции той же записи.
func (e *Engine) Sync(ctx context.Context, accessToken string) (*SyncResult, error) {
	e.mu.Lock()
	if e.inFlight {
		e.mu.Unlock()
		return nil, ErrSyncInProgress
	}
	e.inFlight = true
	e.state = StateChecking
	e.mu.Unlock()

	e.logger.Info("Starting sync pass")

	result := &SyncResult{}
	authFailed := false

	// Pull: забираем серверные изменения. Записи с локальными отложенными
	// операциями не трогаем: их судьбу решит push через конфликтный путь.
	queued, err := e.queuedRecords(ctx)
	if err != nil {
		e.finish(ctx, result, false)
		return nil, err
	}
	e.pull(ctx, accessToken, queued, result)

	e.mu.Lock()
	e.state = StateSyncing
	e.mu.Unlock()

	// Push: дренируем очередь по снимку, соблюдая per-record FIFO
	ops, err := e.queue.List(ctx)
	if err != nil {
		e.finish(ctx, result, false)
		return nil, fmt.Errorf("failed to list queued operations: %w", err)
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
		if op.Status != models.StatusPending {
			continue
		}

		outcome := e.pushOne(ctx, accessToken, op, result)
		if outcome.authFailed {
			authFailed = true
			break
		}
		if !outcome.resolved {
			// Последующие операции той же записи ждут следующего прохода
			blocked[key] = true
		}
	}

	if err := e.meta.TouchActivity(ctx, e.now().UTC()); err != nil {
		e.logger.Warn("Failed to record activity", "error", err)
	}

	result.Success = len(result.Errors) == 0 && result.Failed == 0 && !authFailed

	e.finish(ctx, result, authFailed)

	e.logger.Info("Sync pass finished",
		"synced", result.Synced,
		"failed", result.Failed,
		"conflicts", result.Conflicts,
		"pulled", result.Pulled,
		"success", result.Success)

	return result, nil
}

func (e *Engine) finish(ctx context.Context, result *SyncResult, degraded bool) {
	if e.afterPass != nil {
		e.afterPass(ctx)
	}

	e.mu.Lock()
	e.inFlight = false
	if degraded {
		e.state = StateDegraded
	} else {
		e.state = StateIdle
	}
	e.mu.Unlock()
}

// queuedRecords возвращает множество записей с локальными отложенными операциями
func (e *Engine) queuedRecords(ctx context.Context) (map[string]bool, error) {
	ops, err := e.queue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued operations: %w", err)
	}
	set := make(map[string]bool, len(ops))
	for _, op := range ops {
		set[op.Table+"/"+op.RecordID] = true
	}
	return set, nil
}

// pull забирает изменения всех отслеживаемых таблиц.
// Сбой pull одной таблицы не прерывает проход.
func (e *Engine) pull(ctx context.Context, accessToken string, queued map[string]bool, result *SyncResult) {
	for _, table := range e.cfg.Tables {
		var since int64
		meta, err := e.meta.GetSyncMetadata(ctx, table)
		switch {
		case err == nil:
			since = meta.Cursor
		case errors.Is(err, storage.ErrMetadataNotFound):
			// Первый pull таблицы
		default:
			result.Errors = append(result.Errors, fmt.Sprintf("read sync metadata for %s: %v", table, err))
			continue
		}

		resp, err := e.apiClient.GetChanges(ctx, accessToken, table, since)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("pull %s: %v", table, err))
			continue
		}

		for _, change := range resp.Records {
			if queued[table+"/"+change.RecordID] {
				// Локальная мутация в очереди: remote не перезаписывает
				continue
			}

			rec := &models.CachedRecord{
				Table:         table,
				RecordID:      change.RecordID,
				Data:          change.Data,
				ServerVersion: change.ServerVersion,
				UpdatedAt:     time.UnixMilli(change.UpdatedAt).UTC(),
				Deleted:       change.Deleted,
			}
			if err := e.cache.SaveRecord(ctx, rec); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("cache %s/%s: %v", table, change.RecordID, err))
				continue
			}
			result.Pulled++
		}

		if err := e.meta.SaveSyncMetadata(ctx, &models.SyncMetadata{
			Table:      table,
			LastSyncAt: e.now().UnixMilli(),
			Cursor:     resp.ServerTime,
		}); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("save sync metadata for %s: %v", table, err))
		}
	}
}

// pushOutcome итог обработки одной операции
type pushOutcome struct {
	// resolved операция подтверждена сервером и удалена из очереди
	resolved bool

	// authFailed сессия невалидна, проход надо прервать
	authFailed bool
}

// pushOne отправляет одну операцию с ретраями и разбором конфликта
func (e *Engine) pushOne(ctx context.Context, accessToken string, op *models.QueuedOperation, result *SyncResult) pushOutcome {
	if err := e.queue.MarkSyncing(ctx, op.ID); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("mark syncing %s: %v", op.ID, err))
		return pushOutcome{}
	}

	resp, attempts, err := e.pushWithRetry(ctx, accessToken, op)
	totalAttempts := op.Attempts + attempts

	switch {
	case err == nil:
		if err := e.applyResolved(ctx, op, resp); err != nil {
			result.Errors = append(result.Errors, err.Error())
			return pushOutcome{}
		}
		result.Synced++
		return pushOutcome{resolved: true}

	case isConflict(err):
		return e.handleConflict(ctx, accessToken, op, conflictOf(err), result)

	case isAuthError(err):
		// Сессия невалидна: возвращаем операцию в pending, не тратя попытки
		if markErr := e.queue.MarkPending(ctx, op.ID, op.Attempts, err.Error()); markErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("mark pending %s: %v", op.ID, markErr))
		}
		result.Errors = append(result.Errors, err.Error())
		return pushOutcome{authFailed: true}

	case clientapi.IsTransient(err):
		if totalAttempts >= e.cfg.MaxAttempts {
			e.logger.Warn("Operation failed after attempt cap",
				"op_id", op.ID, "attempts", totalAttempts, "error", err)
			if markErr := e.queue.MarkFailed(ctx, op.ID, err.Error()); markErr != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("mark failed %s: %v", op.ID, markErr))
			}
			result.Failed++
		} else {
			if markErr := e.queue.MarkPending(ctx, op.ID, totalAttempts, err.Error()); markErr != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("mark pending %s: %v", op.ID, markErr))
			}
			result.Errors = append(result.Errors, err.Error())
		}
		return pushOutcome{}

	default:
		// Бизнес-отказ сервера: ретраи бессмысленны
		e.logger.Warn("Operation rejected by server", "op_id", op.ID, "error", err)
		if markErr := e.queue.MarkFailed(ctx, op.ID, err.Error()); markErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("mark failed %s: %v", op.ID, markErr))
		}
		result.Failed++
		return pushOutcome{}
	}
}

// pushWithRetry отправляет операцию, повторяя временные сбои с backoff.
// Возвращает число сделанных попыток.
func (e *Engine) pushWithRetry(ctx context.Context, accessToken string, op *models.QueuedOperation) (*api.PushOperationResponse, int, error) {
	req := api.PushOperationRequest{
		Table:          op.Table,
		RecordID:       op.RecordID,
		Type:           string(op.Type),
		Data:           op.Data,
		BaseVersion:    op.BaseVersion,
		IdempotencyKey: op.IdempotencyKey,
	}

	remaining := e.cfg.MaxAttempts - op.Attempts
	if remaining < 1 {
		remaining = 1
	}

	backoff := retry.NewExponential(e.cfg.BackoffMin)
	backoff = retry.WithCappedDuration(e.cfg.BackoffMax, backoff)
	backoff = retry.WithMaxRetries(uint64(remaining-1), backoff)

	var resp *api.PushOperationResponse
	attempts := 0

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		var pushErr error
		resp, pushErr = e.apiClient.PushOperation(ctx, accessToken, req)
		if pushErr == nil {
			return nil
		}
		if clientapi.IsTransient(pushErr) {
			return retry.RetryableError(pushErr)
		}
		return pushErr
	})
	if err != nil {
		return nil, attempts, err
	}
	return resp, attempts, nil
}

// handleConflict прогоняет конфликт через резолвер. Авто-мерж перепосылается
// один раз, перебазированный на серверную версию; второй конфликт подряд
// уходит в needs_review вместо цикла.
func (e *Engine) handleConflict(ctx context.Context, accessToken string, op *models.QueuedOperation, ce *clientapi.ConflictError, result *SyncResult) pushOutcome {
	res, err := e.resolver.Resolve(op.Table, op.BaseSnapshot, op.Data, ce.RemoteRecord)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("resolve conflict %s: %v", op.ID, err))
		if markErr := e.queue.MarkNeedsReview(ctx, op.ID, nil, ce.RemoteRecord, ce.ServerVersion); markErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("mark needs review %s: %v", op.ID, markErr))
		}
		result.Conflicts++
		return pushOutcome{}
	}

	if res.NeedsReview {
		e.logger.Info("Conflict needs manual review",
			"op_id", op.ID, "table", op.Table, "record_id", op.RecordID)
		if markErr := e.queue.MarkNeedsReview(ctx, op.ID, res.Details, ce.RemoteRecord, ce.ServerVersion); markErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("mark needs review %s: %v", op.ID, markErr))
		}
		result.Conflicts++
		return pushOutcome{}
	}

	// Перебазируем операцию на серверную версию и шлём один раз
	if err := e.queue.Requeue(ctx, op.ID, res.Merged, ce.ServerVersion, ce.RemoteRecord); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("requeue %s: %v", op.ID, err))
		return pushOutcome{}
	}

	rebased := *op
	rebased.Data = res.Merged
	rebased.BaseVersion = ce.ServerVersion
	rebased.BaseSnapshot = ce.RemoteRecord

	resp, _, err := e.pushWithRetry(ctx, accessToken, &rebased)
	switch {
	case err == nil:
		if applyErr := e.applyResolved(ctx, &rebased, resp); applyErr != nil {
			result.Errors = append(result.Errors, applyErr.Error())
			return pushOutcome{}
		}
		result.Synced++
		return pushOutcome{resolved: true}

	case isConflict(err):
		// Сервер ушёл вперёд ещё раз: отдаём человеку
		second := conflictOf(err)
		details, detectErr := e.resolver.Detect(op.Table, rebased.BaseSnapshot, rebased.Data, second.RemoteRecord)
		if detectErr != nil {
			details = nil
		}
		if markErr := e.queue.MarkNeedsReview(ctx, op.ID, details, second.RemoteRecord, second.ServerVersion); markErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("mark needs review %s: %v", op.ID, markErr))
		}
		result.Conflicts++
		return pushOutcome{}

	case isAuthError(err):
		if markErr := e.queue.MarkPending(ctx, op.ID, op.Attempts, err.Error()); markErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("mark pending %s: %v", op.ID, markErr))
		}
		result.Errors = append(result.Errors, err.Error())
		return pushOutcome{authFailed: true}

	default:
		if markErr := e.queue.MarkPending(ctx, op.ID, op.Attempts, err.Error()); markErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("mark pending %s: %v", op.ID, markErr))
		}
		result.Errors = append(result.Errors, err.Error())
		return pushOutcome{}
	}
}

// applyResolved убирает подтверждённую операцию из очереди и обновляет кэш
func (e *Engine) applyResolved(ctx context.Context, op *models.QueuedOperation, resp *api.PushOperationResponse) error {
	if err := e.queue.MarkResolved(ctx, op.ID); err != nil {
		return fmt.Errorf("mark resolved %s: %w", op.ID, err)
	}

	if op.Type == models.OpDelete {
		if err := e.cache.DeleteRecord(ctx, op.Table, op.RecordID); err != nil {
			return fmt.Errorf("delete cached %s/%s: %w", op.Table, op.RecordID, err)
		}
		return nil
	}

	data := resp.Record
	if len(data) == 0 {
		data = op.Data
	}
	rec := &models.CachedRecord{
		Table:         op.Table,
		RecordID:      op.RecordID,
		Data:          data,
		ServerVersion: resp.ServerVersion,
		UpdatedAt:     e.now().UTC(),
	}
	if err := e.cache.SaveRecord(ctx, rec); err != nil {
		return fmt.Errorf("cache %s/%s: %w", op.Table, op.RecordID, err)
	}
	return nil
}

func isConflict(err error) bool {
	var ce *clientapi.ConflictError
	return errors.As(err, &ce)
}

func conflictOf(err error) *clientapi.ConflictError {
	var ce *clientapi.ConflictError
	errors.As(err, &ce)
	return ce
}

func isAuthError(err error) bool {
	var ae *clientapi.AuthError
	return errors.As(err, &ae)
}
