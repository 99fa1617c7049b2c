package app_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Junior620/cocoatrack-sub003/internal/client/app"
	"github.com/Junior620/cocoatrack-sub003/internal/client/conflict"
	"github.com/Junior620/cocoatrack-sub003/internal/client/degraded"
	"github.com/Junior620/cocoatrack-sub003/internal/client/platform"
	"github.com/Junior620/cocoatrack-sub003/internal/client/queue"
	"github.com/Junior620/cocoatrack-sub003/internal/client/storage"
	"github.com/Junior620/cocoatrack-sub003/internal/client/syncer"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

type usageStub struct{ percent float64 }

func (u *usageStub) UsagePercent(ctx context.Context) (float64, error) { return u.percent, nil }

type sessionStub struct{ valid bool }

func (s *sessionStub) IsSessionValid(ctx context.Context) bool { return s.valid }

// appEnv фасад поверх in-memory хранилищ
type appEnv struct {
	app     *app.App
	syncer  *app.SyncerMock
	queue   queue.Service
	usage   *usageStub
	session *sessionStub

	ops     map[string]*models.QueuedOperation
	nextSeq uint64
	cache   map[string]*models.CachedRecord
}

func newAppEnv(t *testing.T) *appEnv {
	t.Helper()

	env := &appEnv{
		syncer:  &app.SyncerMock{},
		usage:   &usageStub{percent: 10},
		session: &sessionStub{valid: true},
		ops:     make(map[string]*models.QueuedOperation),
		cache:   make(map[string]*models.CachedRecord),
	}

	queueStore := &storage.QueueStorageMock{
		AppendOperationWithCacheFunc: func(ctx context.Context, op *models.QueuedOperation, rec *models.CachedRecord) error {
			env.nextSeq++
			op.Seq = env.nextSeq
			cp := *op
			env.ops[op.ID] = &cp
			if rec != nil {
				rc := *rec
				env.cache[rec.Table+"/"+rec.RecordID] = &rc
			}
			return nil
		},
		GetOperationFunc: func(ctx context.Context, id string) (*models.QueuedOperation, error) {
			op, ok := env.ops[id]
			if !ok {
				return nil, storage.ErrOperationNotFound
			}
			cp := *op
			return &cp, nil
		},
		UpdateOperationFunc: func(ctx context.Context, op *models.QueuedOperation) error {
			stored, ok := env.ops[op.ID]
			if !ok {
				return storage.ErrOperationNotFound
			}
			cp := *op
			cp.Seq = stored.Seq
			env.ops[op.ID] = &cp
			return nil
		},
		DeleteOperationFunc: func(ctx context.Context, id string) error {
			if _, ok := env.ops[id]; !ok {
				return storage.ErrOperationNotFound
			}
			delete(env.ops, id)
			return nil
		},
		ListOperationsFunc: func(ctx context.Context) ([]*models.QueuedOperation, error) {
			out := make([]*models.QueuedOperation, 0, len(env.ops))
			for _, op := range env.ops {
				cp := *op
				out = append(out, &cp)
			}
			sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
			return out, nil
		},
		CountByStatusFunc: func(ctx context.Context) (map[models.OperationStatus]int, error) {
			counts := make(map[models.OperationStatus]int)
			for _, op := range env.ops {
				counts[op.Status]++
			}
			return counts, nil
		},
	}

	cacheStore := &storage.CacheStorageMock{
		SaveRecordFunc: func(ctx context.Context, rec *models.CachedRecord) error {
			cp := *rec
			env.cache[rec.Table+"/"+rec.RecordID] = &cp
			return nil
		},
		GetRecordFunc: func(ctx context.Context, table, recordID string) (*models.CachedRecord, error) {
			rec, ok := env.cache[table+"/"+recordID]
			if !ok {
				return nil, storage.ErrRecordNotFound
			}
			cp := *rec
			return &cp, nil
		},
		DeleteRecordFunc: func(ctx context.Context, table, recordID string) error {
			delete(env.cache, table+"/"+recordID)
			return nil
		},
		ListRecordsFunc: func(ctx context.Context, table string) ([]*models.CachedRecord, error) {
			var out []*models.CachedRecord
			for _, rec := range env.cache {
				if rec.Table == table && !rec.Deleted {
					cp := *rec
					out = append(out, &cp)
				}
			}
			return out, nil
		},
		CountByTableFunc: func(ctx context.Context) (map[string]int, error) {
			counts := make(map[string]int)
			for _, rec := range env.cache {
				if !rec.Deleted {
					counts[rec.Table]++
				}
			}
			return counts, nil
		},
	}

	metaStore := &storage.MetadataStorageMock{
		GetLastActivityFunc: func(ctx context.Context) (time.Time, error) {
			return time.Now().Add(-time.Hour), nil
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.queue = queue.NewService(queueStore, logger)
	manager := degraded.NewManager(env.queue, env.usage, env.session, degraded.DefaultThresholds(), logger)
	integrity := platform.NewIntegrityChecker(cacheStore, metaStore, logger)

	env.app = app.New(env.queue, env.syncer, manager, conflict.NewResolver(conflict.DefaultPolicy()), cacheStore, integrity, logger)
	return env
}

func submitDelivery(t *testing.T, env *appEnv, recordID, data string) *models.QueuedOperation {
	t.Helper()
	op, err := env.app.SubmitOperation(context.Background(), queue.EnqueueParams{
		Type:     models.OpCreate,
		Table:    models.TableDeliveries,
		RecordID: recordID,
		Data:     json.RawMessage(data),
	})
	require.NoError(t, err)
	return op
}

func TestApp_SubmitOperation(t *testing.T) {
	ctx := context.Background()
	env := newAppEnv(t)

	op := submitDelivery(t, env, "rec-1", `{"weight_kg": 100}`)
	assert.Equal(t, models.StatusPending, op.Status)

	pending, err := env.app.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	// Снимок degraded-режима пересчитан после мутации
	assert.Equal(t, 1, env.app.DegradedState().OpsQueueCount)
}

func TestApp_SubmitOperation_BlockedByStorage(t *testing.T) {
	ctx := context.Background()
	env := newAppEnv(t)

	env.usage.percent = 95
	_, err := env.app.RefreshDegraded(ctx)
	require.NoError(t, err)

	_, err = env.app.SubmitOperation(ctx, queue.EnqueueParams{
		Type:     models.OpCreate,
		Table:    models.TableDeliveries,
		RecordID: "rec-1",
		Data:     json.RawMessage(`{"weight_kg": 100}`),
	})
	require.ErrorIs(t, err, app.ErrActionDisabled)

	pending, err := env.app.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)
}

func TestApp_Sync(t *testing.T) {
	ctx := context.Background()
	env := newAppEnv(t)

	env.syncer.SyncFunc = func(ctx context.Context, accessToken string) (*syncer.SyncResult, error) {
		return &syncer.SyncResult{Success: true, Synced: 2}, nil
	}

	result, err := env.app.Sync(ctx, "token-abc")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Synced)

	require.Len(t, env.syncer.SyncCalls(), 1)
	assert.Equal(t, "token-abc", env.syncer.SyncCalls()[0].AccessToken)
}

func TestApp_Sync_BlockedWithoutSession(t *testing.T) {
	ctx := context.Background()
	env := newAppEnv(t)

	env.session.valid = false
	_, err := env.app.RefreshDegraded(ctx)
	require.NoError(t, err)

	_, err = env.app.Sync(ctx, "token-abc")
	require.ErrorIs(t, err, app.ErrActionDisabled)
	assert.Empty(t, env.syncer.SyncCalls())
}

func TestApp_IsSyncing(t *testing.T) {
	env := newAppEnv(t)

	env.syncer.IsSyncingFunc = func() bool { return true }
	assert.True(t, env.app.IsSyncing())
}

func TestApp_Conflicts(t *testing.T) {
	ctx := context.Background()
	env := newAppEnv(t)

	submitDelivery(t, env, "rec-1", `{"weight_kg": 100}`)
	conflicted := submitDelivery(t, env, "rec-2", `{"weight_kg": 50}`)

	require.NoError(t, env.queue.MarkNeedsReview(ctx, conflicted.ID, []models.ConflictDetail{
		{Field: "weight_kg", IsCritical: true},
	}, json.RawMessage(`{"weight_kg": 60}`), 4))

	conflicts, err := env.app.Conflicts(ctx)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, conflicted.ID, conflicts[0].ID)

	count, err := env.app.ConflictCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestApp_ResolveConflict_KeepLocal(t *testing.T) {
	ctx := context.Background()
	env := newAppEnv(t)

	base := &models.CachedRecord{
		Table:         models.TableDeliveries,
		RecordID:      "rec-1",
		Data:          json.RawMessage(`{"weight_kg": 100, "notes": "base"}`),
		ServerVersion: 3,
	}
	op, err := env.app.SubmitOperation(ctx, queue.EnqueueParams{
		Type:     models.OpUpdate,
		Table:    models.TableDeliveries,
		RecordID: "rec-1",
		Data:     json.RawMessage(`{"weight_kg": 110, "notes": "base"}`),
		Base:     base,
	})
	require.NoError(t, err)

	remote := json.RawMessage(`{"weight_kg": 120, "notes": "remote"}`)
	require.NoError(t, env.queue.MarkNeedsReview(ctx, op.ID, []models.ConflictDetail{
		{Field: "weight_kg", IsCritical: true},
	}, remote, 7))

	err = env.app.ResolveConflict(ctx, op.ID, map[string]conflict.Choice{
		"weight_kg": conflict.ChoiceLocal,
	})
	require.NoError(t, err)

	got, err := env.queue.Get(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Empty(t, got.Conflicts)

	// Перебазирована на серверную версию, локальный вес сохранён,
	// серверные notes приняты
	assert.Equal(t, int64(7), got.BaseVersion)
	assert.JSONEq(t, string(remote), string(got.BaseSnapshot))
	assert.JSONEq(t, `{"weight_kg": 110, "notes": "remote"}`, string(got.Data))
}

func TestApp_ResolveConflict_RequiresChoiceForCritical(t *testing.T) {
	ctx := context.Background()
	env := newAppEnv(t)

	base := &models.CachedRecord{
		Table:         models.TableDeliveries,
		RecordID:      "rec-1",
		Data:          json.RawMessage(`{"weight_kg": 100}`),
		ServerVersion: 3,
	}
	op, err := env.app.SubmitOperation(ctx, queue.EnqueueParams{
		Type:     models.OpUpdate,
		Table:    models.TableDeliveries,
		RecordID: "rec-1",
		Data:     json.RawMessage(`{"weight_kg": 110}`),
		Base:     base,
	})
	require.NoError(t, err)

	require.NoError(t, env.queue.MarkNeedsReview(ctx, op.ID, []models.ConflictDetail{
		{Field: "weight_kg", IsCritical: true},
	}, json.RawMessage(`{"weight_kg": 120}`), 7))

	err = env.app.ResolveConflict(ctx, op.ID, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight_kg")

	// Операция осталась в needs_review
	got, err := env.queue.Get(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNeedsReview, got.Status)
}

func TestApp_ResolveConflict_RejectsNonConflicted(t *testing.T) {
	ctx := context.Background()
	env := newAppEnv(t)

	op := submitDelivery(t, env, "rec-1", `{"weight_kg": 100}`)

	err := env.app.ResolveConflict(ctx, op.ID, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pending")
}

func TestApp_DismissConflict(t *testing.T) {
	ctx := context.Background()
	env := newAppEnv(t)

	op := submitDelivery(t, env, "rec-1", `{"weight_kg": 100}`)
	remote := json.RawMessage(`{"weight_kg": 120}`)
	require.NoError(t, env.queue.MarkNeedsReview(ctx, op.ID, []models.ConflictDetail{
		{Field: "weight_kg", IsCritical: true},
	}, remote, 7))

	require.NoError(t, env.app.DismissConflict(ctx, op.ID))

	// Операция удалена из очереди
	_, err := env.queue.Get(ctx, op.ID)
	assert.ErrorIs(t, err, storage.ErrOperationNotFound)

	// Серверная версия применена к кэшу
	rec := env.cache["deliveries/rec-1"]
	require.NotNil(t, rec)
	assert.JSONEq(t, string(remote), string(rec.Data))
	assert.Equal(t, int64(7), rec.ServerVersion)
}

func TestApp_DismissConflict_RemoteDeleted(t *testing.T) {
	ctx := context.Background()
	env := newAppEnv(t)

	op := submitDelivery(t, env, "rec-1", `{"weight_kg": 100}`)
	require.NoError(t, env.queue.MarkNeedsReview(ctx, op.ID, nil, nil, 0))

	require.NoError(t, env.app.DismissConflict(ctx, op.ID))

	_, exists := env.cache["deliveries/rec-1"]
	assert.False(t, exists)
}

func TestApp_Retry(t *testing.T) {
	ctx := context.Background()
	env := newAppEnv(t)

	op := submitDelivery(t, env, "rec-1", `{"weight_kg": 100}`)
	require.NoError(t, env.queue.MarkFailed(ctx, op.ID, "rejected"))

	require.NoError(t, env.app.Retry(ctx, op.ID))

	got, err := env.queue.Get(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Zero(t, got.Attempts)
}

func TestApp_IntegrityCheck(t *testing.T) {
	ctx := context.Background()
	env := newAppEnv(t)

	report, err := env.app.IntegrityCheck(ctx)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.False(t, report.LikelyEvicted, "recent activity, no eviction suspected")
}
