package sqlite

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Junior620/cocoatrack-sub003/internal/server/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createOp(recordID, key, data string) storage.Operation {
	return storage.Operation{
		Table:          "deliveries",
		RecordID:       recordID,
		Type:           "CREATE",
		Data:           json.RawMessage(data),
		BaseVersion:    0,
		IdempotencyKey: key,
	}
}

func TestApplyOperation_Create(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	result, err := s.ApplyOperation(ctx, "user-1", createOp("rec-1", "key-1", `{"weight_kg": 100}`))
	require.NoError(t, err)

	assert.Equal(t, storage.ApplyStatusApplied, result.Status)
	assert.Equal(t, int64(1), result.ServerVersion)
	assert.JSONEq(t, `{"weight_kg": 100}`, string(result.Record))
	assert.False(t, result.Replayed)

	rec, err := s.GetRecord(ctx, "user-1", "deliveries", "rec-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ServerVersion)
	assert.False(t, rec.Deleted)
}

func TestApplyOperation_UpdateIncrementsVersion(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.ApplyOperation(ctx, "user-1", createOp("rec-1", "key-1", `{"weight_kg": 100}`))
	require.NoError(t, err)

	result, err := s.ApplyOperation(ctx, "user-1", storage.Operation{
		Table:          "deliveries",
		RecordID:       "rec-1",
		Type:           "UPDATE",
		Data:           json.RawMessage(`{"weight_kg": 110}`),
		BaseVersion:    1,
		IdempotencyKey: "key-2",
	})
	require.NoError(t, err)

	assert.Equal(t, storage.ApplyStatusApplied, result.Status)
	assert.Equal(t, int64(2), result.ServerVersion)
}

func TestApplyOperation_StaleBaseConflicts(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.ApplyOperation(ctx, "user-1", createOp("rec-1", "key-1", `{"weight_kg": 100}`))
	require.NoError(t, err)

	_, err = s.ApplyOperation(ctx, "user-1", storage.Operation{
		Table:          "deliveries",
		RecordID:       "rec-1",
		Type:           "UPDATE",
		Data:           json.RawMessage(`{"weight_kg": 110}`),
		BaseVersion:    1,
		IdempotencyKey: "key-2",
	})
	require.NoError(t, err)

	// Вторая операция с тем же base_version опоздала
	result, err := s.ApplyOperation(ctx, "user-1", storage.Operation{
		Table:          "deliveries",
		RecordID:       "rec-1",
		Type:           "UPDATE",
		Data:           json.RawMessage(`{"weight_kg": 120}`),
		BaseVersion:    1,
		IdempotencyKey: "key-3",
	})
	require.NoError(t, err)

	assert.Equal(t, storage.ApplyStatusConflict, result.Status)
	assert.Equal(t, int64(2), result.ServerVersion)
	assert.JSONEq(t, `{"weight_kg": 110}`, string(result.RemoteRecord))
}

func TestApplyOperation_CreateOverExistingConflicts(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.ApplyOperation(ctx, "user-1", createOp("rec-1", "key-1", `{"weight_kg": 100}`))
	require.NoError(t, err)

	result, err := s.ApplyOperation(ctx, "user-1", createOp("rec-1", "key-2", `{"weight_kg": 50}`))
	require.NoError(t, err)

	assert.Equal(t, storage.ApplyStatusConflict, result.Status)
	assert.Equal(t, int64(1), result.ServerVersion)
}

func TestApplyOperation_IdempotentReplay(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	op := createOp("rec-1", "key-1", `{"weight_kg": 100}`)

	first, err := s.ApplyOperation(ctx, "user-1", op)
	require.NoError(t, err)

	// Повтор с тем же ключом возвращает сохранённый результат
	// и не поднимает версию
	replay, err := s.ApplyOperation(ctx, "user-1", op)
	require.NoError(t, err)

	assert.True(t, replay.Replayed)
	assert.Equal(t, storage.ApplyStatusApplied, replay.Status)
	assert.Equal(t, first.ServerVersion, replay.ServerVersion)

	rec, err := s.GetRecord(ctx, "user-1", "deliveries", "rec-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ServerVersion)
}

func TestApplyOperation_ConflictNotJournaled(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.ApplyOperation(ctx, "user-1", createOp("rec-1", "key-1", `{"weight_kg": 100}`))
	require.NoError(t, err)

	stale := storage.Operation{
		Table:          "deliveries",
		RecordID:       "rec-1",
		Type:           "UPDATE",
		Data:           json.RawMessage(`{"weight_kg": 120}`),
		BaseVersion:    0,
		IdempotencyKey: "key-2",
	}

	result, err := s.ApplyOperation(ctx, "user-1", stale)
	require.NoError(t, err)
	require.Equal(t, storage.ApplyStatusConflict, result.Status)

	// Перебазированная операция с тем же ключом применяется
	stale.BaseVersion = 1
	result, err = s.ApplyOperation(ctx, "user-1", stale)
	require.NoError(t, err)
	assert.Equal(t, storage.ApplyStatusApplied, result.Status)
	assert.False(t, result.Replayed)
}

func TestApplyOperation_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.ApplyOperation(ctx, "user-1", createOp("rec-1", "key-1", `{"weight_kg": 100}`))
	require.NoError(t, err)

	result, err := s.ApplyOperation(ctx, "user-1", storage.Operation{
		Table:          "deliveries",
		RecordID:       "rec-1",
		Type:           "DELETE",
		BaseVersion:    1,
		IdempotencyKey: "key-2",
	})
	require.NoError(t, err)
	assert.Equal(t, storage.ApplyStatusApplied, result.Status)

	rec, err := s.GetRecord(ctx, "user-1", "deliveries", "rec-1")
	require.NoError(t, err)
	assert.True(t, rec.Deleted)
	assert.Empty(t, rec.Data)

	// Tombstone виден в фиде изменений
	changes, err := s.GetChangesSince(ctx, "user-1", "deliveries", 0)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.True(t, changes[0].Deleted)
}

func TestGetChangesSince_CursorIsExclusive(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.ApplyOperation(ctx, "user-1", createOp("rec-1", "key-1", `{"weight_kg": 100}`))
	require.NoError(t, err)

	changes, err := s.GetChangesSince(ctx, "user-1", "deliveries", 0)
	require.NoError(t, err)
	require.Len(t, changes, 1)

	// Курсор на последнем updated_at ничего не возвращает
	cursor := changes[0].UpdatedAt
	changes, err = s.GetChangesSince(ctx, "user-1", "deliveries", cursor)
	require.NoError(t, err)
	assert.Empty(t, changes)

	time.Sleep(2 * time.Millisecond)
	_, err = s.ApplyOperation(ctx, "user-1", createOp("rec-2", "key-2", `{"weight_kg": 50}`))
	require.NoError(t, err)

	changes, err = s.GetChangesSince(ctx, "user-1", "deliveries", cursor)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "rec-2", changes[0].RecordID)
}

func TestGetChangesSince_ScopedToUserAndTable(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.ApplyOperation(ctx, "user-1", createOp("rec-1", "key-1", `{"weight_kg": 100}`))
	require.NoError(t, err)
	_, err = s.ApplyOperation(ctx, "user-2", createOp("rec-2", "key-2", `{"weight_kg": 50}`))
	require.NoError(t, err)

	changes, err := s.GetChangesSince(ctx, "user-1", "deliveries", 0)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "rec-1", changes[0].RecordID)

	changes, err = s.GetChangesSince(ctx, "user-1", "planters", 0)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestGetRecord_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.GetRecord(ctx, "user-1", "deliveries", "absent")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}
