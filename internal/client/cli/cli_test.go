package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Junior620/cocoatrack-sub003/internal/client/auth"
	"github.com/Junior620/cocoatrack-sub003/internal/client/cli"
	"github.com/Junior620/cocoatrack-sub003/internal/client/conflict"
	"github.com/Junior620/cocoatrack-sub003/internal/client/iocli"
	"github.com/Junior620/cocoatrack-sub003/internal/client/queue"
	"github.com/Junior620/cocoatrack-sub003/internal/client/syncer"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

// term скриптует терминал: ответы снимаются с очередей, вывод копится в буфере
type term struct {
	out       bytes.Buffer
	inputs    []string
	passwords []string
}

func (tm *term) io(t *testing.T) *iocli.IOMock {
	t.Helper()
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) { fmt.Fprintln(&tm.out, a...) },
		PrintfFunc:  func(format string, a ...any) { fmt.Fprintf(&tm.out, format, a...) },
		ReadInputFunc: func(prompt string) (string, error) {
			require.NotEmpty(t, tm.inputs, "unexpected input prompt %q", prompt)
			next := tm.inputs[0]
			tm.inputs = tm.inputs[1:]
			return next, nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			require.NotEmpty(t, tm.passwords, "unexpected password prompt %q", prompt)
			next := tm.passwords[0]
			tm.passwords = tm.passwords[1:]
			return next, nil
		},
		WriteFunc: func(p []byte) (int, error) { return tm.out.Write(p) },
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	tm := &term{}
	c := cli.New(tm.io(t), &cli.AppMock{}, &cli.AuthMock{})

	err := c.Run(context.Background(), "teleport", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Contains(t, tm.out.String(), "Usage:")
}

func TestLogin_PassesCredentials(t *testing.T) {
	t.Setenv(cli.PasswordEnvVar, "secretpass1")

	authMock := &cli.AuthMock{
		LoginFunc: func(ctx context.Context, username, password string) (*auth.Session, error) {
			return &auth.Session{
				Username:  username,
				ExpiresAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}

	tm := &term{inputs: []string{"agent1"}}
	c := cli.New(tm.io(t), &cli.AppMock{}, authMock)

	require.NoError(t, c.Run(context.Background(), "login", nil))

	calls := authMock.LoginCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "agent1", calls[0].Username)
	assert.Equal(t, "secretpass1", calls[0].Password)
	assert.Contains(t, tm.out.String(), "Logged in as agent1")
}

func TestRegister_PasswordMismatch(t *testing.T) {
	authMock := &cli.AuthMock{}

	tm := &term{
		inputs:    []string{"agent1"},
		passwords: []string{"secretpass1", "different"},
	}
	c := cli.New(tm.io(t), &cli.AppMock{}, authMock)

	err := c.Run(context.Background(), "register", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
	assert.Empty(t, authMock.RegisterCalls())
}

func TestSync_RestoresSessionAndReportsResult(t *testing.T) {
	t.Setenv(cli.PasswordEnvVar, "secretpass1")

	authMock := &cli.AuthMock{
		RestoreFunc: func(ctx context.Context, password string) (*auth.Session, error) {
			return &auth.Session{Username: "agent1", AccessToken: "tok-123"}, nil
		},
	}
	appMock := &cli.AppMock{
		SyncFunc: func(ctx context.Context, accessToken string) (*syncer.SyncResult, error) {
			return &syncer.SyncResult{Pulled: 4, Synced: 2, Conflicts: 1, Success: true}, nil
		},
	}

	tm := &term{}
	c := cli.New(tm.io(t), appMock, authMock)

	require.NoError(t, c.Run(context.Background(), "sync", nil))

	calls := appMock.SyncCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "tok-123", calls[0].AccessToken)

	out := tm.out.String()
	assert.Contains(t, out, "Pulled 4 record(s), pushed 2 operation(s)")
	assert.Contains(t, out, "1 operation(s) need conflict review")
}

func TestWatch_TriggersSyncAndRateLimits(t *testing.T) {
	t.Setenv(cli.PasswordEnvVar, "secretpass1")

	authMock := &cli.AuthMock{
		RestoreFunc: func(ctx context.Context, password string) (*auth.Session, error) {
			return &auth.Session{Username: "agent1", AccessToken: "tok-123"}, nil
		},
	}
	appMock := &cli.AppMock{
		SyncFunc: func(ctx context.Context, accessToken string) (*syncer.SyncResult, error) {
			return &syncer.SyncResult{Synced: 1, Success: true}, nil
		},
	}

	// Второе событие приходит раньше минимального интервала и игнорируется
	tm := &term{inputs: []string{"online", "visible", "quit"}}
	c := cli.New(tm.io(t), appMock, authMock)

	require.NoError(t, c.Run(context.Background(), "watch", nil))

	require.Len(t, appMock.SyncCalls(), 1)
	assert.Contains(t, tm.out.String(), "Skipped: too soon")
}

func TestAdd_SubmitsCreate(t *testing.T) {
	appMock := &cli.AppMock{
		SubmitOperationFunc: func(ctx context.Context, params queue.EnqueueParams) (*models.QueuedOperation, error) {
			return &models.QueuedOperation{ID: "op-1"}, nil
		},
	}

	tm := &term{}
	c := cli.New(tm.io(t), appMock, &cli.AuthMock{})

	err := c.Run(context.Background(), "add", []string{"deliveries", "d-042", `{"weight_kg": 120}`})
	require.NoError(t, err)

	calls := appMock.SubmitOperationCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.OpCreate, calls[0].Params.Type)
	assert.Equal(t, models.TableDeliveries, calls[0].Params.Table)
	assert.Equal(t, "d-042", calls[0].Params.RecordID)
	assert.JSONEq(t, `{"weight_kg": 120}`, string(calls[0].Params.Data))
	assert.Nil(t, calls[0].Params.Base)
	assert.Contains(t, tm.out.String(), "Queued CREATE deliveries/d-042 (op op-1)")
}

func TestAdd_RejectsInvalidJSON(t *testing.T) {
	tm := &term{}
	c := cli.New(tm.io(t), &cli.AppMock{}, &cli.AuthMock{})

	err := c.Run(context.Background(), "add", []string{"deliveries", "d-042", "{broken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestUpdate_UsesCachedRecordAsBase(t *testing.T) {
	cached := &models.CachedRecord{
		Table:         models.TableDeliveries,
		RecordID:      "d-042",
		Data:          json.RawMessage(`{"weight_kg": 100}`),
		ServerVersion: 5,
	}

	appMock := &cli.AppMock{
		RecordsFunc: func(ctx context.Context, table string) ([]*models.CachedRecord, error) {
			return []*models.CachedRecord{cached}, nil
		},
		SubmitOperationFunc: func(ctx context.Context, params queue.EnqueueParams) (*models.QueuedOperation, error) {
			return &models.QueuedOperation{ID: "op-2"}, nil
		},
	}

	tm := &term{}
	c := cli.New(tm.io(t), appMock, &cli.AuthMock{})

	err := c.Run(context.Background(), "update", []string{"deliveries", "d-042", `{"weight_kg": 110}`})
	require.NoError(t, err)

	calls := appMock.SubmitOperationCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.OpUpdate, calls[0].Params.Type)
	require.NotNil(t, calls[0].Params.Base)
	assert.Equal(t, int64(5), calls[0].Params.Base.ServerVersion)
}

func TestDelete_SubmitsWithoutPayload(t *testing.T) {
	appMock := &cli.AppMock{
		RecordsFunc: func(ctx context.Context, table string) ([]*models.CachedRecord, error) {
			return nil, nil
		},
		SubmitOperationFunc: func(ctx context.Context, params queue.EnqueueParams) (*models.QueuedOperation, error) {
			return &models.QueuedOperation{ID: "op-3"}, nil
		},
	}

	tm := &term{}
	c := cli.New(tm.io(t), appMock, &cli.AuthMock{})

	err := c.Run(context.Background(), "delete", []string{"deliveries", "d-042"})
	require.NoError(t, err)

	calls := appMock.SubmitOperationCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.OpDelete, calls[0].Params.Type)
	assert.Empty(t, calls[0].Params.Data)
}

func TestResolve_CollectsChoicesPerField(t *testing.T) {
	op := &models.QueuedOperation{
		ID:            "op-9",
		Type:          models.OpUpdate,
		Table:         models.TableDeliveries,
		RecordID:      "d-042",
		Status:        models.StatusNeedsReview,
		BaseVersion:   6,
		RemoteVersion: 7,
		Conflicts: []models.ConflictDetail{
			{Field: "weight_kg", BaseValue: 100.0, LocalValue: 110.0, RemoteValue: 120.0, IsCritical: true},
			{Field: "notes", BaseValue: "", LocalValue: "wet beans", RemoteValue: "dried"},
		},
	}

	appMock := &cli.AppMock{
		ConflictsFunc: func(ctx context.Context) ([]*models.QueuedOperation, error) {
			return []*models.QueuedOperation{op}, nil
		},
		ResolveConflictFunc: func(ctx context.Context, opID string, choices map[string]conflict.Choice) error {
			return nil
		},
	}

	// Критичное поле требует явного ответа: пустой ввод переспрашивается.
	// Некритичное поле оставлено политике пустым вводом.
	tm := &term{inputs: []string{"", "l", ""}}
	c := cli.New(tm.io(t), appMock, &cli.AuthMock{})

	require.NoError(t, c.Run(context.Background(), "resolve", []string{"op-9"}))

	calls := appMock.ResolveConflictCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "op-9", calls[0].OpID)
	assert.Equal(t, map[string]conflict.Choice{"weight_kg": conflict.ChoiceLocal}, calls[0].Choices)
	assert.Contains(t, tm.out.String(), "needs an explicit choice")
}

func TestResolve_UnknownOperation(t *testing.T) {
	appMock := &cli.AppMock{
		ConflictsFunc: func(ctx context.Context) ([]*models.QueuedOperation, error) {
			return nil, nil
		},
	}

	tm := &term{}
	c := cli.New(tm.io(t), appMock, &cli.AuthMock{})

	err := c.Run(context.Background(), "resolve", []string{"ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no conflict with id ghost")
}

func TestDiscard_RequiresConfirmation(t *testing.T) {
	op := &models.QueuedOperation{
		ID:       "op-9",
		Type:     models.OpUpdate,
		Table:    models.TableDeliveries,
		RecordID: "d-042",
		Status:   models.StatusNeedsReview,
	}
	appMock := &cli.AppMock{
		ConflictsFunc: func(ctx context.Context) ([]*models.QueuedOperation, error) {
			return []*models.QueuedOperation{op}, nil
		},
		DismissConflictFunc: func(ctx context.Context, opID string) error { return nil },
	}

	// Отказ не трогает очередь
	tm := &term{inputs: []string{"n"}}
	c := cli.New(tm.io(t), appMock, &cli.AuthMock{})
	require.NoError(t, c.Run(context.Background(), "discard", []string{"op-9"}))
	assert.Empty(t, appMock.DismissConflictCalls())
	assert.Contains(t, tm.out.String(), "Cancelled")

	// Согласие отбрасывает локальную мутацию
	tm2 := &term{inputs: []string{"y"}}
	c2 := cli.New(tm2.io(t), appMock, &cli.AuthMock{})
	require.NoError(t, c2.Run(context.Background(), "discard", []string{"op-9"}))
	require.Len(t, appMock.DismissConflictCalls(), 1)
	assert.Equal(t, "op-9", appMock.DismissConflictCalls()[0].OpID)
}

func TestQueue_ListsOperations(t *testing.T) {
	appMock := &cli.AppMock{
		OperationsFunc: func(ctx context.Context) ([]*models.QueuedOperation, error) {
			return []*models.QueuedOperation{
				{ID: "op-1", Type: models.OpCreate, Table: "deliveries", RecordID: "d-1", Status: models.StatusPending},
				{ID: "op-2", Type: models.OpUpdate, Table: "deliveries", RecordID: "d-2", Status: models.StatusFailed, Attempts: 5, Error: "server error: 502"},
			}, nil
		},
	}

	tm := &term{}
	c := cli.New(tm.io(t), appMock, &cli.AuthMock{})

	require.NoError(t, c.Run(context.Background(), "queue", nil))

	out := tm.out.String()
	assert.Contains(t, out, "2 queued operation(s)")
	assert.Contains(t, out, "op-1  CREATE deliveries/d-1  pending")
	assert.Contains(t, out, "attempts=5")
	assert.Contains(t, out, "server error: 502")
}

func TestStatus_ShowsModeAndConflicts(t *testing.T) {
	appMock := &cli.AppMock{
		RefreshDegradedFunc: func(ctx context.Context) (models.DegradedState, error) {
			return models.DegradedState{
				Mode:            models.ModeReadOnlyStorage,
				OpsQueueCount:   12,
				StoragePercent:  93.5,
				AuthValid:       true,
				DisabledActions: []models.Action{models.ActionCreateDelivery, models.ActionUpdateDelivery},
			}, nil
		},
		ConflictCountFunc: func(ctx context.Context) (int, error) { return 2, nil },
	}

	tm := &term{}
	c := cli.New(tm.io(t), appMock, &cli.AuthMock{})

	require.NoError(t, c.Run(context.Background(), "status", nil))

	out := tm.out.String()
	assert.Contains(t, out, "read_only_storage")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "93.5%")
	assert.Contains(t, out, "create_delivery, update_delivery")
	assert.Contains(t, out, "2 awaiting review")
}

func TestRetry_ReturnsOperationToQueue(t *testing.T) {
	appMock := &cli.AppMock{
		RetryFunc: func(ctx context.Context, opID string) error { return nil },
	}

	tm := &term{}
	c := cli.New(tm.io(t), appMock, &cli.AuthMock{})

	require.NoError(t, c.Run(context.Background(), "retry", []string{"op-5"}))
	require.Len(t, appMock.RetryCalls(), 1)
	assert.Equal(t, "op-5", appMock.RetryCalls()[0].OpID)
}
