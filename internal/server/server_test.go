package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Junior620/cocoatrack-sub003/internal/config"
	"github.com/Junior620/cocoatrack-sub003/internal/server/storage/sqlite"
	"github.com/Junior620/cocoatrack-sub003/pkg/api"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	st, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(config.ServerConfig{
		ListenAddr:   "127.0.0.1:0",
		JWTSecret:    "test-secret",
		TokenTTL:     config.Duration(time.Hour),
		RateLimitRPS: 1000,
	}, logger, st, st, "test")

	return srv.Handler()
}

func doJSON(t *testing.T, h http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServer_HealthIsPublic(t *testing.T) {
	h := newTestServer(t)

	w := doJSON(t, h, http.MethodGet, "/api/v1/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestServer_SyncRoutesRequireAuth(t *testing.T) {
	h := newTestServer(t)

	w := doJSON(t, h, http.MethodGet, "/api/v1/sync/changes/deliveries", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, h, http.MethodPost, "/api/v1/sync/operations", "", api.PushOperationRequest{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_FullSyncRoundTrip(t *testing.T) {
	h := newTestServer(t)

	// Регистрация
	w := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", "", api.RegisterRequest{
		Username:    "agent1",
		AuthKeyHash: "a1b2c3",
		PublicSalt:  "c2FsdA==",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Соль доступна без токена
	w = doJSON(t, h, http.MethodGet, "/api/v1/auth/salt/agent1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var saltResp api.GetSaltResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saltResp))
	assert.Equal(t, "c2FsdA==", saltResp.PublicSalt)

	// Логин
	w = doJSON(t, h, http.MethodPost, "/api/v1/auth/login", "", api.LoginRequest{
		Username:    "agent1",
		AuthKeyHash: "a1b2c3",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var tokenResp api.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokenResp))
	require.NotEmpty(t, tokenResp.AccessToken)

	// Push операции
	push := api.PushOperationRequest{
		Table:          "deliveries",
		RecordID:       "rec-1",
		Type:           "CREATE",
		Data:           json.RawMessage(`{"weight_kg": 100}`),
		BaseVersion:    0,
		IdempotencyKey: "11111111-2222-3333-4444-555555555555",
	}
	w = doJSON(t, h, http.MethodPost, "/api/v1/sync/operations", tokenResp.AccessToken, push)
	require.Equal(t, http.StatusOK, w.Code)
	var pushResp api.PushOperationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pushResp))
	assert.Equal(t, api.PushStatusApplied, pushResp.Status)
	assert.Equal(t, int64(1), pushResp.ServerVersion)

	// Повтор с тем же idempotency key возвращает тот же результат
	w = doJSON(t, h, http.MethodPost, "/api/v1/sync/operations", tokenResp.AccessToken, push)
	require.Equal(t, http.StatusOK, w.Code)
	var replay api.PushOperationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &replay))
	assert.Equal(t, api.PushStatusApplied, replay.Status)
	assert.Equal(t, int64(1), replay.ServerVersion)

	// Лента изменений отдает запись
	w = doJSON(t, h, http.MethodGet, "/api/v1/sync/changes/deliveries?since=0", tokenResp.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var changes api.ChangesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &changes))
	require.Len(t, changes.Records, 1)
	assert.Equal(t, "rec-1", changes.Records[0].RecordID)
	assert.Equal(t, int64(1), changes.Records[0].ServerVersion)
	assert.Greater(t, changes.ServerTime, int64(0))
}

func TestServer_RunShutsDownOnContextCancel(t *testing.T) {
	st, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(config.ServerConfig{
		ListenAddr:   "127.0.0.1:0",
		JWTSecret:    "test-secret",
		TokenTTL:     config.Duration(time.Hour),
		RateLimitRPS: 100,
	}, logger, st, st, "test")

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
