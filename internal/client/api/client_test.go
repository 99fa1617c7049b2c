package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Junior620/cocoatrack-sub003/internal/models"
	"github.com/Junior620/cocoatrack-sub003/pkg/api"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.RegisterRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "agent1", req.Username)
		assert.NotEmpty(t, req.AuthKeyHash)
		assert.NotEmpty(t, req.PublicSalt)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.RegisterResponse{
			UserID:   "user-123",
			Username: "agent1",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Register(context.Background(), api.RegisterRequest{
		Username:    "agent1",
		AuthKeyHash: "hash123",
		PublicSalt:  "salt123",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-123", resp.UserID)
}

func TestClient_GetSalt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/auth/salt/agent1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(api.GetSaltResponse{PublicSalt: "salt123"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.GetSalt(context.Background(), "agent1")
	require.NoError(t, err)
	assert.Equal(t, "salt123", resp.PublicSalt)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

		_ = json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken: "token-abc",
			TokenType:   "Bearer",
			ExpiresIn:   3600,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Login(context.Background(), api.LoginRequest{
		Username:    "agent1",
		AuthKeyHash: "hash123",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", resp.AccessToken)
}

func TestClient_Login_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "invalid credentials"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Login(context.Background(), api.LoginRequest{Username: "agent1"})
	require.Error(t, err)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Contains(t, authErr.Message, "invalid credentials")
}

func TestClient_PushOperation_Applied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/sync/operations", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		var req api.PushOperationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.TableDeliveries, req.Table)
		assert.NotEmpty(t, req.IdempotencyKey)

		_ = json.NewEncoder(w).Encode(api.PushOperationResponse{
			Status:        api.PushStatusApplied,
			ServerVersion: 4,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.PushOperation(context.Background(), "token-abc", api.PushOperationRequest{
		Table:          models.TableDeliveries,
		RecordID:       "rec-1",
		Type:           "CREATE",
		Data:           json.RawMessage(`{"weight_kg": 100}`),
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)
	assert.Equal(t, api.PushStatusApplied, resp.Status)
	assert.Equal(t, int64(4), resp.ServerVersion)
}

func TestClient_PushOperation_Conflict(t *testing.T) {
	remote := json.RawMessage(`{"weight_kg": 120}`)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.PushOperationResponse{
			Status:        api.PushStatusConflict,
			ServerVersion: 9,
			RemoteRecord:  remote,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.PushOperation(context.Background(), "token-abc", api.PushOperationRequest{
		Table:          models.TableDeliveries,
		RecordID:       "rec-1",
		Type:           "UPDATE",
		BaseVersion:    3,
		IdempotencyKey: "key-1",
	})
	require.Error(t, err)

	var conflictErr *ConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, int64(9), conflictErr.ServerVersion)
	assert.JSONEq(t, string(remote), string(conflictErr.RemoteRecord))
}

func TestClient_PushOperation_ErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      api.ErrorResponse
		transient bool
	}{
		{
			name:      "server error is transient",
			status:    http.StatusInternalServerError,
			body:      api.ErrorResponse{Message: "db down"},
			transient: true,
		},
		{
			name:      "too many requests is transient",
			status:    http.StatusTooManyRequests,
			body:      api.ErrorResponse{Message: "slow down"},
			transient: true,
		},
		{
			name:      "validation rejection is permanent",
			status:    http.StatusUnprocessableEntity,
			body:      api.ErrorResponse{Message: "weight must be positive"},
			transient: false,
		},
		{
			name:      "retryable flag forces transient",
			status:    http.StatusConflict,
			body:      api.ErrorResponse{Message: "busy, retry later", Retryable: true},
			transient: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(tt.body)
			}))
			defer server.Close()

			client := NewClient(server.URL)

			_, err := client.PushOperation(context.Background(), "token", api.PushOperationRequest{
				Table:          models.TableDeliveries,
				RecordID:       "rec-1",
				Type:           "CREATE",
				IdempotencyKey: "key-1",
			})
			require.Error(t, err)
			assert.Equal(t, tt.transient, IsTransient(err))

			if !tt.transient {
				var permErr *PermanentError
				assert.True(t, errors.As(err, &permErr))
				assert.Equal(t, tt.status, permErr.StatusCode)
			}
		})
	}
}

func TestClient_PushOperation_NetworkErrorIsTransient(t *testing.T) {
	// Закрытый сервер: соединение откажет
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)

	_, err := client.PushOperation(context.Background(), "token", api.PushOperationRequest{
		Table:          models.TableDeliveries,
		RecordID:       "rec-1",
		Type:           "CREATE",
		IdempotencyKey: "key-1",
	})
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestClient_GetChanges(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sync/changes/deliveries", r.URL.Path)
		assert.Equal(t, "1700000000000", r.URL.Query().Get("since"))
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(api.ChangesResponse{
			Table: models.TableDeliveries,
			Records: []api.ChangeRecord{
				{RecordID: "rec-1", Data: json.RawMessage(`{"weight_kg": 100}`), ServerVersion: 2},
			},
			ServerTime: 1700000005000,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.GetChanges(context.Background(), "token-abc", models.TableDeliveries, 1700000000000)
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "rec-1", resp.Records[0].RecordID)
	assert.Equal(t, int64(1700000005000), resp.ServerTime)
}
