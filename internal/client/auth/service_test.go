package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Junior620/cocoatrack-sub003/internal/client/storage"
	"github.com/Junior620/cocoatrack-sub003/internal/crypto"
	pkgapi "github.com/Junior620/cocoatrack-sub003/pkg/api"
)

type authState struct {
	stored *storage.AuthData
}

func newAuthMocks(t *testing.T) (*APIClientMock, *storage.AuthStorageMock, *authState) {
	t.Helper()

	state := &authState{}
	store := &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			cp := *auth
			state.stored = &cp
			return nil
		},
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			if state.stored == nil {
				return nil, storage.ErrAuthNotFound
			}
			cp := *state.stored
			return &cp, nil
		},
		DeleteAuthFunc: func(ctx context.Context) error {
			state.stored = nil
			return nil
		},
	}

	salt, err := crypto.GenerateSaltBase64()
	require.NoError(t, err)

	apiMock := &APIClientMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
			return &pkgapi.RegisterResponse{UserID: "user-1", Username: req.Username}, nil
		},
		GetSaltFunc: func(ctx context.Context, username string) (*pkgapi.GetSaltResponse, error) {
			return &pkgapi.GetSaltResponse{PublicSalt: salt}, nil
		},
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken: "token-abc",
				TokenType:   "Bearer",
				ExpiresIn:   3600,
			}, nil
		},
	}

	return apiMock, store, state
}

func newService(apiMock *APIClientMock, store *storage.AuthStorageMock, opts ...ServiceOption) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(apiMock, store, logger, opts...)
}

func TestService_Register(t *testing.T) {
	apiMock, store, _ := newAuthMocks(t)
	svc := newService(apiMock, store)

	result, err := svc.Register(context.Background(), "agent1", "strong-password")
	require.NoError(t, err)

	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "agent1", result.Username)
	assert.NotEmpty(t, result.PublicSalt)

	require.Len(t, apiMock.RegisterCalls(), 1)
	sent := apiMock.RegisterCalls()[0].Req
	assert.Equal(t, "agent1", sent.Username)
	assert.NotEmpty(t, sent.AuthKeyHash)
	// Пароль никогда не уходит на сервер
	assert.NotContains(t, sent.AuthKeyHash, "strong-password")
}

func TestService_Register_InvalidInput(t *testing.T) {
	apiMock, store, _ := newAuthMocks(t)
	svc := newService(apiMock, store)

	_, err := svc.Register(context.Background(), "a", "strong-password")
	require.Error(t, err)

	_, err = svc.Register(context.Background(), "agent1", "short")
	require.Error(t, err)

	assert.Empty(t, apiMock.RegisterCalls())
}

func TestService_Login_StoresEncryptedToken(t *testing.T) {
	apiMock, store, state := newAuthMocks(t)
	svc := newService(apiMock, store)

	session, err := svc.Login(context.Background(), "agent1", "strong-password")
	require.NoError(t, err)

	assert.Equal(t, "token-abc", session.AccessToken)
	assert.NotEmpty(t, session.NodeID)
	assert.Len(t, session.EncryptionKey, 32)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	require.NotNil(t, state.stored)
	assert.Equal(t, "agent1", state.stored.Username)
	// Токен на диске не в открытом виде
	assert.NotEqual(t, []byte("token-abc"), state.stored.EncryptedToken)
	assert.NotEmpty(t, state.stored.EncryptedToken)
}

func TestService_Login_ReusesNodeID(t *testing.T) {
	apiMock, store, state := newAuthMocks(t)
	svc := newService(apiMock, store)

	ctx := context.Background()

	first, err := svc.Login(ctx, "agent1", "strong-password")
	require.NoError(t, err)

	second, err := svc.Login(ctx, "agent1", "strong-password")
	require.NoError(t, err)

	assert.Equal(t, first.NodeID, second.NodeID)
	assert.Equal(t, first.NodeID, state.stored.NodeID)
}

func TestService_Restore(t *testing.T) {
	apiMock, store, _ := newAuthMocks(t)
	svc := newService(apiMock, store)

	ctx := context.Background()

	login, err := svc.Login(ctx, "agent1", "strong-password")
	require.NoError(t, err)

	restored, err := svc.Restore(ctx, "strong-password")
	require.NoError(t, err)

	assert.Equal(t, login.AccessToken, restored.AccessToken)
	assert.Equal(t, login.NodeID, restored.NodeID)
	assert.Equal(t, "agent1", restored.Username)
}

func TestService_Restore_WrongPassword(t *testing.T) {
	apiMock, store, _ := newAuthMocks(t)
	svc := newService(apiMock, store)

	ctx := context.Background()

	_, err := svc.Login(ctx, "agent1", "strong-password")
	require.NoError(t, err)

	// Неверный пароль даёт другой ключ, расшифровка падает
	_, err = svc.Restore(ctx, "wrong-password-1")
	require.Error(t, err)
}

func TestService_Restore_Expired(t *testing.T) {
	apiMock, store, _ := newAuthMocks(t)

	now := time.Now()
	clock := func() time.Time { return now }
	svc := newService(apiMock, store, WithClock(clock))

	ctx := context.Background()

	_, err := svc.Login(ctx, "agent1", "strong-password")
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = svc.Restore(ctx, "strong-password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestService_Restore_NoSession(t *testing.T) {
	apiMock, store, _ := newAuthMocks(t)
	svc := newService(apiMock, store)

	_, err := svc.Restore(context.Background(), "strong-password")
	require.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestService_Logout(t *testing.T) {
	apiMock, store, state := newAuthMocks(t)
	svc := newService(apiMock, store)

	ctx := context.Background()

	_, err := svc.Login(ctx, "agent1", "strong-password")
	require.NoError(t, err)
	require.NotNil(t, state.stored)

	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, state.stored)

	// Повторный logout без сессии не ошибка
	require.NoError(t, svc.Logout(ctx))
}

func TestService_IsSessionValid(t *testing.T) {
	apiMock, store, _ := newAuthMocks(t)

	now := time.Now()
	clock := func() time.Time { return now }
	svc := newService(apiMock, store, WithClock(clock))

	ctx := context.Background()

	// Нет сессии - невалидна
	assert.False(t, svc.IsSessionValid(ctx))

	_, err := svc.Login(ctx, "agent1", "strong-password")
	require.NoError(t, err)
	assert.True(t, svc.IsSessionValid(ctx))

	// После истечения срока - невалидна
	now = now.Add(2 * time.Hour)
	assert.False(t, svc.IsSessionValid(ctx))
}
