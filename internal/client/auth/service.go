// Package auth реализует авторизацию полевого агента: деривацию ключей
// из пароля, логин против сервера и хранение access token'а в зашифрованном
// виде в локальном хранилище.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Junior620/cocoatrack-sub003/internal/client/storage"
	"github.com/Junior620/cocoatrack-sub003/internal/crypto"
	"github.com/Junior620/cocoatrack-sub003/internal/validation"
	pkgapi "github.com/Junior620/cocoatrack-sub003/pkg/api"
)

// Service предоставляет функции авторизации
type Service struct {
	apiClient APIClient
	store     storage.AuthStorage
	logger    *slog.Logger
	now       func() time.Time
}

// ServiceOption настраивает сервис авторизации
type ServiceOption func(*Service)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService создает новый сервис авторизации
func NewService(apiClient APIClient, store storage.AuthStorage, logger *slog.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		apiClient: apiClient,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID     string
	Username   string
	PublicSalt string // base64
}

// Register регистрирует нового агента на сервере
func (s *Service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	publicSalt, err := crypto.GenerateSaltBase64()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	keys, err := crypto.DeriveKeysFromBase64Salt(password, username, publicSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive keys: %w", err)
	}

	authKeyHash, err := crypto.HashAuthKey(keys.AuthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash auth key: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
		PublicSalt:  publicSalt,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("Agent registered", "username", username, "user_id", resp.UserID)

	return &RegisterResult{
		UserID:     resp.UserID,
		Username:   username,
		PublicSalt: publicSalt,
	}, nil
}

// Session активная сессия агента. Держится в памяти процесса,
// на диске живёт только зашифрованный токен.
type Session struct {
	Username      string
	NodeID        string
	AccessToken   string
	EncryptionKey []byte
	ExpiresAt     time.Time
}

// Login аутентифицирует агента и сохраняет зашифрованный токен локально
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	saltResp, err := s.apiClient.GetSalt(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get salt: %w", err)
	}

	keys, err := crypto.DeriveKeysFromBase64Salt(password, username, saltResp.PublicSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive keys: %w", err)
	}

	authKeyHash, err := crypto.HashAuthKey(keys.AuthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash auth key: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	nodeID, err := s.getOrCreateNodeID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create node ID: %w", err)
	}

	encryptedToken, err := crypto.Encrypt([]byte(resp.AccessToken), keys.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}

	expiresAt := s.now().Add(time.Duration(resp.ExpiresIn) * time.Second)

	auth := &storage.AuthData{
		Username:       username,
		NodeID:         nodeID,
		PublicSalt:     saltResp.PublicSalt,
		EncryptedToken: encryptedToken,
		ExpiresAt:      expiresAt.Unix(),
	}
	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.Info("Agent logged in", "username", username, "node_id", nodeID)

	return &Session{
		Username:      username,
		NodeID:        nodeID,
		AccessToken:   resp.AccessToken,
		EncryptionKey: keys.EncryptionKey,
		ExpiresAt:     expiresAt,
	}, nil
}

// Restore восстанавливает сессию из локального хранилища по паролю агента.
// Сетевых вызовов нет: ключи деривируются из сохранённой соли, токен
// расшифровывается локально.
func (s *Service) Restore(ctx context.Context, password string) (*Session, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load auth data: %w", err)
	}

	if s.now().Unix() >= auth.ExpiresAt {
		return nil, fmt.Errorf("session expired, log in again")
	}

	keys, err := crypto.DeriveKeysFromBase64Salt(password, auth.Username, auth.PublicSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive keys: %w", err)
	}

	token, err := crypto.Decrypt(auth.EncryptedToken, keys.EncryptionKey)
	if err != nil {
		// Неверный пароль даёт другой ключ, GCM это ловит
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}

	return &Session{
		Username:      auth.Username,
		NodeID:        auth.NodeID,
		AccessToken:   string(token),
		EncryptionKey: keys.EncryptionKey,
		ExpiresAt:     time.Unix(auth.ExpiresAt, 0),
	}, nil
}

// Logout удаляет локальные данные авторизации
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete auth data: %w", err)
	}
	s.logger.Info("Agent logged out")
	return nil
}

// IsSessionValid сообщает, есть ли непросроченная сессия.
// Вход degraded-mode классификатора: невалидная сессия включает read_only_auth.
func (s *Service) IsSessionValid(ctx context.Context) bool {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		return false
	}
	return s.now().Unix() < auth.ExpiresAt
}

// getOrCreateNodeID возвращает сохранённый NodeID устройства или создаёт новый
func (s *Service) getOrCreateNodeID(ctx context.Context) (string, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return uuid.New().String(), nil
		}
		return "", fmt.Errorf("failed to get auth data: %w", err)
	}
	if auth.NodeID != "" {
		return auth.NodeID, nil
	}
	return uuid.New().String(), nil
}
