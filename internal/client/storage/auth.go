package storage

import "context"

// AuthData содержит данные авторизации агента в локальном хранилище.
// Access token хранится зашифрованным (AES-GCM на ключе, производном от
// пароля агента); слой internal/client/auth отвечает за шифрование.
type AuthData struct {
	Username       string `json:"username"`
	UserID         string `json:"user_id"`
	NodeID         string `json:"node_id"` // уникальный ID устройства
	PublicSalt     string `json:"public_salt"`
	EncryptedToken []byte `json:"encrypted_token"`
	ExpiresAt      int64  `json:"expires_at"` // unix seconds
}

//go:generate moq -out authstorage_mock.go . AuthStorage

// AuthStorage defines interface for storing authentication data
type AuthStorage interface {
	// SaveAuth saves authentication data
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves authentication data
	// Returns ErrAuthNotFound if no session is stored
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data
	DeleteAuth(ctx context.Context) error
}
