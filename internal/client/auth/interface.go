package auth

import (
	"context"

	"github.com/Junior620/cocoatrack-sub003/pkg/api"
)

//go:generate moq -out client_mock.go . APIClient

// APIClient определяет подмножество серверного API, нужное авторизации
type APIClient interface {
	// Register регистрирует нового агента
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// GetSalt получает public_salt пользователя
	GetSalt(ctx context.Context, username string) (*api.GetSaltResponse, error)

	// Login выполняет аутентификацию
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
}
