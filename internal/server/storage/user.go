package storage

import (
	"context"
	"time"
)

// User учётная запись агента
type User struct {
	CreatedAt   time.Time
	LastLoginAt time.Time
	ID          string
	Username    string
	AuthKeyHash string
	PublicSalt  string
}

// UserStorage defines interface for user persistence
type UserStorage interface {
	// CreateUser creates a new user.
	// Returns ErrUserAlreadyExists if username is taken.
	CreateUser(ctx context.Context, user *User) error

	// GetUserByUsername retrieves user by username.
	// Returns ErrUserNotFound if user doesn't exist.
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error
}
