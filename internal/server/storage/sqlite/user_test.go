package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Junior620/cocoatrack-sub003/internal/server/storage"
)

func testUser(username string) *storage.User {
	return &storage.User{
		ID:          "user-" + username,
		Username:    username,
		AuthKeyHash: "a1b2c3",
		PublicSalt:  "c2FsdA==",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestCreateUser_And_GetByUsername(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	user := testUser("agent1")
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByUsername(ctx, "agent1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.AuthKeyHash, got.AuthKeyHash)
	assert.Equal(t, user.PublicSalt, got.PublicSalt)
	assert.True(t, got.LastLoginAt.IsZero())
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	require.NoError(t, s.CreateUser(ctx, testUser("agent1")))

	dup := testUser("agent1")
	dup.ID = "user-other"
	err := s.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.GetUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	user := testUser("agent1")
	require.NoError(t, s.CreateUser(ctx, user))

	loginAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.UpdateLastLogin(ctx, user.ID, loginAt))

	got, err := s.GetUserByUsername(ctx, "agent1")
	require.NoError(t, err)
	assert.Equal(t, loginAt, got.LastLoginAt.UTC())

	assert.ErrorIs(t, s.UpdateLastLogin(ctx, "ghost", loginAt), storage.ErrUserNotFound)
}
