package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKeys_Deterministic(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	keys1, err := DeriveKeys("correct-horse-battery", "agent1", salt)
	require.NoError(t, err)
	keys2, err := DeriveKeys("correct-horse-battery", "agent1", salt)
	require.NoError(t, err)

	// Одинаковые входы дают одинаковые ключи
	assert.Equal(t, keys1.AuthKey, keys2.AuthKey)
	assert.Equal(t, keys1.EncryptionKey, keys2.EncryptionKey)

	// AuthKey и EncryptionKey независимы
	assert.NotEqual(t, keys1.AuthKey, keys1.EncryptionKey)
	assert.Len(t, keys1.AuthKey, Argon2KeyLen)
	assert.Len(t, keys1.EncryptionKey, Argon2KeyLen)
}

func TestDeriveKeys_DifferentPasswords(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	keys1, err := DeriveKeys("password-one", "agent1", salt)
	require.NoError(t, err)
	keys2, err := DeriveKeys("password-two", "agent1", salt)
	require.NoError(t, err)

	assert.NotEqual(t, keys1.AuthKey, keys2.AuthKey)
}

func TestDeriveKeys_Validation(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	_, err = DeriveKeys("", "agent1", salt)
	require.Error(t, err)

	_, err = DeriveKeys("password", "", salt)
	require.Error(t, err)

	_, err = DeriveKeys("password", "agent1", []byte("short"))
	require.Error(t, err)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	keys, err := DeriveKeys("password123", "agent1", salt)
	require.NoError(t, err)

	plaintext := []byte(`{"access_token":"abc","expires_at":123}`)

	encrypted, err := Encrypt(plaintext, keys.EncryptionKey)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, encrypted)

	decrypted, err := Decrypt(encrypted, keys.EncryptionKey)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestDecrypt_WrongKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	keys1, err := DeriveKeys("password-one", "agent1", salt)
	require.NoError(t, err)
	keys2, err := DeriveKeys("password-two", "agent1", salt)
	require.NoError(t, err)

	encrypted, err := Encrypt([]byte("secret"), keys1.EncryptionKey)
	require.NoError(t, err)

	_, err = Decrypt(encrypted, keys2.EncryptionKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decrypt")
}

func TestDecrypt_Corrupted(t *testing.T) {
	_, err := Decrypt([]byte("too-short"), make([]byte, 32))
	require.Error(t, err)
}

func TestHashAuthKey(t *testing.T) {
	hash1, err := HashAuthKey([]byte("auth-key"))
	require.NoError(t, err)
	hash2, err := HashAuthKey([]byte("auth-key"))
	require.NoError(t, err)

	// Детерминированный хеш
	assert.Equal(t, hash1, hash2)
	assert.Len(t, hash1, 64) // hex-encoded SHA256

	require.NoError(t, VerifyAuthKey([]byte("auth-key"), hash1))
	require.Error(t, VerifyAuthKey([]byte("other-key"), hash1))
}
