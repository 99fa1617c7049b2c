package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Keys содержит производные ключи для аутентификации и локального шифрования
type Keys struct {
	AuthKey       []byte // ключ для аутентификации на сервере (32 bytes)
	EncryptionKey []byte // ключ для шифрования локальных токенов (32 bytes)
}

// Параметры Argon2id
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// Argon2KeyLen - длина выходного ключа в байтах
	Argon2KeyLen = 32
	// SaltSize - размер соли в байтах
	SaltSize = 32
)

// GenerateSalt генерирует криптографически случайную соль
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// GenerateSaltBase64 генерирует соль и возвращает её в Base64
func GenerateSaltBase64() (string, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// DeriveKeys генерирует два независимых ключа из пароля агента:
// AuthKey для аутентификации на сервере и EncryptionKey для шифрования
// токенов в локальном хранилище. Использует Argon2id с разными context
// strings для независимости ключей.
func DeriveKeys(password, username string, salt []byte) (*Keys, error) {
	if password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	authInput := []byte(password + ":" + username + ":auth")
	encInput := []byte(password + ":" + username + ":encryption")

	return &Keys{
		AuthKey:       argon2.IDKey(authInput, salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen),
		EncryptionKey: argon2.IDKey(encInput, salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen),
	}, nil
}

// DeriveKeysFromBase64Salt деривирует ключи из соли в Base64
func DeriveKeysFromBase64Salt(password, username, saltBase64 string) (*Keys, error) {
	salt, err := base64.StdEncoding.DecodeString(saltBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	return DeriveKeys(password, username, salt)
}
