package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TransientError временный сбой (сеть, таймаут, 5xx, 429).
// Операцию имеет смысл повторить с backoff.
type TransientError struct {
	Err        error
	Message    string
	StatusCode int
}

func (e *TransientError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("transient failure (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("transient failure: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// PermanentError бизнес-отказ сервера (4xx). Повторять бессмысленно.
type PermanentError struct {
	Message    string
	StatusCode int
}

func (e *PermanentError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.StatusCode, e.Message)
}

// AuthError сессия невалидна или истекла. Требуется повторный вход.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// ConflictError версия записи на сервере ушла вперёд относительно
// baseVersion операции. Несёт текущее состояние записи для three-way merge.
type ConflictError struct {
	RemoteRecord  json.RawMessage
	ServerVersion int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict: server at version %d", e.ServerVersion)
}

// IsTransient reports whether the error is worth retrying.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
