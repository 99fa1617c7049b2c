package storage

import (
	"context"
	"encoding/json"
)

// Record авторитетная серверная версия записи одной таблицы
type Record struct {
	UserID   string          `json:"user_id"`
	Table    string          `json:"table"`
	RecordID string          `json:"record_id"`
	Data     json.RawMessage `json:"data,omitempty"`

	// ServerVersion монотонный счётчик версий записи, растёт на единицу
	// при каждом применённом изменении
	ServerVersion int64 `json:"server_version"`

	// UpdatedAt unix millis последнего изменения, курсор фида изменений
	UpdatedAt int64 `json:"updated_at"`

	Deleted bool `json:"deleted"`
}

// Operation одна клиентская мутация, предъявленная серверу
type Operation struct {
	Table    string
	RecordID string
	Type     string
	Data     json.RawMessage

	// BaseVersion версия записи, которую клиент видел при постановке
	// операции в очередь. Несовпадение с текущей версией означает конфликт.
	BaseVersion int64

	// IdempotencyKey стабильный ключ повтора. Повторная отправка операции
	// с тем же ключом возвращает сохранённый результат первого применения.
	IdempotencyKey string
}

// Статусы применения операции
const (
	ApplyStatusApplied  = "applied"
	ApplyStatusConflict = "conflict"
)

// ApplyResult итог применения операции
type ApplyResult struct {
	Status string `json:"status"`

	// ServerVersion новая версия записи (applied) либо текущая
	// серверная версия (conflict)
	ServerVersion int64 `json:"server_version"`

	// Record каноничное состояние записи после применения (applied)
	Record json.RawMessage `json:"record,omitempty"`

	// RemoteRecord текущее серверное состояние записи (conflict)
	RemoteRecord json.RawMessage `json:"remote_record,omitempty"`

	// Replayed true, если результат взят из журнала идемпотентности
	Replayed bool `json:"replayed,omitempty"`
}

// RecordStorage defines interface for record persistence
type RecordStorage interface {
	// ApplyOperation атомарно применяет операцию: проверяет журнал
	// идемпотентности, сверяет версию и либо применяет изменение,
	// либо возвращает конфликт с текущим серверным состоянием.
	ApplyOperation(ctx context.Context, userID string, op Operation) (*ApplyResult, error)

	// GetChangesSince возвращает записи таблицы, изменённые строго после
	// курсора since, в порядке возрастания updated_at
	GetChangesSince(ctx context.Context, userID, table string, since int64) ([]*Record, error)

	// GetRecord возвращает текущее состояние записи.
	// Returns ErrRecordNotFound if record doesn't exist.
	GetRecord(ctx context.Context, userID, table, recordID string) (*Record, error)
}
