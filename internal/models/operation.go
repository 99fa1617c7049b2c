package models

import (
	"encoding/json"
	"time"
)

// OperationType определяет тип локальной мутации
type OperationType string

// Типы операций
const (
	OpCreate OperationType = "CREATE"
	OpUpdate OperationType = "UPDATE"
	OpDelete OperationType = "DELETE"
)

// Valid проверяет, что тип операции известен
func (t OperationType) Valid() bool {
	switch t {
	case OpCreate, OpUpdate, OpDelete:
		return true
	}
	return false
}

// OperationStatus определяет статус операции в очереди
type OperationStatus string

// Статусы операций. Жизненный цикл:
// pending → syncing → {удалена | needs_review | failed}
const (
	StatusPending     OperationStatus = "pending"
	StatusSyncing     OperationStatus = "syncing"
	StatusNeedsReview OperationStatus = "needs_review"
	StatusFailed      OperationStatus = "failed"
)

// QueuedOperation представляет одну локальную мутацию, ещё не подтверждённую сервером.
// Операция создаётся при локальном изменении данных и живёт в очереди до тех пор,
// пока сервер не подтвердит её применение (или пока конфликт не разрешит человек).
type QueuedOperation struct {
	CreatedAt time.Time `json:"created_at"`

	LastAttemptAt time.Time `json:"last_attempt_at,omitzero"`

	ID       string        `json:"id"` // локальный UUID операции
	Type     OperationType `json:"type"`
	Table    string        `json:"table"`
	RecordID string        `json:"record_id"`

	// Data полный снимок payload на момент постановки в очередь
	Data json.RawMessage `json:"data,omitempty"`

	// BaseSnapshot состояние записи, которое клиент видел при постановке в очередь.
	// Общий предок для three-way merge при конфликте.
	BaseSnapshot json.RawMessage `json:"base_snapshot,omitempty"`

	// BaseVersion версия записи на сервере, которую клиент видел при постановке
	BaseVersion int64 `json:"base_version"`

	// IdempotencyKey стабильный ключ, по которому сервер распознаёт повтор.
	// Детерминированно выводится из (table, recordID, type, ID операции),
	// поэтому повторная отправка безопасна.
	IdempotencyKey string `json:"idempotency_key"`

	Status OperationStatus `json:"status"`

	// Error последняя ошибка (для failed операций)
	Error string `json:"error,omitempty"`

	// Conflicts детали конфликта (для needs_review операций)
	Conflicts []ConflictDetail `json:"conflicts,omitempty"`

	// RemoteSnapshot состояние записи на сервере на момент конфликта
	// (для needs_review операций). Нужен, чтобы разрешить конфликт вручную
	// без повторного похода в сеть.
	RemoteSnapshot json.RawMessage `json:"remote_snapshot,omitempty"`

	// RemoteVersion серверная версия записи на момент конфликта
	RemoteVersion int64 `json:"remote_version,omitempty"`

	// Seq порядковый номер в очереди, назначается хранилищем при записи.
	// Гарантирует FIFO порядок per-record.
	Seq uint64 `json:"seq"`

	// Attempts количество неуспешных попыток отправки
	Attempts int `json:"attempts"`
}

// Blocks сообщает, блокирует ли операция в этом статусе
// последующие операции над той же записью
func (s OperationStatus) Blocks() bool {
	return s == StatusNeedsReview || s == StatusFailed || s == StatusSyncing
}
