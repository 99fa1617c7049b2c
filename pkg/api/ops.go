package api

import "encoding/json"

// PushOperationRequest представляет одну отложенную операцию, отправляемую на сервер.
// IdempotencyKey позволяет серверу распознать повтор и вернуть сохранённый результат
// вместо повторного применения.
type PushOperationRequest struct {
	Table          string          `json:"table"`
	RecordID       string          `json:"record_id"`
	Type           string          `json:"type"` // CREATE, UPDATE, DELETE
	Data           json.RawMessage `json:"data,omitempty"`
	BaseVersion    int64           `json:"base_version"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// Push operation result statuses.
const (
	PushStatusApplied  = "applied"
	PushStatusConflict = "conflict"
)

// PushOperationResponse представляет результат применения операции.
// При конфликте версий сервер возвращает текущее состояние записи,
// чтобы клиент мог выполнить three-way merge.
type PushOperationResponse struct {
	Status        string          `json:"status"` // "applied" | "conflict"
	ServerVersion int64           `json:"server_version"`
	Record        json.RawMessage `json:"record,omitempty"`        // state after apply
	RemoteRecord  json.RawMessage `json:"remote_record,omitempty"` // current server state on conflict
}

// ChangeRecord представляет одно изменение записи в ленте изменений сервера.
type ChangeRecord struct {
	RecordID      string          `json:"record_id"`
	Data          json.RawMessage `json:"data,omitempty"`
	ServerVersion int64           `json:"server_version"`
	UpdatedAt     int64           `json:"updated_at"` // unix millis
	Deleted       bool            `json:"deleted"`
}

// ChangesResponse представляет ответ на запрос изменений с сервера
// для одной таблицы начиная с курсора since.
type ChangesResponse struct {
	Table      string         `json:"table"`
	Records    []ChangeRecord `json:"records"`
	ServerTime int64          `json:"server_time"` // unix millis, next pull cursor
}
