package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Junior620/cocoatrack-sub003/internal/models"
	"github.com/Junior620/cocoatrack-sub003/internal/server/storage"
	"github.com/Junior620/cocoatrack-sub003/internal/validation"
	"github.com/Junior620/cocoatrack-sub003/pkg/api"
)

// RecordStorage определяет интерфейс для работы с записями
type RecordStorage interface {
	ApplyOperation(ctx context.Context, userID string, op storage.Operation) (*storage.ApplyResult, error)
	GetChangesSince(ctx context.Context, userID, table string, since int64) ([]*storage.Record, error)
}

// SyncHandler handles synchronization requests
type SyncHandler struct {
	logger  *slog.Logger
	storage RecordStorage
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, storage RecordStorage) *SyncHandler {
	return &SyncHandler{
		logger:  logger,
		storage: storage,
	}
}

// PushOperation обрабатывает POST /api/v1/sync/operations.
// Принимает одну клиентскую операцию. Конфликт версий возвращается
// со статусом 200 и status=conflict в теле: для клиента это не сбой
// транспорта, а штатная ветка разрешения конфликта.
func (h *SyncHandler) PushOperation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("User ID not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.PushOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode push request", "error", err)
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Сервер повторяет клиентские проверки: очередь клиента не единственный
	// источник операций, которому можно доверять
	if err := validation.ValidateOperation(models.OperationType(req.Type), req.Table, req.RecordID, req.Data); err != nil {
		h.logger.Warn("Invalid operation",
			"user_id", userID,
			"table", req.Table,
			"record_id", req.RecordID,
			"error", err)
		h.sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if req.IdempotencyKey == "" {
		h.sendError(w, "idempotency_key is required", http.StatusBadRequest)
		return
	}

	result, err := h.storage.ApplyOperation(ctx, userID, storage.Operation{
		Table:          req.Table,
		RecordID:       req.RecordID,
		Type:           req.Type,
		Data:           req.Data,
		BaseVersion:    req.BaseVersion,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		h.logger.Error("Failed to apply operation",
			"error", err,
			"user_id", userID,
			"table", req.Table,
			"record_id", req.RecordID)
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	status := api.PushStatusApplied
	if result.Status == storage.ApplyStatusConflict {
		status = api.PushStatusConflict
	}

	h.logger.Info("Operation processed",
		"user_id", userID,
		"table", req.Table,
		"record_id", req.RecordID,
		"status", status,
		"replayed", result.Replayed)

	h.sendJSON(w, api.PushOperationResponse{
		Status:        status,
		ServerVersion: result.ServerVersion,
		Record:        result.Record,
		RemoteRecord:  result.RemoteRecord,
	}, http.StatusOK)
}

// GetChanges обрабатывает GET /api/v1/sync/changes/{table}?since=N.
// Возвращает изменения таблицы строго после курсора since, включая
// tombstone'ы удалённых записей.
func (h *SyncHandler) GetChanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("User ID not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	table := r.PathValue("table")
	if !models.KnownTable(table) {
		h.sendError(w, "unknown table", http.StatusBadRequest)
		return
	}

	var since int64
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		var err error
		since, err = strconv.ParseInt(sinceStr, 10, 64)
		if err != nil {
			h.logger.Warn("Invalid since parameter", "since", sinceStr, "error", err)
			h.sendError(w, "invalid since parameter", http.StatusBadRequest)
			return
		}
	}

	records, err := h.storage.GetChangesSince(ctx, userID, table, since)
	if err != nil {
		h.logger.Error("Failed to get changes", "error", err, "user_id", userID, "table", table)
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	changes := make([]api.ChangeRecord, 0, len(records))
	serverTime := since

	for _, rec := range records {
		changes = append(changes, api.ChangeRecord{
			RecordID:      rec.RecordID,
			Data:          rec.Data,
			ServerVersion: rec.ServerVersion,
			UpdatedAt:     rec.UpdatedAt,
			Deleted:       rec.Deleted,
		})
		if rec.UpdatedAt > serverTime {
			serverTime = rec.UpdatedAt
		}
	}

	h.logger.Info("Changes served",
		"user_id", userID,
		"table", table,
		"since", since,
		"count", len(changes))

	h.sendJSON(w, api.ChangesResponse{
		Table:      table,
		Records:    changes,
		ServerTime: serverTime,
	}, http.StatusOK)
}

// sendJSON отправляет JSON ответ
func (h *SyncHandler) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", "error", err)
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *SyncHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{Message: message}, statusCode)
}
