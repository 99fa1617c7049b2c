package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Junior620/cocoatrack-sub003/internal/models"
	"github.com/Junior620/cocoatrack-sub003/internal/server/storage"
)

// ApplyOperation атомарно применяет клиентскую операцию.
//
// Порядок проверок внутри транзакции:
//  1. журнал идемпотентности: повтор возвращает сохранённый результат;
//  2. сверка версии: base_version операции должен совпадать с текущей
//     серверной версией записи, иначе конфликт;
//  3. применение: версия растёт на единицу, DELETE помечает запись
//     удалённой, результат пишется в журнал идемпотентности.
//
// Конфликты в журнал не пишутся: клиент перебазирует операцию и
// предъявит её снова с тем же ключом.
func (s *Storage) ApplyOperation(ctx context.Context, userID string, op storage.Operation) (*storage.ApplyResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback после commit безопасен

	// Повтор операции
	var stored []byte
	err = tx.QueryRowContext(ctx,
		`SELECT result FROM idempotency_keys WHERE user_id = ? AND key = ?`,
		userID, op.IdempotencyKey,
	).Scan(&stored)
	switch {
	case err == nil:
		var result storage.ApplyResult
		if err := json.Unmarshal(stored, &result); err != nil {
			return nil, fmt.Errorf("failed to decode journaled result: %w", err)
		}
		result.Replayed = true
		return &result, nil
	case errors.Is(err, sql.ErrNoRows):
		// Первое применение
	default:
		return nil, fmt.Errorf("failed to check idempotency journal: %w", err)
	}

	// Текущее состояние записи
	var (
		data           []byte
		currentVersion int64
		deleted        bool
		exists         = true
	)
	err = tx.QueryRowContext(ctx,
		`SELECT data, server_version, deleted FROM records
		 WHERE user_id = ? AND tbl = ? AND record_id = ?`,
		userID, op.Table, op.RecordID,
	).Scan(&data, &currentVersion, &deleted)
	if errors.Is(err, sql.ErrNoRows) {
		exists = false
	} else if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	// Сверка версии
	if op.BaseVersion != currentVersion {
		result := &storage.ApplyResult{
			Status:        storage.ApplyStatusConflict,
			ServerVersion: currentVersion,
		}
		if exists && !deleted {
			result.RemoteRecord = data
		}
		return result, nil
	}

	// Применение
	newVersion := currentVersion + 1
	now := time.Now().UnixMilli()

	newData := op.Data
	newDeleted := op.Type == string(models.OpDelete)
	if newDeleted {
		newData = nil
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO records (user_id, tbl, record_id, data, server_version, updated_at, deleted)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, tbl, record_id) DO UPDATE SET
		   data = excluded.data,
		   server_version = excluded.server_version,
		   updated_at = excluded.updated_at,
		   deleted = excluded.deleted`,
		userID, op.Table, op.RecordID, []byte(newData), newVersion, now, newDeleted,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to write record: %w", err)
	}

	result := &storage.ApplyResult{
		Status:        storage.ApplyStatusApplied,
		ServerVersion: newVersion,
		Record:        newData,
	}

	journaled, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO idempotency_keys (user_id, key, result, created_at) VALUES (?, ?, ?, ?)`,
		userID, op.IdempotencyKey, journaled, now,
	); err != nil {
		return nil, fmt.Errorf("failed to journal result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return result, nil
}

// GetChangesSince возвращает записи таблицы, изменённые строго после since
func (s *Storage) GetChangesSince(ctx context.Context, userID, table string, since int64) ([]*storage.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT record_id, data, server_version, updated_at, deleted FROM records
		 WHERE user_id = ? AND tbl = ? AND updated_at > ?
		 ORDER BY updated_at, record_id`,
		userID, table, since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query changes: %w", err)
	}
	defer rows.Close()

	var records []*storage.Record
	for rows.Next() {
		rec := &storage.Record{UserID: userID, Table: table}
		var data []byte
		if err := rows.Scan(&rec.RecordID, &data, &rec.ServerVersion, &rec.UpdatedAt, &rec.Deleted); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.Data = data
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate changes: %w", err)
	}

	return records, nil
}

// GetRecord возвращает текущее состояние записи
func (s *Storage) GetRecord(ctx context.Context, userID, table, recordID string) (*storage.Record, error) {
	rec := &storage.Record{UserID: userID, Table: table, RecordID: recordID}
	var data []byte

	err := s.db.QueryRowContext(ctx,
		`SELECT data, server_version, updated_at, deleted FROM records
		 WHERE user_id = ? AND tbl = ? AND record_id = ?`,
		userID, table, recordID,
	).Scan(&data, &rec.ServerVersion, &rec.UpdatedAt, &rec.Deleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	rec.Data = data
	return rec, nil
}
