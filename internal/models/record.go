package models

import (
	"encoding/json"
	"time"
)

// Известные таблицы. Tier-1 таблицы (planters, suppliers, warehouses)
// содержат справочные данные, которые после успешной синхронизации всегда
// должны присутствовать локально; их исчезновение после простоя указывает
// на вытеснение данных платформой.
const (
	TableDeliveries = "deliveries"
	TablePlanters   = "planters"
	TableSuppliers  = "suppliers"
	TableWarehouses = "warehouses"
)

// Tier1Tables возвращает список справочных таблиц
func Tier1Tables() []string {
	return []string{TablePlanters, TableSuppliers, TableWarehouses}
}

// KnownTables возвращает полный список отслеживаемых таблиц
func KnownTables() []string {
	return []string{TableDeliveries, TablePlanters, TableSuppliers, TableWarehouses}
}

// KnownTable проверяет, что имя таблицы входит в фиксированный набор сущностей
func KnownTable(table string) bool {
	switch table {
	case TableDeliveries, TablePlanters, TableSuppliers, TableWarehouses:
		return true
	}
	return false
}

// CachedRecord представляет запись в локальном кэше справочных данных
type CachedRecord struct {
	UpdatedAt     time.Time       `json:"updated_at"`
	Table         string          `json:"table"`
	RecordID      string          `json:"record_id"`
	Data          json.RawMessage `json:"data,omitempty"`
	ServerVersion int64           `json:"server_version"`
	Deleted       bool            `json:"deleted"`
}

// SyncMetadata хранит состояние синхронизации одной таблицы:
// когда она синхронизировалась в последний раз и с какого курсора
// запрашивать следующие изменения
type SyncMetadata struct {
	Table      string `json:"table"`
	LastSyncAt int64  `json:"last_sync_at"` // unix millis
	Cursor     int64  `json:"cursor"`       // unix millis, значение server_time последнего pull
}
