package models

// ResolutionStrategy определяет способ разрешения конфликта по одному полю
type ResolutionStrategy string

// Стратегии разрешения
const (
	ResolutionManual    ResolutionStrategy = "manual"
	ResolutionAutoMerge ResolutionStrategy = "auto_merge"
)

// ConflictDetail описывает конфликт по одному полю записи.
// Поле конфликтует, только если и локальная, и серверная сторона изменили
// его относительно базового снимка. Критичные поля (суммы, количества,
// статусы валидации) блокируют авто-мерж и требуют ручного выбора.
type ConflictDetail struct {
	Field       string             `json:"field"`
	LocalValue  any                `json:"local_value"`
	RemoteValue any                `json:"remote_value"`
	BaseValue   any                `json:"base_value"`
	IsCritical  bool               `json:"is_critical"`
	Resolution  ResolutionStrategy `json:"resolution"`
}
