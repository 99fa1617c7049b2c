// Package degraded реализует классификатор режима работы клиента.
// Режим всегда выводится заново из текущих входов (глубина очереди,
// занятость хранилища, валидность сессии) и нигде не персистится.
package degraded

import (
	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

// Thresholds пороги переключения режимов
type Thresholds struct {
	// QueueWarning глубина очереди, при которой включается queue_pressure
	QueueWarning int

	// StorageCritical процент занятости хранилища, при котором
	// включается read_only_storage
	StorageCritical float64
}

// DefaultThresholds returns the default mode thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		QueueWarning:    50,
		StorageCritical: 90,
	}
}

// Classify выводит режим из входов. Чистая функция: одинаковые входы
// всегда дают одинаковый режим.
//
// Приоритет: read_only_auth > read_only_storage > queue_pressure > normal.
// Невалидная сессия доминирует над любыми другими входами.
func Classify(queueDepth int, storagePercent float64, authValid bool, th Thresholds) models.DegradedMode {
	switch {
	case !authValid:
		return models.ModeReadOnlyAuth
	case storagePercent >= th.StorageCritical:
		return models.ModeReadOnlyStorage
	case queueDepth >= th.QueueWarning:
		return models.ModeQueuePressure
	default:
		return models.ModeNormal
	}
}

// disabledByMode статичная карта заблокированных действий.
// queue_pressure только предупреждает, ничего не блокируя.
var disabledByMode = map[models.DegradedMode][]models.Action{
	models.ModeReadOnlyAuth: {
		models.ActionCreateDelivery,
		models.ActionUpdateDelivery,
		models.ActionDeleteDelivery,
		models.ActionEditReference,
		models.ActionSync,
	},
	models.ModeReadOnlyStorage: {
		models.ActionCreateDelivery,
		models.ActionUpdateDelivery,
		models.ActionDeleteDelivery,
		models.ActionEditReference,
	},
	models.ModeQueuePressure: {},
	models.ModeNormal:        {},
}

// DisabledActions returns the actions blocked in the given mode.
func DisabledActions(mode models.DegradedMode) []models.Action {
	actions := disabledByMode[mode]
	out := make([]models.Action, len(actions))
	copy(out, actions)
	return out
}

// IsActionDisabled reports whether the action is blocked in the given mode.
func IsActionDisabled(mode models.DegradedMode, action models.Action) bool {
	for _, a := range disabledByMode[mode] {
		if a == action {
			return true
		}
	}
	return false
}

// tooltipByMode причина блокировки, показываемая пользователю
var tooltipByMode = map[models.DegradedMode]string{
	models.ModeReadOnlyAuth:    "Session expired. Log in again to continue working.",
	models.ModeReadOnlyStorage: "Local storage is almost full. Synchronize and free up space before creating new records.",
	models.ModeQueuePressure:   "Many operations are waiting to be synchronized. Connect to the network to sync.",
	models.ModeNormal:          "",
}

// Tooltip returns the user-facing reason for the current mode restrictions.
func Tooltip(mode models.DegradedMode) string {
	return tooltipByMode[mode]
}
