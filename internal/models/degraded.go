package models

// DegradedMode определяет режим работы клиента при ограничениях
// ресурсов или авторизации
type DegradedMode string

// Режимы в порядке возрастания приоритета
const (
	ModeNormal          DegradedMode = "normal"
	ModeQueuePressure   DegradedMode = "queue_pressure"
	ModeReadOnlyStorage DegradedMode = "read_only_storage"
	ModeReadOnlyAuth    DegradedMode = "read_only_auth"
)

// Action определяет действие пользователя, которое может быть
// заблокировано в деградированном режиме
type Action string

// Действия, гейтируемые degraded-mode менеджером
const (
	ActionCreateDelivery Action = "create_delivery"
	ActionUpdateDelivery Action = "update_delivery"
	ActionDeleteDelivery Action = "delete_delivery"
	ActionEditReference  Action = "edit_reference"
	ActionSync           Action = "sync"
	ActionLogin          Action = "login"
)

// DegradedState представляет текущее состояние degraded-mode менеджера.
// Состояние всегда выводимо из входов (глубина очереди, занятость хранилища,
// валидность сессии) и никогда не персистится как авторитетное.
type DegradedState struct {
	Mode            DegradedMode `json:"mode"`
	OpsQueueCount   int          `json:"ops_queue_count"`
	StoragePercent  float64      `json:"storage_percent"`
	AuthValid       bool         `json:"auth_valid"`
	DisabledActions []Action     `json:"disabled_actions"`
}
