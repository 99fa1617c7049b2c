package validation

import (
	"encoding/json"
	"fmt"

	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

// MaxPayloadSize максимальный размер payload одной операции (256 KB).
// Ограничение защищает очередь и сервер от аномально больших записей.
const MaxPayloadSize = 256 * 1024

// ValidateOperation проверяет параметры локальной мутации перед постановкой в очередь.
// Те же проверки выполняет сервер при приёме операции.
func ValidateOperation(opType models.OperationType, table, recordID string, data json.RawMessage) error {
	if !opType.Valid() {
		return fmt.Errorf("unknown operation type %q", opType)
	}
	if !models.KnownTable(table) {
		return fmt.Errorf("unknown table %q", table)
	}
	if recordID == "" {
		return fmt.Errorf("record id cannot be empty")
	}
	if opType != models.OpDelete && len(data) == 0 {
		return fmt.Errorf("%s operation requires a payload", opType)
	}
	if len(data) > MaxPayloadSize {
		return fmt.Errorf("payload too large: %d bytes (max %d)", len(data), MaxPayloadSize)
	}
	if len(data) > 0 && !json.Valid(data) {
		return fmt.Errorf("payload is not valid JSON")
	}
	return nil
}
