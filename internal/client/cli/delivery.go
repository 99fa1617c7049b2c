package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Junior620/cocoatrack-sub003/internal/client/app"
	"github.com/Junior620/cocoatrack-sub003/internal/client/queue"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

// runAdd ставит в очередь создание записи
func (c *Cli) runAdd(ctx context.Context, args []string) error {
	table, recordID, payload, err := mutationArgs(args, true)
	if err != nil {
		return err
	}

	op, err := c.app.SubmitOperation(ctx, queue.EnqueueParams{
		Type:     models.OpCreate,
		Table:    table,
		RecordID: recordID,
		Data:     payload,
	})
	if err != nil {
		return describeGateError(err)
	}

	c.io.Printf("Queued CREATE %s/%s (op %s)\n", table, recordID, op.ID)
	return nil
}

// runUpdate ставит в очередь изменение записи. Кэшированное состояние
// записи становится базой для three-way merge при конфликте.
func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	table, recordID, payload, err := mutationArgs(args, true)
	if err != nil {
		return err
	}

	base, err := c.findRecord(ctx, table, recordID)
	if err != nil {
		return err
	}

	op, err := c.app.SubmitOperation(ctx, queue.EnqueueParams{
		Type:     models.OpUpdate,
		Table:    table,
		RecordID: recordID,
		Data:     payload,
		Base:     base,
	})
	if err != nil {
		return describeGateError(err)
	}

	c.io.Printf("Queued UPDATE %s/%s (op %s)\n", table, recordID, op.ID)
	return nil
}

// runDelete ставит в очередь удаление записи
func (c *Cli) runDelete(ctx context.Context, args []string) error {
	table, recordID, _, err := mutationArgs(args, false)
	if err != nil {
		return err
	}

	base, err := c.findRecord(ctx, table, recordID)
	if err != nil {
		return err
	}

	op, err := c.app.SubmitOperation(ctx, queue.EnqueueParams{
		Type:     models.OpDelete,
		Table:    table,
		RecordID: recordID,
		Base:     base,
	})
	if err != nil {
		return describeGateError(err)
	}

	c.io.Printf("Queued DELETE %s/%s (op %s)\n", table, recordID, op.ID)
	return nil
}

// mutationArgs разбирает аргументы команд add/update/delete
func mutationArgs(args []string, needPayload bool) (table, recordID string, payload json.RawMessage, err error) {
	want := 2
	if needPayload {
		want = 3
	}
	if len(args) < want {
		if needPayload {
			return "", "", nil, fmt.Errorf("usage: <table> <record-id> <json>")
		}
		return "", "", nil, fmt.Errorf("usage: <table> <record-id>")
	}

	table, recordID = args[0], args[1]
	if needPayload {
		payload = json.RawMessage(args[2])
		if !json.Valid(payload) {
			return "", "", nil, fmt.Errorf("payload is not valid JSON")
		}
	}
	return table, recordID, payload, nil
}

// findRecord ищет запись в локальном кэше. Отсутствие записи не ошибка:
// UPDATE мог быть набран по данным, которых локально ещё нет.
func (c *Cli) findRecord(ctx context.Context, table, recordID string) (*models.CachedRecord, error) {
	records, err := c.app.Records(ctx, table)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.RecordID == recordID {
			return rec, nil
		}
	}
	return nil, nil
}

// describeGateError дополняет ошибку заблокированного действия подсказкой
func describeGateError(err error) error {
	if errors.Is(err, app.ErrActionDisabled) {
		return fmt.Errorf("%w\nRun 'cocoatrack status' for details", err)
	}
	return err
}
