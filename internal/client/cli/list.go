package cli

import (
	"context"
	"fmt"
)

// runRecords печатает кэшированные записи таблицы
func (c *Cli) runRecords(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: records <table>")
	}
	table := args[0]

	records, err := c.app.Records(ctx, table)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		c.io.Printf("No cached records in %s\n", table)
		return nil
	}

	c.io.Printf("%d record(s) in %s:\n", len(records), table)
	for _, rec := range records {
		c.io.Printf("  %s  v%d  %s\n", rec.RecordID, rec.ServerVersion, rec.Data)
	}
	return nil
}

// runQueue печатает очередь операций в FIFO порядке
func (c *Cli) runQueue(ctx context.Context) error {
	ops, err := c.app.Operations(ctx)
	if err != nil {
		return err
	}

	if len(ops) == 0 {
		c.io.Println("The operation queue is empty.")
		return nil
	}

	c.io.Printf("%d queued operation(s):\n", len(ops))
	for _, op := range ops {
		c.io.Printf("  %s  %s %s/%s  %s", op.ID, op.Type, op.Table, op.RecordID, op.Status)
		if op.Attempts > 0 {
			c.io.Printf("  attempts=%d", op.Attempts)
		}
		if op.Error != "" {
			c.io.Printf("  last error: %s", op.Error)
		}
		c.io.Println()
	}
	return nil
}
