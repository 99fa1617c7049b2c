package cli

import (
	"context"
)

// runSync выполняет один проход синхронизации: pull изменений сервера,
// затем push локальной очереди
func (c *Cli) runSync(ctx context.Context) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	c.io.Println("Synchronizing...")

	result, err := c.app.Sync(ctx, session.AccessToken)
	if err != nil {
		return err
	}

	c.io.Printf("Pulled %d record(s), pushed %d operation(s)\n", result.Pulled, result.Synced)
	if result.Conflicts > 0 {
		c.io.Printf("%d operation(s) need conflict review, run 'cocoatrack conflicts'\n", result.Conflicts)
	}
	if result.Failed > 0 {
		c.io.Printf("%d operation(s) failed:\n", result.Failed)
		for _, msg := range result.Errors {
			c.io.Printf("  - %s\n", msg)
		}
	}
	if result.Success {
		c.io.Println("Sync completed.")
	}
	return nil
}
