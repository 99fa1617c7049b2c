package cli

import (
	"context"
	"strings"
)

// runStatus печатает текущий режим работы, глубину очереди и состояние сессии
func (c *Cli) runStatus(ctx context.Context) error {
	state, err := c.app.RefreshDegraded(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Mode:            %s\n", state.Mode)
	c.io.Printf("Queued ops:      %d\n", state.OpsQueueCount)
	c.io.Printf("Storage used:    %.1f%%\n", state.StoragePercent)

	if state.AuthValid {
		c.io.Println("Session:         valid")
	} else {
		c.io.Println("Session:         expired or missing, run 'cocoatrack login'")
	}

	if len(state.DisabledActions) > 0 {
		actions := make([]string, 0, len(state.DisabledActions))
		for _, a := range state.DisabledActions {
			actions = append(actions, string(a))
		}
		c.io.Printf("Disabled:        %s\n", strings.Join(actions, ", "))
	}

	conflicts, err := c.app.ConflictCount(ctx)
	if err != nil {
		return err
	}
	if conflicts > 0 {
		c.io.Printf("Conflicts:       %d awaiting review, run 'cocoatrack conflicts'\n", conflicts)
	}

	return nil
}

// runIntegrity проверяет локальный кэш на признаки вытеснения данных платформой
func (c *Cli) runIntegrity(ctx context.Context) error {
	report, err := c.app.IntegrityCheck(ctx)
	if err != nil {
		return err
	}

	if !report.LastActivity.IsZero() {
		c.io.Printf("Last activity:   %s\n", report.LastActivity.Format("2006-01-02 15:04"))
	}

	if !report.LikelyEvicted {
		c.io.Println("Local cache looks intact.")
		return nil
	}

	c.io.Println("Local data may have been evicted by the operating system.")
	if len(report.EmptyTables) > 0 {
		c.io.Printf("Empty reference tables: %s\n", strings.Join(report.EmptyTables, ", "))
	}
	if report.Recommendation != "" {
		c.io.Printf("Recommendation: %s\n", report.Recommendation)
	}
	return nil
}
