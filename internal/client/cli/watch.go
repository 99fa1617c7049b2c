package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Junior620/cocoatrack-sub003/internal/client/platform"
)

// watchMinInterval минимальный интервал между синхронизациями в watch-режиме
const watchMinInterval = 30 * time.Second

// runWatch держит сессию открытой и запускает синхронизацию по событиям
// платформы. В терминале события вводятся строками: "online" после
// восстановления связи, "visible" после возврата к приложению, пустая
// строка как "visible", "quit" для выхода.
func (c *Cli) runWatch(ctx context.Context) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	caps := platform.Capabilities{
		Platform:          "desktop",
		HasBackgroundSync: false,
		Standalone:        true,
	}

	trigger := platform.NewTrigger(caps, func(ctx context.Context) error {
		result, err := c.app.Sync(ctx, session.AccessToken)
		if err != nil {
			c.io.Printf("Sync failed: %v\n", err)
			return err
		}
		c.io.Printf("Synced: pulled %d, pushed %d, conflicts %d\n",
			result.Pulled, result.Synced, result.Conflicts)
		return nil
	}, watchMinInterval, slog.Default())

	c.io.Println("Watching for platform events. Type 'online', 'visible' or press Enter")
	c.io.Println("to trigger a sync, 'quit' to stop.")

	for {
		line, err := c.io.ReadInput("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var event platform.Event
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit", "q", "exit":
			return nil
		case "online":
			event = platform.EventOnline
		case "visible", "":
			event = platform.EventVisible
		default:
			c.io.Println("Unknown event, expected 'online', 'visible' or 'quit'.")
			continue
		}

		if !trigger.HandleEvent(ctx, event) {
			c.io.Println("Skipped: too soon since the last sync.")
		}
	}
}
