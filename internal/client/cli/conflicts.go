package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Junior620/cocoatrack-sub003/internal/client/conflict"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

// runConflicts печатает операции, ожидающие ручного разрешения конфликта
func (c *Cli) runConflicts(ctx context.Context) error {
	conflicts, err := c.app.Conflicts(ctx)
	if err != nil {
		return err
	}

	if len(conflicts) == 0 {
		c.io.Println("No conflicts awaiting review.")
		return nil
	}

	c.io.Printf("%d conflict(s) awaiting review:\n", len(conflicts))
	for _, op := range conflicts {
		c.io.Printf("  %s  %s %s/%s\n", op.ID, op.Type, op.Table, op.RecordID)
		for _, d := range op.Conflicts {
			marker := ""
			if d.IsCritical {
				marker = "  [critical]"
			}
			c.io.Printf("    %s: local=%v server=%v%s\n", d.Field, d.LocalValue, d.RemoteValue, marker)
		}
	}
	c.io.Println()
	c.io.Println("Run 'cocoatrack resolve <op-id>' to pick values field by field,")
	c.io.Println("or 'cocoatrack discard <op-id>' to keep the server version.")
	return nil
}

// runResolve проводит агента по конфликтующим полям. Каждое критичное
// поле требует явного выбора local или server; некритичные можно оставить
// на усмотрение политики, нажав Enter.
func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: resolve <op-id>")
	}
	opID := args[0]

	op, err := c.findConflict(ctx, opID)
	if err != nil {
		return err
	}

	c.io.Printf("Resolving %s %s/%s (local base v%d, server v%d)\n",
		op.Type, op.Table, op.RecordID, op.BaseVersion, op.RemoteVersion)

	choices := make(map[string]conflict.Choice)
	for _, d := range op.Conflicts {
		choice, err := c.promptChoice(d)
		if err != nil {
			return err
		}
		if choice != "" {
			choices[d.Field] = choice
		}
	}

	if err := c.app.ResolveConflict(ctx, opID, choices); err != nil {
		return err
	}

	c.io.Println("Conflict resolved, the operation is queued for the next sync.")
	return nil
}

// promptChoice запрашивает выбор стороны для одного поля
func (c *Cli) promptChoice(d models.ConflictDetail) (conflict.Choice, error) {
	c.io.Println()
	c.io.Printf("Field %q", d.Field)
	if d.IsCritical {
		c.io.Printf(" (critical)")
	}
	c.io.Println()
	c.io.Printf("  base:   %v\n", d.BaseValue)
	c.io.Printf("  local:  %v\n", d.LocalValue)
	c.io.Printf("  server: %v\n", d.RemoteValue)

	prompt := "Keep [l]ocal or [s]erver? "
	if !d.IsCritical {
		prompt = "Keep [l]ocal, [s]erver or Enter for default? "
	}

	for {
		answer, err := c.io.ReadInput(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read choice: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "l", "local":
			return conflict.ChoiceLocal, nil
		case "s", "server":
			return conflict.ChoiceServer, nil
		case "":
			if !d.IsCritical {
				return "", nil
			}
			c.io.Printf("Field %q is critical and needs an explicit choice.\n", d.Field)
		default:
			c.io.Println("Please answer 'l' or 's'.")
		}
	}
}

// runDiscard отбрасывает локальную мутацию и принимает серверную версию
func (c *Cli) runDiscard(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: discard <op-id>")
	}
	opID := args[0]

	op, err := c.findConflict(ctx, opID)
	if err != nil {
		return err
	}

	answer, err := c.io.ReadInput(fmt.Sprintf("Drop local %s of %s/%s and keep the server version? [y/N] ",
		op.Type, op.Table, op.RecordID))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.app.DismissConflict(ctx, opID); err != nil {
		return err
	}

	c.io.Println("Local change dropped, server version kept.")
	return nil
}

// runRetry возвращает failed операцию в очередь
func (c *Cli) runRetry(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: retry <op-id>")
	}

	if err := c.app.Retry(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("Operation returned to the queue, run 'cocoatrack sync' to push it.")
	return nil
}

// findConflict ищет needs_review операцию по идентификатору
func (c *Cli) findConflict(ctx context.Context, opID string) (*models.QueuedOperation, error) {
	conflicts, err := c.app.Conflicts(ctx)
	if err != nil {
		return nil, err
	}
	for _, op := range conflicts {
		if op.ID == opID {
			return op, nil
		}
	}
	return nil, fmt.Errorf("no conflict with id %s, run 'cocoatrack conflicts' to list them", opID)
}
