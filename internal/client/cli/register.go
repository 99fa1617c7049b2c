package cli

import (
	"context"
	"fmt"
	"os"
)

// runRegister регистрирует нового агента на сервере
func (c *Cli) runRegister(ctx context.Context) error {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.password()
	if err != nil {
		return err
	}

	// Подтверждение нужно только при интерактивном вводе
	if os.Getenv(PasswordEnvVar) == "" {
		confirm, err := c.io.ReadPassword("Confirm password: ")
		if err != nil {
			return fmt.Errorf("failed to read password confirmation: %w", err)
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}
	}

	result, err := c.auth.Register(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Printf("Agent %s registered (id %s)\n", result.Username, result.UserID)
	c.io.Println("Run 'cocoatrack login' to start a session.")
	return nil
}
