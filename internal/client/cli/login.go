package cli

import (
	"context"
	"fmt"
)

// runLogin аутентифицирует агента и сохраняет зашифрованный токен локально
func (c *Cli) runLogin(ctx context.Context) error {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.password()
	if err != nil {
		return err
	}

	session, err := c.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Printf("Logged in as %s, session valid until %s\n",
		session.Username, session.ExpiresAt.Format("2006-01-02 15:04"))
	return nil
}

// runLogout удаляет локальные данные авторизации. Очередь операций
// и кэш записей остаются на месте.
func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("Logged out. Queued operations are kept and will sync after the next login.")
	return nil
}
