// Package cli реализует консольный интерфейс полевого агента:
// постановка операций в очередь, синхронизация, разбор конфликтов.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Junior620/cocoatrack-sub003/internal/client/auth"
	"github.com/Junior620/cocoatrack-sub003/internal/client/conflict"
	"github.com/Junior620/cocoatrack-sub003/internal/client/iocli"
	"github.com/Junior620/cocoatrack-sub003/internal/client/platform"
	"github.com/Junior620/cocoatrack-sub003/internal/client/queue"
	"github.com/Junior620/cocoatrack-sub003/internal/client/syncer"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

//go:generate moq -out app_mock.go . App
//go:generate moq -out auth_mock.go . Auth

// PasswordEnvVar переменная окружения с паролем агента,
// имеет приоритет над интерактивным вводом
const PasswordEnvVar = "COCOATRACK_PASSWORD"

// App определяет подмножество фасада приложения, нужное командам
type App interface {
	SubmitOperation(ctx context.Context, params queue.EnqueueParams) (*models.QueuedOperation, error)
	Sync(ctx context.Context, accessToken string) (*syncer.SyncResult, error)
	PendingCount(ctx context.Context) (int, error)
	ConflictCount(ctx context.Context) (int, error)
	Operations(ctx context.Context) ([]*models.QueuedOperation, error)
	Conflicts(ctx context.Context) ([]*models.QueuedOperation, error)
	ResolveConflict(ctx context.Context, opID string, choices map[string]conflict.Choice) error
	DismissConflict(ctx context.Context, opID string) error
	Retry(ctx context.Context, opID string) error
	Records(ctx context.Context, table string) ([]*models.CachedRecord, error)
	RefreshDegraded(ctx context.Context) (models.DegradedState, error)
	IntegrityCheck(ctx context.Context) (*platform.IntegrityReport, error)
}

// Auth определяет подмножество сервиса авторизации, нужное командам
type Auth interface {
	Register(ctx context.Context, username, password string) (*auth.RegisterResult, error)
	Login(ctx context.Context, username, password string) (*auth.Session, error)
	Restore(ctx context.Context, password string) (*auth.Session, error)
	Logout(ctx context.Context) error
	IsSessionValid(ctx context.Context) bool
}

// Cli диспетчеризует команды агента
type Cli struct {
	io   iocli.IO
	app  App
	auth Auth
}

// New создает CLI поверх фасада приложения и сервиса авторизации
func New(io iocli.IO, app App, auth Auth) *Cli {
	return &Cli{
		io:   io,
		app:  app,
		auth: auth,
	}
}

// Run выполняет одну команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "sync":
		return c.runSync(ctx)
	case "watch":
		return c.runWatch(ctx)
	case "add":
		return c.runAdd(ctx, args)
	case "update":
		return c.runUpdate(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "records":
		return c.runRecords(ctx, args)
	case "queue":
		return c.runQueue(ctx)
	case "conflicts":
		return c.runConflicts(ctx)
	case "resolve":
		return c.runResolve(ctx, args)
	case "discard":
		return c.runDiscard(ctx, args)
	case "retry":
		return c.runRetry(ctx, args)
	case "integrity":
		return c.runIntegrity(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() {
	c.io.Println("CocoaTrack Agent")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  cocoatrack [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --version        Show version information")
	c.io.Println("  --config PATH    Path to YAML config file")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  register                      Register a new agent account")
	c.io.Println("  login                         Log in to the sync server")
	c.io.Println("  logout                        Drop the local session")
	c.io.Println("  status                        Show mode, queue depth and session state")
	c.io.Println("  sync                          Run one synchronization pass")
	c.io.Println("  watch                         Sync on platform events (online, visible)")
	c.io.Println("  add <table> <id> <json>       Queue a record creation")
	c.io.Println("  update <table> <id> <json>    Queue a record update")
	c.io.Println("  delete <table> <id>           Queue a record deletion")
	c.io.Println("  records <table>               List locally cached records")
	c.io.Println("  queue                         List queued operations")
	c.io.Println("  conflicts                     List operations awaiting conflict review")
	c.io.Println("  resolve <op-id>               Resolve a conflict field by field")
	c.io.Println("  discard <op-id>               Drop the local change, keep the server version")
	c.io.Println("  retry <op-id>                 Return a failed operation to the queue")
	c.io.Println("  integrity                     Check the local cache for data eviction")
	c.io.Println()
	c.io.Println("The agent password is read from the " + PasswordEnvVar + " environment")
	c.io.Println("variable when set, otherwise prompted interactively.")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println(`  cocoatrack add deliveries d-042 '{"planter_id": "p-7", "weight_kg": 120}'`)
	c.io.Println("  cocoatrack sync")
	c.io.Println("  cocoatrack conflicts")
	c.io.Println("  cocoatrack resolve 7b1c9e4d-1f2a-4e5b-8c3d-9a0f1e2d3c4b")
}

// password возвращает пароль агента из окружения или запрашивает его
func (c *Cli) password() (string, error) {
	if env := os.Getenv(PasswordEnvVar); env != "" {
		return env, nil
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

// session восстанавливает сессию из локального хранилища
func (c *Cli) session(ctx context.Context) (*auth.Session, error) {
	password, err := c.password()
	if err != nil {
		return nil, err
	}
	session, err := c.auth.Restore(ctx, password)
	if err != nil {
		return nil, fmt.Errorf("not authenticated, run 'cocoatrack login' first: %w", err)
	}
	return session, nil
}
