// Package config загружает конфигурацию клиента и сервера из YAML файла
// поверх значений по умолчанию.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Junior620/cocoatrack-sub003/internal/client/conflict"
	"github.com/Junior620/cocoatrack-sub003/internal/client/degraded"
	"github.com/Junior620/cocoatrack-sub003/internal/client/platform"
	"github.com/Junior620/cocoatrack-sub003/internal/client/syncer"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

// Duration обёртка над time.Duration с парсингом из YAML строки вида "30s"
type Duration time.Duration

// UnmarshalYAML реализует yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std возвращает значение как time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// SyncConfig параметры sync-движка
type SyncConfig struct {
	MaxAttempts int      `yaml:"max_attempts"`
	BackoffMin  Duration `yaml:"backoff_min"`
	BackoffMax  Duration `yaml:"backoff_max"`
}

// DegradedConfig пороги деградированных режимов
type DegradedConfig struct {
	QueueWarning    int     `yaml:"queue_warning"`
	StorageCritical float64 `yaml:"storage_critical"`
}

// ConflictConfig политика разрешения конфликтов
type ConflictConfig struct {
	// CriticalFields поля, конфликт по которым требует ручного разрешения
	CriticalFields map[string][]string `yaml:"critical_fields"`

	// NonCriticalWinner сторона, выигрывающая некритичный конфликт:
	// local или server
	NonCriticalWinner string `yaml:"non_critical_winner"`
}

// ClientConfig конфигурация клиента
type ClientConfig struct {
	// ServerURL адрес сервера синхронизации
	ServerURL string `yaml:"server_url"`

	// DBPath путь к локальной bbolt базе
	DBPath string `yaml:"db_path"`

	// StorageQuotaBytes квота локального хранилища, от которой считается
	// процент занятости
	StorageQuotaBytes int64 `yaml:"storage_quota_bytes"`

	// MinSyncInterval минимальный интервал между foreground sync-проходами
	MinSyncInterval Duration `yaml:"min_sync_interval"`

	Sync     SyncConfig     `yaml:"sync"`
	Degraded DegradedConfig `yaml:"degraded"`
	Conflict ConflictConfig `yaml:"conflict"`
}

// ServerConfig конфигурация сервера
type ServerConfig struct {
	// ListenAddr адрес HTTP listener'а
	ListenAddr string `yaml:"listen_addr"`

	// DBPath путь к sqlite базе
	DBPath string `yaml:"db_path"`

	// JWTSecret ключ подписи access-токенов
	JWTSecret string `yaml:"jwt_secret"`

	// TokenTTL время жизни access-токена
	TokenTTL Duration `yaml:"token_ttl"`

	// RateLimitRPS лимит запросов в секунду на клиента
	RateLimitRPS int `yaml:"rate_limit_rps"`
}

// Config корневая конфигурация
type Config struct {
	Client ClientConfig `yaml:"client"`
	Server ServerConfig `yaml:"server"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Client: ClientConfig{
			ServerURL:         "http://localhost:8080",
			DBPath:            "cocoatrack-client.db",
			StorageQuotaBytes: 64 << 20,
			MinSyncInterval:   Duration(platform.DefaultMinSyncInterval),
			Sync: SyncConfig{
				MaxAttempts: syncer.DefaultMaxAttempts,
				BackoffMin:  Duration(syncer.DefaultBackoffMin),
				BackoffMax:  Duration(syncer.DefaultBackoffMax),
			},
			Degraded: DegradedConfig{
				QueueWarning:    degraded.DefaultThresholds().QueueWarning,
				StorageCritical: degraded.DefaultThresholds().StorageCritical,
			},
			Conflict: ConflictConfig{
				CriticalFields: map[string][]string{
					models.TableDeliveries: {
						"weight_kg",
						"quantity",
						"price_per_kg",
						"total_amount",
						"validation_status",
						"payment_status",
					},
				},
				NonCriticalWinner: "local",
			},
		},
		Server: ServerConfig{
			ListenAddr:   ":8080",
			DBPath:       "cocoatrack.db",
			TokenTTL:     Duration(24 * time.Hour),
			RateLimitRPS: 100,
		},
	}
}

// Load читает YAML файл поверх значений по умолчанию.
// Пустой путь возвращает конфигурацию по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Client.Sync.MaxAttempts <= 0 {
		return fmt.Errorf("sync.max_attempts must be positive")
	}
	if c.Client.Degraded.QueueWarning <= 0 {
		return fmt.Errorf("degraded.queue_warning must be positive")
	}
	if c.Client.Degraded.StorageCritical <= 0 || c.Client.Degraded.StorageCritical > 100 {
		return fmt.Errorf("degraded.storage_critical must be in (0, 100]")
	}
	switch c.Client.Conflict.NonCriticalWinner {
	case "local", "server":
	default:
		return fmt.Errorf("conflict.non_critical_winner must be local or server, got %q", c.Client.Conflict.NonCriticalWinner)
	}
	return nil
}

// SyncerConfig строит конфигурацию sync-движка
func (c *ClientConfig) SyncerConfig() syncer.Config {
	return syncer.Config{
		Tables:      models.KnownTables(),
		MaxAttempts: c.Sync.MaxAttempts,
		BackoffMin:  c.Sync.BackoffMin.Std(),
		BackoffMax:  c.Sync.BackoffMax.Std(),
	}
}

// Thresholds строит пороги degraded-mode менеджера
func (c *ClientConfig) Thresholds() degraded.Thresholds {
	return degraded.Thresholds{
		QueueWarning:    c.Degraded.QueueWarning,
		StorageCritical: c.Degraded.StorageCritical,
	}
}

// ConflictPolicy строит политику резолвера конфликтов
func (c *ClientConfig) ConflictPolicy() conflict.Policy {
	winner := conflict.WinnerLocal
	if c.Conflict.NonCriticalWinner == "server" {
		winner = conflict.WinnerServer
	}
	return conflict.Policy{
		CriticalFields:    c.Conflict.CriticalFields,
		NonCriticalWinner: winner,
	}
}
