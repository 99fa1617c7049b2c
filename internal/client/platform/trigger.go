package platform

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Event платформенное событие, по которому уместно запустить синхронизацию
type Event string

// События, обрабатываемые триггером
const (
	// EventVisible приложение вернулось на передний план
	EventVisible Event = "visible"

	// EventOnline появилось сетевое соединение
	EventOnline Event = "online"
)

// DefaultMinSyncInterval минимальный интервал между автозапусками синхронизации
const DefaultMinSyncInterval = 30 * time.Second

// Trigger запускает синхронизацию по платформенным событиям вместо
// фоновой синхронизации. Повторные события внутри минимального интервала
// игнорируются, чтобы не гонять лишние проходы.
type Trigger struct {
	caps        Capabilities
	run         func(ctx context.Context) error
	minInterval time.Duration
	logger      *slog.Logger
	now         func() time.Time

	mu      sync.Mutex
	lastRun time.Time
}

// TriggerOption настраивает триггер
type TriggerOption func(*Trigger)

// WithTriggerClock подменяет источник времени (для тестов)
func WithTriggerClock(now func() time.Time) TriggerOption {
	return func(t *Trigger) { t.now = now }
}

// NewTrigger creates a foreground sync trigger. run is invoked on qualifying
// platform events, at most once per minInterval.
func NewTrigger(caps Capabilities, run func(ctx context.Context) error, minInterval time.Duration, logger *slog.Logger, opts ...TriggerOption) *Trigger {
	if minInterval <= 0 {
		minInterval = DefaultMinSyncInterval
	}
	t := &Trigger{
		caps:        caps,
		run:         run,
		minInterval: minInterval,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// HandleEvent обрабатывает событие платформы. Возвращает true, если
// синхронизация была запущена.
func (t *Trigger) HandleEvent(ctx context.Context, ev Event) bool {
	if !t.caps.NeedsForegroundSync() {
		// Платформа сама синхронизирует в фоне
		return false
	}

	t.mu.Lock()
	now := t.now()
	if !t.lastRun.IsZero() && now.Sub(t.lastRun) < t.minInterval {
		t.mu.Unlock()
		t.logger.Debug("Sync trigger rate-limited", "event", ev)
		return false
	}
	t.lastRun = now
	t.mu.Unlock()

	t.logger.Info("Foreground sync triggered", "event", ev)

	if err := t.run(ctx); err != nil {
		t.logger.Warn("Triggered sync failed", "event", ev, "error", err)
	}
	return true
}
