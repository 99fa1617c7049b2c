package platform

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Junior620/cocoatrack-sub003/internal/client/storage"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

// DefaultInactivityWindow срок неактивности, после которого пустые
// справочники трактуются как вытеснение хранилища, а не свежая установка
const DefaultInactivityWindow = 7 * 24 * time.Hour

// IntegrityReport итог проверки целостности локальных данных
type IntegrityReport struct {
	// LastActivity последняя зафиксированная активность клиента
	LastActivity time.Time `json:"last_activity"`

	// EmptyTables справочники первого уровня, оказавшиеся пустыми
	EmptyTables []string `json:"empty_tables"`

	// Recommendation действие, рекомендуемое пользователю
	Recommendation string `json:"recommendation"`

	// LikelyEvicted локальное хранилище, вероятно, вытеснено ОС
	LikelyEvicted bool `json:"likely_evicted"`
}

// IntegrityChecker сверяет ожидаемо непустые справочники с фактическими
// счётчиками. Пустые справочники после долгой неактивности означают,
// что ОС вытеснила хранилище, и работать с пустым кэшем как с достоверным нельзя.
type IntegrityChecker struct {
	cache  storage.CacheStorage
	meta   storage.MetadataStorage
	window time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// IntegrityOption настраивает проверку
type IntegrityOption func(*IntegrityChecker)

// WithIntegrityClock подменяет источник времени (для тестов)
func WithIntegrityClock(now func() time.Time) IntegrityOption {
	return func(c *IntegrityChecker) { c.now = now }
}

// WithInactivityWindow переопределяет срок неактивности
func WithInactivityWindow(window time.Duration) IntegrityOption {
	return func(c *IntegrityChecker) { c.window = window }
}

// NewIntegrityChecker creates a local data integrity checker.
func NewIntegrityChecker(cache storage.CacheStorage, meta storage.MetadataStorage, logger *slog.Logger, opts ...IntegrityOption) *IntegrityChecker {
	c := &IntegrityChecker{
		cache:  cache,
		meta:   meta,
		window: DefaultInactivityWindow,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check сравнивает счётчики справочников с ожиданиями.
// Вытеснение предполагается, только если справочники пусты И клиент
// был неактивен дольше окна: пустой кэш сразу после установки нормален.
func (c *IntegrityChecker) Check(ctx context.Context) (*IntegrityReport, error) {
	counts, err := c.cache.CountByTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cached records: %w", err)
	}

	var empty []string
	for _, table := range models.Tier1Tables() {
		if counts[table] == 0 {
			empty = append(empty, table)
		}
	}

	lastActivity, err := c.meta.GetLastActivity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read last activity: %w", err)
	}

	report := &IntegrityReport{
		LastActivity: lastActivity,
		EmptyTables:  empty,
	}

	inactiveLongEnough := !lastActivity.IsZero() && c.now().Sub(lastActivity) >= c.window
	if len(empty) > 0 && inactiveLongEnough {
		report.LikelyEvicted = true
		report.Recommendation = "Local reference data appears to have been evicted by the OS. Redownload reference data before recording deliveries."

		c.logger.Warn("Likely storage eviction detected",
			"empty_tables", empty,
			"last_activity", lastActivity)
	}

	return report, nil
}
