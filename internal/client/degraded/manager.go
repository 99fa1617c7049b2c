package degraded

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

// PendingCounter отдаёт глубину очереди неотправленных операций
type PendingCounter interface {
	PendingCount(ctx context.Context) (int, error)
}

// UsageEstimator отдаёт процент занятости локального хранилища
type UsageEstimator interface {
	UsagePercent(ctx context.Context) (float64, error)
}

// SessionChecker отдаёт валидность текущей сессии
type SessionChecker interface {
	IsSessionValid(ctx context.Context) bool
}

// Manager пересчитывает режим по запросу и кэширует последний снимок.
// Пересчёт дёргается после каждой мутации очереди и после sync-прохода.
type Manager struct {
	queue   PendingCounter
	usage   UsageEstimator
	session SessionChecker
	th      Thresholds
	logger  *slog.Logger

	mu    sync.RWMutex
	state models.DegradedState
}

// NewManager creates a degraded-mode manager over the given inputs.
func NewManager(queue PendingCounter, usage UsageEstimator, session SessionChecker, th Thresholds, logger *slog.Logger) *Manager {
	return &Manager{
		queue:   queue,
		usage:   usage,
		session: session,
		th:      th,
		logger:  logger,
		state: models.DegradedState{
			Mode:            models.ModeNormal,
			AuthValid:       true,
			DisabledActions: []models.Action{},
		},
	}
}

// Recompute перечитывает входы, выводит режим и обновляет снимок
func (m *Manager) Recompute(ctx context.Context) (models.DegradedState, error) {
	depth, err := m.queue.PendingCount(ctx)
	if err != nil {
		return models.DegradedState{}, fmt.Errorf("failed to read queue depth: %w", err)
	}

	percent, err := m.usage.UsagePercent(ctx)
	if err != nil {
		return models.DegradedState{}, fmt.Errorf("failed to read storage usage: %w", err)
	}

	authValid := m.session.IsSessionValid(ctx)

	mode := Classify(depth, percent, authValid, m.th)
	state := models.DegradedState{
		Mode:            mode,
		OpsQueueCount:   depth,
		StoragePercent:  percent,
		AuthValid:       authValid,
		DisabledActions: DisabledActions(mode),
	}

	m.mu.Lock()
	prev := m.state.Mode
	m.state = state
	m.mu.Unlock()

	if prev != mode {
		m.logger.Info("Degraded mode changed",
			"from", prev,
			"to", mode,
			"queue_depth", depth,
			"storage_percent", percent,
			"auth_valid", authValid)
	}

	return state, nil
}

// State возвращает последний вычисленный снимок
func (m *Manager) State() models.DegradedState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsActionDisabled reports whether the action is blocked in the current mode.
func (m *Manager) IsActionDisabled(action models.Action) bool {
	return IsActionDisabled(m.State().Mode, action)
}

// Tooltip returns the user-facing reason for the current restrictions.
func (m *Manager) Tooltip() string {
	return Tooltip(m.State().Mode)
}
