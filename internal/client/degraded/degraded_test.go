package degraded_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Junior620/cocoatrack-sub003/internal/client/degraded"
	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

func TestClassify(t *testing.T) {
	th := degraded.DefaultThresholds()

	tests := []struct {
		name           string
		queueDepth     int
		storagePercent float64
		authValid      bool
		expected       models.DegradedMode
	}{
		{
			name:      "all clear",
			authValid: true,
			expected:  models.ModeNormal,
		},
		{
			name:           "queue at warning threshold",
			queueDepth:     50,
			storagePercent: 10,
			authValid:      true,
			expected:       models.ModeQueuePressure,
		},
		{
			name:           "queue below warning threshold",
			queueDepth:     49,
			storagePercent: 10,
			authValid:      true,
			expected:       models.ModeNormal,
		},
		{
			name:           "storage at critical threshold",
			queueDepth:     0,
			storagePercent: 90,
			authValid:      true,
			expected:       models.ModeReadOnlyStorage,
		},
		{
			name:           "storage critical dominates queue pressure",
			queueDepth:     500,
			storagePercent: 95,
			authValid:      true,
			expected:       models.ModeReadOnlyStorage,
		},
		{
			name:           "invalid auth dominates everything",
			queueDepth:     500,
			storagePercent: 99,
			authValid:      false,
			expected:       models.ModeReadOnlyAuth,
		},
		{
			name:      "invalid auth with otherwise clear inputs",
			authValid: false,
			expected:  models.ModeReadOnlyAuth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := degraded.Classify(tt.queueDepth, tt.storagePercent, tt.authValid, th)
			assert.Equal(t, tt.expected, got)

			// Чистая функция: повторный вызов даёт тот же режим
			assert.Equal(t, got, degraded.Classify(tt.queueDepth, tt.storagePercent, tt.authValid, th))
		})
	}
}

func TestClassify_CustomThresholds(t *testing.T) {
	th := degraded.Thresholds{QueueWarning: 5, StorageCritical: 50}

	assert.Equal(t, models.ModeQueuePressure, degraded.Classify(5, 0, true, th))
	assert.Equal(t, models.ModeReadOnlyStorage, degraded.Classify(0, 50, true, th))
}

func TestIsActionDisabled(t *testing.T) {
	// Scenario: очередь выше порога, но все действия остаются доступными
	for _, action := range []models.Action{
		models.ActionCreateDelivery,
		models.ActionUpdateDelivery,
		models.ActionDeleteDelivery,
		models.ActionEditReference,
		models.ActionSync,
		models.ActionLogin,
	} {
		assert.False(t, degraded.IsActionDisabled(models.ModeQueuePressure, action),
			"queue_pressure is advisory only, %s must stay enabled", action)
		assert.False(t, degraded.IsActionDisabled(models.ModeNormal, action))
	}

	// read_only_storage блокирует локальные записи, но не sync и не login
	assert.True(t, degraded.IsActionDisabled(models.ModeReadOnlyStorage, models.ActionCreateDelivery))
	assert.True(t, degraded.IsActionDisabled(models.ModeReadOnlyStorage, models.ActionUpdateDelivery))
	assert.True(t, degraded.IsActionDisabled(models.ModeReadOnlyStorage, models.ActionDeleteDelivery))
	assert.True(t, degraded.IsActionDisabled(models.ModeReadOnlyStorage, models.ActionEditReference))
	assert.False(t, degraded.IsActionDisabled(models.ModeReadOnlyStorage, models.ActionSync))
	assert.False(t, degraded.IsActionDisabled(models.ModeReadOnlyStorage, models.ActionLogin))

	// read_only_auth блокирует всё, кроме повторного входа
	assert.True(t, degraded.IsActionDisabled(models.ModeReadOnlyAuth, models.ActionCreateDelivery))
	assert.True(t, degraded.IsActionDisabled(models.ModeReadOnlyAuth, models.ActionSync))
	assert.False(t, degraded.IsActionDisabled(models.ModeReadOnlyAuth, models.ActionLogin))
}

func TestTooltip(t *testing.T) {
	assert.Empty(t, degraded.Tooltip(models.ModeNormal))
	assert.NotEmpty(t, degraded.Tooltip(models.ModeQueuePressure))
	assert.NotEmpty(t, degraded.Tooltip(models.ModeReadOnlyStorage))
	assert.NotEmpty(t, degraded.Tooltip(models.ModeReadOnlyAuth))
}

func TestDisabledActions_ReturnsCopy(t *testing.T) {
	actions := degraded.DisabledActions(models.ModeReadOnlyStorage)
	require.NotEmpty(t, actions)

	actions[0] = models.ActionLogin
	again := degraded.DisabledActions(models.ModeReadOnlyStorage)
	assert.NotEqual(t, models.ActionLogin, again[0])
}
