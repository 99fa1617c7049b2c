package storage

import "context"

//go:generate moq -out quotaestimator_mock.go . QuotaEstimator

// QuotaEstimator reports how much of the configured local storage quota
// is currently used. Feeds the read_only_storage threshold check.
type QuotaEstimator interface {
	// UsagePercent returns current storage usage as a percentage [0..100+]
	UsagePercent(ctx context.Context) (float64, error)
}
