package ports

// Metrics records cache and reload activity.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	RecordCacheHit()
	RecordCacheMiss()
	RecordFilterFailure()
	// RecordConfigLoad counts one config load attempt.
	RecordConfigLoad(success bool)
	// SetTrackedConfigs reports how many config files the reload monitor tracks.
	SetTrackedConfigs(n int)
}
