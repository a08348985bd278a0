package metrics

import "go.trai.ch/webasset/internal/core/ports"

var _ ports.Metrics = Noop{}

// Noop discards all metrics.
type Noop struct{}

func (Noop) RecordCacheHit()       {}
func (Noop) RecordCacheMiss()      {}
func (Noop) RecordFilterFailure()  {}
func (Noop) RecordConfigLoad(bool) {}
func (Noop) SetTrackedConfigs(int) {}
