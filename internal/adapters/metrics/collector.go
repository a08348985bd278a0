// Package metrics exposes cache and reload activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/webasset/internal/core/ports"
)

const namespace = "webasset"

var _ ports.Metrics = (*Collector)(nil)

// Collector implements ports.Metrics with Prometheus collectors.
//
// Metrics:
//   - webasset_cache_lookups_total{result="hit|miss"}
//   - webasset_filter_failures_total
//   - webasset_config_loads_total{result="ok|error"}
//   - webasset_tracked_configs
type Collector struct {
	registry       *prometheus.Registry
	lookups        *prometheus.CounterVec
	filterFailures prometheus.Counter
	configLoads    *prometheus.CounterVec
	trackedConfigs prometheus.Gauge
}

// NewCollector creates a Collector and registers it with a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Asset cache lookups by result",
			},
			[]string{"result"},
		),
		filterFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_failures_total",
			Help:      "Assets that could not be filtered and cached",
		}),
		configLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_loads_total",
				Help:      "Asset config load attempts by result",
			},
			[]string{"result"},
		),
		trackedConfigs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tracked_configs",
			Help:      "Config files tracked by the reload monitor",
		}),
	}

	c.registry.MustRegister(c.lookups, c.filterFailures, c.configLoads, c.trackedConfigs)

	return c
}

// Registry returns the registry holding the collectors.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordCacheHit counts a lookup served from the path index.
func (c *Collector) RecordCacheHit() {
	c.lookups.WithLabelValues("hit").Inc()
}

// RecordCacheMiss counts a lookup that had to filter the asset.
func (c *Collector) RecordCacheMiss() {
	c.lookups.WithLabelValues("miss").Inc()
}

// RecordFilterFailure counts an asset dropped from a result.
func (c *Collector) RecordFilterFailure() {
	c.filterFailures.Inc()
}

// RecordConfigLoad counts a config load attempt.
func (c *Collector) RecordConfigLoad(success bool) {
	result := "ok"
	if !success {
		result = "error"
	}
	c.configLoads.WithLabelValues(result).Inc()
}

// SetTrackedConfigs sets the number of tracked config files.
func (c *Collector) SetTrackedConfigs(n int) {
	c.trackedConfigs.Set(float64(n))
}
