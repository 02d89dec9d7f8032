// Package metrics records gravity run gauges in a Prometheus registry and
// flushes them in the node_exporter textfile format.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/gravity/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	namespace = "pihole"
	subsystem = "gravity"
)

var _ ports.Metrics = (*Collector)(nil)

// Collector implements ports.Metrics.
type Collector struct {
	registry *prometheus.Registry

	sourceDomains   *prometheus.GaugeVec
	sourceLastFetch *prometheus.GaugeVec
	sourceStatus    *prometheus.GaugeVec
	sourceMalformed *prometheus.GaugeVec

	raw       prometheus.Gauge
	unique    prometheus.Gauge
	exported  prometheus.Gauge
	failed    prometheus.Gauge
	restarted prometheus.Gauge
}

// New creates a Collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		sourceDomains: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "source_domains",
			Help:      "Number of domains contributed by each source.",
		}, []string{"source"}),
		sourceLastFetch: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "source_last_fetch_timestamp",
			Help:      "Unix timestamp of the last successful download of each source.",
		}, []string{"source"}),
		sourceStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "source_status",
			Help:      "Set to 1 for the status each source ended the last run with.",
		}, []string{"source", "status"}),
		sourceMalformed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "source_malformed_lines",
			Help:      "Number of lines ignored in the last download of each source.",
		}, []string{"source"}),
		raw:       gauge("raw_domains", "Number of domains before deduplication."),
		unique:    gauge("unique_domains", "Number of distinct domains in the compiled list."),
		exported:  gauge("exported_domains", "Number of domains written to the hosts file."),
		failed:    gauge("failed_sources", "Number of sources that could not be refreshed."),
		restarted: gauge("resolver_restarted", "Set to 1 when the resolver was restarted."),
	}

	c.registry.MustRegister(
		c.sourceDomains, c.sourceLastFetch, c.sourceStatus, c.sourceMalformed,
		c.raw, c.unique, c.exported, c.failed, c.restarted,
	)
	return c
}

func gauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	})
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveSource records the outcome of one source. A zero fetchedAt leaves the
// timestamp gauge unset for sources that have never been downloaded.
func (c *Collector) ObserveSource(outcome domain.SourceOutcome, fetchedAt int64) {
	c.sourceDomains.WithLabelValues(outcome.URI).Set(float64(outcome.Count))
	c.sourceMalformed.WithLabelValues(outcome.URI).Set(float64(len(outcome.Malformed)))
	if fetchedAt > 0 {
		c.sourceLastFetch.WithLabelValues(outcome.URI).Set(float64(fetchedAt))
	}
	for _, status := range []domain.SourceStatus{domain.StatusSkipped, domain.StatusUpdated, domain.StatusFailed} {
		v := 0.0
		if status == outcome.Status {
			v = 1
		}
		c.sourceStatus.WithLabelValues(outcome.URI, string(status)).Set(v)
	}
}

// ObserveRun records the totals of a finished run.
func (c *Collector) ObserveRun(summary domain.RunSummary) {
	c.raw.Set(float64(summary.Raw))
	c.unique.Set(float64(summary.Unique))
	c.exported.Set(float64(summary.Exported))
	c.failed.Set(float64(len(summary.Failed())))
	if summary.Restarted {
		c.restarted.Set(1)
	} else {
		c.restarted.Set(0)
	}
}

// Flush writes the registry to path atomically. An empty path is a no-op.
func (c *Collector) Flush(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return zerr.With(errors.Join(domain.ErrMetricsFlushFailed, err), "path", path)
	}
	return nil
}
