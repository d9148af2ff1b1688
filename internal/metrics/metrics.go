// Package metrics exposes Prometheus metrics for executor commands and the
// library cache.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "library_client"

// Status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds every collector on its own registry, so several instances
// (one per test) never collide on the global default registry.
type Metrics struct {
	registry *prometheus.Registry

	// Command metrics
	CommandsTotal    *prometheus.CounterVec
	CommandDuration  *prometheus.HistogramVec
	CommandsInFlight prometheus.Gauge

	// Library cache metrics
	LibraryItems        prometheus.Gauge
	LibraryVersion      prometheus.Gauge
	ResyncFailuresTotal prometheus.Counter
	ReloadsTotal        *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors plus the Go runtime and
// process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &Metrics{registry: reg}

	m.CommandsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Total number of executor commands by outcome",
		},
		[]string{"op", "status"},
	)

	m.CommandDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Duration of executor commands in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"op"},
	)

	m.CommandsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "commands_in_flight",
			Help:      "Number of executor commands currently running",
		},
	)

	m.LibraryItems = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "library_items",
			Help:      "Number of items in the cached library",
		},
	)

	m.LibraryVersion = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "library_cache_version",
			Help:      "Monotonic version of the cached library",
		},
	)

	m.ResyncFailuresTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resync_failures_total",
			Help:      "Mutations applied by the executor whose follow-up refetch failed",
		},
	)

	m.ReloadsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reloads_total",
			Help:      "Full library reloads by outcome",
		},
		[]string{"status"},
	)

	return m
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// CommandStarted marks a command as in flight.
func (m *Metrics) CommandStarted(string) {
	m.CommandsInFlight.Inc()
}

// CommandFinished records the outcome and duration of a command.
func (m *Metrics) CommandFinished(op string, err error, seconds float64) {
	m.CommandsInFlight.Dec()
	m.CommandsTotal.WithLabelValues(op, statusOf(err)).Inc()
	m.CommandDuration.WithLabelValues(op).Observe(seconds)
}

// CacheReplaced records the size and version of a freshly fetched library.
func (m *Metrics) CacheReplaced(items int, version uint64) {
	m.LibraryItems.Set(float64(items))
	m.LibraryVersion.Set(float64(version))
}

// ResyncFailed counts a refetch failure following a successful mutation.
func (m *Metrics) ResyncFailed() {
	m.ResyncFailuresTotal.Inc()
}

// ReloadFinished counts a full reload.
func (m *Metrics) ReloadFinished(err error) {
	m.ReloadsTotal.WithLabelValues(statusOf(err)).Inc()
}

func statusOf(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}
