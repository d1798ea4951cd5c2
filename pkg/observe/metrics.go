package observe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/flow/pkg/flow"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "flow").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for page render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "flow",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics counts helper warnings and page renders.
//
// Metrics is a flow.Sink, so it can be passed to WithSink directly or
// combined with other sinks through flow.Multi.
//
// Metrics collected (with the default namespace):
//   - flow_warnings_total: Counter of warnings by helper and code
//   - flow_page_renders_total: Counter of page renders by page and status
//   - flow_page_render_duration_seconds: Histogram of page render duration
type Metrics struct {
	warningsTotal  *prometheus.CounterVec
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors with the configured registry.
// Registering twice with the same registry panics, as with promauto.
//
// Example:
//
//	metrics := observe.NewMetrics(observe.WithNamespace("shop"))
//	flow.SetDefaultSink(flow.Multi(flow.LogSink(nil), metrics))
//	http.Handle("/metrics", promhttp.Handler())
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		warningsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "warnings_total",
			Help:        "Total number of control-flow helper warnings",
			ConstLabels: config.ConstLabels,
		}, []string{"helper", "code"}),

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "page_renders_total",
			Help:        "Total number of page renders",
			ConstLabels: config.ConstLabels,
		}, []string{"page", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "page_render_duration_seconds",
			Help:        "Page render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"page"}),
	}
}

// Warn implements flow.Sink.
func (m *Metrics) Warn(w flow.Warning) {
	m.warningsTotal.WithLabelValues(w.Helper, w.Code).Inc()
}

// ObserveRender records one page render.
// Status is "error" when err is non-nil, "warned" when the render produced
// warnings and "ok" otherwise.
func (m *Metrics) ObserveRender(page string, duration time.Duration, warnings int, err error) {
	m.renderDuration.WithLabelValues(page).Observe(duration.Seconds())
	m.rendersTotal.WithLabelValues(page, renderStatus(warnings, err)).Inc()
}

func renderStatus(warnings int, err error) string {
	switch {
	case err != nil:
		return "error"
	case warnings > 0:
		return "warned"
	default:
		return "ok"
	}
}
