package middleware

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/veldt-dev/veldt/pkg/component"
)

// MetricsConfig configures the Prometheus render observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "veldt").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus render observer.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = subsystem }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "veldt",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus collectors for render observation.
type metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
}

// globalMetrics is the singleton collector set. Collectors register
// once per process; repeated Prometheus() calls share them.
var (
	globalMetrics     *metrics
	globalMetricsOnce sync.Once
)

func newMetrics(cfg MetricsConfig) *metrics {
	factory := promauto.With(cfg.Registry)
	return &metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "renders_total",
			Help:        "Total render passes per component.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"component"}),
		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render pass duration per component.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"component"}),
		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "render_errors_total",
			Help:        "Render passes that failed per component.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"component"}),
	}
}

type promObserver struct {
	m *metrics
}

// ObserveRender implements component.Observer.
func (o *promObserver) ObserveRender(name string, d time.Duration, err error) {
	o.m.rendersTotal.WithLabelValues(name).Inc()
	o.m.renderDuration.WithLabelValues(name).Observe(d.Seconds())
	if err != nil {
		o.m.renderErrors.WithLabelValues(name).Inc()
	}
}

// Prometheus returns a render observer backed by Prometheus collectors.
// The collectors are created once per process; options only take effect
// on the first call.
func Prometheus(opts ...MetricsOption) component.Observer {
	globalMetricsOnce.Do(func() {
		cfg := defaultMetricsConfig()
		for _, opt := range opts {
			opt(&cfg)
		}
		globalMetrics = newMetrics(cfg)
	})
	return &promObserver{m: globalMetrics}
}

// NewPrometheus returns a render observer with its own collector set,
// for callers managing registries explicitly (tests, multi-tenant
// processes).
func NewPrometheus(opts ...MetricsOption) component.Observer {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &promObserver{m: newMetrics(cfg)}
}
