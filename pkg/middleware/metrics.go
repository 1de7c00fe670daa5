package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "ariaid").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer

	// PathLabel maps a request to its path label. Use it to collapse
	// parameterized routes and keep cardinality bounded.
	// Default: the URL path.
	PathLabel func(*http.Request) string
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

// WithPathLabel sets the function that derives the path label.
func WithPathLabel(fn func(*http.Request) string) MetricsOption {
	return func(c *MetricsConfig) {
		c.PathLabel = fn
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "ariaid",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
		PathLabel: func(r *http.Request) string {
			if r.URL.Path == "" {
				return "/"
			}
			return r.URL.Path
		},
	}
}

// Metrics holds the Prometheus collectors. It implements ids.Observer.
//
// Metrics collected:
//   - ariaid_ids_generated_total: IDs handed out by component and cache result
//   - ariaid_allocator_resets_total: allocator resets
//   - ariaid_renders_total: render requests by path and status class
//   - ariaid_render_duration_seconds: render duration by path
//   - ariaid_ids_per_render: IDs issued per render request
//   - ariaid_audit_issues_total: audit findings by kind
type Metrics struct {
	config MetricsConfig

	idsGenerated   *prometheus.CounterVec
	resets         prometheus.Counter
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	idsPerRender   prometheus.Histogram
	auditIssues    *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors. Registering twice with
// the same registry panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		config: config,

		idsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "ids_generated_total",
			Help:        "Total number of element IDs handed out",
			ConstLabels: config.ConstLabels,
		}, []string{"component", "cache"}),

		resets: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "allocator_resets_total",
			Help:        "Total number of allocator resets",
			ConstLabels: config.ConstLabels,
		}),

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of render requests",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"path"}),

		idsPerRender: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "ids_per_render",
			Help:        "Number of IDs issued per render request",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),

		auditIssues: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "audit_issues_total",
			Help:        "Total number of audit findings by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),
	}
}

// ObserveGenerate implements ids.Observer.
func (m *Metrics) ObserveGenerate(component string, cached bool) {
	result := "miss"
	if cached {
		result = "hit"
	}
	m.idsGenerated.WithLabelValues(component, result).Inc()
}

// ObserveReset implements ids.Observer.
func (m *Metrics) ObserveReset() {
	m.resets.Inc()
}

// RecordAuditIssues adds audit findings by kind.
func (m *Metrics) RecordAuditIssues(kinds map[string]int) {
	for kind, n := range kinds {
		m.auditIssues.WithLabelValues(kind).Add(float64(n))
	}
}

// Handler is middleware that records render count, duration and IDs issued.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)

		start := time.Now()
		next.ServeHTTP(rec, r)

		// Derived after the handler so routers can fill in the route pattern.
		path := m.config.PathLabel(r)
		m.renderDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

		m.rendersTotal.WithLabelValues(path, statusClass(rec.status)).Inc()
		if n := issuedIDs(r); n > 0 {
			m.idsPerRender.Observe(float64(n))
		}
	})
}

// statusClass buckets a status code as "2xx", "4xx" and so on.
func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}
