package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/ariaid/pkg/ids"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsObserver(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	alloc := ids.New(ids.WithObserver(m))

	alloc.Generate("field", "input", ids.WithKey("email"))
	alloc.Generate("field", "input", ids.WithKey("email"))
	alloc.Generate("dialog", "title")
	alloc.Reset()

	if got := metricCounterValue(t, m.idsGenerated.WithLabelValues("field", "miss")); got != 1 {
		t.Fatalf("ids_generated_total(field, miss) = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.idsGenerated.WithLabelValues("field", "hit")); got != 1 {
		t.Fatalf("ids_generated_total(field, hit) = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.idsGenerated.WithLabelValues("dialog", "miss")); got != 1 {
		t.Fatalf("ids_generated_total(dialog, miss) = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.resets); got != 1 {
		t.Fatalf("allocator_resets_total = %v, want 1", got)
	}
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alloc, _ := ids.FromContext(r.Context())
		alloc.Generate("button", "trigger")
		alloc.Generate("menu", "list")
	})
	fail := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	Allocator()(m.Handler(ok)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/page", nil))
	Allocator()(m.Handler(fail)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/page", nil))

	if got := metricCounterValue(t, m.rendersTotal.WithLabelValues("/page", "2xx")); got != 1 {
		t.Fatalf("renders_total(/page, 2xx) = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.rendersTotal.WithLabelValues("/page", "5xx")); got != 1 {
		t.Fatalf("renders_total(/page, 5xx) = %v, want 1", got)
	}
	if got := metricHistogramCount(t, m.renderDuration.WithLabelValues("/page")); got != 2 {
		t.Fatalf("render_duration_seconds count = %d, want 2", got)
	}
	if got := metricHistogramCount(t, m.idsPerRender); got != 1 {
		t.Fatalf("ids_per_render count = %d, want 1", got)
	}
}

func TestMetricsPathLabel(t *testing.T) {
	m := NewMetrics(
		WithRegistry(prometheus.NewRegistry()),
		WithPathLabel(func(*http.Request) string { return "/users/{id}" }),
	)
	h := m.Handler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/42", nil))

	if got := metricCounterValue(t, m.rendersTotal.WithLabelValues("/users/{id}", "2xx")); got != 1 {
		t.Fatalf("renders_total(/users/{id}) = %v, want 1", got)
	}
}

func TestRecordAuditIssues(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	m.RecordAuditIssues(map[string]int{"duplicate": 2, "dangling-reference": 1})

	if got := metricCounterValue(t, m.auditIssues.WithLabelValues("duplicate")); got != 2 {
		t.Fatalf("audit_issues_total(duplicate) = %v, want 2", got)
	}
	if got := metricCounterValue(t, m.auditIssues.WithLabelValues("dangling-reference")); got != 1 {
		t.Fatalf("audit_issues_total(dangling-reference) = %v, want 1", got)
	}
}

func TestMetricsNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("shop"), WithSubsystem("ui"),
		WithConstLabels(prometheus.Labels{"env": "test"}))
	m.ObserveReset()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "shop_ui_allocator_resets_total" {
			found = true
			if l := f.GetMetric()[0].GetLabel(); len(l) != 1 || l[0].GetValue() != "test" {
				t.Fatalf("const labels = %v, want env=test", l)
			}
		}
	}
	if !found {
		t.Fatal("expected shop_ui_allocator_resets_total to be registered")
	}
}

func TestStatusClass(t *testing.T) {
	tests := map[int]string{200: "2xx", 204: "2xx", 301: "3xx", 404: "4xx", 503: "5xx", 0: "unknown", 700: "unknown"}
	for code, want := range tests {
		if got := statusClass(code); got != want {
			t.Errorf("statusClass(%d) = %q, want %q", code, got, want)
		}
	}
}
