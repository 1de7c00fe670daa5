package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/ariaid/pkg/ids"
)

func newTestProvider() (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	sr := tracetest.NewSpanRecorder()
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)), sr
}

func spanAttr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestOpenTelemetryRecordsSpan(t *testing.T) {
	tp, sr := newTestProvider()

	h := Allocator()(OpenTelemetry(WithTracerProvider(tp))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !trace.SpanContextFromContext(r.Context()).IsValid() {
			t.Error("expected a valid span context in the handler")
		}
		alloc, _ := ids.FromContext(r.Context())
		alloc.FormFieldIDs("signup", "email")
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/signup", nil))

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != "render GET /signup" {
		t.Fatalf("span name = %q", span.Name())
	}
	if span.SpanKind() != trace.SpanKindServer {
		t.Fatalf("span kind = %v, want server", span.SpanKind())
	}
	if v, ok := spanAttr(span, "http.path"); !ok || v.AsString() != "/signup" {
		t.Fatalf("http.path = %v", v.Emit())
	}
	if v, ok := spanAttr(span, "http.status"); !ok || v.AsInt64() != 200 {
		t.Fatalf("http.status = %v", v.Emit())
	}
	if v, ok := spanAttr(span, "ariaid.ids_issued"); !ok || v.AsInt64() != 5 {
		t.Fatalf("ariaid.ids_issued = %v, want 5", v.Emit())
	}
	if span.Status().Code != codes.Ok {
		t.Fatalf("status = %v, want Ok", span.Status().Code)
	}
}

func TestOpenTelemetryServerError(t *testing.T) {
	tp, sr := newTestProvider()

	h := OpenTelemetry(WithTracerProvider(tp))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Fatalf("status = %v, want Error", spans[0].Status().Code)
	}
}

func TestOpenTelemetryFilterSkipsTracing(t *testing.T) {
	tp, sr := newTestProvider()

	called := false
	h := OpenTelemetry(
		WithTracerProvider(tp),
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
	)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if !called {
		t.Fatal("expected next handler to be called")
	}
	if n := len(sr.Ended()); n != 0 {
		t.Fatalf("ended spans = %d, want 0", n)
	}
}

func TestOpenTelemetryAttributeExtractor(t *testing.T) {
	tp, sr := newTestProvider()

	h := OpenTelemetry(
		WithTracerProvider(tp),
		WithTracerName("custom"),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/form", nil))

	span := sr.Ended()[0]
	if v, ok := spanAttr(span, "test.attr"); !ok || v.AsString() != "ok" {
		t.Fatalf("test.attr = %v", v.Emit())
	}
	if name := span.InstrumentationScope().Name; name != "custom" {
		t.Fatalf("tracer name = %q, want custom", name)
	}
}
