// Package middleware provides net/http middleware for server rendering with
// deterministic IDs.
//
// Allocator gives every request its own ids.Allocator, so concurrent
// requests never share counters or caches. Register it first so the other
// middleware can read the request's ID count. Metrics exports Prometheus
// collectors and doubles as an ids.Observer. OpenTelemetry traces each render
// and Logger writes one structured log line per request.
//
//	metrics := middleware.NewMetrics(middleware.WithNamespace("shop"))
//	r := chi.NewRouter()
//	r.Use(
//	    middleware.Allocator(ids.WithObserver(metrics)),
//	    middleware.Logger(slog.Default()),
//	    middleware.OpenTelemetry(),
//	    metrics.Handler,
//	)
//	r.Handle("/metrics", promhttp.Handler())
package middleware
