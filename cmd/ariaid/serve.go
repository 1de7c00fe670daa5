package main

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/ariaid/internal/config"
	"github.com/vango-dev/ariaid/internal/errors"
	"github.com/vango-dev/ariaid/internal/showcase"
	"github.com/vango-dev/ariaid/pkg/audit"
	"github.com/vango-dev/ariaid/pkg/ids"
	"github.com/vango-dev/ariaid/pkg/middleware"
	"github.com/vango-dev/ariaid/pkg/render"
)

const shutdownTimeout = 10 * time.Second

func (a *app) serveCmd() *cobra.Command {
	var (
		port   int
		host   string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo page",
		Long: `Serve a sign-up page whose IDs come from a per-request allocator.

Routes:
  /          the page (add ?errors=1 to render validation errors)
  /_audit    renders the page twice and reports ID issues and mismatches
  /healthz   liveness probe
  /metrics   Prometheus metrics (path configurable)

Examples:
  ariaid serve
  ariaid serve --port=8080 --trace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				a.cfg.Server.Port = port
			}
			if host != "" {
				a.cfg.Server.Host = host
			}
			return a.runServe(cmd.Context(), pretty)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the rendered HTML")

	return cmd
}

func (a *app) runServe(ctx context.Context, pretty bool) error {
	srv := &http.Server{
		Addr:              a.cfg.ServerAddress(),
		Handler:           newHandler(a.cfg, a.logger, prometheus.NewRegistry(), pretty),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("serving", "addr", "http://"+srv.Addr, "metrics", a.cfg.Server.MetricsPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.New("E150").
				WithDetail("Cannot listen on " + srv.Addr).
				Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// pageServer renders the showcase page.
type pageServer struct {
	cfg      *config.Config
	logger   *slog.Logger
	metrics  *middleware.Metrics
	renderer *render.Renderer
}

// newHandler builds the demo server routes. Metrics, including the Go and
// process collectors, are registered on reg.
func newHandler(cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry, pretty bool) http.Handler {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(
		middleware.WithRegistry(reg),
		middleware.WithPathLabel(routePattern),
	)
	ps := &pageServer{
		cfg:      cfg,
		logger:   logger.With("component", "serve"),
		metrics:  metrics,
		renderer: render.NewRenderer(render.RendererConfig{Pretty: pretty}),
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	r.Handle(cfg.Server.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(
			middleware.Allocator(
				ids.WithConfig(cfg.IDConfig()),
				ids.WithObserver(metrics),
				ids.WithLogger(logger),
			),
			middleware.Logger(logger),
			middleware.OpenTelemetry(middleware.WithTracerName(serviceName)),
			metrics.Handler,
		)
		r.Get("/", ps.page)
		r.Get("/_audit", ps.audit)
	})

	return r
}

func (ps *pageServer) page(w http.ResponseWriter, r *http.Request) {
	alloc, ok := ids.FromContext(r.Context())
	if !ok {
		http.Error(w, "no allocator", http.StatusInternalServerError)
		return
	}

	opts := showcase.DefaultOptions()
	opts.ShowErrors, _ = strconv.ParseBool(r.URL.Query().Get("errors"))

	body, err := showcase.Build(alloc, opts)
	if err != nil {
		ps.logger.Error("build page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ps.renderer.RenderDocument(w, showcase.Title, body); err != nil {
		ps.logger.Error("render page", "error", err)
	}
}

type auditResponse struct {
	OK         bool             `json:"ok"`
	Report     *audit.Report    `json:"report"`
	Mismatches []audit.Mismatch `json:"mismatches"`
}

// audit renders the page once with the request's allocator and once with a
// fresh one, then audits the first render and compares both ID sequences.
func (ps *pageServer) audit(w http.ResponseWriter, r *http.Request) {
	server, ok := ids.FromContext(r.Context())
	if !ok {
		http.Error(w, "no allocator", http.StatusInternalServerError)
		return
	}
	client := ids.New(ids.WithConfig(ps.cfg.IDConfig()))

	html, err := ps.renderString(server)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if _, err := ps.renderString(client); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	report, err := audit.String(html)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	mismatches := audit.CompareRecords(server.Records(), client.Records())
	if mismatches == nil {
		mismatches = []audit.Mismatch{}
	}

	kinds := make(map[string]int)
	for kind, n := range report.Kinds() {
		kinds[string(kind)] = n
	}
	ps.metrics.RecordAuditIssues(kinds)

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, auditResponse{
		OK:         report.OK() && len(mismatches) == 0,
		Report:     report,
		Mismatches: mismatches,
	})
}

func (ps *pageServer) renderString(alloc *ids.Allocator) (string, error) {
	body, err := showcase.Page(alloc)
	if err != nil {
		return "", err
	}
	return ps.renderer.RenderToString(body)
}

// routePattern labels metrics with the matched chi route.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
