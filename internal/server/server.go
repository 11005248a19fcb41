// Package server serves the dashboard over HTTP: the HTML page, a JSON API,
// chart images, table downloads and Prometheus metrics.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ukaji3/desde-go/internal/config"
	"github.com/ukaji3/desde-go/pkg/desde"
	"github.com/ukaji3/desde-go/pkg/desde/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server is the dashboard HTTP server.
type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	opts     desde.Options
	validate *validator.Validate
	registry *prometheus.Registry
	metrics  *Metrics
	tmpl     *template.Template
}

// New creates a server for cfg.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"css": func(s models.CellStyle) template.CSS { return template.CSS(s.CSS()) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	reg := prometheus.NewRegistry()

	return &Server{
		cfg:    cfg,
		logger: logger.With(zap.String("component", "server")),
		opts: desde.Options{
			Sheet:         cfg.Data.Sheet,
			Range:         cfg.Data.Range,
			MaxLabelChars: cfg.Chart.MaxLabelChars,
		},
		validate: validate,
		registry: reg,
		metrics:  NewMetrics(reg),
		tmpl:     tmpl,
	}, nil
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(Recoverer(s.logger))
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	r.Get("/", s.handleDashboard)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/options", s.handleOptions)
		r.Get("/desde", s.handleDesde)
		r.Get("/chart.svg", s.handleChartSVG)
		r.Get("/export/{format}", s.handleExport)
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Routes(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening",
			zap.String("addr", srv.Addr),
			zap.String("data", s.cfg.Data.Path))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down", zap.Duration("timeout", s.cfg.Server.ShutdownTimeout))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// renderView loads the workbook and renders sel. A nil selection, or a blank
// field within it, falls back to the first option of that list.
func (s *Server) renderView(ctx context.Context, sel *models.Selection) (*models.View, error) {
	start := time.Now()
	defer func() {
		s.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	}()

	ds, err := desde.Load(s.cfg.Data.Path, s.opts)
	if err != nil {
		s.metrics.Renders.WithLabelValues(outcomeError).Inc()
		s.logger.Error("load failed",
			zap.String("request_id", GetRequestID(ctx)),
			zap.String("path", s.cfg.Data.Path),
			zap.Error(err))
		return nil, err
	}

	selection := desde.DefaultSelection(ds)
	if sel != nil {
		if sel.District != "" {
			selection.District = sel.District
		}
		if sel.Typology != "" {
			selection.Typology = sel.Typology
		}
	}

	view := desde.Render(ds, selection, s.opts)
	outcome := outcomeOK
	if view.Empty() {
		outcome = outcomeEmpty
	}
	s.metrics.Renders.WithLabelValues(outcome).Inc()

	s.logger.Debug("rendered",
		zap.String("request_id", GetRequestID(ctx)),
		zap.String("comuna", selection.District),
		zap.String("tipologia", selection.Typology),
		zap.Int("listings", len(ds.Listings)),
		zap.Int("matches", view.Matches),
		zap.Int("projects", len(view.StartingPrices)))

	return view, nil
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, apiErr *APIError) {
	render.Render(w, r, apiErr)
}
