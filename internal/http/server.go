package http

import (
	"context"
	"net/http"
	"time"

	applog "contabilidad/internal/log"
	"contabilidad/internal/middleware/security"
	"contabilidad/internal/middleware/trace"
	"contabilidad/internal/source"
	"contabilidad/internal/view"
)

// Options tune a Server. Zero values pick defaults.
type Options struct {
	// Backend is reported by /readyz.
	Backend string
	// ReadyTimeout bounds the source probe of /readyz.
	ReadyTimeout time.Duration
	Logger       *applog.Logger
}

type Server struct {
	http.Server
	src       source.Source
	formatter view.Formatter
	logger    *applog.Logger
	tracer    *trace.Middleware
	backend   string
	readyWait time.Duration
}

// NewServer configures routes and middleware, returning a ready-to-run http.Server.
func NewServer(addr string, src source.Source, f view.Formatter, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	readyWait := opts.ReadyTimeout
	if readyWait <= 0 {
		readyWait = 2 * time.Second
	}

	s := &Server{
		src:       src,
		formatter: f,
		logger:    logger.WithComponent(applog.ComponentHTTP),
		tracer:    trace.NewMiddleware(logger),
		backend:   opts.Backend,
		readyWait: readyWait,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	mux.HandleFunc("GET /{$}", s.handleMovements)
	mux.HandleFunc("GET /home", s.handleMovements)
	mux.HandleFunc("GET /api/movements", s.handleMovements)
	mux.HandleFunc("GET /api/movements/{id}", s.handleMovement)
	mux.HandleFunc("POST /api/movements/refresh", s.handleRefresh)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/menu", s.handleMenu)
	mux.HandleFunc("GET /api/metrics", s.handleMetrics)

	// Screens that are not built yet answer with their title.
	mux.HandleFunc("GET /add_movement/{$}", s.handleAddPlaceholder)
	mux.HandleFunc("GET /add_movement/{type}", s.handleAddPlaceholder)
	mux.HandleFunc("GET /edit_movement/{movementId}", s.handleEditPlaceholder)
	mux.HandleFunc("GET /movement_detail/{movementId}", s.handleDetailPlaceholder)
	mux.HandleFunc("GET /settings", s.handleSettingsPlaceholder)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	var h http.Handler = mux
	h = headers.Middleware(h)
	h = applog.RequestIDMiddleware(trace.RequestIDFromRequest)(h)
	h = applog.Middleware(s.logger)(h)
	h = s.tracer.Middleware(h)

	s.Server = http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Run serves until ctx is cancelled, then shuts down within timeout.
func (s *Server) Run(ctx context.Context, timeout time.Duration) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("HTTP server shutting down", applog.FieldOperation, applog.OpShutdown)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}

// Metrics returns request counters collected by the trace middleware.
func (s *Server) Metrics() trace.Metrics {
	return s.tracer.GetMetrics()
}
