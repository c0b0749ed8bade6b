// Package server exposes the root finder as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/polyroots/internal/config"
	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/logging"
	"github.com/agbru/polyroots/internal/service"
)

// Server is the HTTP front end of a service.Solver. It wraps http.Server
// with the middleware chain and graceful shutdown on SIGINT or SIGTERM.
type Server struct {
	service        service.Solver
	cfg            config.AppConfig
	httpServer     *http.Server
	handler        http.Handler
	logger         logging.Logger
	shutdownSignal chan os.Signal
	rateLimiter    *RateLimiter
	securityConfig SecurityConfig
	metrics        *Metrics
	timeouts       Timeouts
}

// NewServer builds a Server listening on cfg.Port.
//
// Parameters:
//   - cfg: The application configuration (port, timeout, precision, limits).
//   - opts: Optional functional options (WithLogger, WithService, ...).
//
// Returns:
//   - *Server: The configured server, not yet listening.
func NewServer(cfg config.AppConfig, opts ...Option) *Server {
	s := &Server{
		cfg:            cfg,
		logger:         logging.NewLogger(os.Stderr, "server", zerolog.InfoLevel),
		shutdownSignal: make(chan os.Signal, 1),
		securityConfig: DefaultSecurityConfig(),
		metrics:        NewMetrics(),
		timeouts:       DefaultServerTimeouts(),
	}
	if cfg.Timeout > 0 {
		s.timeouts.RequestTimeout = cfg.Timeout
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.service == nil {
		s.service = service.NewRootService(cfg.MaxCoefficients, s.logger)
	}
	if s.rateLimiter == nil {
		s.rateLimiter = NewRateLimiter(DefaultRateLimiterConfig())
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/solve", s.wrapWithMiddleware(s.handleSolve))
	mux.HandleFunc("/strategies", s.wrapWithMiddleware(s.handleStrategies))
	mux.HandleFunc("/health", s.wrapWithMiddleware(s.handleHealth))
	mux.HandleFunc("/metrics", s.wrapWithMiddleware(s.handleMetrics))
	s.handler = mux

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  s.timeouts.ReadTimeout,
		WriteTimeout: s.timeouts.WriteTimeout,
		IdleTimeout:  s.timeouts.IdleTimeout,
	}
	return s
}

// Handler returns the routed handler with its middleware chain.
func (s *Server) Handler() http.Handler { return s.handler }

// wrapWithMiddleware applies, outermost first: security headers, rate
// limiting, request logging, metrics.
func (s *Server) wrapWithMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	wrapped := s.metricsMiddleware(handler)
	wrapped = s.loggingMiddleware(wrapped)
	wrapped = RateLimitMiddleware(s.rateLimiter, wrapped)
	wrapped = SecurityMiddleware(s.securityConfig, wrapped)
	return wrapped
}

// Start listens until a shutdown signal arrives, then drains in-flight
// requests within the shutdown timeout.
//
// Returns:
//   - error: An apperrors.ServerError if listening or shutdown fails.
func (s *Server) Start() error {
	signal.Notify(s.shutdownSignal, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(s.shutdownSignal)
	defer s.rateLimiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server",
			logging.String("addr", s.httpServer.Addr),
			logging.Int("max_coefficients", s.cfg.MaxCoefficients),
			logging.Int("precision", s.cfg.Precision),
		)
		s.logger.Printf("Endpoints: GET /solve?c=<coefficients>, POST /solve, GET /strategies, GET /health, GET /metrics")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-s.shutdownSignal:
		s.logger.Info("shutdown signal received, draining requests")
	case err := <-errCh:
		return apperrors.NewServerError("server failed to start", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return apperrors.NewServerError("failed to gracefully shutdown server", err)
	}

	s.logger.Info("server stopped gracefully")
	return nil
}
