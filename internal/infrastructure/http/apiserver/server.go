// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dietpartner/v2/internal/infrastructure/config"
	"github.com/dietpartner/v2/internal/infrastructure/http/handlers"
	"github.com/dietpartner/v2/internal/infrastructure/http/middleware"
	"github.com/dietpartner/v2/internal/infrastructure/monitoring"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// defaultRequestTimeout bounds a request when no write timeout is configured
const defaultRequestTimeout = 30 * time.Second

// APIServer serves the recommendation API
type APIServer struct {
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	router   *chi.Mux
	handlers *handlers.RecommendationHandlers
	metrics  *monitoring.MetricsCollector
	limiter  *middleware.RateLimiter
	openAPI  *OpenAPIHandler
}

// NewAPIServer creates a new API server instance. metrics and limiter may be nil.
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	h *handlers.RecommendationHandlers,
	metrics *monitoring.MetricsCollector,
	limiter *middleware.RateLimiter,
) *APIServer {
	s := &APIServer{
		config:   cfg,
		logger:   log.Named("http"),
		handlers: h,
		metrics:  metrics,
		limiter:  limiter,
		openAPI:  NewOpenAPIHandler(log),
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:           cfg.Address(),
		Handler:        otelhttp.NewHandler(s.router, "dietpartner-api"),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return s
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	if s.metrics != nil {
		r.Use(s.metrics.HTTPMiddleware)
	}
	r.Use(chimiddleware.Timeout(s.requestTimeout()))
	if s.config.Server.EnableCompression {
		r.Use(chimiddleware.Compress(5, "application/json"))
	}

	r.Get("/health", s.handlers.Liveness)
	r.Get("/openapi.yaml", s.openAPI.ServeOpenAPISpec)

	recommend := http.Handler(http.HandlerFunc(s.handlers.Recommend))
	if s.limiter != nil {
		recommend = s.limiter.Middleware(recommend)
	}
	r.Method(http.MethodPost, "/recommend", recommend)
	r.Get("/recommend", s.handlers.Health)
	r.Get("/sources", s.handlers.Sources)
	r.Get("/status", s.handlers.Status)

	if s.metrics != nil && s.config.Monitoring.EnableMetrics {
		r.Handle(s.config.Monitoring.MetricsPath, s.metrics.Handler())
	}

	return r
}

// requestTimeout follows the write deadline, which config validation keeps
// above the remote timeout so the fallback tiers still have time to answer
func (s *APIServer) requestTimeout() time.Duration {
	if s.config.Server.WriteTimeout > 0 {
		return s.config.Server.WriteTimeout
	}
	return defaultRequestTimeout
}

// Handler returns the instrumented root handler
func (s *APIServer) Handler() http.Handler {
	return s.server.Handler
}

// Start listens on the configured address and serves until Shutdown
func (s *APIServer) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve serves on ln until Shutdown. A graceful shutdown is not an error.
func (s *APIServer) Serve(ln net.Listener) error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", ln.Addr().String()),
		zap.String("environment", s.config.App.Environment),
	)

	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Server returns the underlying HTTP server instance
func (s *APIServer) Server() *http.Server {
	return s.server
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}
