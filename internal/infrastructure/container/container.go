// Package container provides dependency injection setup using Uber's Fx
package container

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/dietpartner/v2/internal/application/recommendation"
	"github.com/dietpartner/v2/internal/infrastructure/ai/backend"
	"github.com/dietpartner/v2/internal/infrastructure/config"
	"github.com/dietpartner/v2/internal/infrastructure/http/apiserver"
	"github.com/dietpartner/v2/internal/infrastructure/http/handlers"
	"github.com/dietpartner/v2/internal/infrastructure/http/middleware"
	"github.com/dietpartner/v2/internal/infrastructure/monitoring"
	"github.com/dietpartner/v2/internal/infrastructure/security"
	"github.com/dietpartner/v2/internal/ports/inbound"
	"github.com/dietpartner/v2/internal/ports/outbound"
	"github.com/dietpartner/v2/pkg/healthcheck"
	"github.com/dietpartner/v2/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides all application dependencies
var Module = fx.Options(
	ConfigModule,
	AppModule,
)

// AppModule is everything except configuration loading
var AppModule = fx.Options(
	LoggerModule,
	MonitoringModule,
	BackendModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, zap.AtomicLevel, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// MonitoringModule provides metrics and tracing
var MonitoringModule = fx.Provide(
	func(log *zap.Logger) *monitoring.MetricsCollector {
		return monitoring.NewMetricsCollector(nil, log)
	},
	func(cfg *config.Config, log *zap.Logger) (*monitoring.TracingProvider, error) {
		return monitoring.NewTracingProvider(monitoring.TracingConfig{
			ServiceName:    "dietpartner",
			ServiceVersion: cfg.App.Version,
			Environment:    cfg.App.Environment,
			OTLPEndpoint:   cfg.Monitoring.OTLPEndpoint,
			Insecure:       cfg.Monitoring.OTLPInsecure,
			SamplingRate:   cfg.Monitoring.SamplingRate,
			Enabled:        cfg.Monitoring.EnableTracing,
		}, log)
	},
)

// BackendModule provides the remote AI client and its circuit breaker
var BackendModule = fx.Provide(
	fx.Annotate(
		func(cfg *config.Config, log *zap.Logger) *backend.Client {
			return backend.NewClient(backend.Config{
				BaseURL:       cfg.Backend.URL,
				RecommendPath: cfg.Backend.RecommendPath,
				HealthPath:    cfg.Backend.HealthPath,
				Timeout:       cfg.Backend.Timeout,
			}, log)
		},
		fx.As(new(outbound.RecommendationBackend)),
	),
	NewBackendBreaker,
)

// NewBackendBreaker returns nil when the breaker is disabled
func NewBackendBreaker(cfg *config.Config, metrics *monitoring.MetricsCollector, log *zap.Logger) *healthcheck.CircuitBreaker {
	if !cfg.Backend.Circuit.Enabled {
		log.Info("Circuit breaker disabled for AI backend")
		return nil
	}
	breakerCfg := healthcheck.DefaultCircuitBreakerConfig()
	if cfg.Backend.Circuit.FailureThreshold > 0 {
		breakerCfg.FailureThreshold = cfg.Backend.Circuit.FailureThreshold
	}
	if cfg.Backend.Circuit.OpenTimeout > 0 {
		breakerCfg.Timeout = cfg.Backend.Circuit.OpenTimeout
	}
	breakerCfg.OnStateChange = func(name string, from, to healthcheck.CircuitBreakerState) {
		log.Warn("Circuit breaker state changed",
			zap.String("name", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
		metrics.ObserveCircuitState(name, from, to)
	}
	return healthcheck.NewCircuitBreaker("ai-backend", breakerCfg)
}

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	recommendation.NewKnowledgeBase,
	func(kb *recommendation.KnowledgeBase) *recommendation.LocalGenerator {
		return recommendation.NewLocalGenerator(kb, time.Now)
	},
	fx.Annotate(
		NewRecommendationService,
		fx.As(new(inbound.RecommendationService)),
	),
)

// NewRecommendationService wires the orchestrator from configuration
func NewRecommendationService(
	cfg *config.Config,
	remote outbound.RecommendationBackend,
	generator *recommendation.LocalGenerator,
	kb *recommendation.KnowledgeBase,
	breaker *healthcheck.CircuitBreaker,
	metrics *monitoring.MetricsCollector,
	tracing *monitoring.TracingProvider,
	log *zap.Logger,
) *recommendation.Service {
	seeds := recommendation.TimeSeed()
	if cfg.Recommendation.Seed != 0 {
		seeds = recommendation.FixedSeed(cfg.Recommendation.Seed)
	}

	mode := "production"
	if cfg.IsDevelopment() {
		mode = "development"
	}

	opts := []recommendation.Option{
		recommendation.WithRecorder(metrics),
		recommendation.WithTracer(tracing.Tracer()),
		recommendation.WithSeedSource(seeds),
	}
	if breaker != nil {
		opts = append(opts, recommendation.WithBreaker(breaker))
	}

	return recommendation.NewService(remote, generator, kb, recommendation.Config{
		RemoteTimeout:  cfg.Backend.Timeout,
		HealthTimeout:  cfg.Backend.HealthTimeout,
		StatusCacheTTL: cfg.Backend.StatusCacheTTL,
		Version:        cfg.App.Version,
		Mode:           mode,
	}, log, opts...)
}

// HTTPModule provides the HTTP server and handlers
var HTTPModule = fx.Provide(
	fx.Annotate(
		security.NewRequestValidator,
		fx.As(new(handlers.RequestParser)),
	),
	func(
		service inbound.RecommendationService,
		parser handlers.RequestParser,
		cfg *config.Config,
		log *zap.Logger,
	) *handlers.RecommendationHandlers {
		return handlers.NewRecommendationHandlers(service, parser, cfg.Server.MaxBodyBytes, cfg.App.Version, log)
	},
	NewRateLimiter,
	func(
		cfg *config.Config,
		log *zap.Logger,
		h *handlers.RecommendationHandlers,
		metrics *monitoring.MetricsCollector,
		limiter *middleware.RateLimiter,
	) *apiserver.APIServer {
		return apiserver.NewAPIServer(cfg, log, h, metrics, limiter)
	},
)

// NewRateLimiter returns nil when rate limiting is disabled
func NewRateLimiter(cfg *config.Config, metrics *monitoring.MetricsCollector, log *zap.Logger) *middleware.RateLimiter {
	if !cfg.RateLimit.Enable {
		return nil
	}
	return middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerMin:  cfg.RateLimit.RequestsPerMin,
		BurstSize:       cfg.RateLimit.BurstSize,
		CleanupInterval: cfg.RateLimit.CleanupInterval,
		OnReject:        metrics.RecordRateLimited,
	}, log)
}

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg *config.Config,
	log *zap.Logger,
	level zap.AtomicLevel,
	tracing *monitoring.TracingProvider,
	limiter *middleware.RateLimiter,
	server *apiserver.APIServer,
) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("Starting Diet Partner",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
				zap.String("address", cfg.Address()),
				zap.String("backend", cfg.Backend.URL),
			)

			if cfg.Watch(func(next *config.Config) {
				level.SetLevel(logger.ParseLevel(next.App.LogLevel))
				log.Info("Configuration reloaded", zap.String("log_level", next.App.LogLevel))
			}, func(err error) {
				log.Warn("Ignoring invalid configuration change", zap.Error(err))
			}) {
				log.Info("Watching configuration file", zap.String("file", cfg.ConfigFile()))
			}

			if limiter != nil {
				go limiter.Run(ctx)
			}

			ln, err := net.Listen("tcp", cfg.Address())
			if err != nil {
				cancel()
				return fmt.Errorf("listen on %s: %w", cfg.Address(), err)
			}
			go func() {
				if err := server.Serve(ln); err != nil {
					log.Error("HTTP server failed", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Diet Partner")
			cancel()

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}
			if err := tracing.Shutdown(ctx); err != nil {
				log.Error("Failed to flush traces", zap.Error(err))
			}

			_ = log.Sync()
			return nil
		},
	})
}
