package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dietpartner/v2/internal/application/recommendation"
	"github.com/dietpartner/v2/internal/domain/diet"
	"github.com/dietpartner/v2/pkg/healthcheck"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "dietpartner"

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	logger   *zap.Logger
	gatherer prometheus.Gatherer

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpResponseSize    *prometheus.HistogramVec
	rateLimitedTotal    prometheus.Counter

	// Pipeline metrics
	recommendationsTotal *prometheus.CounterVec
	useCasesTotal        *prometheus.CounterVec
	remoteCallsTotal     *prometheus.CounterVec
	remoteCallDuration   *prometheus.HistogramVec
	circuitState         *prometheus.GaugeVec
}

var _ recommendation.Recorder = (*MetricsCollector)(nil)

// NewMetricsCollector registers the collectors with registry. A nil registry
// uses the process-wide default one.
func NewMetricsCollector(registry *prometheus.Registry, logger *zap.Logger) *MetricsCollector {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if registry != nil {
		registerer, gatherer = registry, registry
	}
	factory := promauto.With(registerer)

	return &MetricsCollector{
		logger:   logger.Named("metrics"),
		gatherer: gatherer,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		httpResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_size_bytes",
				Help:      "HTTP response size in bytes",
				Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
			},
			[]string{"method", "route"},
		),
		rateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_rate_limited_total",
				Help:      "Requests rejected by the rate limiter",
			},
		),

		recommendationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "recommendations_total",
				Help:      "Recommendations served, by the tier that produced them",
			},
			[]string{"tier"},
		),
		useCasesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "recommendation_use_cases_total",
				Help:      "Recommendations served, by use case",
			},
			[]string{"use_case"},
		),
		remoteCallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "backend_calls_total",
				Help:      "Calls to the remote AI service, by outcome",
			},
			[]string{"outcome"},
		),
		remoteCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "backend_call_duration_seconds",
				Help:      "Remote AI service call duration in seconds",
				Buckets:   []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 15.0},
			},
			[]string{"outcome"},
		),
		circuitState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_state",
				Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open)",
			},
			[]string{"name"},
		),
	}
}

// RecordTier counts one served envelope
func (m *MetricsCollector) RecordTier(tier diet.Tier) {
	m.recommendationsTotal.WithLabelValues(string(tier)).Inc()
}

// RecordUseCase counts one served use case
func (m *MetricsCollector) RecordUseCase(useCase string) {
	m.useCasesTotal.WithLabelValues(useCase).Inc()
}

// RecordRemoteCall counts one remote call. Rejected calls never reached the
// network, so they carry no latency.
func (m *MetricsCollector) RecordRemoteCall(outcome string, duration time.Duration) {
	m.remoteCallsTotal.WithLabelValues(outcome).Inc()
	if outcome != recommendation.OutcomeRejected {
		m.remoteCallDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	}
}

// ObserveCircuitState is a circuit breaker OnStateChange hook
func (m *MetricsCollector) ObserveCircuitState(name string, from, to healthcheck.CircuitBreakerState) {
	m.circuitState.WithLabelValues(name).Set(float64(to))
	m.logger.Info("Circuit breaker state changed",
		zap.String("name", name),
		zap.String("from", from.String()),
		zap.String("to", to.String()))
}

// RecordRateLimited counts one rejected request
func (m *MetricsCollector) RecordRateLimited() {
	m.rateLimitedTotal.Inc()
}

// HTTPMiddleware records request count, latency and response size per route
func (m *MetricsCollector) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		m.httpResponseSize.WithLabelValues(r.Method, route).Observe(float64(ww.BytesWritten()))
	})
}

// routePattern keeps label cardinality bounded to registered routes
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// Handler returns the Prometheus metrics HTTP handler
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
