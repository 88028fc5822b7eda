package monitoring

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dietpartner/v2/internal/application/recommendation"
	"github.com/dietpartner/v2/internal/domain/diet"
	"github.com/dietpartner/v2/pkg/healthcheck"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zaptest"
)

func newCollector(t *testing.T) *MetricsCollector {
	t.Helper()
	return NewMetricsCollector(prometheus.NewRegistry(), zaptest.NewLogger(t))
}

func TestMetricsCollector_RecordTier(t *testing.T) {
	m := newCollector(t)

	m.RecordTier(diet.TierConnected)
	m.RecordTier(diet.TierOffline)
	m.RecordTier(diet.TierOffline)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.recommendationsTotal.WithLabelValues("connected")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.recommendationsTotal.WithLabelValues("offline")))
}

func TestMetricsCollector_RecordUseCase(t *testing.T) {
	m := newCollector(t)

	m.RecordUseCase("Diabetes Management")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.useCasesTotal.WithLabelValues("Diabetes Management")))
}

func TestMetricsCollector_RecordRemoteCall(t *testing.T) {
	m := newCollector(t)

	m.RecordRemoteCall(recommendation.OutcomeSuccess, 200*time.Millisecond)
	m.RecordRemoteCall(recommendation.OutcomeRejected, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.remoteCallsTotal.WithLabelValues(recommendation.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.remoteCallsTotal.WithLabelValues(recommendation.OutcomeRejected)))
	// Only calls that reached the network are timed
	assert.Equal(t, 1, testutil.CollectAndCount(m.remoteCallDuration))
}

func TestMetricsCollector_ObserveCircuitState(t *testing.T) {
	m := newCollector(t)

	m.ObserveCircuitState("ai-backend", healthcheck.StateClosed, healthcheck.StateOpen)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.circuitState.WithLabelValues("ai-backend")))

	m.ObserveCircuitState("ai-backend", healthcheck.StateOpen, healthcheck.StateHalfOpen)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.circuitState.WithLabelValues("ai-backend")))
}

func TestMetricsCollector_HTTPMiddleware(t *testing.T) {
	m := newCollector(t)

	r := chi.NewRouter()
	r.Use(m.HTTPMiddleware)
	r.Post("/recommend", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"bad"}`)
	})

	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader("{}"))
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/recommend", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestMetricsCollector_Handler(t *testing.T) {
	m := newCollector(t)
	m.RecordTier(diet.TierEmergency)
	m.RecordRateLimited()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `dietpartner_recommendations_total{tier="emergency"} 1`)
	assert.Contains(t, body, "dietpartner_http_rate_limited_total 1")
}

func TestNewTracingProvider_Disabled(t *testing.T) {
	tp, err := NewTracingProvider(TracingConfig{ServiceName: "dietpartner"}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, tp.Enabled())
	ctx, span := tp.Tracer().Start(context.Background(), "recommendation.start")
	span.End()
	assert.False(t, trace.SpanContextFromContext(ctx).IsValid())
	assert.Empty(t, TraceIDFromContext(ctx))
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestNewTracingProvider_Enabled(t *testing.T) {
	tp, err := NewTracingProvider(TracingConfig{
		ServiceName:    "dietpartner",
		ServiceVersion: "2.0.0",
		Environment:    "test",
		OTLPEndpoint:   "localhost:4318",
		Insecure:       true,
		SamplingRate:   1,
		Enabled:        true,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.True(t, tp.Enabled())
	ctx, span := tp.Tracer().Start(context.Background(), "recommendation.start")
	assert.NotEmpty(t, TraceIDFromContext(ctx))
	span.End()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	// No collector is listening; shutdown may report the failed flush
	_ = tp.Shutdown(ctx)
}
