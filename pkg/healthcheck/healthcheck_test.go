// Package healthcheck unit tests
// Tests for basic health check functionality
package healthcheck

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestHealthCheck_NoCheckers(t *testing.T) {
	hc := New("2.0.0", zaptest.NewLogger(t))

	response := hc.Check(context.Background())

	assert.Equal(t, StatusHealthy, response.Status)
	assert.Equal(t, "2.0.0", response.Version)
	assert.Empty(t, response.Checks)
}

func TestHealthCheck_AggregatesStatus(t *testing.T) {
	hc := New("2.0.0", zaptest.NewLogger(t))
	hc.Register("backend", NewPingChecker(func(context.Context) error {
		return errors.New("connection refused")
	}))
	hc.Register("knowledge_base", NewCustomChecker(func(context.Context) (Status, string, interface{}) {
		return StatusHealthy, "", map[string]int{"conditions": 7}
	}))

	response := hc.Check(context.Background())

	assert.Equal(t, StatusUnhealthy, response.Status)
	require.Len(t, response.Checks, 2)
	assert.Equal(t, "backend", response.Checks[0].Name)
	assert.Equal(t, "knowledge_base", response.Checks[1].Name)

	backend, ok := response.Find("backend")
	require.True(t, ok)
	assert.Equal(t, "connection refused", backend.Message)

	_, ok = response.Find("missing")
	assert.False(t, ok)
}

func TestHealthCheck_DegradedDoesNotOverrideUnhealthy(t *testing.T) {
	hc := New("2.0.0", zaptest.NewLogger(t))
	hc.Register("a", NewCustomChecker(func(context.Context) (Status, string, interface{}) {
		return StatusDegraded, "slow", nil
	}))
	hc.Register("b", NewPingChecker(func(context.Context) error { return errors.New("down") }))

	assert.Equal(t, StatusUnhealthy, hc.Check(context.Background()).Status)
}

func TestHealthCheck_CachesResponse(t *testing.T) {
	hc := New("2.0.0", zaptest.NewLogger(t))
	var calls atomic.Int32
	hc.Register("backend", NewPingChecker(func(context.Context) error {
		calls.Add(1)
		return nil
	}))

	hc.Check(context.Background())
	hc.Check(context.Background())
	assert.Equal(t, int32(1), calls.Load())

	hc.SetCacheTTL(0)
	hc.Check(context.Background())
	assert.Equal(t, int32(2), calls.Load())
}

func TestHealthCheck_TimeoutReachesChecker(t *testing.T) {
	hc := New("2.0.0", zaptest.NewLogger(t))
	hc.SetTimeout(20 * time.Millisecond)
	hc.Register("slow", NewPingChecker(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))

	response := hc.Check(context.Background())

	assert.Equal(t, StatusUnhealthy, response.Status)
	assert.Contains(t, response.Checks[0].Message, "deadline exceeded")
}

func TestResponse_MarshalJSON(t *testing.T) {
	response := Response{
		Status:        StatusHealthy,
		Version:       "2.0.0",
		TotalDuration: 1500 * time.Millisecond,
		Checks:        []Check{{Name: "backend", Status: StatusHealthy, Duration: 20 * time.Millisecond}},
	}

	data, err := json.Marshal(response)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(1500), decoded["total_duration_ms"])
	checks := decoded["checks"].([]interface{})
	assert.Equal(t, float64(20), checks[0].(map[string]interface{})["duration_ms"])
}
