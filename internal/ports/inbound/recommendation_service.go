// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/dietpartner/v2/internal/domain/diet"
)

// RecommendationService defines the use cases HTTP handlers drive
type RecommendationService interface {
	// Recommend always produces an envelope; failures only change its tier.
	Recommend(ctx context.Context, req diet.RecommendationRequest) diet.ResponseEnvelope

	// Health probes the remote service. It never reports this process unhealthy.
	Health(ctx context.Context) diet.HealthReport

	Sources() SourceCatalog
	Status(ctx context.Context) StatusReport
}

// SourceCatalog lists the references behind locally generated documents
type SourceCatalog struct {
	Sources      []diet.Source `json:"sources"`
	SourceTypes  []string      `json:"sourceTypes"`
	TotalSources int           `json:"totalSources"`
}

// BackendStatus describes the remote service as last observed
type BackendStatus struct {
	URL     string `json:"url"`
	Status  string `json:"status"`
	Breaker string `json:"breaker,omitempty"`
	Circuit string `json:"circuit"`
	Error   string `json:"error,omitempty"`
}

// ComponentStatus describes one local pipeline component
type ComponentStatus struct {
	Ready   bool           `json:"ready"`
	Details map[string]int `json:"details,omitempty"`
}

// StatusReport is the detailed status of the service
type StatusReport struct {
	Timestamp    time.Time                  `json:"timestamp"`
	Version      string                     `json:"version"`
	Mode         string                     `json:"mode"`
	Backend      BackendStatus              `json:"backend"`
	Components   map[string]ComponentStatus `json:"components"`
	Capabilities []string                   `json:"capabilities"`
}
