// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"

	"github.com/dietpartner/v2/internal/domain/diet"
)

// RecommendationBackend is the remote AI service that produces documents
type RecommendationBackend interface {
	// Recommend performs a single call. The caller bounds it through ctx.
	Recommend(ctx context.Context, req diet.RecommendationRequest) (*diet.RecommendationDocument, error)

	// HealthCheck probes the remote health endpoint
	HealthCheck(ctx context.Context) error

	// BaseURL identifies the remote service in logs and status reports
	BaseURL() string
}
