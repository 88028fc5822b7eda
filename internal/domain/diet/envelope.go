package diet

import "time"

// Tier records which generation path produced a response
type Tier string

const (
	TierConnected Tier = "connected"
	TierOffline   Tier = "offline"
	TierError     Tier = "error"
	TierEmergency Tier = "emergency"
)

// ResponseEnvelope flattens the document with the tier fields when encoded
type ResponseEnvelope struct {
	RecommendationDocument
	BackendStatus Tier   `json:"_backendStatus"`
	Message       string `json:"_message,omitempty"`
}

// Remote service health as reported by the health probe
const (
	HealthHealthy        = "healthy"
	HealthBackendOffline = "backend_offline"
)

// FrontendInfo describes this service in a health report
type FrontendInfo struct {
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Mode      string    `json:"mode"`
}

// HealthReport is the body of the health probe
type HealthReport struct {
	Status   string       `json:"status"`
	Frontend FrontendInfo `json:"frontend"`
}
