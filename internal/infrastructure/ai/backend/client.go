// Package backend provides the HTTP adapter for the remote AI recommendation service
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/dietpartner/v2/internal/domain/diet"
	"github.com/dietpartner/v2/internal/ports/outbound"
	apperrors "github.com/dietpartner/v2/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const serviceName = "ai-backend"

// maxBodySize caps how much of a response body is read
const maxBodySize = 4 << 20

var (
	ErrBackendTimeout        = errors.New("backend request timed out")
	ErrBackendStatus         = errors.New("backend returned a non-success status")
	ErrUnexpectedContentType = errors.New("backend returned a non-JSON content type")
	ErrMalformedBody         = errors.New("backend returned a malformed body")
	ErrMissingNarrative      = errors.New("backend response has no narrative")
)

// Config holds the remote service settings
type Config struct {
	BaseURL       string
	RecommendPath string
	HealthPath    string
	// Timeout is a transport-level backstop; callers bound each call through ctx
	Timeout time.Duration
}

// Client implements outbound.RecommendationBackend over HTTP
type Client struct {
	baseURL       string
	recommendPath string
	healthPath    string
	client        *http.Client
	logger        *zap.Logger
}

var _ outbound.RecommendationBackend = (*Client)(nil)

// NewClient creates a new backend client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.RecommendPath == "" {
		cfg.RecommendPath = "/recommend"
	}
	if cfg.HealthPath == "" {
		cfg.HealthPath = "/health"
	}

	c := &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		recommendPath: cfg.RecommendPath,
		healthPath:    cfg.HealthPath,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger.Named("backend-client"),
	}

	c.logger.Info("Backend client initialized",
		zap.String("base_url", c.baseURL),
		zap.Duration("timeout", cfg.Timeout))

	return c
}

// BaseURL returns the remote service base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// recommendRequest is the body sent to the remote service
type recommendRequest struct {
	Symptoms    string          `json:"symptoms"`
	Allergies   []string        `json:"allergies"`
	UserProfile json.RawMessage `json:"user_profile,omitempty"`
}

// Recommend performs one remote call and maps the body into a document
func (c *Client) Recommend(ctx context.Context, req diet.RecommendationRequest) (*diet.RecommendationDocument, error) {
	jsonBody, err := json.Marshal(recommendRequest{
		Symptoms:    req.Profile.Text(),
		Allergies:   req.Profile.Allergies(),
		UserProfile: req.UserProfile,
	})
	if err != nil {
		return nil, apperrors.NewBackendUnavailableError(serviceName, fmt.Errorf("failed to marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.recommendPath, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, apperrors.NewBackendUnavailableError(serviceName, fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return nil, apperrors.NewBackendUnavailableError(serviceName, fmt.Errorf("%w: %v", ErrBackendTimeout, err))
		}
		return nil, apperrors.NewBackendUnavailableError(serviceName, fmt.Errorf("API request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewBackendUnavailableError(serviceName, fmt.Errorf("%w: %d", ErrBackendStatus, resp.StatusCode))
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		return nil, apperrors.NewBackendMalformedError(serviceName,
			fmt.Errorf("%w: %q", ErrUnexpectedContentType, resp.Header.Get("Content-Type")))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		if ctx.Err() != nil {
			return nil, apperrors.NewBackendUnavailableError(serviceName, fmt.Errorf("%w: %v", ErrBackendTimeout, err))
		}
		return nil, apperrors.NewBackendUnavailableError(serviceName, fmt.Errorf("failed to read response: %w", err))
	}

	doc, err := decodeDocument(body)
	if err != nil {
		return nil, apperrors.NewBackendMalformedError(serviceName, err)
	}

	c.logger.Debug("Backend recommendation received",
		zap.String("use_case", doc.UseCase),
		zap.Int("body_bytes", len(body)))

	return doc, nil
}

// HealthCheck checks if the remote service is reachable and healthy
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.healthPath, nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend health check failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend health check failed with status %d", resp.StatusCode)
	}

	c.logger.Debug("Backend health check passed")
	return nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
