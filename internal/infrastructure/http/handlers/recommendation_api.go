package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/dietpartner/v2/internal/domain/diet"
	"github.com/dietpartner/v2/internal/infrastructure/http/middleware"
	"github.com/dietpartner/v2/internal/ports/inbound"
	apperrors "github.com/dietpartner/v2/pkg/errors"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes caps a POST /recommend body
const DefaultMaxBodyBytes = 64 << 10

// RequestParser turns a raw body into a validated request
type RequestParser interface {
	ParseRecommendRequest(body []byte) (diet.RecommendationRequest, error)
}

// RecommendationHandlers handles the recommendation API
type RecommendationHandlers struct {
	service      inbound.RecommendationService
	parser       RequestParser
	maxBodyBytes int64
	version      string
	now          func() time.Time
	logger       *zap.Logger
}

// NewRecommendationHandlers creates a new recommendation handlers instance
func NewRecommendationHandlers(
	service inbound.RecommendationService,
	parser RequestParser,
	maxBodyBytes int64,
	version string,
	logger *zap.Logger,
) *RecommendationHandlers {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &RecommendationHandlers{
		service:      service,
		parser:       parser,
		maxBodyBytes: maxBodyBytes,
		version:      version,
		now:          time.Now,
		logger:       logger.Named("http"),
	}
}

// Recommend handles POST /recommend. Only input validation fails the
// request; every other failure is absorbed by the service tiers.
func (h *RecommendationHandlers) Recommend(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(h.logger, w, apperrors.NewBadRequestError("Request body too large"))
			return
		}
		writeError(h.logger, w, apperrors.NewBadRequestError("Failed to read request body").WithCause(err))
		return
	}

	req, err := h.parser.ParseRecommendRequest(body)
	if err != nil {
		h.logger.Info("Recommendation request rejected",
			zap.String("request_id", requestID),
			zap.Error(err))
		writeError(h.logger, w, err)
		return
	}

	envelope := h.service.Recommend(r.Context(), req)

	h.logger.Info("Recommendation served",
		zap.String("request_id", requestID),
		zap.String("tier", string(envelope.BackendStatus)),
		zap.String("use_case", envelope.UseCase),
		zap.Int("symptoms_length", utf8.RuneCountInString(req.Profile.Text())),
		zap.Int("allergies", len(req.Profile.Allergies())))

	writeJSON(h.logger, w, http.StatusOK, envelope)
}

// Health handles GET /recommend. It is always 200; the body says whether
// the remote service answered.
func (h *RecommendationHandlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, http.StatusOK, h.service.Health(r.Context()))
}

// Sources handles GET /sources
func (h *RecommendationHandlers) Sources(w http.ResponseWriter, _ *http.Request) {
	writeJSON(h.logger, w, http.StatusOK, h.service.Sources())
}

// Status handles GET /status
func (h *RecommendationHandlers) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, http.StatusOK, h.service.Status(r.Context()))
}

// Liveness handles GET /health
func (h *RecommendationHandlers) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(h.logger, w, http.StatusOK, LivenessResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC(),
		Version:   h.version,
	})
}
