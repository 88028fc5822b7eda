// Package handlers provides HTTP handlers for the recommendation API
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	apperrors "github.com/dietpartner/v2/pkg/errors"
	"go.uber.org/zap"
)

// LivenessResponse is the body of GET /health
type LivenessResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// writeJSON writes a JSON response
func writeJSON(logger *zap.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError writes the {error} body with the status of err
func writeError(logger *zap.Logger, w http.ResponseWriter, err error) {
	appErr := apperrors.Wrap(err, "")
	writeJSON(logger, w, appErr.StatusCode(), apperrors.ToErrorResponse(appErr))
}
