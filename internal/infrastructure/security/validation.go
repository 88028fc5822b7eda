// Package security provides input validation and sanitization for the
// recommendation API
package security

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dietpartner/v2/internal/domain/diet"
	apperrors "github.com/dietpartner/v2/pkg/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Messages returned to callers for rejected requests
const (
	MsgInvalidJSON        = "Invalid JSON in request body"
	MsgSymptomsRequired   = "Symptoms are required for comprehensive analysis"
	MsgSymptomsTooShort   = "Please provide detailed symptoms (at least 10 characters)"
	MsgSymptomsTooLong    = "Symptoms description is too long (maximum 3000 characters)"
	MsgAllergiesNotList   = "Allergies must be provided as a list"
	MsgAllergyNotString   = "Each allergy must be a string"
	MsgAllergyEmpty       = "Empty allergy entries are not allowed"
	MsgAllergyTooLong     = "Allergy names must be less than 50 characters"
)

// strippedChars never reach classification or the remote service
const strippedChars = "<>\"';\\"

// RecommendInput is the decoded POST /recommend body
type RecommendInput struct {
	Symptoms  string   `validate:"required,min=10,max=3000"`
	Allergies []string `validate:"dive,required,max=50"`
}

// RequestValidator turns raw request bodies into validated requests
type RequestValidator struct {
	logger    *zap.Logger
	validator *validator.Validate
}

// NewRequestValidator creates a new request validator
func NewRequestValidator(logger *zap.Logger) *RequestValidator {
	return &RequestValidator{
		logger:    logger.Named("validation"),
		validator: validator.New(),
	}
}

// payload keeps every field raw so type mismatches map to their own messages
type payload struct {
	Symptoms    json.RawMessage `json:"symptoms"`
	Allergies   json.RawMessage `json:"allergies"`
	UserProfile json.RawMessage `json:"userProfile"`
}

// ParseRecommendRequest decodes, sanitizes and validates a request body.
// Every rejection is a validation AppError carrying the caller-facing message.
func (v *RequestValidator) ParseRecommendRequest(body []byte) (diet.RecommendationRequest, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return diet.RecommendationRequest{}, apperrors.NewBadRequestError(MsgInvalidJSON).WithCause(err)
	}

	var input RecommendInput
	if !isNull(p.Symptoms) {
		if err := json.Unmarshal(p.Symptoms, &input.Symptoms); err != nil {
			return diet.RecommendationRequest{}, apperrors.NewValidationError(MsgSymptomsRequired)
		}
	}
	input.Symptoms = Sanitize(input.Symptoms)

	// Symptom rules are reported before any allergy rule
	if err := v.ValidateInput(RecommendInput{Symptoms: input.Symptoms}); err != nil {
		return diet.RecommendationRequest{}, err
	}

	allergies, err := decodeAllergies(p.Allergies)
	if err != nil {
		return diet.RecommendationRequest{}, err
	}
	input.Allergies = allergies

	if err := v.ValidateInput(input); err != nil {
		return diet.RecommendationRequest{}, err
	}

	// The profile is opaque and forwarded unchanged
	var userProfile json.RawMessage
	if !isNull(p.UserProfile) {
		userProfile = bytes.TrimSpace(p.UserProfile)
	}

	profile, err := diet.NewSymptomProfile(input.Symptoms, input.Allergies)
	if err != nil {
		return diet.RecommendationRequest{}, apperrors.NewValidationError(domainMessage(err)).WithCause(err)
	}

	return diet.RecommendationRequest{Profile: profile, UserProfile: userProfile}, nil
}

// ValidateInput applies the struct rules and maps the first failure to its
// caller-facing message
func (v *RequestValidator) ValidateInput(input RecommendInput) error {
	err := v.validator.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.NewInternalError("").WithCause(err)
	}

	fe := validationErrors[0]
	v.logger.Debug("Request rejected",
		zap.String("field", fe.Namespace()),
		zap.String("tag", fe.Tag()))

	return apperrors.NewValidationError(fieldMessage(fe))
}

func fieldMessage(fe validator.FieldError) string {
	if strings.HasPrefix(fe.StructField(), "Allergies") {
		if fe.Tag() == "max" {
			return MsgAllergyTooLong
		}
		return MsgAllergyEmpty
	}
	switch fe.Tag() {
	case "required":
		return MsgSymptomsRequired
	case "min":
		return MsgSymptomsTooShort
	case "max":
		return MsgSymptomsTooLong
	default:
		return MsgSymptomsTooShort
	}
}

func domainMessage(err error) string {
	switch {
	case errors.Is(err, diet.ErrSymptomsRequired):
		return MsgSymptomsRequired
	case errors.Is(err, diet.ErrSymptomsTooLong):
		return MsgSymptomsTooLong
	case errors.Is(err, diet.ErrAllergyEmpty):
		return MsgAllergyEmpty
	case errors.Is(err, diet.ErrAllergyTooLong):
		return MsgAllergyTooLong
	default:
		return MsgSymptomsTooShort
	}
}

// decodeAllergies accepts an absent or null list and trims every entry
func decodeAllergies(raw json.RawMessage) ([]string, error) {
	if isNull(raw) {
		return []string{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperrors.NewValidationError(MsgAllergiesNotList)
	}

	allergies := make([]string, 0, len(items))
	for _, item := range items {
		var name string
		if err := json.Unmarshal(item, &name); err != nil || isNull(item) {
			return nil, apperrors.NewValidationError(MsgAllergyNotString)
		}
		allergies = append(allergies, strings.TrimSpace(name))
	}
	return allergies, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Sanitize strips markup and quoting characters and collapses whitespace
func Sanitize(input string) string {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(strippedChars, r) {
			return -1
		}
		return r
	}, input)
	return strings.Join(strings.Fields(stripped), " ")
}
