package security

import (
	"strings"
	"testing"

	apperrors "github.com/dietpartner/v2/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestParseRecommendRequest_Valid(t *testing.T) {
	v := NewRequestValidator(zaptest.NewLogger(t))

	req, err := v.ParseRecommendRequest([]byte(`{
		"symptoms": "  I feel <b>tired</b> and   bloated after meals; often ",
		"allergies": [" Dairy", "nuts", "dairy"],
		"userProfile": {"age": 42, "goals": ["energy"]}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "I feel btired/b and bloated after meals often", req.Profile.Text())
	assert.Equal(t, []string{"dairy", "nuts"}, req.Profile.Allergies())
	assert.JSONEq(t, `{"age": 42, "goals": ["energy"]}`, string(req.UserProfile))
}

func TestParseRecommendRequest_AllergiesOptional(t *testing.T) {
	v := NewRequestValidator(zaptest.NewLogger(t))

	for _, body := range []string{
		`{"symptoms": "persistent headaches in the afternoon"}`,
		`{"symptoms": "persistent headaches in the afternoon", "allergies": null}`,
		`{"symptoms": "persistent headaches in the afternoon", "allergies": []}`,
	} {
		req, err := v.ParseRecommendRequest([]byte(body))
		require.NoError(t, err, body)
		assert.Empty(t, req.Profile.Allergies())
		assert.False(t, req.Profile.HasAllergies())
		assert.Nil(t, req.UserProfile)
	}
}

func TestParseRecommendRequest_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		code    apperrors.ErrorCode
		message string
	}{
		{"unparsable json", `{"symptoms": `, apperrors.CodeBadRequest, MsgInvalidJSON},
		{"not an object", `"symptoms"`, apperrors.CodeBadRequest, MsgInvalidJSON},
		{"missing symptoms", `{"allergies": []}`, apperrors.CodeValidationFailed, MsgSymptomsRequired},
		{"blank symptoms", `{"symptoms": "    "}`, apperrors.CodeValidationFailed, MsgSymptomsRequired},
		{"numeric symptoms", `{"symptoms": 12345678901}`, apperrors.CodeValidationFailed, MsgSymptomsRequired},
		{"short symptoms", `{"symptoms": "tired"}`, apperrors.CodeValidationFailed, MsgSymptomsTooShort},
		{"short after trim", `{"symptoms": "   tired     "}`, apperrors.CodeValidationFailed, MsgSymptomsTooShort},
		{"short after sanitizing", `{"symptoms": "<<<<tired>>>>"}`, apperrors.CodeValidationFailed, MsgSymptomsTooShort},
		{"long symptoms", `{"symptoms": "` + strings.Repeat("a", 3001) + `"}`, apperrors.CodeValidationFailed, MsgSymptomsTooLong},
		{"allergies string", `{"symptoms": "constant fatigue all day", "allergies": "dairy"}`, apperrors.CodeValidationFailed, MsgAllergiesNotList},
		{"allergies object", `{"symptoms": "constant fatigue all day", "allergies": {"dairy": true}}`, apperrors.CodeValidationFailed, MsgAllergiesNotList},
		{"allergy number", `{"symptoms": "constant fatigue all day", "allergies": ["dairy", 7]}`, apperrors.CodeValidationFailed, MsgAllergyNotString},
		{"allergy null", `{"symptoms": "constant fatigue all day", "allergies": [null]}`, apperrors.CodeValidationFailed, MsgAllergyNotString},
		{"empty allergy", `{"symptoms": "constant fatigue all day", "allergies": ["dairy", "  "]}`, apperrors.CodeValidationFailed, MsgAllergyEmpty},
		{"long allergy", `{"symptoms": "constant fatigue all day", "allergies": ["` + strings.Repeat("x", 51) + `"]}`, apperrors.CodeValidationFailed, MsgAllergyTooLong},
		{"short symptoms before bad allergies", `{"symptoms": "ab", "allergies": "x"}`, apperrors.CodeValidationFailed, MsgSymptomsTooShort},
		{"missing symptoms before bad allergies", `{"allergies": [7]}`, apperrors.CodeValidationFailed, MsgSymptomsRequired},
		{"long symptoms before long allergy", `{"symptoms": "` + strings.Repeat("a", 3001) + `", "allergies": ["` + strings.Repeat("x", 51) + `"]}`, apperrors.CodeValidationFailed, MsgSymptomsTooLong},
	}

	v := NewRequestValidator(zaptest.NewLogger(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ParseRecommendRequest([]byte(tt.body))

			require.Error(t, err)
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
			assert.Equal(t, 400, appErr.StatusCode())
		})
	}
}

func TestParseRecommendRequest_UserProfileForwardedAsIs(t *testing.T) {
	v := NewRequestValidator(zaptest.NewLogger(t))

	for _, profile := range []string{`{"age": 42}`, `[1, 2]`, `"athlete"`, `7`, `true`} {
		req, err := v.ParseRecommendRequest([]byte(`{"symptoms": "constant fatigue all day", "userProfile": ` + profile + `}`))
		require.NoError(t, err, profile)
		assert.JSONEq(t, profile, string(req.UserProfile))
	}
}

func TestParseRecommendRequest_BoundaryLengths(t *testing.T) {
	v := NewRequestValidator(zaptest.NewLogger(t))

	_, err := v.ParseRecommendRequest([]byte(`{"symptoms": "0123456789"}`))
	assert.NoError(t, err)

	_, err = v.ParseRecommendRequest([]byte(`{"symptoms": "` + strings.Repeat("a", 3000) + `"}`))
	assert.NoError(t, err)

	_, err = v.ParseRecommendRequest([]byte(`{"symptoms": "constant fatigue", "allergies": ["` + strings.Repeat("x", 50) + `"]}`))
	assert.NoError(t, err)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{`<script>alert("x")</script>`, "scriptalert(x)/script"},
		{"it's; fine\\", "its fine"},
		{"  spread \n\t out  ", "spread out"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), tt.in)
	}
}
