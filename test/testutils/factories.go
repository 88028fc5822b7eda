// Package testutils provides test data factories and fake remote services
// shared by package tests
package testutils

import (
	"encoding/json"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/dietpartner/v2/internal/domain/diet"
)

// symptomPhrases produce one condition category each
var symptomPhrases = map[diet.ConditionCategory][]string{
	diet.DiabetesManagement:   {"my blood sugar spikes after lunch", "recently diagnosed with type 2 diabetes", "my glucose readings are high"},
	diet.CardiovascularHealth: {"my doctor says my blood pressure is elevated", "high cholesterol runs in my family", "worried about my heart health"},
	diet.AntiInflammatory:     {"arthritis flares in my hands", "constant joint pain in the mornings", "swelling in my knees"},
	diet.DigestiveHealth:      {"bloating after most meals", "frequent constipation", "acid reflux at night"},
	diet.EnergyVitality:       {"I feel tired all afternoon", "constant fatigue even after sleeping", "I am exhausted by noon"},
	diet.WeightManagement:     {"I want to lose weight safely", "my bmi is above 30", "struggling with obesity"},
}

var allergyNames = []string{"dairy", "gluten", "nuts", "peanuts", "shellfish", "fish", "eggs", "soy", "sesame", "corn"}

// RequestFactory provides methods to create recommendation requests
type RequestFactory struct {
	faker *gofakeit.Faker
}

// NewRequestFactory creates a new request factory with seeded faker
func NewRequestFactory(seed int64) *RequestFactory {
	return &RequestFactory{faker: gofakeit.New(seed)}
}

// Symptoms returns text classified as category. GeneralWellness text
// carries no keyword at all.
func (f *RequestFactory) Symptoms(category diet.ConditionCategory) string {
	phrases, ok := symptomPhrases[category]
	if !ok {
		return "looking for a balanced everyday eating plan"
	}
	return phrases[f.faker.Number(0, len(phrases)-1)]
}

// Allergies returns n distinct known allergen names
func (f *RequestFactory) Allergies(n int) []string {
	names := make([]string, len(allergyNames))
	copy(names, allergyNames)
	f.faker.ShuffleStrings(names)
	if n > len(names) {
		n = len(names)
	}
	return names[:n]
}

// UserProfile returns an opaque profile object
func (f *RequestFactory) UserProfile() map[string]interface{} {
	return map[string]interface{}{
		"name":   f.faker.FirstName(),
		"age":    f.faker.Number(18, 90),
		"gender": f.faker.Gender(),
		"goals":  []string{f.faker.RandomString([]string{"energy", "weight", "heart health", "digestion"})},
	}
}

// Builder starts a request for category with faker data
func (f *RequestFactory) Builder(category diet.ConditionCategory) *RequestBuilder {
	return &RequestBuilder{
		symptoms:    f.Symptoms(category),
		allergies:   []string{},
		userProfile: f.UserProfile(),
	}
}

// RequestBuilder provides a fluent interface for building request bodies
type RequestBuilder struct {
	symptoms    string
	allergies   []string
	userProfile map[string]interface{}
}

// NewRequestBuilder creates a builder with fixed default values
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		symptoms:  "looking for a balanced everyday eating plan",
		allergies: []string{},
	}
}

// WithSymptoms sets the symptom text
func (rb *RequestBuilder) WithSymptoms(symptoms string) *RequestBuilder {
	rb.symptoms = symptoms
	return rb
}

// WithAllergies sets the allergy list
func (rb *RequestBuilder) WithAllergies(allergies ...string) *RequestBuilder {
	rb.allergies = allergies
	return rb
}

// WithUserProfile sets the opaque user profile
func (rb *RequestBuilder) WithUserProfile(profile map[string]interface{}) *RequestBuilder {
	rb.userProfile = profile
	return rb
}

// Body encodes the POST /recommend body
func (rb *RequestBuilder) Body() []byte {
	payload := map[string]interface{}{
		"symptoms":  rb.symptoms,
		"allergies": rb.allergies,
	}
	if rb.userProfile != nil {
		payload["userProfile"] = rb.userProfile
	}
	body, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return body
}

// Reader returns the body as a reader
func (rb *RequestBuilder) Reader() *strings.Reader {
	return strings.NewReader(string(rb.Body()))
}

// Build returns the validated domain request
func (rb *RequestBuilder) Build() (diet.RecommendationRequest, error) {
	profile, err := diet.NewSymptomProfile(rb.symptoms, rb.allergies)
	if err != nil {
		return diet.RecommendationRequest{}, err
	}
	var userProfile json.RawMessage
	if rb.userProfile != nil {
		if userProfile, err = json.Marshal(rb.userProfile); err != nil {
			return diet.RecommendationRequest{}, err
		}
	}
	return diet.RecommendationRequest{Profile: profile, UserProfile: userProfile}, nil
}
