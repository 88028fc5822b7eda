package diet

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// Input limits for a symptom profile
const (
	MinSymptomLength = 10
	MaxSymptomLength = 3000
	MaxAllergyLength = 50
)

// SymptomProfile is the validated input of a single recommendation request
type SymptomProfile struct {
	text      string
	allergies []string
}

// NewSymptomProfile trims and validates the symptom text and normalises the
// allergy list to lowercase unique names, keeping first occurrence order.
func NewSymptomProfile(text string, allergies []string) (SymptomProfile, error) {
	text = strings.TrimSpace(text)
	switch n := utf8.RuneCountInString(text); {
	case n == 0:
		return SymptomProfile{}, ErrSymptomsRequired
	case n < MinSymptomLength:
		return SymptomProfile{}, ErrSymptomsTooShort
	case n > MaxSymptomLength:
		return SymptomProfile{}, ErrSymptomsTooLong
	}

	normalized, err := NormalizeAllergies(allergies)
	if err != nil {
		return SymptomProfile{}, err
	}

	return SymptomProfile{text: text, allergies: normalized}, nil
}

// NormalizeAllergies lowercases, trims and de-duplicates allergy names
func NormalizeAllergies(allergies []string) ([]string, error) {
	seen := make(map[string]struct{}, len(allergies))
	normalized := make([]string, 0, len(allergies))
	for _, a := range allergies {
		name := strings.ToLower(strings.TrimSpace(a))
		if name == "" {
			return nil, ErrAllergyEmpty
		}
		if utf8.RuneCountInString(name) > MaxAllergyLength {
			return nil, ErrAllergyTooLong
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		normalized = append(normalized, name)
	}
	return normalized, nil
}

// Text returns the trimmed symptom text
func (p SymptomProfile) Text() string {
	return p.text
}

// Allergies returns a copy of the normalised allergy names
func (p SymptomProfile) Allergies() []string {
	out := make([]string, len(p.allergies))
	copy(out, p.allergies)
	return out
}

// HasAllergies reports whether any allergy was declared
func (p SymptomProfile) HasAllergies() bool {
	return len(p.allergies) > 0
}

// RecommendationRequest carries a validated profile and the caller's opaque
// user profile, which is forwarded to the remote service untouched.
type RecommendationRequest struct {
	Profile     SymptomProfile
	UserProfile json.RawMessage
}
