package diet

import "errors"

// Domain errors for symptom profile validation

var (
	ErrSymptomsRequired = errors.New("symptoms are required")
	ErrSymptomsTooShort = errors.New("symptoms must be at least 10 characters")
	ErrSymptomsTooLong  = errors.New("symptoms must not exceed 3000 characters")

	ErrAllergyEmpty   = errors.New("allergy entries must not be empty")
	ErrAllergyTooLong = errors.New("allergy names must be less than 50 characters")
)
