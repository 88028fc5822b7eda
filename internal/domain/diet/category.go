package diet

// ConditionCategory is the health focus a recommendation is built around
type ConditionCategory int

// Declaration order is significant: classification ties resolve to the
// category declared first.
const (
	DiabetesManagement ConditionCategory = iota
	CardiovascularHealth
	AntiInflammatory
	DigestiveHealth
	EnergyVitality
	WeightManagement
	GeneralWellness
)

var categoryLabels = [...]string{
	DiabetesManagement:   "Diabetes Management",
	CardiovascularHealth: "Cardiovascular Health",
	AntiInflammatory:     "Anti-Inflammatory",
	DigestiveHealth:      "Digestive Health",
	EnergyVitality:       "Energy & Vitality",
	WeightManagement:     "Weight Management",
	GeneralWellness:      "General Wellness",
}

// Categories returns every category in declaration order
func Categories() []ConditionCategory {
	return []ConditionCategory{
		DiabetesManagement,
		CardiovascularHealth,
		AntiInflammatory,
		DigestiveHealth,
		EnergyVitality,
		WeightManagement,
		GeneralWellness,
	}
}

// Valid reports whether c is one of the declared categories
func (c ConditionCategory) Valid() bool {
	return c >= DiabetesManagement && c <= GeneralWellness
}

// String returns the human readable label used as the document's useCase
func (c ConditionCategory) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryLabels[c]
}

// ParseCategory maps a label back to its category
func ParseCategory(label string) (ConditionCategory, bool) {
	for _, c := range Categories() {
		if categoryLabels[c] == label {
			return c, true
		}
	}
	return GeneralWellness, false
}
