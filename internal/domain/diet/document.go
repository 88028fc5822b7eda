package diet

import "time"

// Document constants shared by every generation path
const (
	DocumentVersion = "2.0.0"
	AnalysisType    = "comprehensive_multi_source"
)

// MealSlot names one of the four meal plan sections
type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Dinner    MealSlot = "dinner"
	Snacks    MealSlot = "snacks"
)

// MealSlots returns the slots in document order
func MealSlots() []MealSlot {
	return []MealSlot{Breakfast, Lunch, Dinner, Snacks}
}

// MealPlan holds the ordered items of each meal slot
type MealPlan struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snacks    []string `json:"snacks"`
}

// Items returns the items of a slot
func (m MealPlan) Items(slot MealSlot) []string {
	switch slot {
	case Breakfast:
		return m.Breakfast
	case Lunch:
		return m.Lunch
	case Dinner:
		return m.Dinner
	case Snacks:
		return m.Snacks
	}
	return nil
}

// WithItems returns a copy of the plan with the slot's items replaced
func (m MealPlan) WithItems(slot MealSlot, items []string) MealPlan {
	switch slot {
	case Breakfast:
		m.Breakfast = items
	case Lunch:
		m.Lunch = items
	case Dinner:
		m.Dinner = items
	case Snacks:
		m.Snacks = items
	}
	return m
}

// Source is a reference backing a recommendation
type Source struct {
	Title          string  `json:"title"`
	URL            string  `json:"url"`
	Type           string  `json:"type"`
	Summary        string  `json:"summary"`
	RelevanceScore float64 `json:"relevanceScore"`
}

// Timeline groups actions by when they should start
type Timeline struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"shortTerm"`
	LongTerm  []string `json:"longTerm"`
}

// RecommendationDocument is the structured result returned to callers
type RecommendationDocument struct {
	ID                       string    `json:"id,omitempty"`
	NarrativeMarkdown        string    `json:"narrativeMarkdown"`
	Sources                  []Source  `json:"sources"`
	AllergyMasked            []string  `json:"allergyMasked"`
	NutritionalHighlights    []string  `json:"nutritionalHighlights"`
	SafetyScore              int       `json:"safetyScore"`
	Confidence               int       `json:"confidence"`
	UseCase                  string    `json:"useCase"`
	Timeline                 Timeline  `json:"timeline"`
	MealPlan                 MealPlan  `json:"mealPlan"`
	SupplementSuggestions    []string  `json:"supplementSuggestions"`
	LifestyleRecommendations []string  `json:"lifestyleRecommendations"`
	Timestamp                time.Time `json:"timestamp"`
	Version                  string    `json:"version,omitempty"`
	AnalysisType             string    `json:"analysisType,omitempty"`
}
