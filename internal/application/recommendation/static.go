package recommendation

import (
	"time"

	"github.com/dietpartner/v2/internal/domain/diet"
)

const staticNarrative = `# Basic Dietary Guidance

Personalised analysis is temporarily unavailable. The guidance below is general and safe for most adults.

## General Principles
- Build meals around vegetables, fruit, whole grains and legumes
- Choose water as the main drink through the day
- Keep portions moderate and eat at regular times
- Limit added sugar, refined snacks and highly processed foods

## Allergy Notes
Check every ingredient label against your declared allergies before eating.

---
*This is general information and not medical advice. Consult a qualified healthcare provider or registered dietitian for personalised guidance.*
`

// staticDocument is the fixed last-resort document. Its items contain no
// term of any allergen table entry.
func staticDocument(now time.Time, allergies []string, sources []diet.Source) diet.RecommendationDocument {
	masked := []string{}
	if len(allergies) > 0 {
		masked = cautionEntries(allergies, "Not screened - verify ingredients manually")
	}
	if sources == nil {
		sources = []diet.Source{}
	}

	return diet.RecommendationDocument{
		ID:                NewRecommendationID(),
		NarrativeMarkdown: staticNarrative,
		Sources:           sources,
		AllergyMasked:     masked,
		NutritionalHighlights: []string{
			"Vegetables and fruit at every meal",
			"Whole grains for steady energy",
			"Water as the main drink",
		},
		SafetyScore: SafetyScore(allergies),
		Confidence:  50,
		UseCase:     diet.GeneralWellness.String(),
		Timeline: diet.Timeline{
			Immediate: []string{"Drink water regularly through the day"},
			ShortTerm: []string{"Add one extra serving of vegetables to each meal"},
			LongTerm:  []string{"Discuss a personalised plan with a registered dietitian"},
		},
		MealPlan: diet.MealPlan{
			Breakfast: []string{"Cooked quinoa with fresh berries", "Sliced apple with pumpkin seeds"},
			Lunch:     []string{"Mixed green salad with olive oil and lentils", "Steamed vegetables with brown rice"},
			Dinner:    []string{"Roasted vegetables with chickpeas", "Baked sweet potato with steamed broccoli"},
			Snacks:    []string{"Fresh pear", "Carrot and cucumber sticks"},
		},
		SupplementSuggestions:    []string{},
		LifestyleRecommendations: []string{"Take a short walk after meals", "Keep a regular sleep schedule"},
		Timestamp:                now,
		Version:                  diet.DocumentVersion,
		AnalysisType:             diet.AnalysisType,
	}
}
