package recommendation

import (
	"regexp"
	"strings"
	"testing"

	"github.com/dietpartner/v2/internal/domain/diet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func termPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

func assertNoTermSurvives(t *testing.T, kb *KnowledgeBase, text string, allergies []string) {
	t.Helper()
	for _, allergen := range allergies {
		rule, ok := kb.Allergen(allergen)
		if !ok {
			continue
		}
		for _, term := range rule.Terms {
			assert.NotRegexp(t, termPattern(term.Term), text, "allergen %s term %q", allergen, term.Term)
		}
	}
}

func TestSubstitutionEngine_AlternativesNeverMatchAnyTerm(t *testing.T) {
	kb := NewKnowledgeBase()

	for _, owner := range kb.Allergens() {
		ownerRule, _ := kb.Allergen(owner)
		for _, termRule := range ownerRule.Terms {
			for _, alt := range termRule.Alternatives {
				assertNoTermSurvives(t, kb, alt, kb.Allergens())
			}
		}
	}
}

func TestSubstitutionEngine_MealPlansAreClean(t *testing.T) {
	kb := NewKnowledgeBase()
	engine := NewSubstitutionEngine(kb)
	meals := NewMealPlanGenerator(kb)

	allergySets := [][]string{
		{"dairy"},
		{"nuts", "peanuts"},
		{"fish", "shellfish", "eggs"},
		{"gluten", "soy", "sesame", "corn"},
		kb.Allergens(),
	}

	for _, category := range diet.Categories() {
		for seed := uint64(0); seed < 10; seed++ {
			for _, allergies := range allergySets {
				rng := NewPicker(seed)
				plan := meals.Generate(category, rng)

				filtered, _ := engine.FilterMealPlan(plan, allergies, rng)

				for _, slot := range diet.MealSlots() {
					for _, item := range filtered.Items(slot) {
						assertNoTermSurvives(t, kb, item, allergies)
					}
				}
			}
		}
	}
}

func TestSubstitutionEngine_WholeWordOnly(t *testing.T) {
	engine := NewSubstitutionEngine(NewKnowledgeBase())

	got, matches := engine.Apply("Buttermilk is not milk", []string{"dairy"}, NewPicker(1))

	assert.True(t, strings.HasPrefix(got, "Buttermilk is not "), got)
	require.Len(t, matches, 1)
	assert.Equal(t, "milk", matches[0].Term)
	assert.Equal(t, 1, matches[0].Count)
}

func TestSubstitutionEngine_CaseInsensitive(t *testing.T) {
	kb := NewKnowledgeBase()
	engine := NewSubstitutionEngine(kb)

	got, matches := engine.Apply("MILK and Milk and milk", []string{"dairy"}, NewPicker(1))

	assertNoTermSurvives(t, kb, got, []string{"dairy"})
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].Count)
}

func TestSubstitutionEngine_LongerTermsFirst(t *testing.T) {
	engine := NewSubstitutionEngine(NewKnowledgeBase())

	got, matches := engine.Apply("Toast with peanut butter", []string{"peanuts"}, NewPicker(1))

	assert.NotContains(t, strings.ToLower(got), "peanut")
	assert.Contains(t, got, "seed spread")
	require.Len(t, matches, 1)
	assert.Equal(t, "peanut butter", matches[0].Term)
}

func TestSubstitutionEngine_UnknownAllergenSkipped(t *testing.T) {
	engine := NewSubstitutionEngine(NewKnowledgeBase())

	got, matches := engine.Apply("Kiwi with yogurt", []string{"kiwi"}, NewPicker(1))

	assert.Equal(t, "Kiwi with yogurt", got)
	assert.Empty(t, matches)
	assert.False(t, engine.Known("kiwi"))
}

func TestSubstitutionEngine_FoldOrderIsCallerOrder(t *testing.T) {
	engine := NewSubstitutionEngine(NewKnowledgeBase())

	_, matches := engine.Apply("Salmon with sesame seeds over milk rice", []string{"sesame", "fish", "dairy"}, NewPicker(1))

	require.Len(t, matches, 3)
	assert.Equal(t, "sesame", matches[0].Allergen)
	assert.Equal(t, "fish", matches[1].Allergen)
	assert.Equal(t, "dairy", matches[2].Allergen)
}

func TestSubstitutionEngine_FilterMealPlanKeepsOriginal(t *testing.T) {
	engine := NewSubstitutionEngine(NewKnowledgeBase())
	plan := diet.MealPlan{
		Breakfast: []string{"Oatmeal with milk"},
		Lunch:     []string{"Quinoa salad"},
		Dinner:    []string{"Baked cod"},
		Snacks:    []string{"Apple"},
	}

	filtered, matches := engine.FilterMealPlan(plan, []string{"dairy"}, NewPicker(1))

	assert.Equal(t, "Oatmeal with milk", plan.Breakfast[0])
	assert.NotEqual(t, plan.Breakfast[0], filtered.Breakfast[0])
	assert.Equal(t, plan.Dinner, filtered.Dinner)
	assert.Len(t, matches, 1)
}

func TestSubstitutionEngine_MaskReport(t *testing.T) {
	engine := NewSubstitutionEngine(NewKnowledgeBase())
	matches := []Match{
		{Allergen: "dairy", Severity: "high", Term: "milk", Count: 2},
		{Allergen: "dairy", Severity: "high", Term: "milk", Count: 1},
		{Allergen: "dairy", Severity: "high", Term: "cottage cheese", Count: 1},
	}

	report := engine.MaskReport([]string{"dairy", "eggs", "kiwi"}, matches)

	assert.Equal(t, []string{
		"Milk recommendations [Removed - High Allergy Risk: dairy]",
		"Cottage Cheese recommendations [Removed - High Allergy Risk: dairy]",
		"Eggs [Screened - no matching items in this plan]",
		"Kiwi [Unrecognized allergen - verify ingredients manually]",
	}, report)
}

func TestSubstitutionEngine_MaskReportEmptyWithoutAllergies(t *testing.T) {
	engine := NewSubstitutionEngine(NewKnowledgeBase())

	report := engine.MaskReport(nil, nil)

	assert.NotNil(t, report)
	assert.Empty(t, report)
}
