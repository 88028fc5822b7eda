package recommendation

import (
	"regexp"
	"strings"

	"github.com/dietpartner/v2/internal/domain/diet"
)

var placeholderPattern = regexp.MustCompile(`\[([a-z_]+)\]`)

// MealPlanGenerator expands a category's meal templates into concrete items
type MealPlanGenerator struct {
	kb *KnowledgeBase
}

// NewMealPlanGenerator creates a generator over the knowledge base
func NewMealPlanGenerator(kb *KnowledgeBase) *MealPlanGenerator {
	return &MealPlanGenerator{kb: kb}
}

// Generate builds a plan with one item per template of every slot
func (g *MealPlanGenerator) Generate(category diet.ConditionCategory, rng Picker) diet.MealPlan {
	templates := g.kb.Condition(category).Meals

	var plan diet.MealPlan
	for _, slot := range diet.MealSlots() {
		slotTemplates := templates.Slot(slot)
		items := make([]string, 0, len(slotTemplates))
		for _, t := range slotTemplates {
			items = append(items, g.Expand(t, rng))
		}
		plan = plan.WithItems(slot, items)
	}
	return plan
}

// Expand substitutes every placeholder token left to right. Tokens without a
// catalog entry are kept as literal text and scanning continues after them.
func (g *MealPlanGenerator) Expand(template string, rng Picker) string {
	var b strings.Builder
	rest := template
	for {
		loc := placeholderPattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:loc[0]])
		token := rest[loc[2]:loc[3]]
		if candidates, ok := g.kb.Candidates(token); ok {
			b.WriteString(pick(rng, candidates))
		} else {
			b.WriteString(rest[loc[0]:loc[1]])
		}
		rest = rest[loc[1]:]
	}
}
