package recommendation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dietpartner/v2/internal/domain/diet"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// substitutionRule is one compiled (pattern, replacement pool) pair
type substitutionRule struct {
	term         string
	pattern      *regexp.Regexp
	alternatives []string
}

type allergenRules struct {
	allergen string
	severity string
	rules    []substitutionRule
}

// Match records a term that was found and replaced
type Match struct {
	Allergen string
	Severity string
	Term     string
	Count    int
}

// SubstitutionEngine rewrites text so no term of a declared allergen survives.
// Each allergen is swept once in caller order; the pass is not repeated to a
// fixed point, so an alternative is trusted not to contain its own
// allergen's terms. Allergens without an entry are skipped.
type SubstitutionEngine struct {
	allergens map[string]allergenRules
}

// NewSubstitutionEngine compiles the knowledge base's substitution table
func NewSubstitutionEngine(kb *KnowledgeBase) *SubstitutionEngine {
	e := &SubstitutionEngine{allergens: make(map[string]allergenRules)}
	for _, name := range kb.Allergens() {
		entry, _ := kb.Allergen(name)
		compiled := allergenRules{allergen: entry.Allergen, severity: entry.Severity}
		for _, t := range entry.Terms {
			if len(t.Alternatives) == 0 {
				continue
			}
			compiled.rules = append(compiled.rules, substitutionRule{
				term:         t.Term,
				pattern:      regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(t.Term) + `\b`),
				alternatives: t.Alternatives,
			})
		}
		e.allergens[entry.Allergen] = compiled
	}
	return e
}

// Known reports whether an allergen has a substitution entry
func (e *SubstitutionEngine) Known(allergen string) bool {
	_, ok := e.allergens[allergen]
	return ok
}

// Apply folds the allergens over the text in the given order
func (e *SubstitutionEngine) Apply(text string, allergies []string, rng Picker) (string, []Match) {
	var matches []Match
	for _, allergen := range allergies {
		entry, ok := e.allergens[allergen]
		if !ok {
			continue
		}
		for _, rule := range entry.rules {
			count := 0
			text = rule.pattern.ReplaceAllStringFunc(text, func(string) string {
				count++
				return pick(rng, rule.alternatives)
			})
			if count > 0 {
				matches = append(matches, Match{
					Allergen: entry.allergen,
					Severity: entry.severity,
					Term:     rule.term,
					Count:    count,
				})
			}
		}
	}
	return text, matches
}

// ApplyAll rewrites every line independently
func (e *SubstitutionEngine) ApplyAll(lines []string, allergies []string, rng Picker) ([]string, []Match) {
	if len(lines) == 0 {
		return lines, nil
	}
	var matches []Match
	out := make([]string, len(lines))
	for i, line := range lines {
		var m []Match
		out[i], m = e.Apply(line, allergies, rng)
		matches = append(matches, m...)
	}
	return out, matches
}

// FilterMealPlan rewrites every item of the plan
func (e *SubstitutionEngine) FilterMealPlan(plan diet.MealPlan, allergies []string, rng Picker) (diet.MealPlan, []Match) {
	var matches []Match
	for _, slot := range diet.MealSlots() {
		items, m := e.ApplyAll(plan.Items(slot), allergies, rng)
		plan = plan.WithItems(slot, items)
		matches = append(matches, m...)
	}
	return plan, matches
}

// A Caser is stateful, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// MaskReport describes what was removed for each declared allergen. It is
// non-empty whenever allergies is non-empty: allergens with no match and
// unknown allergens get an explicit entry of their own.
func (e *SubstitutionEngine) MaskReport(allergies []string, matches []Match) []string {
	if len(allergies) == 0 {
		return []string{}
	}

	byAllergen := make(map[string][]Match)
	for _, m := range matches {
		byAllergen[m.Allergen] = append(byAllergen[m.Allergen], m)
	}

	report := make([]string, 0, len(allergies))
	seen := make(map[string]struct{})
	for _, allergen := range allergies {
		if !e.Known(allergen) {
			report = append(report, fmt.Sprintf("%s [Unrecognized allergen - verify ingredients manually]", titleCase(allergen)))
			continue
		}
		found := byAllergen[allergen]
		if len(found) == 0 {
			report = append(report, fmt.Sprintf("%s [Screened - no matching items in this plan]", titleCase(allergen)))
			continue
		}
		for _, m := range found {
			key := m.Allergen + "\x00" + strings.ToLower(m.Term)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			report = append(report, fmt.Sprintf("%s recommendations [Removed - %s Allergy Risk: %s]",
				titleCase(m.Term), titleCase(m.Severity), m.Allergen))
		}
	}
	return report
}
