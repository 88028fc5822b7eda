// Package recommendation implements the dietary recommendation pipeline:
// classification, template meal plans, allergy substitution, document
// assembly and the tiered fallback that wraps them.
package recommendation

import (
	"slices"
	"sort"

	"github.com/dietpartner/v2/internal/domain/diet"
)

// FoodGroup is one row of the daily food-group breakdown
type FoodGroup struct {
	Name     string
	Guidance string
	Items    []string
}

// MealTemplates holds the template strings of each meal slot
type MealTemplates struct {
	Breakfast []string
	Lunch     []string
	Dinner    []string
	Snacks    []string
}

// Slot returns the templates of a meal slot
func (m MealTemplates) Slot(slot diet.MealSlot) []string {
	switch slot {
	case diet.Breakfast:
		return m.Breakfast
	case diet.Lunch:
		return m.Lunch
	case diet.Dinner:
		return m.Dinner
	case diet.Snacks:
		return m.Snacks
	}
	return nil
}

func (m MealTemplates) empty() bool {
	return len(m.Breakfast)+len(m.Lunch)+len(m.Dinner)+len(m.Snacks) == 0
}

// ConditionKnowledge is the static guidance for one category. Empty fields
// are filled from GeneralWellness when the knowledge base is built.
type ConditionKnowledge struct {
	Category          diet.ConditionCategory
	Keywords          []string
	Principles        []string
	FocusAreas        []string
	FoodGroups        []FoodGroup
	Therapeutic       []string
	Avoid             []string
	Hydration         []string
	Timing            []string
	ShortTermBenefits []string
	LongTermBenefits  []string
	Monitoring        []string
	Supplements       []string
	Lifestyle         []string
	Timeline          diet.Timeline
	Meals             MealTemplates
}

// PlaceholderCatalog maps a placeholder token to its candidate foods
type PlaceholderCatalog map[string][]string

// TermRule maps one allergen-bearing term to its safe alternatives
type TermRule struct {
	Term         string
	Alternatives []string
}

// AllergenRule is the substitution entry of a single allergen
type AllergenRule struct {
	Allergen string
	Severity string
	Category string
	Terms    []TermRule
}

// KnowledgeBase is the immutable set of tables shared by every request.
// Accessors hand out copies so callers cannot mutate shared state.
type KnowledgeBase struct {
	conditions   map[diet.ConditionCategory]ConditionKnowledge
	placeholders PlaceholderCatalog
	allergens    map[string]AllergenRule
	allergenList []string
	sources      []diet.Source
}

// NewKnowledgeBase builds the knowledge base from the static tables
func NewKnowledgeBase() *KnowledgeBase {
	return newKnowledgeBase(conditionTable(), placeholderTable(), allergenTable(), sourceTable())
}

func newKnowledgeBase(conditions []ConditionKnowledge, placeholders PlaceholderCatalog, allergens []AllergenRule, sources []diet.Source) *KnowledgeBase {
	kb := &KnowledgeBase{
		conditions:   make(map[diet.ConditionCategory]ConditionKnowledge, len(conditions)),
		placeholders: make(PlaceholderCatalog, len(placeholders)),
		allergens:    make(map[string]AllergenRule, len(allergens)),
		sources:      slices.Clone(sources),
	}

	var general ConditionKnowledge
	for _, c := range conditions {
		if c.Category == diet.GeneralWellness {
			general = c
		}
	}
	for _, c := range conditions {
		kb.conditions[c.Category] = withFallback(c, general)
	}
	if _, ok := kb.conditions[diet.GeneralWellness]; !ok {
		kb.conditions[diet.GeneralWellness] = general
	}

	for token, candidates := range placeholders {
		kb.placeholders[token] = slices.Clone(candidates)
	}

	for _, rule := range allergens {
		terms := slices.Clone(rule.Terms)
		// Longer terms first so "peanut butter" is replaced before "peanut".
		sort.SliceStable(terms, func(i, j int) bool {
			return len(terms[i].Term) > len(terms[j].Term)
		})
		rule.Terms = terms
		kb.allergens[rule.Allergen] = rule
		kb.allergenList = append(kb.allergenList, rule.Allergen)
	}

	return kb
}

func withFallback(c, general ConditionKnowledge) ConditionKnowledge {
	pick := func(own, fallback []string) []string {
		if len(own) == 0 {
			return fallback
		}
		return own
	}
	c.Principles = pick(c.Principles, general.Principles)
	c.FocusAreas = pick(c.FocusAreas, general.FocusAreas)
	c.Therapeutic = pick(c.Therapeutic, general.Therapeutic)
	c.Avoid = pick(c.Avoid, general.Avoid)
	c.Hydration = pick(c.Hydration, general.Hydration)
	c.Timing = pick(c.Timing, general.Timing)
	c.ShortTermBenefits = pick(c.ShortTermBenefits, general.ShortTermBenefits)
	c.LongTermBenefits = pick(c.LongTermBenefits, general.LongTermBenefits)
	c.Monitoring = pick(c.Monitoring, general.Monitoring)
	c.Supplements = pick(c.Supplements, general.Supplements)
	c.Lifestyle = pick(c.Lifestyle, general.Lifestyle)
	c.Timeline.Immediate = pick(c.Timeline.Immediate, general.Timeline.Immediate)
	c.Timeline.ShortTerm = pick(c.Timeline.ShortTerm, general.Timeline.ShortTerm)
	c.Timeline.LongTerm = pick(c.Timeline.LongTerm, general.Timeline.LongTerm)
	if len(c.FoodGroups) == 0 {
		c.FoodGroups = general.FoodGroups
	}
	if c.Meals.empty() {
		c.Meals = general.Meals
	}
	return c
}

// Condition returns the resolved knowledge of a category, falling back to
// GeneralWellness for unknown categories.
func (kb *KnowledgeBase) Condition(category diet.ConditionCategory) ConditionKnowledge {
	c, ok := kb.conditions[category]
	if !ok {
		c = kb.conditions[diet.GeneralWellness]
	}
	return cloneCondition(c)
}

// Keywords returns the classification keywords of a category
func (kb *KnowledgeBase) Keywords(category diet.ConditionCategory) []string {
	return slices.Clone(kb.conditions[category].Keywords)
}

// Candidates returns the catalog entry of a placeholder token
func (kb *KnowledgeBase) Candidates(token string) ([]string, bool) {
	candidates, ok := kb.placeholders[token]
	if !ok || len(candidates) == 0 {
		return nil, false
	}
	return slices.Clone(candidates), true
}

// Allergen returns the substitution entry of an allergen
func (kb *KnowledgeBase) Allergen(name string) (AllergenRule, bool) {
	rule, ok := kb.allergens[name]
	if !ok {
		return AllergenRule{}, false
	}
	rule.Terms = slices.Clone(rule.Terms)
	return rule, true
}

// Allergens lists the supported allergen names in table order
func (kb *KnowledgeBase) Allergens() []string {
	return slices.Clone(kb.allergenList)
}

// Sources returns the reference catalog
func (kb *KnowledgeBase) Sources() []diet.Source {
	return slices.Clone(kb.sources)
}

// Stats summarises the table sizes for status reporting
type Stats struct {
	Conditions   int `json:"conditions"`
	Placeholders int `json:"placeholders"`
	Allergens    int `json:"allergens"`
	Sources      int `json:"sources"`
}

// Stats reports the size of each table
func (kb *KnowledgeBase) Stats() Stats {
	return Stats{
		Conditions:   len(kb.conditions),
		Placeholders: len(kb.placeholders),
		Allergens:    len(kb.allergens),
		Sources:      len(kb.sources),
	}
}

func cloneCondition(c ConditionKnowledge) ConditionKnowledge {
	c.Keywords = slices.Clone(c.Keywords)
	c.Principles = slices.Clone(c.Principles)
	c.FocusAreas = slices.Clone(c.FocusAreas)
	c.FoodGroups = slices.Clone(c.FoodGroups)
	c.Therapeutic = slices.Clone(c.Therapeutic)
	c.Avoid = slices.Clone(c.Avoid)
	c.Hydration = slices.Clone(c.Hydration)
	c.Timing = slices.Clone(c.Timing)
	c.ShortTermBenefits = slices.Clone(c.ShortTermBenefits)
	c.LongTermBenefits = slices.Clone(c.LongTermBenefits)
	c.Monitoring = slices.Clone(c.Monitoring)
	c.Supplements = slices.Clone(c.Supplements)
	c.Lifestyle = slices.Clone(c.Lifestyle)
	c.Timeline = diet.Timeline{
		Immediate: slices.Clone(c.Timeline.Immediate),
		ShortTerm: slices.Clone(c.Timeline.ShortTerm),
		LongTerm:  slices.Clone(c.Timeline.LongTerm),
	}
	c.Meals = MealTemplates{
		Breakfast: slices.Clone(c.Meals.Breakfast),
		Lunch:     slices.Clone(c.Meals.Lunch),
		Dinner:    slices.Clone(c.Meals.Dinner),
		Snacks:    slices.Clone(c.Meals.Snacks),
	}
	return c
}
