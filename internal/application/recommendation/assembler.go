package recommendation

import (
	"fmt"
	"strings"
	"time"

	"github.com/dietpartner/v2/internal/domain/diet"
)

// Scores of locally generated documents. They are fixed values, not a
// measurement of how complete the filtering was.
const (
	SafetyScoreNoAllergies   = 99
	SafetyScoreWithAllergies = 96
	LocalConfidence          = 80
)

// Assembler merges classification, knowledge prose and the filtered meal
// plan into a recommendation document.
type Assembler struct {
	kb  *KnowledgeBase
	now func() time.Time
}

// NewAssembler creates an assembler. A nil clock uses time.Now.
func NewAssembler(kb *KnowledgeBase, now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{kb: kb, now: now}
}

// SafetyScore returns the fixed safety score for an allergy set
func SafetyScore(allergies []string) int {
	if len(allergies) > 0 {
		return SafetyScoreWithAllergies
	}
	return SafetyScoreNoAllergies
}

// TextFilter rewrites a line of generated prose
type TextFilter func(string) string

// Assemble builds the document. It never fails for a valid profile. The
// filter is applied to knowledge prose only; the echoed symptoms and the
// allergy notes are written as given. A nil filter leaves text unchanged.
func (a *Assembler) Assemble(category diet.ConditionCategory, profile diet.SymptomProfile, plan diet.MealPlan, filter TextFilter) diet.RecommendationDocument {
	if filter == nil {
		filter = func(s string) string { return s }
	}
	knowledge := a.kb.Condition(category)
	now := a.now().UTC()
	allergies := profile.Allergies()

	return diet.RecommendationDocument{
		NarrativeMarkdown: a.narrative(category, knowledge, profile.Text(), allergies, now, filter),
		Sources:           a.kb.Sources(),
		AllergyMasked:     []string{},
		SafetyScore:       SafetyScore(allergies),
		Confidence:        LocalConfidence,
		UseCase:           category.String(),
		Timeline: diet.Timeline{
			Immediate: filterAll(knowledge.Timeline.Immediate, filter),
			ShortTerm: filterAll(knowledge.Timeline.ShortTerm, filter),
			LongTerm:  filterAll(knowledge.Timeline.LongTerm, filter),
		},
		MealPlan:                 plan,
		SupplementSuggestions:    filterAll(knowledge.Supplements, filter),
		LifestyleRecommendations: filterAll(knowledge.Lifestyle, filter),
		Timestamp:                now,
		Version:                  diet.DocumentVersion,
		AnalysisType:             diet.AnalysisType,
	}
}

func filterAll(lines []string, filter TextFilter) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = filter(l)
	}
	return out
}

func (a *Assembler) narrative(category diet.ConditionCategory, k ConditionKnowledge, symptoms string, allergies []string, now time.Time, filter TextFilter) string {
	var b strings.Builder
	label := category.String()
	section := func(heading string, items []string) {
		writeSection(&b, heading, filterAll(items, filter))
	}

	b.WriteString("# Comprehensive Dietary Analysis & Recommendations\n\n")

	b.WriteString("## Health Profile Analysis\n")
	fmt.Fprintf(&b, "**Primary Concern:** %s  \n", label)
	fmt.Fprintf(&b, "**Symptoms:** %s  \n", symptoms)
	fmt.Fprintf(&b, "**Analysis Date:** %s\n\n", now.Format("January 02, 2006"))

	section("## Evidence-Based Guidance", k.Principles)
	section(fmt.Sprintf("## Core Dietary Principles for %s\n\n### Primary Nutritional Focus", label), k.FocusAreas)

	b.WriteString("### Daily Nutritional Framework\n")
	for _, g := range k.FoodGroups {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", g.Name, g.Guidance, filter(strings.Join(g.Items, ", ")))
	}
	b.WriteString("\n")

	section("## Therapeutic Foods", k.Therapeutic)
	section("## Foods to Minimize or Avoid", k.Avoid)

	b.WriteString("## Allergy Notes\n")
	if len(allergies) == 0 {
		b.WriteString("- No food allergies declared.\n\n")
	} else {
		fmt.Fprintf(&b, "- Declared allergies: %s\n", strings.Join(allergies, ", "))
		b.WriteString("- Meal plan items and guidance containing these allergens were replaced with safe alternatives.\n")
		b.WriteString("- Always read ingredient labels; cross-contamination is not covered by this plan.\n\n")
	}

	section("## Hydration & Timing\n\n### Hydration", k.Hydration)
	section("### Meal Timing", k.Timing)

	b.WriteString("## Expected Health Outcomes\n\n")
	section("### Short-term Benefits (2-4 weeks)", k.ShortTermBenefits)
	section("### Long-term Benefits (2-6 months)", k.LongTermBenefits)

	section("## Monitoring & Adjustments", k.Monitoring)

	fmt.Fprintf(&b, "**Medical Note**: This plan is designed to complement medical treatment for %s. "+
		"Always coordinate dietary changes with your healthcare provider, especially if you take medications "+
		"or have multiple health conditions.\n", strings.ToLower(label))

	return b.String()
}

func writeSection(b *strings.Builder, heading string, items []string) {
	b.WriteString(heading)
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
