package recommendation

import (
	"errors"
	"time"

	"github.com/dietpartner/v2/internal/domain/diet"
	"github.com/google/uuid"
)

// ErrEmptyMealPlan is returned when a category has no meal templates
var ErrEmptyMealPlan = errors.New("knowledge base produced an empty meal plan")

// DocumentGenerator produces a document for a profile without network access
type DocumentGenerator interface {
	Generate(profile diet.SymptomProfile, rng Picker) (diet.RecommendationDocument, error)
}

// LocalGenerator runs classification, meal planning, allergy substitution
// and assembly for one profile.
type LocalGenerator struct {
	classifier *Classifier
	meals      *MealPlanGenerator
	engine     *SubstitutionEngine
	assembler  *Assembler
}

// NewLocalGenerator wires the pipeline stages over one knowledge base
func NewLocalGenerator(kb *KnowledgeBase, now func() time.Time) *LocalGenerator {
	return &LocalGenerator{
		classifier: NewClassifier(kb),
		meals:      NewMealPlanGenerator(kb),
		engine:     NewSubstitutionEngine(kb),
		assembler:  NewAssembler(kb, now),
	}
}

// Generate builds a filtered recommendation document
func (g *LocalGenerator) Generate(profile diet.SymptomProfile, rng Picker) (diet.RecommendationDocument, error) {
	category := g.classifier.Classify(profile.Text())
	allergies := profile.Allergies()

	plan := g.meals.Generate(category, rng)
	if len(plan.Breakfast)+len(plan.Lunch)+len(plan.Dinner)+len(plan.Snacks) == 0 {
		return diet.RecommendationDocument{}, ErrEmptyMealPlan
	}
	plan, matches := g.engine.FilterMealPlan(plan, allergies, rng)

	filter := func(text string) string {
		out, m := g.engine.Apply(text, allergies, rng)
		matches = append(matches, m...)
		return out
	}
	doc := g.assembler.Assemble(category, profile, plan, filter)

	doc.AllergyMasked = g.engine.MaskReport(allergies, matches)
	doc.NutritionalHighlights = Highlights(doc.NarrativeMarkdown)
	doc.ID = NewRecommendationID()

	return doc, nil
}

// NewRecommendationID returns a short identifier for a document
func NewRecommendationID() string {
	return uuid.NewString()[:8]
}
