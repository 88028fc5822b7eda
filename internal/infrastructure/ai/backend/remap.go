package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dietpartner/v2/internal/domain/diet"
)

// rawObject is a decoded JSON object whose fields are looked up by any of
// their accepted names.
type rawObject map[string]json.RawMessage

// get decodes the first present, non-null field among names into dst. It
// reports whether a field was found.
func (o rawObject) get(dst interface{}, names ...string) (bool, error) {
	for _, name := range names {
		raw, ok := o[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return true, fmt.Errorf("%w: field %q: %v", ErrMalformedBody, name, err)
		}
		return true, nil
	}
	return false, nil
}

type remoteSource struct {
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Type    string   `json:"type"`
	Summary string   `json:"summary"`
	Camel   *float64 `json:"relevanceScore"`
	Snake   *float64 `json:"relevance_score"`
}

func (s remoteSource) toSource() diet.Source {
	src := diet.Source{Title: s.Title, URL: s.URL, Type: s.Type, Summary: s.Summary}
	switch {
	case s.Camel != nil:
		src.RelevanceScore = *s.Camel
	case s.Snake != nil:
		src.RelevanceScore = *s.Snake
	}
	return src
}

// The remote service may emit ISO timestamps without a zone
var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02 15:04:05"}

func parseTimestamp(value string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// decodeDocument validates a remote body and maps both the snake_case and
// camelCase field conventions into a document. The narrative is required.
func decodeDocument(body []byte) (*diet.RecommendationDocument, error) {
	var obj rawObject
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: body is not an object", ErrMalformedBody)
	}

	doc := &diet.RecommendationDocument{}

	found, err := obj.get(&doc.NarrativeMarkdown, "narrativeMarkdown", "recommendation", "narrative_markdown")
	if err != nil {
		return nil, err
	}
	if !found || strings.TrimSpace(doc.NarrativeMarkdown) == "" {
		return nil, ErrMissingNarrative
	}

	var sources []remoteSource
	var timeline rawObject
	var plan diet.MealPlan
	var timestamp string

	fields := []struct {
		dst   interface{}
		names []string
	}{
		{&doc.ID, []string{"id"}},
		{&sources, []string{"sources"}},
		{&doc.AllergyMasked, []string{"allergyMasked", "allergy_masked"}},
		{&doc.NutritionalHighlights, []string{"nutritionalHighlights", "nutritional_highlights"}},
		{&doc.SafetyScore, []string{"safetyScore", "safety_score"}},
		{&doc.Confidence, []string{"confidence"}},
		{&doc.UseCase, []string{"useCase", "use_case"}},
		{&timeline, []string{"timeline", "specificRecommendations", "specific_recommendations"}},
		{&plan, []string{"mealPlan", "meal_plan"}},
		{&doc.SupplementSuggestions, []string{"supplementSuggestions", "supplement_suggestions"}},
		{&doc.LifestyleRecommendations, []string{"lifestyleRecommendations", "lifestyle_recommendations"}},
		{&timestamp, []string{"timestamp"}},
		{&doc.Version, []string{"version"}},
		{&doc.AnalysisType, []string{"analysisType", "analysis_type"}},
	}
	for _, f := range fields {
		if _, err := obj.get(f.dst, f.names...); err != nil {
			return nil, err
		}
	}

	for _, s := range sources {
		doc.Sources = append(doc.Sources, s.toSource())
	}
	doc.MealPlan = plan
	if timestamp != "" {
		doc.Timestamp = parseTimestamp(timestamp)
	}

	timelineFields := []struct {
		dst   *[]string
		names []string
	}{
		{&doc.Timeline.Immediate, []string{"immediate"}},
		{&doc.Timeline.ShortTerm, []string{"shortTerm", "short_term"}},
		{&doc.Timeline.LongTerm, []string{"longTerm", "long_term"}},
	}
	for _, f := range timelineFields {
		if _, err := timeline.get(f.dst, f.names...); err != nil {
			return nil, err
		}
	}

	return doc, nil
}
