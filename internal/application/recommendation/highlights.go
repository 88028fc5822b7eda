package recommendation

import "strings"

const maxHighlights = 6

type highlightRule struct {
	keywords  []string
	highlight string
}

var highlightRules = []highlightRule{
	{[]string{"omega-3"}, "Rich in omega-3 fatty acids for cardiovascular and brain health"},
	{[]string{"antioxidant", "berries"}, "High in antioxidants to combat oxidative stress and inflammation"},
	{[]string{"fiber"}, "Adequate fiber for digestive health and metabolic function"},
	{[]string{"anti-inflammatory"}, "Anti-inflammatory properties to reduce chronic inflammation"},
	{[]string{"protein"}, "Complete protein profile for muscle maintenance and repair"},
	{[]string{"vitamin", "mineral"}, "Comprehensive vitamin and mineral profile for optimal health"},
	{[]string{"probiotic", "gut"}, "Gut health support through prebiotic and probiotic foods"},
}

var defaultHighlights = []string{
	"Multi-source evidence-based nutritional approach",
	"Comprehensive macro and micronutrient optimization",
	"Therapeutic food combinations for symptom management",
	"Sustainable dietary pattern for long-term health",
	"Personalized recommendations based on individual symptoms",
}

// Highlights extracts nutritional highlights from a narrative
func Highlights(narrative string) []string {
	text := strings.ToLower(narrative)
	var out []string
	for _, rule := range highlightRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				out = append(out, rule.highlight)
				break
			}
		}
	}
	if len(out) == 0 {
		out = append(out, defaultHighlights...)
	}
	if len(out) > maxHighlights {
		out = out[:maxHighlights]
	}
	return out
}
