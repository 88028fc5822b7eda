package recommendation

import (
	"strings"

	"github.com/dietpartner/v2/internal/domain/diet"
)

// CategoryScore is the number of distinct keywords of a category found in a text
type CategoryScore struct {
	Category diet.ConditionCategory
	Score    int
}

// Classifier maps symptom text to a condition category by keyword counting
type Classifier struct {
	order    []diet.ConditionCategory
	keywords map[diet.ConditionCategory][]string
}

// NewClassifier creates a classifier over the knowledge base keywords
func NewClassifier(kb *KnowledgeBase) *Classifier {
	c := &Classifier{
		order:    diet.Categories(),
		keywords: make(map[diet.ConditionCategory][]string),
	}
	for _, category := range c.order {
		for _, kw := range kb.Keywords(category) {
			c.keywords[category] = append(c.keywords[category], strings.ToLower(kw))
		}
	}
	return c
}

// Scores returns the score of every category in declaration order. A keyword
// counts once however often it appears.
func (c *Classifier) Scores(text string) []CategoryScore {
	text = strings.ToLower(text)
	scores := make([]CategoryScore, 0, len(c.order))
	for _, category := range c.order {
		score := 0
		for _, kw := range c.keywords[category] {
			if strings.Contains(text, kw) {
				score++
			}
		}
		scores = append(scores, CategoryScore{Category: category, Score: score})
	}
	return scores
}

// Classify returns the category with the strictly highest score. Ties keep
// the category declared first; no match at all yields GeneralWellness.
func (c *Classifier) Classify(text string) diet.ConditionCategory {
	best := CategoryScore{Category: diet.GeneralWellness}
	for _, s := range c.Scores(text) {
		if s.Score > best.Score {
			best = s
		}
	}
	return best.Category
}
