// Package emotion classifies a post caption into one of four fixed emotion
// labels using keyword matching combined with the lexicon sentiment signal.
package emotion

import (
	"strings"

	"github.com/pulseboard/pulseboard/model"
	"github.com/pulseboard/pulseboard/sentiment"
)

// Keyword sets per scored category. Matching is by substring on the
// lower-cased text; each keyword present adds one to its category.
var emotionKeywords = map[string][]string{
	"happy": {
		"happy", "joy", "excited", "amazing", "wonderful", "great", "love",
		"awesome", "fantastic", "brilliant", "perfect", "best", "celebrate",
		"smile", "laugh", "😊", "😄", "😃", "🎉", "❤️",
	},
	"angry": {
		"angry", "mad", "furious", "hate", "terrible", "awful", "horrible",
		"disgusting", "annoyed", "frustrated", "rage", "outrage",
		"😠", "😡", "🤬",
	},
	"excited": {
		"excited", "thrilled", "pumped", "energetic", "hyped", "stoked",
		"ecstatic", "elated", "fire", "lit", "🔥", "⚡", "💥",
	},
	"neutral": {},
}

// categoryOrder fixes the iteration order used both for scoring and for
// tie-breaking: the first category to reach the maximum score wins.
var categoryOrder = []string{"happy", "angry", "excited", "neutral"}

var categoryLabels = map[string]model.EmotionLabel{
	"happy":   model.EmotionHappy,
	"angry":   model.EmotionAngry,
	"excited": model.EmotionExcited,
}

// Classifier detects the dominant emotion of a text. It is stateless and safe
// for concurrent use.
type Classifier struct {
	analyzer *sentiment.Analyzer
}

func NewClassifier(analyzer *sentiment.Analyzer) *Classifier {
	return &Classifier{analyzer: analyzer}
}

// Classify returns the dominant emotion label for text.
func (c *Classifier) Classify(text string) model.EmotionLabel {
	lower := strings.ToLower(text)

	scores := map[string]int{}
	for category, keywords := range emotionKeywords {
		for _, keyword := range keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				scores[category]++
			}
		}
	}

	// The sentiment signal supplements keyword hits, and guarantees at least
	// one category scores when no keyword matched.
	comparative := c.analyzer.Comparative(text)
	if comparative > 0.1 {
		scores["happy"] += 2
		scores["excited"]++
	} else if comparative < -0.1 {
		scores["angry"] += 2
	} else {
		scores["neutral"]++
	}

	maxScore := 0
	dominant := ""
	for _, category := range categoryOrder {
		if scores[category] > maxScore {
			maxScore = scores[category]
			dominant = category
		}
	}
	if maxScore == 0 {
		return model.EmotionNeutral
	}

	if label, ok := categoryLabels[dominant]; ok {
		return label
	}
	return model.EmotionNeutral
}
