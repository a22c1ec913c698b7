package model

import "fmt"

// SentimentLabel buckets a comparative sentiment score into one of the three
// fixed labels surfaced to the dashboard.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

var AllSentimentLabel = []SentimentLabel{
	SentimentPositive,
	SentimentNeutral,
	SentimentNegative,
}

func (e SentimentLabel) IsValid() bool {
	switch e {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

func (e SentimentLabel) String() string {
	return string(e)
}

// EmotionLabel is the dominant emotion detected in a post's caption.
type EmotionLabel string

const (
	EmotionHappy   EmotionLabel = "Happy"
	EmotionAngry   EmotionLabel = "Angry"
	EmotionExcited EmotionLabel = "Excited"
	EmotionNeutral EmotionLabel = "Neutral"
)

var AllEmotionLabel = []EmotionLabel{
	EmotionHappy,
	EmotionAngry,
	EmotionExcited,
	EmotionNeutral,
}

func (e EmotionLabel) IsValid() bool {
	switch e {
	case EmotionHappy, EmotionAngry, EmotionExcited, EmotionNeutral:
		return true
	}
	return false
}

func (e EmotionLabel) String() string {
	return string(e)
}

// PerformanceTier is the predicted performance classification of a post
// relative to its dashboard's cohort average engagement.
type PerformanceTier string

const (
	TierHigh   PerformanceTier = "High"
	TierMedium PerformanceTier = "Medium"
	TierLow    PerformanceTier = "Low"
)

var AllPerformanceTier = []PerformanceTier{
	TierHigh,
	TierMedium,
	TierLow,
}

func (e PerformanceTier) IsValid() bool {
	switch e {
	case TierHigh, TierMedium, TierLow:
		return true
	}
	return false
}

func (e PerformanceTier) String() string {
	return string(e)
}

// EngagementTrend is the direction of engagement change between the older and
// newer half of a post collection.
type EngagementTrend string

const (
	TrendUp      EngagementTrend = "up"
	TrendDown    EngagementTrend = "down"
	TrendNeutral EngagementTrend = "neutral"
)

func (e EngagementTrend) IsValid() bool {
	switch e {
	case TrendUp, TrendDown, TrendNeutral:
		return true
	}
	return false
}

func (e EngagementTrend) String() string {
	return string(e)
}

// ParseSentimentLabel converts a raw query string into a SentimentLabel,
// returning an error on anything outside the fixed label set.
func ParseSentimentLabel(s string) (SentimentLabel, error) {
	l := SentimentLabel(s)
	if !l.IsValid() {
		return "", fmt.Errorf("%s is not a valid SentimentLabel", s)
	}
	return l, nil
}
