// Package predict assigns a heuristic performance tier to a post by comparing
// its engagement score against the cohort average of its dashboard.
package predict

import (
	"math"

	"github.com/pulseboard/pulseboard/model"
)

const (
	highFactor = 1.2
	lowFactor  = 0.8
)

// Prediction pairs a performance tier with a 0-100 confidence.
type Prediction struct {
	Tier       model.PerformanceTier
	Confidence int
}

// Predict classifies an engagement score relative to avgEngagement. A zero
// cohort average is the defined fallback, not an error: Medium at confidence
// 50.
func Predict(engagementScore float64, avgEngagement float64) Prediction {
	if avgEngagement == 0 {
		return Prediction{Tier: model.TierMedium, Confidence: 50}
	}

	thresholdHigh := avgEngagement * highFactor
	thresholdLow := avgEngagement * lowFactor

	var tier model.PerformanceTier
	var confidence float64

	switch {
	case engagementScore >= thresholdHigh:
		tier = model.TierHigh
		deviation := (engagementScore - avgEngagement) / avgEngagement
		confidence = clamp(60+deviation*100, 60, 95)
	case engagementScore <= thresholdLow:
		tier = model.TierLow
		deviation := (avgEngagement - engagementScore) / avgEngagement
		confidence = clamp(60+deviation*100, 60, 95)
	default:
		tier = model.TierMedium
		deviation := math.Abs(engagementScore-avgEngagement) / avgEngagement
		confidence = math.Max(70-deviation*50, 50)
	}

	return Prediction{Tier: tier, Confidence: int(math.Round(confidence))}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
