package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulseboard/pulseboard/model"
)

func TestPredictZeroAverageFallback(t *testing.T) {
	for _, score := range []float64{0, 1, 100, 1e6} {
		p := Predict(score, 0)
		assert.Equal(t, model.TierMedium, p.Tier)
		assert.Equal(t, 50, p.Confidence)
	}
}

func TestPredictHighTier(t *testing.T) {
	// 100 >= 55*1.2, confidence 60 + ((100-55)/55)*100 caps at 95.
	p := Predict(100, 55)
	assert.Equal(t, model.TierHigh, p.Tier)
	assert.Equal(t, 95, p.Confidence)
}

func TestPredictLowTier(t *testing.T) {
	// 10 <= 55*0.8, confidence caps at 95 as well.
	p := Predict(10, 55)
	assert.Equal(t, model.TierLow, p.Tier)
	assert.Equal(t, 95, p.Confidence)
}

func TestPredictMediumTier(t *testing.T) {
	p := Predict(55, 55)
	assert.Equal(t, model.TierMedium, p.Tier)
	assert.Equal(t, 70, p.Confidence)

	// 10% deviation inside the medium band shaves the confidence.
	p = Predict(110, 100)
	assert.Equal(t, model.TierMedium, p.Tier)
	assert.Equal(t, 65, p.Confidence)
}

func TestPredictHighBoundaryConfidence(t *testing.T) {
	// Exactly at the high threshold the deviation is 20%, giving 80.
	p := Predict(120, 100)
	assert.Equal(t, model.TierHigh, p.Tier)
	assert.Equal(t, 80, p.Confidence)
}

func TestPredictMediumConfidenceFloor(t *testing.T) {
	// Confidence in the medium band never drops below 50.
	p := Predict(119, 100)
	assert.Equal(t, model.TierMedium, p.Tier)
	assert.True(t, p.Confidence >= 50)
}
