package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard/model"
)

func TestProcessBatchAttachesPredictions(t *testing.T) {
	n := NewNormalizer()

	// Engagements 100 and 10 give a batch average of 55.
	posts := n.ProcessBatch([]map[string]interface{}{
		{"caption": "big hit", "likes": 100},
		{"caption": "small one", "likes": 10},
	})
	require.Len(t, posts, 2)

	assert.Equal(t, model.TierHigh, posts[0].PredictedPerformance)
	assert.Equal(t, 95, posts[0].ConfidenceScore)
	assert.Equal(t, model.TierLow, posts[1].PredictedPerformance)
	assert.Equal(t, 95, posts[1].ConfidenceScore)
}

func TestProcessBatchEmpty(t *testing.T) {
	n := NewNormalizer()

	posts := n.ProcessBatch(nil)
	assert.Empty(t, posts)
}

func TestProcessBatchZeroAverage(t *testing.T) {
	n := NewNormalizer()

	posts := n.ProcessBatch([]map[string]interface{}{
		{"caption": "no engagement at all"},
	})
	require.Len(t, posts, 1)
	assert.Equal(t, model.TierMedium, posts[0].PredictedPerformance)
	assert.Equal(t, 50, posts[0].ConfidenceScore)
}

func TestRecomputeMetricsRestoresInvariant(t *testing.T) {
	n := NewNormalizer()

	post := model.Post{
		Caption:       "Having a great day! #sunshine #happy",
		Likes:         30,
		CommentsCount: 10,
		Shares:        5,
	}
	n.RecomputeMetrics(&post, 20)

	assert.Equal(t, 45, post.EngagementScore)
	assert.Equal(t, model.SentimentPositive, post.SentimentLabel)
	assert.Equal(t, model.EmotionHappy, post.EmotionLabel)
	// 45 >= 20*1.2 puts the post in the high tier.
	assert.Equal(t, model.TierHigh, post.PredictedPerformance)
	assert.Equal(t, 95, post.ConfidenceScore)
}
