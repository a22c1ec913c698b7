package ingest

import (
	"github.com/pulseboard/pulseboard/model"
	"github.com/pulseboard/pulseboard/predict"
	"github.com/pulseboard/pulseboard/sentiment"
)

// ProcessBatch normalizes a batch of raw rows and attaches performance
// predictions computed against the batch's own average engagement.
func (n *Normalizer) ProcessBatch(rows []map[string]interface{}) []NormalizedPost {
	posts := make([]NormalizedPost, 0, len(rows))
	total := 0
	for _, row := range rows {
		post := n.NormalizeRow(row)
		total += post.EngagementScore
		posts = append(posts, post)
	}

	avg := 0.0
	if len(posts) > 0 {
		avg = float64(total) / float64(len(posts))
	}

	for i := range posts {
		prediction := predict.Predict(float64(posts[i].EngagementScore), avg)
		posts[i].PredictedPerformance = prediction.Tier
		posts[i].ConfidenceScore = prediction.Confidence
	}
	return posts
}

// RecomputeMetrics rederives every metric of a stored post after its raw
// counters changed: engagement, sentiment, emotion, and the performance
// prediction against the dashboard-wide cohort average.
func (n *Normalizer) RecomputeMetrics(post *model.Post, avgEngagement float64) {
	post.EngagementScore = post.Likes + post.CommentsCount + post.Shares

	score := n.analyzer.Comparative(post.Caption)
	post.SentimentScore = score
	post.SentimentLabel = sentiment.LabelFor(score)
	post.EmotionLabel = n.classifier.Classify(post.Caption)

	prediction := predict.Predict(float64(post.EngagementScore), avgEngagement)
	post.PredictedPerformance = prediction.Tier
	post.ConfidenceScore = prediction.Confidence
}
