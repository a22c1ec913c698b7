package analytics

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard/model"
)

func makePost(id string, engagement int, ts time.Time) model.Post {
	return model.Post{
		PostID:          id,
		Likes:           engagement,
		Timestamp:       ts,
		SentimentLabel:  model.SentimentNeutral,
		EmotionLabel:    model.EmotionNeutral,
		EngagementScore: engagement,
	}
}

// newestFirst mimics the storage layer, which hands posts to the aggregator
// sorted descending by timestamp.
func newestFirst(posts []model.Post) []model.Post {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp.After(posts[j].Timestamp)
	})
	return posts
}

func TestAggregateEmptyCollection(t *testing.T) {
	summary := Aggregate(nil)

	assert.Equal(t, 0, summary.TotalPosts)
	assert.Equal(t, 0, summary.TotalLikes)
	assert.Equal(t, 0, summary.AvgEngagement)
	assert.Equal(t, map[model.SentimentLabel]int{
		model.SentimentPositive: 0,
		model.SentimentNeutral:  0,
		model.SentimentNegative: 0,
	}, summary.SentimentDistribution)
	assert.Equal(t, map[model.EmotionLabel]int{
		model.EmotionHappy:   0,
		model.EmotionAngry:   0,
		model.EmotionExcited: 0,
		model.EmotionNeutral: 0,
	}, summary.EmotionDistribution)
	assert.Empty(t, summary.EngagementOverTime)
	assert.Empty(t, summary.HashtagFrequency)
	assert.Nil(t, summary.BestPerformingPost)
	assert.Equal(t, model.TrendNeutral, summary.EngagementTrend)
}

func TestAggregateBasicStats(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	posts := newestFirst([]model.Post{
		makePost("a", 10, base),
		makePost("b", 21, base.Add(24*time.Hour)),
	})

	summary := Aggregate(posts)
	assert.Equal(t, 2, summary.TotalPosts)
	assert.Equal(t, 31, summary.TotalLikes)
	// Mean 15.5 rounds up.
	assert.Equal(t, 16, summary.AvgEngagement)
}

func TestAggregateDistributions(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	posts := []model.Post{
		{SentimentLabel: model.SentimentPositive, EmotionLabel: model.EmotionHappy, Timestamp: base},
		{SentimentLabel: model.SentimentPositive, EmotionLabel: model.EmotionExcited, Timestamp: base},
		{SentimentLabel: model.SentimentNegative, EmotionLabel: model.EmotionAngry, Timestamp: base},
		// A missing emotion label counts as Neutral.
		{SentimentLabel: model.SentimentNeutral, Timestamp: base},
	}

	summary := Aggregate(posts)
	assert.Equal(t, 2, summary.SentimentDistribution[model.SentimentPositive])
	assert.Equal(t, 1, summary.SentimentDistribution[model.SentimentNeutral])
	assert.Equal(t, 1, summary.SentimentDistribution[model.SentimentNegative])
	assert.Equal(t, 1, summary.EmotionDistribution[model.EmotionHappy])
	assert.Equal(t, 1, summary.EmotionDistribution[model.EmotionExcited])
	assert.Equal(t, 1, summary.EmotionDistribution[model.EmotionAngry])
	assert.Equal(t, 1, summary.EmotionDistribution[model.EmotionNeutral])
}

func TestAggregateEngagementOverTime(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	posts := newestFirst([]model.Post{
		makePost("a", 10, day1),
		makePost("b", 20, day1.Add(2*time.Hour)),
		makePost("c", 40, day2),
	})

	summary := Aggregate(posts)
	require.Len(t, summary.EngagementOverTime, 2)
	// Encounter order follows the newest-first input.
	assert.Equal(t, TimePoint{Date: "Mar 2", Engagement: 40}, summary.EngagementOverTime[0])
	assert.Equal(t, TimePoint{Date: "Mar 1", Engagement: 15}, summary.EngagementOverTime[1])
}

func TestAggregateEngagementOverTimeKeepsLastTwentyGroups(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var posts []model.Post
	for i := 0; i < 25; i++ {
		posts = append(posts, makePost("p", 10, base.AddDate(0, 0, i)))
	}
	posts = newestFirst(posts)

	summary := Aggregate(posts)
	require.Len(t, summary.EngagementOverTime, 20)
	// Newest-first encounter order means the trailing window ends at the
	// oldest date.
	assert.Equal(t, "Jan 20", summary.EngagementOverTime[0].Date)
	assert.Equal(t, "Jan 1", summary.EngagementOverTime[19].Date)
}

func TestAggregateHashtagFrequency(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	posts := []model.Post{
		{Caption: "launch day #Go #release", EngagementScore: 10, Timestamp: base},
		{Caption: "still going #go", EngagementScore: 20, Timestamp: base},
		{Caption: "#GO #go again", EngagementScore: 30, Timestamp: base},
		{Caption: "no tags here", EngagementScore: 100, Timestamp: base},
		{Caption: "plain post", EngagementScore: 100, Timestamp: base},
	}

	summary := Aggregate(posts)
	require.NotEmpty(t, summary.HashtagFrequency)
	top := summary.HashtagFrequency[0]
	// #go appears in 3 of 5 posts with engagements 10, 20 and 30; repeats
	// within one caption count once.
	assert.Equal(t, "#go", top.Hashtag)
	assert.Equal(t, 3, top.Count)
	assert.Equal(t, 20, top.AvgEngagement)

	assert.Equal(t, HashtagStat{Hashtag: "#release", Count: 1, AvgEngagement: 10}, summary.HashtagFrequency[1])
}

func TestAggregateHashtagTopTen(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	caption := "#a #b #c #d #e #f #g #h #i #j #k #l"
	summary := Aggregate([]model.Post{{Caption: caption, Timestamp: base}})
	assert.Len(t, summary.HashtagFrequency, 10)
}

func TestAggregateBestPerformingPost(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	posts := []model.Post{
		{PostID: "first", Caption: "one", EngagementScore: 50, Timestamp: base},
		{PostID: "tied", Caption: "two", EngagementScore: 50, Timestamp: base},
		{PostID: "small", Caption: "three", EngagementScore: 5, Timestamp: base},
	}

	summary := Aggregate(posts)
	require.NotNil(t, summary.BestPerformingPost)
	// Ties resolve to the first-encountered post.
	assert.Equal(t, "first", summary.BestPerformingPost.PostID)
	assert.Equal(t, "one", summary.BestPerformingPost.Caption)
	assert.Equal(t, 50, summary.BestPerformingPost.EngagementScore)
}

func TestEngagementTrend(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	up := []model.Post{
		makePost("a", 10, base),
		makePost("b", 10, base.Add(1*time.Hour)),
		makePost("c", 100, base.Add(2*time.Hour)),
		makePost("d", 100, base.Add(3*time.Hour)),
	}
	assert.Equal(t, model.TrendUp, EngagementTrend(up))

	down := []model.Post{
		makePost("a", 100, base),
		makePost("b", 100, base.Add(1*time.Hour)),
		makePost("c", 10, base.Add(2*time.Hour)),
		makePost("d", 10, base.Add(3*time.Hour)),
	}
	assert.Equal(t, model.TrendDown, EngagementTrend(down))

	flat := []model.Post{
		makePost("a", 50, base),
		makePost("b", 50, base.Add(1*time.Hour)),
	}
	assert.Equal(t, model.TrendNeutral, EngagementTrend(flat))

	// A single post leaves the older half empty, which counts as mean 0.
	single := []model.Post{makePost("a", 50, base)}
	assert.Equal(t, model.TrendUp, EngagementTrend(single))
}
