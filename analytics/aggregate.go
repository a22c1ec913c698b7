// Package analytics rolls collections of canonical posts up into the summary
// payloads and insight cards served to the dashboard UI.
package analytics

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/pulseboard/pulseboard/model"
)

const (
	maxTimeSeriesPoints = 20
	maxHashtagEntries   = 10

	trendUpFactor   = 1.1
	trendDownFactor = 0.9
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

// TimePoint is the mean engagement of all posts sharing one calendar date.
type TimePoint struct {
	Date       string `json:"date"`
	Engagement int    `json:"engagement"`
}

// HashtagStat tallies one hashtag across a post collection.
type HashtagStat struct {
	Hashtag       string `json:"hashtag"`
	Count         int    `json:"count"`
	AvgEngagement int    `json:"avgEngagement"`
}

// BestPost is the reduced shape of the top post by engagement.
type BestPost struct {
	PostID          string `json:"postId"`
	Caption         string `json:"caption"`
	EngagementScore int    `json:"engagementScore"`
}

// Summary is the full analytics payload for one filtered post collection.
type Summary struct {
	TotalPosts            int                          `json:"totalPosts"`
	TotalLikes            int                          `json:"totalLikes"`
	AvgEngagement         int                          `json:"avgEngagement"`
	SentimentDistribution map[model.SentimentLabel]int `json:"sentimentDistribution"`
	EmotionDistribution   map[model.EmotionLabel]int   `json:"emotionDistribution"`
	EngagementOverTime    []TimePoint                  `json:"engagementOverTime"`
	HashtagFrequency      []HashtagStat                `json:"hashtagFrequency"`
	BestPerformingPost    *BestPost                    `json:"bestPerformingPost"`
	EngagementTrend       model.EngagementTrend        `json:"engagementTrend"`
}

// Aggregate computes the analytics summary over posts. Callers pass the
// collection sorted descending by timestamp; the time series preserves that
// encounter order. An empty collection yields the all-zero payload with a
// neutral trend.
func Aggregate(posts []model.Post) Summary {
	summary := Summary{
		SentimentDistribution: emptySentimentDistribution(),
		EmotionDistribution:   emptyEmotionDistribution(),
		EngagementOverTime:    []TimePoint{},
		HashtagFrequency:      []HashtagStat{},
		EngagementTrend:       model.TrendNeutral,
	}
	if len(posts) == 0 {
		return summary
	}

	summary.TotalPosts = len(posts)
	totalEngagement := 0
	for _, post := range posts {
		summary.TotalLikes += post.Likes
		totalEngagement += post.EngagementScore

		summary.SentimentDistribution[post.SentimentLabel]++

		emotionLabel := post.EmotionLabel
		if !emotionLabel.IsValid() {
			emotionLabel = model.EmotionNeutral
		}
		summary.EmotionDistribution[emotionLabel]++
	}
	summary.AvgEngagement = roundMean(totalEngagement, len(posts))

	summary.EngagementOverTime = engagementOverTime(posts)
	summary.HashtagFrequency = hashtagFrequency(posts)

	best := bestPerformingPost(posts)
	summary.BestPerformingPost = &BestPost{
		PostID:          best.PostID,
		Caption:         best.Caption,
		EngagementScore: best.EngagementScore,
	}
	summary.EngagementTrend = EngagementTrend(posts)

	return summary
}

func emptySentimentDistribution() map[model.SentimentLabel]int {
	dist := make(map[model.SentimentLabel]int, len(model.AllSentimentLabel))
	for _, label := range model.AllSentimentLabel {
		dist[label] = 0
	}
	return dist
}

func emptyEmotionDistribution() map[model.EmotionLabel]int {
	dist := make(map[model.EmotionLabel]int, len(model.AllEmotionLabel))
	for _, label := range model.AllEmotionLabel {
		dist[label] = 0
	}
	return dist
}

// engagementOverTime groups posts by calendar date in encounter order and
// keeps the trailing window of up to 20 date groups.
func engagementOverTime(posts []model.Post) []TimePoint {
	type bucket struct {
		engagement int
		count      int
	}
	buckets := map[string]*bucket{}
	order := []string{}
	for _, post := range posts {
		date := post.Timestamp.Format("Jan 2")
		b, ok := buckets[date]
		if !ok {
			b = &bucket{}
			buckets[date] = b
			order = append(order, date)
		}
		b.engagement += post.EngagementScore
		b.count++
	}

	if len(order) > maxTimeSeriesPoints {
		order = order[len(order)-maxTimeSeriesPoints:]
	}

	points := make([]TimePoint, 0, len(order))
	for _, date := range order {
		b := buckets[date]
		points = append(points, TimePoint{Date: date, Engagement: roundMean(b.engagement, b.count)})
	}
	return points
}

// hashtagFrequency tallies #word tokens, counting each hashtag at most once
// per post (case-insensitively), and returns the top 10 by occurrence count.
func hashtagFrequency(posts []model.Post) []HashtagStat {
	type tally struct {
		count           int
		totalEngagement int
	}
	tallies := map[string]*tally{}
	order := []string{}
	for _, post := range posts {
		for _, hashtag := range uniqueHashtags(post.Caption) {
			t, ok := tallies[hashtag]
			if !ok {
				t = &tally{}
				tallies[hashtag] = t
				order = append(order, hashtag)
			}
			t.count++
			t.totalEngagement += post.EngagementScore
		}
	}

	stats := make([]HashtagStat, 0, len(order))
	for _, hashtag := range order {
		t := tallies[hashtag]
		stats = append(stats, HashtagStat{
			Hashtag:       hashtag,
			Count:         t.count,
			AvgEngagement: roundMean(t.totalEngagement, t.count),
		})
	}
	// Stable sort keeps the encounter order among equal counts, making the
	// ranking deterministic.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	if len(stats) > maxHashtagEntries {
		stats = stats[:maxHashtagEntries]
	}
	return stats
}

// uniqueHashtags extracts the lower-cased hashtags of a caption, each at most
// once.
func uniqueHashtags(caption string) []string {
	seen := map[string]bool{}
	var hashtags []string
	for _, match := range hashtagPattern.FindAllString(caption, -1) {
		hashtag := strings.ToLower(match)
		if !seen[hashtag] {
			seen[hashtag] = true
			hashtags = append(hashtags, hashtag)
		}
	}
	return hashtags
}

// bestPerformingPost returns the post with maximum engagement; ties go to the
// first-encountered post.
func bestPerformingPost(posts []model.Post) model.Post {
	best := posts[0]
	for _, post := range posts[1:] {
		if post.EngagementScore > best.EngagementScore {
			best = post
		}
	}
	return best
}

// EngagementTrend splits posts into an older and a newer half by timestamp
// and compares the halves' mean engagement: up above a 10% gain, down below a
// 10% loss, neutral in between. An empty half counts as mean 0.
func EngagementTrend(posts []model.Post) model.EngagementTrend {
	firstAvg, secondAvg := halfMeans(posts)
	switch {
	case secondAvg > firstAvg*trendUpFactor:
		return model.TrendUp
	case secondAvg < firstAvg*trendDownFactor:
		return model.TrendDown
	default:
		return model.TrendNeutral
	}
}

// halfMeans sorts posts ascending by timestamp, splits at floor(n/2), and
// returns the mean engagement of each half.
func halfMeans(posts []model.Post) (firstAvg, secondAvg float64) {
	sorted := make([]model.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	mid := len(sorted) / 2
	return meanEngagement(sorted[:mid]), meanEngagement(sorted[mid:])
}

func meanEngagement(posts []model.Post) float64 {
	if len(posts) == 0 {
		return 0
	}
	total := 0
	for _, post := range posts {
		total += post.EngagementScore
	}
	return float64(total) / float64(len(posts))
}

func roundMean(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}

// timeSlotKey formats a post timestamp as its weekday/hour posting slot.
func timeSlotKey(t time.Time) (day string, hour int) {
	return t.Format("Mon"), t.Hour()
}
