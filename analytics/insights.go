package analytics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/pulseboard/pulseboard/model"
)

const (
	strongCorrelation   = 0.7
	moderateCorrelation = 0.4
)

// Insight is one heuristic insight card rendered by the dashboard.
type Insight struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Value       interface{}           `json:"value"`
	Description string                `json:"description"`
	Icon        string                `json:"icon"`
	Trend       model.EngagementTrend `json:"trend,omitempty"`
}

// Insights derives the fixed ordered card list from an unfiltered dashboard
// post collection. An empty collection yields no cards.
func Insights(posts []model.Post) []Insight {
	if len(posts) == 0 {
		return []Insight{}
	}

	insights := []Insight{bestPostInsight(posts)}
	if card, ok := bestTimeSlotInsight(posts); ok {
		insights = append(insights, card)
	}
	insights = append(insights,
		trendInsight(posts),
		sentimentDominanceInsight(posts),
		correlationInsight(posts),
	)
	return insights
}

func bestPostInsight(posts []model.Post) Insight {
	best := bestPerformingPost(posts)
	id := best.PostID
	if len(id) > 8 {
		id = id[:8]
	}
	return Insight{
		ID:          "best-post",
		Title:       "Best Performing Post",
		Value:       best.EngagementScore,
		Description: fmt.Sprintf("Post ID: %s", id),
		Icon:        "🚀",
	}
}

// bestTimeSlotInsight finds the (weekday, hour) slot with the highest mean
// engagement. Slots are compared in encounter order with strict greater-than,
// so earlier slots win ties.
func bestTimeSlotInsight(posts []model.Post) (Insight, bool) {
	type slot struct {
		day             string
		hour            int
		count           int
		totalEngagement int
	}
	slots := map[string]*slot{}
	order := []string{}
	for _, post := range posts {
		day, hour := timeSlotKey(post.Timestamp)
		key := fmt.Sprintf("%s-%d", day, hour)
		s, ok := slots[key]
		if !ok {
			s = &slot{day: day, hour: hour}
			slots[key] = s
			order = append(order, key)
		}
		s.count++
		s.totalEngagement += post.EngagementScore
	}

	var best *slot
	bestAvg := 0.0
	for _, key := range order {
		s := slots[key]
		avg := float64(s.totalEngagement) / float64(s.count)
		if best == nil || avg > bestAvg {
			best = s
			bestAvg = avg
		}
	}
	if best == nil {
		return Insight{}, false
	}

	return Insight{
		ID:          "best-time",
		Title:       "Best Posting Time",
		Value:       fmt.Sprintf("%s %d:00", best.day, best.hour),
		Description: fmt.Sprintf("Average engagement: %d", roundMean(best.totalEngagement, best.count)),
		Icon:        "⏰",
	}, true
}

// trendInsight expresses the two-half engagement trend as a signed percent
// change of the newer half against the older half.
func trendInsight(posts []model.Post) Insight {
	firstAvg, secondAvg := halfMeans(posts)
	trend := EngagementTrend(posts)

	trendPercent := 0
	if firstAvg > 0 {
		trendPercent = int(math.Round((secondAvg - firstAvg) / firstAvg * 100))
	}

	var value, description, icon string
	switch trend {
	case model.TrendUp:
		value = fmt.Sprintf("↑ %d%%", abs(trendPercent))
		description = "Increasing"
		icon = "📈"
	case model.TrendDown:
		value = fmt.Sprintf("↓ %d%%", abs(trendPercent))
		description = "Decreasing"
		icon = "📉"
	default:
		value = "→ Stable"
		description = "Stable"
		icon = "➡️"
	}

	return Insight{
		ID:          "engagement-trend",
		Title:       "Engagement Trend",
		Value:       value,
		Description: description,
		Icon:        icon,
		Trend:       trend,
	}
}

func sentimentDominanceInsight(posts []model.Post) Insight {
	counts := map[model.SentimentLabel]int{}
	for _, post := range posts {
		counts[post.SentimentLabel]++
	}
	total := len(posts)

	dominant := model.AllSentimentLabel[0]
	for _, label := range model.AllSentimentLabel[1:] {
		if counts[label] >= counts[dominant] {
			dominant = label
		}
	}

	percent := func(label model.SentimentLabel) int {
		return int(math.Round(float64(counts[label]) / float64(total) * 100))
	}

	icon := "😐"
	switch dominant {
	case model.SentimentPositive:
		icon = "😊"
	case model.SentimentNegative:
		icon = "😔"
	}

	return Insight{
		ID:    "sentiment-dominance",
		Title: "Sentiment Dominance",
		Value: fmt.Sprintf("%d%% %s", percent(dominant), dominant),
		Description: fmt.Sprintf("Positive: %d%%, Neutral: %d%%, Negative: %d%%",
			percent(model.SentimentPositive), percent(model.SentimentNeutral), percent(model.SentimentNegative)),
		Icon: icon,
	}
}

// correlationInsight reports the Pearson correlation between per-post comment
// and share counts. When either variable has no variance the correlation is
// defined as 0.
func correlationInsight(posts []model.Post) Insight {
	comments := make([]float64, len(posts))
	shares := make([]float64, len(posts))
	for i, post := range posts {
		comments[i] = float64(post.CommentsCount)
		shares[i] = float64(post.Shares)
	}

	correlation := 0.0
	if stat.Variance(comments, nil) > 0 && stat.Variance(shares, nil) > 0 {
		correlation = stat.Correlation(comments, shares, nil)
	}

	strength := "Weak"
	if math.Abs(correlation) > strongCorrelation {
		strength = "Strong"
	} else if math.Abs(correlation) > moderateCorrelation {
		strength = "Moderate"
	}

	direction := "Negative"
	icon := "🔀"
	if correlation > 0 {
		direction = "Positive"
		icon = "🔗"
	}

	return Insight{
		ID:          "correlation",
		Title:       "Comments ↔ Shares",
		Value:       fmt.Sprintf("%s %s", strength, direction),
		Description: fmt.Sprintf("Correlation: %.2f", correlation),
		Icon:        icon,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
