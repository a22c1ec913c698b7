package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

/*

Post is one canonical social-media post record produced by ingestion

Id: primary key, internal identity of the row
CreatedAt: time when entity is created
DashboardID:
Dashboard: owning dashboard, "belongs-to" relation. Deleting a dashboard
	cascades to all of its posts.

PostID: externally supplied post identifier, or an 8-character generated token
	when the upload did not carry one. Not required to be unique.
Caption: post's text in plain form, source of all derived text metrics
Likes/CommentsCount/Shares: non-negative engagement counters
Timestamp: when the post was published, normalized from the upload
Comments: free-text comments attached to the post, stored as a JSON array

SentimentScore: comparative lexicon score of the caption
SentimentLabel: positive / neutral / negative, derived from SentimentScore
EmotionLabel: dominant emotion of the caption
EngagementScore: always Likes + CommentsCount + Shares, never set directly
PredictedPerformance: tier assigned against the cohort average engagement
ConfidenceScore: 0-100 confidence of the predicted tier

*/
type Post struct {
	Id                   string `gorm:"primaryKey" json:"id"`
	CreatedAt            time.Time
	DashboardID          string          `gorm:"index" json:"dashboardId"`
	Dashboard            Dashboard       `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID               string          `json:"postId"`
	Caption              string          `json:"caption"`
	Likes                int             `json:"likes"`
	CommentsCount        int             `json:"commentsCount"`
	Shares               int             `json:"shares"`
	Timestamp            time.Time       `gorm:"index" json:"timestamp"`
	Comments             datatypes.JSON  `json:"comments"`
	SentimentScore       float64         `json:"sentimentScore"`
	SentimentLabel       SentimentLabel  `json:"sentimentLabel"`
	EmotionLabel         EmotionLabel    `json:"emotionLabel"`
	EngagementScore      int             `gorm:"index" json:"engagementScore"`
	PredictedPerformance PerformanceTier `json:"predictedPerformance"`
	ConfidenceScore      int             `json:"confidenceScore"`
}

// CommentList decodes the stored JSON comment array. A post with no comments
// yields an empty slice.
func (p *Post) CommentList() []string {
	var comments []string
	if len(p.Comments) == 0 {
		return comments
	}
	// Malformed stored JSON degrades to no comments rather than erroring.
	json.Unmarshal(p.Comments, &comments)
	return comments
}

// SetCommentList encodes comments into the stored JSON column.
func (p *Post) SetCommentList(comments []string) {
	if comments == nil {
		comments = []string{}
	}
	raw, _ := json.Marshal(comments)
	p.Comments = datatypes.JSON(raw)
}
