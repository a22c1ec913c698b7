// Package ingest turns arbitrary tabular uploads into canonical post records.
//
// Input rows come from CSV or JSON exports with wildly inconsistent column
// names and value encodings. Normalization maps every column onto a fixed
// schema, derives sentiment, emotion and engagement metrics, and degrades any
// malformed field to a defined default so that messy real-world exports always
// ingest for structurally valid rows.
package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard/emotion"
	"github.com/pulseboard/pulseboard/model"
	"github.com/pulseboard/pulseboard/sentiment"
)

// epochMillisCutoff decides how a bare numeric timestamp is interpreted:
// values below it are epoch seconds, values at or above it epoch milliseconds.
const epochMillisCutoff = 1e12

const generatedIDLength = 8

// NormalizedPost is one canonical post record produced from a raw row, before
// it is bound to a dashboard and persisted.
type NormalizedPost struct {
	PostID               string                `json:"postId"`
	Caption              string                `json:"caption"`
	Likes                int                   `json:"likes"`
	CommentsCount        int                   `json:"commentsCount"`
	Shares               int                   `json:"shares"`
	Timestamp            time.Time             `json:"timestamp"`
	CommentTexts         []string              `json:"comments"`
	SentimentScore       float64               `json:"sentimentScore"`
	SentimentLabel       model.SentimentLabel  `json:"sentimentLabel"`
	EmotionLabel         model.EmotionLabel    `json:"emotionLabel"`
	EngagementScore      int                   `json:"engagementScore"`
	PredictedPerformance model.PerformanceTier `json:"predictedPerformance"`
	ConfidenceScore      int                   `json:"confidenceScore"`
}

// Normalizer maps raw rows onto NormalizedPost records. It is stateless apart
// from the shared analyzers and safe for concurrent use.
type Normalizer struct {
	analyzer   *sentiment.Analyzer
	classifier *emotion.Classifier
	now        func() time.Time
}

func NewNormalizer() *Normalizer {
	analyzer := sentiment.NewAnalyzer()
	return &Normalizer{
		analyzer:   analyzer,
		classifier: emotion.NewClassifier(analyzer),
		now:        time.Now,
	}
}

// NormalizeRow converts one raw key/value row into a canonical post record.
// Individual malformed fields never fail; they fall back to defaults.
func (n *Normalizer) NormalizeRow(row map[string]interface{}) NormalizedPost {
	normalized := make(map[string]interface{}, len(row))
	for key, value := range row {
		normalized[normalizeKey(key)] = value
	}

	caption := stringValue(normalized[fieldCaption])

	score := n.analyzer.Comparative(caption)

	likes := coerceCount(normalized[fieldLikes])
	commentsCount := coerceCount(normalized[fieldComments])
	shares := coerceCount(normalized[fieldShares])

	return NormalizedPost{
		PostID:          n.resolvePostID(normalized),
		Caption:         caption,
		Likes:           likes,
		CommentsCount:   commentsCount,
		Shares:          shares,
		Timestamp:       n.parseTimestamp(normalized[fieldTimestamp]),
		CommentTexts:    splitCommentTexts(normalized[fieldCommentTexts]),
		SentimentScore:  score,
		SentimentLabel:  sentiment.LabelFor(score),
		EmotionLabel:    n.classifier.Classify(caption),
		EngagementScore: likes + commentsCount + shares,
	}
}

func (n *Normalizer) resolvePostID(normalized map[string]interface{}) string {
	if v, ok := normalized[fieldPostID]; ok {
		if id := stringValue(v); id != "" {
			return id
		}
	}
	return uuid.New().String()[:generatedIDLength]
}

// parseTimestamp accepts ISO-ish date strings, numeric epochs in seconds or
// milliseconds, and defaults everything unparseable to the ingestion time.
func (n *Normalizer) parseTimestamp(v interface{}) time.Time {
	switch value := v.(type) {
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return n.now()
		}
		if isDigits(trimmed) {
			if epoch, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
				return epochToTime(float64(epoch))
			}
		}
		if t, err := dateparse.ParseLocal(trimmed); err == nil {
			return t
		}
		return n.now()
	case float64:
		return epochToTime(value)
	case int:
		return epochToTime(float64(value))
	case int64:
		return epochToTime(float64(value))
	case time.Time:
		return value
	default:
		return n.now()
	}
}

func epochToTime(epoch float64) time.Time {
	if epoch < epochMillisCutoff {
		return time.Unix(int64(epoch), 0)
	}
	return time.UnixMilli(int64(epoch))
}

// splitCommentTexts accepts either an array of strings or a single
// pipe-delimited string; anything else yields no comments.
func splitCommentTexts(v interface{}) []string {
	switch value := v.(type) {
	case []string:
		return value
	case []interface{}:
		comments := make([]string, 0, len(value))
		for _, item := range value {
			comments = append(comments, stringValue(item))
		}
		return comments
	case string:
		var comments []string
		for _, piece := range strings.Split(value, "|") {
			piece = strings.TrimSpace(piece)
			if piece != "" {
				comments = append(comments, piece)
			}
		}
		return comments
	default:
		return nil
	}
}

// coerceCount parses a metric counter, degrading failed or missing parses to
// 0. Explicit negative inputs are clamped to 0 so counters stay non-negative.
func coerceCount(v interface{}) int {
	parsed := 0
	switch value := v.(type) {
	case int:
		parsed = value
	case int64:
		parsed = int(value)
	case float64:
		parsed = int(value)
	case string:
		trimmed := strings.TrimSpace(value)
		if i, err := strconv.Atoi(trimmed); err == nil {
			parsed = i
		} else if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			parsed = int(math.Trunc(f))
		}
	}
	if parsed < 0 {
		return 0
	}
	return parsed
}

func stringValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		// JSON numbers: render whole values without a trailing ".0".
		if value == math.Trunc(value) {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
