package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentListRoundTrip(t *testing.T) {
	var post Post
	post.SetCommentList([]string{"first", "second"})
	assert.Equal(t, []string{"first", "second"}, post.CommentList())
}

func TestCommentListEmpty(t *testing.T) {
	var post Post
	assert.Empty(t, post.CommentList())

	post.SetCommentList(nil)
	assert.Empty(t, post.CommentList())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, SentimentPositive.IsValid())
	assert.False(t, SentimentLabel("upbeat").IsValid())
	assert.True(t, EmotionExcited.IsValid())
	assert.False(t, EmotionLabel("bored").IsValid())
	assert.True(t, TierHigh.IsValid())
	assert.False(t, PerformanceTier("Stellar").IsValid())
}

func TestParseSentimentLabel(t *testing.T) {
	label, err := ParseSentimentLabel("negative")
	assert.Nil(t, err)
	assert.Equal(t, SentimentNegative, label)

	_, err = ParseSentimentLabel("meh")
	assert.NotNil(t, err)
}
