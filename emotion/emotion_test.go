package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulseboard/pulseboard/model"
	"github.com/pulseboard/pulseboard/sentiment"
)

func newClassifier() *Classifier {
	return NewClassifier(sentiment.NewAnalyzer())
}

func TestClassifyHappy(t *testing.T) {
	c := newClassifier()

	// Keyword hits ("great", "happy") plus the positive sentiment bonus.
	assert.Equal(t, model.EmotionHappy, c.Classify("Having a great day! #sunshine #happy"))
}

func TestClassifyAngry(t *testing.T) {
	c := newClassifier()

	assert.Equal(t, model.EmotionAngry, c.Classify("This is terrible and awful, I hate it"))
}

func TestClassifyExcitedByKeywordsAlone(t *testing.T) {
	c := newClassifier()

	// None of these words are in the sentiment lexicon, so only the excited
	// keyword hits score.
	assert.Equal(t, model.EmotionExcited, c.Classify("so pumped and hyped for the launch 🔥"))
}

func TestClassifyNeutral(t *testing.T) {
	c := newClassifier()

	assert.Equal(t, model.EmotionNeutral, c.Classify("the weather report for tomorrow"))
	assert.Equal(t, model.EmotionNeutral, c.Classify(""))
}

func TestClassifyEmojiKeywords(t *testing.T) {
	c := newClassifier()

	assert.Equal(t, model.EmotionAngry, c.Classify("no words 😡"))
}

func TestClassifyTieBreakIsDeterministic(t *testing.T) {
	c := newClassifier()

	// "happy" and "hate" are one keyword hit each and their lexicon weights
	// cancel out, so happy, angry and neutral all score 1. The fixed category
	// order breaks the tie in favor of happy.
	for i := 0; i < 10; i++ {
		assert.Equal(t, model.EmotionHappy, c.Classify("happy hate"))
	}
}

func TestSentimentBonusDominatesWithoutKeywords(t *testing.T) {
	c := newClassifier()

	// No emotion keyword matches, but the strongly positive caption pushes
	// the happy category through the sentiment bonus.
	assert.Equal(t, model.EmotionHappy, c.Classify("what a beautiful delightful morning"))
}
