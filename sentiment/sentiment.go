// Package sentiment performs lexicon-based sentiment scoring of post captions.
//
// The analyzer tokenizes input and looks each token up in an embedded word
// polarity lexicon. The comparative score is the polarity sum normalized by
// token count, so longer texts are not rewarded for sheer length. Empty or
// matchless text scores 0.
//
// All functions are safe for concurrent use by multiple goroutines.
package sentiment

import (
	"strings"

	"github.com/pulseboard/pulseboard/model"
)

const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Result holds the scoring output for one text.
type Result struct {
	Score       int     `json:"score"`       // raw polarity sum
	Comparative float64 `json:"comparative"` // Score / token count
	Positive    int     `json:"positive"`    // count of positive tokens
	Negative    int     `json:"negative"`    // count of negative tokens
	Tokens      int     `json:"tokens"`      // total token count
}

// Analyzer scores text against the embedded lexicon. It is stateless;
// construct one and share it freely.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze scores text and returns the full result.
func (a *Analyzer) Analyze(text string) Result {
	tokens := tokenize(text)
	res := Result{Tokens: len(tokens)}
	if len(tokens) == 0 {
		return res
	}
	for _, token := range tokens {
		weight, ok := lexicon[token]
		if !ok {
			continue
		}
		res.Score += weight
		if weight > 0 {
			res.Positive++
		} else if weight < 0 {
			res.Negative++
		}
	}
	res.Comparative = float64(res.Score) / float64(res.Tokens)
	return res
}

// Comparative returns the token-count-normalized polarity score of text.
func (a *Analyzer) Comparative(text string) float64 {
	return a.Analyze(text).Comparative
}

// LabelFor buckets a comparative score into the fixed sentiment label set:
// above 0.05 is positive, below -0.05 is negative, everything else neutral.
func LabelFor(score float64) model.SentimentLabel {
	switch {
	case score > positiveThreshold:
		return model.SentimentPositive
	case score < negativeThreshold:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// tokenize lower-cases text, strips everything that is not a letter or digit,
// and splits on whitespace. Hashtag and mention sigils are dropped so that
// "#happy" scores like "happy".
func tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}
