package nlp

import "github.com/jonreiter/govader"

// Sentiment labels form a closed set.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// polarity is govader's VADER analyzer; read-only after construction, safe to
// share across requests.
var polarity = govader.NewSentimentIntensityAnalyzer()

// ParagraphSentiment is the per-paragraph result: the paragraph's own label
// plus a label per sentence.
type ParagraphSentiment struct {
	Sentiment string            `json:"paragraph_sentiment"`
	Sentences map[string]string `json:"sentence_sentiments"`
}

// Polarity returns the VADER compound score for text, roughly in [-1, 1].
func Polarity(text string) float64 {
	return polarity.PolarityScores(text).Compound
}

func sentimentLabel(score, threshold float64) string {
	switch {
	case score > threshold:
		return SentimentPositive
	case score < -threshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// AnalyzeSentiment labels every paragraph of text and every sentence within
// it. A score above threshold is Positive, below -threshold Negative,
// otherwise Neutral. The threshold is passed through unvalidated; values
// outside [0, 1] simply widen or collapse the Neutral band. Empty text yields
// an empty map.
func AnalyzeSentiment(text string, threshold float64) map[string]ParagraphSentiment {
	result := make(map[string]ParagraphSentiment)
	for _, paragraph := range SplitParagraphs(text) {
		sentences := make(map[string]string)
		for _, sentence := range SplitSentences(paragraph) {
			sentences[sentence] = sentimentLabel(Polarity(sentence), threshold)
		}
		result[paragraph] = ParagraphSentiment{
			Sentiment: sentimentLabel(Polarity(paragraph), threshold),
			Sentences: sentences,
		}
	}
	return result
}
