// Package nlp holds the pure text-analysis leaves: sentence and paragraph
// splitting, term-frequency summarization, polarity-threshold sentiment
// labeling, and named-entity ranking. Nothing here performs I/O; model-backed
// pieces sit behind the Recognizer interface.
package nlp

import (
	"regexp"
	"strings"

	"github.com/blevesearch/bleve/analysis"
	"github.com/blevesearch/bleve/analysis/lang/en"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// stopWords is bleve's English stop list, loaded once and read-only after.
var stopWords analysis.TokenMap

func init() {
	stopWords = analysis.NewTokenMap()
	if err := stopWords.LoadBytes(en.EnglishStopWords); err != nil {
		panic("nlp: loading english stop words: " + err.Error())
	}
}

// Words returns the lowercased word tokens of text.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// IsStopWord reports whether the (already lowercased) word carries no topical
// weight for scoring.
func IsStopWord(word string) bool {
	return stopWords[word]
}
