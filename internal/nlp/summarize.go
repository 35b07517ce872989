package nlp

import (
	"sort"
	"strings"
)

type sentenceScore struct {
	index int
	score float64
}

// Summarize returns the numSentences highest-scoring sentences of text,
// re-joined in document order. A sentence scores the sum of the relative term
// frequencies of its non-stopword tokens. Texts with at most numSentences
// sentences come back unchanged; empty input and non-positive numSentences
// yield "".
func Summarize(text string, numSentences int) string {
	text = strings.TrimSpace(text)
	if text == "" || numSentences <= 0 {
		return ""
	}
	sentences := SplitSentences(text)
	if len(sentences) <= numSentences {
		return text
	}

	freq := make(map[string]int)
	maxFreq := 0
	for _, w := range Words(text) {
		if IsStopWord(w) {
			continue
		}
		freq[w]++
		if freq[w] > maxFreq {
			maxFreq = freq[w]
		}
	}

	scored := make([]sentenceScore, len(sentences))
	for i, sentence := range sentences {
		var score float64
		for _, w := range Words(sentence) {
			if n, ok := freq[w]; ok {
				score += float64(n) / float64(maxFreq)
			}
		}
		scored[i] = sentenceScore{index: i, score: score}
	}

	// stable: equal scores keep document order
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	top := scored[:numSentences]
	sort.Slice(top, func(i, j int) bool { return top[i].index < top[j].index })

	parts := make([]string, len(top))
	for i, s := range top {
		parts[i] = sentences[s.index]
	}
	return strings.Join(parts, " ")
}
