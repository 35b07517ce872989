package nlp

import (
	"regexp"
	"strings"
)

var paragraphBreak = regexp.MustCompile(`\n[ \t]*\n`)

// SplitSentences cuts text after sentence-terminating punctuation followed by
// a run of spaces. The terminator stays with its sentence; the separating
// spaces are dropped.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var sentences []string
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		b.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && runes[i+1] == ' ' {
			for i+1 < len(runes) && runes[i+1] == ' ' {
				i++
			}
			sentences = append(sentences, b.String())
			b.Reset()
		}
	}
	if s := b.String(); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// SplitParagraphs splits text on blank lines, trimming each paragraph and
// dropping whitespace-only ones.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range paragraphBreak.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
