package nlp

import (
	"strings"
	"testing"
)

func TestSummarizeShortTextUnchanged(t *testing.T) {
	text := "Sentence one. Sentence two. Sentence three."
	for _, n := range []int{3, 4, 100} {
		if got := Summarize(text, n); got != text {
			t.Fatalf("Summarize(_, %d) = %q, want input unchanged", n, got)
		}
	}
}

func TestSummarizeEmptyAndNonPositive(t *testing.T) {
	if got := Summarize("", 3); got != "" {
		t.Fatalf("empty input: got %q", got)
	}
	if got := Summarize("   \n ", 3); got != "" {
		t.Fatalf("whitespace input: got %q", got)
	}
	if got := Summarize("One. Two. Three. Four.", 0); got != "" {
		t.Fatalf("n=0: got %q", got)
	}
	if got := Summarize("One. Two. Three. Four.", -2); got != "" {
		t.Fatalf("n=-2: got %q", got)
	}
}

func TestSummarizeSubsetInOriginalOrder(t *testing.T) {
	text := "Sentence one. Sentence two. Sentence three. Sentence four."
	summary := Summarize(text, 2)

	original := SplitSentences(text)
	picked := SplitSentences(summary)
	if len(picked) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %q", len(picked), summary)
	}
	last := -1
	for _, s := range picked {
		idx := -1
		for i, o := range original {
			if o == s {
				idx = i
				break
			}
		}
		if idx < 0 {
			t.Fatalf("summary sentence %q not in original", s)
		}
		if idx <= last {
			t.Fatalf("summary out of document order: %q", summary)
		}
		last = idx
	}
}

func TestSummarizePrefersFrequentTerms(t *testing.T) {
	text := "Go routines make Go concurrency simple and Go fast. Cats sleep all day. Compilers are neat."
	got := Summarize(text, 1)
	if !strings.Contains(got, "concurrency") {
		t.Fatalf("expected the Go-heavy sentence, got %q", got)
	}
	if strings.Contains(got, "Cats") || strings.Contains(got, "Compilers") {
		t.Fatalf("expected a single sentence, got %q", got)
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	text := "Alpha beta gamma. Delta epsilon zeta. Alpha delta. Beta gamma epsilon. Zeta alpha beta."
	first := Summarize(text, 2)
	for i := 0; i < 5; i++ {
		if got := Summarize(text, 2); got != first {
			t.Fatalf("non-deterministic summary: %q vs %q", got, first)
		}
	}
}

func TestSummarizeAllStopwords(t *testing.T) {
	// no scorable terms: stable order still applies, output stays deterministic
	text := "It is the and. Of the it is. And it of the. The is and of."
	summary := Summarize(text, 2)
	if len(SplitSentences(summary)) != 2 {
		t.Fatalf("expected 2 sentences, got %q", summary)
	}
}
