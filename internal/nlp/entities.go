package nlp

import "sort"

// Mention is a single recognizer hit: a surface form and its tag.
type Mention struct {
	Text  string
	Label string
}

// Recognizer produces named-entity mentions for a block of text. The
// model-backed implementation lives in internal/ner; tests substitute fakes.
type Recognizer interface {
	Recognize(text string) ([]Mention, error)
}

// EntityRecord is one ranked entity in a response.
type EntityRecord struct {
	Text  string `json:"text"`
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// TopEntities groups identical (text, label) mentions, counts occurrences,
// and returns the topK most frequent, ties broken by first appearance. Never
// returns nil so callers marshal an empty array rather than null.
func TopEntities(mentions []Mention, topK int) []EntityRecord {
	records := make([]EntityRecord, 0, len(mentions))
	if topK <= 0 {
		return records
	}

	counts := make(map[Mention]int, len(mentions))
	var order []Mention
	for _, m := range mentions {
		if counts[m] == 0 {
			order = append(order, m)
		}
		counts[m]++
	}

	for _, m := range order {
		records = append(records, EntityRecord{Text: m.Text, Type: m.Label, Count: counts[m]})
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Count > records[j].Count })
	if len(records) > topK {
		records = records[:topK]
	}
	return records
}
