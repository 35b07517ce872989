// Package analysis binds the fetcher, the entity recognizer and the
// configured defaults into the six public operations. One Analyzer instance
// is shared by the HTTP handlers and the MCP registry so model handles load
// exactly once per process.
package analysis

import (
	"context"
	"fmt"
	"os"

	"github.com/pagelens/pagelens/internal/fetch"
	"github.com/pagelens/pagelens/internal/nlp"
)

// Defaults are applied when a request omits the corresponding parameter.
type Defaults struct {
	NumSentences int
	Threshold    float64
	TopK         int
}

// Analyzer is stateless per request; all fields are read-only after
// construction.
type Analyzer struct {
	Fetcher    *fetch.Client
	Recognizer nlp.Recognizer
	Defaults   Defaults
	ReadmePath string
}

func (a *Analyzer) numSentences(n *int) int {
	if n == nil {
		return a.Defaults.NumSentences
	}
	return *n
}

func (a *Analyzer) threshold(v *float64) float64 {
	if v == nil {
		return a.Defaults.Threshold
	}
	return *v
}

func (a *Analyzer) topK(k *int) int {
	if k == nil {
		return a.Defaults.TopK
	}
	return *k
}

// SummarizeText extracts the top sentences of text in document order.
func (a *Analyzer) SummarizeText(text string, numSentences *int) string {
	return nlp.Summarize(text, a.numSentences(numSentences))
}

// SummarizeURL fetches the page at link and summarizes its visible text.
func (a *Analyzer) SummarizeURL(ctx context.Context, link string, numSentences *int) (string, error) {
	text, err := a.Fetcher.Text(ctx, link)
	if err != nil {
		return "", err
	}
	return nlp.Summarize(text, a.numSentences(numSentences)), nil
}

// SentimentText labels paragraphs and sentences of text against threshold.
func (a *Analyzer) SentimentText(text string, threshold *float64) map[string]nlp.ParagraphSentiment {
	return nlp.AnalyzeSentiment(text, a.threshold(threshold))
}

// SentimentURL fetches the page at link and labels its visible text.
func (a *Analyzer) SentimentURL(ctx context.Context, link string, threshold *float64) (map[string]nlp.ParagraphSentiment, error) {
	text, err := a.Fetcher.Text(ctx, link)
	if err != nil {
		return nil, err
	}
	return nlp.AnalyzeSentiment(text, a.threshold(threshold)), nil
}

// EntitiesText runs the recognizer over text and ranks the mentions.
func (a *Analyzer) EntitiesText(text string, topK *int) ([]nlp.EntityRecord, error) {
	mentions, err := a.Recognizer.Recognize(text)
	if err != nil {
		return nil, fmt.Errorf("recognize entities: %w", err)
	}
	return nlp.TopEntities(mentions, a.topK(topK)), nil
}

// EntitiesURL fetches the page at link and ranks the entities of its text.
func (a *Analyzer) EntitiesURL(ctx context.Context, link string, topK *int) ([]nlp.EntityRecord, error) {
	text, err := a.Fetcher.Text(ctx, link)
	if err != nil {
		return nil, err
	}
	return a.EntitiesText(text, topK)
}

// Readme returns the bundled documentation resource.
func (a *Analyzer) Readme() (string, error) {
	data, err := os.ReadFile(a.ReadmePath)
	if err != nil {
		return "", fmt.Errorf("read readme resource: %w", err)
	}
	return string(data), nil
}
