// Package ner wraps a pretrained hugot token-classification model behind the
// nlp.Recognizer interface.
package ner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/pagelens/pagelens/internal/nlp"
)

// Pipeline runs named-entity recognition through an onnxruntime session. The
// loaded weights are read-only after construction and safe to share across
// concurrent requests. Construct once at process start; Close on shutdown.
type Pipeline struct {
	session  *hugot.Session
	pipeline *pipelines.TokenClassificationPipeline
}

// New loads (downloading on first run) the named model into modelsDir and
// initializes the recognition pipeline.
func New(modelsDir, modelName string) (*Pipeline, error) {
	if err := os.MkdirAll(modelsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create models dir %s: %w", modelsDir, err)
	}

	modelPath := filepath.Join(modelsDir, filepath.Base(modelName))
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[NER] model not found locally, downloading", slog.String("model", modelName))
		downloaded, err := hugot.DownloadModel(modelName, modelsDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, fmt.Errorf("download model %s: %w", modelName, err)
		}
		modelPath = downloaded
		slog.Info("[NER] model downloaded", slog.String("path", modelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("init onnxruntime session: %w", err)
	}

	config := hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "nerPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("init ner pipeline: %w", err)
	}

	return &Pipeline{session: session, pipeline: pipeline}, nil
}

// Recognize returns one mention per entity the model finds in text, in
// document order. Empty input yields no mentions.
func (p *Pipeline) Recognize(text string) ([]nlp.Mention, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	out, err := p.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("run ner pipeline: %w", err)
	}

	var mentions []nlp.Mention
	for _, batch := range out.Entities {
		for _, ent := range batch {
			mentions = append(mentions, nlp.Mention{Text: ent.Word, Label: ent.Entity})
		}
	}
	return mentions, nil
}

// Close releases the underlying onnxruntime session.
func (p *Pipeline) Close() {
	if p.session != nil {
		p.session.Destroy()
	}
}
