package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Address != ":8001" {
		t.Fatalf("unexpected address %q", cfg.Server.Address)
	}
	if cfg.NLP.NumSentences != 3 || cfg.NLP.Threshold != 0.5 || cfg.NLP.TopK != 5 {
		t.Fatalf("unexpected nlp defaults: %+v", cfg.NLP)
	}
	if cfg.Fetch.Timeout != 15*time.Second {
		t.Fatalf("unexpected fetch timeout %v", cfg.Fetch.Timeout)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "server:\n  address: \":9000\"\nnlp:\n  top_k: 10\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Address != ":9000" {
		t.Fatalf("expected override address, got %q", cfg.Server.Address)
	}
	if cfg.NLP.TopK != 10 {
		t.Fatalf("expected top_k 10, got %d", cfg.NLP.TopK)
	}
	if cfg.NLP.NumSentences != 3 {
		t.Fatalf("expected default num_sentences, got %d", cfg.NLP.NumSentences)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
