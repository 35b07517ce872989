package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagelens/pagelens/config"
	"github.com/pagelens/pagelens/internal/analysis"
	"github.com/pagelens/pagelens/internal/fetch"
	"github.com/pagelens/pagelens/internal/logging"
	"github.com/pagelens/pagelens/internal/ner"
	srv "github.com/pagelens/pagelens/internal/server"
)

func serveCMD() *cobra.Command {
	var addr string
	var cfgPath string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			logging.Init(cfg.Server.LogLevel, os.Stdout)

			analyzer, closeAnalyzer, err := buildAnalyzer(cfg)
			if err != nil {
				return err
			}
			defer closeAnalyzer()

			if addr == "" {
				addr = cfg.Server.Address
			}
			return srv.Run(addr, analyzer)
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	serve.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./config.yaml)")
	return serve
}

// buildAnalyzer wires the fetcher and the NER pipeline once; the returned
// func releases the model session.
func buildAnalyzer(cfg *config.Config) (*analysis.Analyzer, func(), error) {
	recognizer, err := ner.New(cfg.NLP.ModelsDir, cfg.NLP.NERModel)
	if err != nil {
		return nil, nil, fmt.Errorf("init recognizer: %w", err)
	}
	analyzer := &analysis.Analyzer{
		Fetcher:    fetch.NewClient(cfg.Fetch.Timeout, cfg.Fetch.MaxBodyBytes, cfg.Fetch.UserAgent),
		Recognizer: recognizer,
		Defaults: analysis.Defaults{
			NumSentences: cfg.NLP.NumSentences,
			Threshold:    cfg.NLP.Threshold,
			TopK:         cfg.NLP.TopK,
		},
		ReadmePath: cfg.NLP.ReadmePath,
	}
	return analyzer, recognizer.Close, nil
}
