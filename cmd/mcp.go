package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pagelens/pagelens/config"
	"github.com/pagelens/pagelens/internal/logging"
	"github.com/pagelens/pagelens/internal/mcp"
)

func mcpCMD() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the operation registry over stdio JSON-RPC",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			// stdout carries the protocol stream; logs go to stderr
			logging.Init(cfg.Server.LogLevel, os.Stderr)

			analyzer, closeAnalyzer, err := buildAnalyzer(cfg)
			if err != nil {
				return err
			}
			defer closeAnalyzer()

			return mcp.NewServer(analyzer).Serve(os.Stdin, os.Stdout)
		},
	}
	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./config.yaml)")
	return cmd
}
