package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "pagelens",
		Short: "Web-page and text NLP operations over HTTP and a stdio registry",
	}
	root.AddCommand(serveCMD(), mcpCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
