package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agentgen",
	Short: "Generate starter JavaScript code for AI agents",
	Long: `agentgen turns a natural-language description of an AI agent's task
into a starter JavaScript implementation using the Gemini API.

The API key is read from GEMINI_API_KEY (or API_KEY). The model can be
changed with GEMINI_MODEL.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}
