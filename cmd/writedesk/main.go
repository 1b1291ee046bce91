// Package main provides the writedesk CLI: grammar correction, paper
// review, and a chat companion over one completion backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "writedesk",
	Short: "Writing assistant pipelines over an LLM backend",
	Long:  "writedesk corrects grammar, reviews research papers with keyword highlighting, and runs a supportive chat companion, as a CLI or an HTTP API.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a JSON config file; GEMINI_API_KEY from the environment overrides it")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
