package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmorimoto/writedesk/internal/pipeline"
	"github.com/tmorimoto/writedesk/internal/prompt"
)

var correctCmd = &cobra.Command{
	Use:   "correct",
	Short: "Correct grammar and optionally adjust tone",
	Long:  "Correct grammar, spelling and clarity in typed text or an uploaded document (PDF, HTML, plain text), optionally rewriting in a selected tone.",
	RunE:  runCorrect,
}

var (
	correctText string
	correctFile string
	correctTone string
)

func init() {
	correctCmd.Flags().StringVarP(&correctText, "text", "t", "", "Text to correct")
	correctCmd.Flags().StringVarP(&correctFile, "file", "f", "", "Path to a document to correct")
	correctCmd.Flags().StringVar(&correctTone, "tone", "", fmt.Sprintf("Rewrite tone, one of: %s", toneChoices()))

	rootCmd.AddCommand(correctCmd)
}

func toneChoices() string {
	tones := prompt.Tones()
	names := make([]string, len(tones))
	for i, t := range tones {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func runCorrect(cmd *cobra.Command, args []string) error {
	in, err := resolveInput(correctText, correctFile)
	if err != nil {
		return err
	}

	tone, ok := prompt.ParseTone(correctTone)
	if !ok {
		return fmt.Errorf("unknown tone %q; valid tones: %s", correctTone, toneChoices())
	}
	in.Tone = tone

	ctx := cmd.Context()
	client, _, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	corrector := &pipeline.Corrector{LLM: client}
	result, err := corrector.Run(ctx, in)
	if err != nil {
		return err
	}

	if result.Truncated {
		fmt.Fprintln(os.Stderr, "Warning: input exceeded the length limit and was truncated")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
