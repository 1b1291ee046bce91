package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmorimoto/writedesk/internal/pipeline"
	"github.com/tmorimoto/writedesk/internal/prompt"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Review a research paper with keyword highlighting",
	Long:  "Produce a review of a research paper (typed text or an uploaded document), extract its key terms, and return the review with every term highlighted.",
	RunE:  runAnalyze,
}

var (
	analyzeText       string
	analyzeFile       string
	analyzeAudience   string
	analyzeReviewType string
	analyzeOut        string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeText, "text", "t", "", "Paper text to review")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to a paper (PDF, HTML, plain text)")
	analyzeCmd.Flags().StringVar(&analyzeAudience, "audience", "", "Target audience: General, Technical or Executive")
	analyzeCmd.Flags().StringVar(&analyzeReviewType, "review-type", "", "Review type: Summary, Critique or Methodology")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the highlighted review to a file instead of stdout")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	in, err := resolveInput(analyzeText, analyzeFile)
	if err != nil {
		return err
	}

	audience, ok := prompt.ParseAudience(analyzeAudience)
	if !ok {
		return fmt.Errorf("unknown audience %q", analyzeAudience)
	}
	reviewType, ok := prompt.ParseReviewType(analyzeReviewType)
	if !ok {
		return fmt.Errorf("unknown review type %q", analyzeReviewType)
	}
	in.Audience = audience
	in.ReviewType = reviewType

	ctx := cmd.Context()
	client, _, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	reviewer := &pipeline.Reviewer{LLM: client}
	result, err := reviewer.Run(ctx, in)
	if err != nil {
		return err
	}

	if result.Truncated {
		fmt.Fprintln(os.Stderr, "Warning: input exceeded the length limit and was truncated")
	}

	if analyzeOut != "" {
		if err := os.WriteFile(analyzeOut, []byte(result.Highlighted), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Highlighted review written to %s\n", analyzeOut)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
