package pipeline

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tmorimoto/writedesk/internal/highlight"
	"github.com/tmorimoto/writedesk/internal/llm"
	"github.com/tmorimoto/writedesk/internal/prompt"
)

// ReviewResult is the output of the paper-review pipeline: the review text,
// the extracted keyword set, and the review annotated with highlight
// markers.
type ReviewResult struct {
	Review      string   `json:"review"`
	Keywords    []string `json:"keywords"`
	Highlighted string   `json:"highlighted"`
	Truncated   bool     `json:"truncated,omitempty"`
}

// Reviewer runs the paper-review pipeline.
type Reviewer struct {
	LLM llm.Client
}

// Run collects the input and issues the review and keyword-extraction
// completions. The two calls are independent requests, so they run
// concurrently; their results join before the highlighter is applied, once,
// to the review text.
func (r *Reviewer) Run(ctx context.Context, in Input) (*ReviewResult, error) {
	blob, err := collectInput(in)
	if err != nil {
		return nil, err
	}
	if blob.Text == "" {
		return &ReviewResult{Keywords: []string{}}, nil
	}

	var (
		review   string
		keywords highlight.KeywordSet
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		spec := prompt.Review(blob.Text, in.Audience, in.ReviewType)
		out, err := r.LLM.Complete(gctx, llm.Request{
			System: spec.System,
			User:   spec.User,
			Tier:   llm.TierAdvanced,
		})
		if err != nil {
			return err
		}
		review = strings.TrimSpace(out)
		return nil
	})

	g.Go(func() error {
		spec := prompt.KeywordExtraction(blob.Text)
		out, err := r.LLM.Complete(gctx, llm.Request{
			System: spec.System,
			User:   spec.User,
			Tier:   llm.TierLite,
			JSON:   true,
		})
		if err != nil {
			return err
		}
		keywords, err = highlight.ParseKeywords(llm.CleanJSONBlock(out))
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ReviewResult{
		Review:      review,
		Keywords:    []string(keywords),
		Highlighted: highlight.Annotate(review, keywords),
		Truncated:   blob.Truncated,
	}, nil
}
