package pipeline

import (
	"context"
	"strings"

	"github.com/tmorimoto/writedesk/internal/llm"
	"github.com/tmorimoto/writedesk/internal/prompt"
)

// CorrectionResult pairs the collected input with the corrected version.
// Both fields are verbatim; an all-empty result means the request carried
// no input and no completion call was made.
type CorrectionResult struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Truncated bool   `json:"truncated,omitempty"`
}

// Corrector runs the grammar-correction pipeline.
type Corrector struct {
	LLM llm.Client
}

// Run collects the input, builds the tone-conditioned prompt, and returns
// the original/corrected pair.
func (c *Corrector) Run(ctx context.Context, in Input) (*CorrectionResult, error) {
	blob, err := collectInput(in)
	if err != nil {
		return nil, err
	}
	if blob.Text == "" {
		return &CorrectionResult{}, nil
	}

	spec := prompt.Correction(blob.Text, in.Tone)
	out, err := c.LLM.Complete(ctx, llm.Request{
		System: spec.System,
		User:   spec.User,
		Tier:   llm.TierStandard,
	})
	if err != nil {
		return nil, err
	}

	return &CorrectionResult{
		Original:  blob.Text,
		Corrected: strings.TrimSpace(out),
		Truncated: blob.Truncated,
	}, nil
}
