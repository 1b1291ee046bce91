// Package pipeline wires the input collector, prompt builder, completion
// client and postprocessors into the three request/response pipelines:
// grammar correction, paper review, and chat replies.
//
// Every pipeline is strictly linear and synchronous: collect input, build a
// prompt, make the completion call(s), postprocess, return. Empty input
// short-circuits before any completion call; extraction failures abort
// before the prompt builder runs.
package pipeline

import (
	"github.com/tmorimoto/writedesk/internal/collect"
	"github.com/tmorimoto/writedesk/internal/prompt"
)

// Input is one pipeline request: either direct text or a document path,
// plus the discrete configuration selections.
type Input struct {
	Text string
	Path string

	Tone       prompt.Tone
	Audience   prompt.Audience
	ReviewType prompt.ReviewType
}

// collectInput resolves an Input into a text blob. A document path takes
// precedence over direct text.
func collectInput(in Input) (collect.Blob, error) {
	if in.Path != "" {
		return collect.FromFile(in.Path)
	}
	return collect.FromText(in.Text), nil
}
