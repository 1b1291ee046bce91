package pipeline

import (
	"context"
	"strings"

	"github.com/tmorimoto/writedesk/internal/llm"
	"github.com/tmorimoto/writedesk/internal/prompt"
	"github.com/tmorimoto/writedesk/internal/session"
)

// Responder runs the chat pipeline against a session transcript.
type Responder struct {
	LLM llm.Client
}

// Reply sends the user message with the prior transcript as context,
// appends the user and assistant records in that order, and returns the
// full transcript snapshot. A blank message is a no-op returning the
// unchanged transcript. On completion failure nothing is appended.
func (r *Responder) Reply(ctx context.Context, store *session.Store, userMessage string) ([]session.Record, error) {
	userMessage = strings.TrimSpace(userMessage)
	if userMessage == "" {
		return store.All(), nil
	}

	history := store.All()
	messages := make([]prompt.Message, len(history))
	for i, rec := range history {
		messages[i] = prompt.Message{Role: string(rec.Role), Content: rec.Content}
	}

	spec := prompt.ChatReply(messages, userMessage)
	out, err := r.LLM.Complete(ctx, llm.Request{
		System:      spec.System,
		User:        spec.User,
		Tier:        llm.TierStandard,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	store.Append(session.Record{Role: session.RoleUser, Content: userMessage})
	store.Append(session.Record{Role: session.RoleAssistant, Content: strings.TrimSpace(out)})

	return store.All(), nil
}
