package prompt

import "strings"

// Correction builds the prompt for a grammar-correction request. The tone
// clause, when one matches, is appended to the base persona; at most one
// clause is ever applied.
func Correction(text string, tone Tone) Spec {
	system := mustTemplate("correction_persona")
	if clause, ok := toneClause(tone); ok {
		system += " " + clause
	}
	return Spec{
		System: system,
		User:   format(mustTemplate("correction_wrapper"), map[string]string{"Text": text}),
	}
}

// Review builds the prompt for a paper-review request.
func Review(text string, audience Audience, reviewType ReviewType) Spec {
	system := mustTemplate("review_persona")
	if clause, ok := reviewTypeClause(reviewType); ok {
		system += " " + clause
	}
	if clause, ok := audienceClause(audience); ok {
		system += " " + clause
	}
	return Spec{
		System: system,
		User:   format(mustTemplate("review_wrapper"), map[string]string{"Text": text}),
	}
}

// KeywordExtraction builds the auxiliary prompt whose JSON-array response
// feeds the highlighter.
func KeywordExtraction(text string) Spec {
	return Spec{
		System: mustTemplate("keyword_persona"),
		User:   format(mustTemplate("keyword_wrapper"), map[string]string{"Text": text}),
	}
}

// Message is one prior conversation turn rendered into a chat prompt.
type Message struct {
	Role    string
	Content string
}

// ChatReply builds the prompt for the next therapy-chat reply. The prior
// transcript is rendered into the user message so the whole exchange stays
// a single system/user pair.
func ChatReply(history []Message, userMessage string) Spec {
	var sb strings.Builder
	for _, m := range history {
		sb.WriteString(m.Role)
		sb.WriteString(": ")
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	historyBlock := sb.String()
	if historyBlock == "" {
		historyBlock = "(none)\n"
	}

	return Spec{
		System: mustTemplate("chat_persona"),
		User: format(mustTemplate("chat_wrapper"), map[string]string{
			"History": historyBlock,
			"Message": userMessage,
		}),
	}
}
