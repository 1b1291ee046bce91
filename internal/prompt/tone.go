package prompt

// Tone is one rewriting tone from a fixed, closed set. The zero value means
// no tone: the base persona is used unchanged.
type Tone string

// The closed tone set offered by the correction pipeline.
const (
	ToneNone       Tone = ""
	ToneFormal     Tone = "Formal"
	ToneAssertive  Tone = "Assertive"
	ToneNegative   Tone = "Negative"
	ToneSarcastic  Tone = "Sarcastic"
	ToneHumorous   Tone = "Humorous"
	ToneKafkaesque Tone = "Kafkaesque"
	ToneGenZ       Tone = "Gen-Z"
)

// toneClauses maps each tone to its persona clause. The slice order is the
// match priority: the first entry whose tone matches is the only clause
// applied, never a union.
var toneClauses = []struct {
	Tone   Tone
	Clause string
}{
	{ToneFormal, "Rewrite the text in a formal tone, suitable for professional correspondence."},
	{ToneAssertive, "Rewrite the text in an assertive tone. Be direct and confident without being rude."},
	{ToneNegative, "Rewrite the text in a negative tone, emphasizing drawbacks and concerns."},
	{ToneSarcastic, "Rewrite the text in a sarcastic tone, with dry wit and pointed irony."},
	{ToneHumorous, "Rewrite the text in a humorous tone. Keep it light and playful while preserving the meaning."},
	{ToneKafkaesque, "Rewrite the text in a Kafkaesque tone, making it surreal, nightmarish, and absurd. Use complex and disorienting language to create a sense of unease."},
	{ToneGenZ, "Rewrite the text in a Gen-Z tone, using slang and informal language. Make it sound trendy and relatable to a younger audience."},
}

// Tones returns the closed set of selectable tones, in match order.
func Tones() []Tone {
	out := make([]Tone, len(toneClauses))
	for i, tc := range toneClauses {
		out[i] = tc.Tone
	}
	return out
}

// ParseTone resolves a raw selection against the closed set by exact match.
// Empty or unknown selections resolve to ToneNone.
func ParseTone(s string) (Tone, bool) {
	if s == "" {
		return ToneNone, true
	}
	for _, tc := range toneClauses {
		if string(tc.Tone) == s {
			return tc.Tone, true
		}
	}
	return ToneNone, false
}

// toneClause returns the clause for a tone. First match against the ordered
// table wins; ToneNone and unknown tones contribute no clause.
func toneClause(t Tone) (string, bool) {
	for _, tc := range toneClauses {
		if tc.Tone == t {
			return tc.Clause, true
		}
	}
	return "", false
}
