package highlight

import (
	"regexp"
	"strings"
)

// Markers wrapped around each matched keyword occurrence.
const (
	MarkOpen  = "<mark>"
	MarkClose = "</mark>"
)

// Annotate wraps every case-insensitive whole-word occurrence of every
// keyword in highlight markers, preserving the original casing of the
// matched text.
//
// The set's descending-length order becomes alternation order in a single
// combined pattern, so longer terms match before shorter substrings they
// contain and nothing is wrapped twice. Annotate is single-pass: running it
// over its own output would nest markers, so callers apply it exactly once.
func Annotate(text string, keywords KeywordSet) string {
	if text == "" || len(keywords) == 0 {
		return text
	}

	alts := make([]string, len(keywords))
	for i, kw := range keywords {
		alts[i] = regexp.QuoteMeta(kw)
	}
	re, err := regexp.Compile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
	if err != nil {
		// Quoted alternation of plain terms should always compile.
		return text
	}

	return re.ReplaceAllStringFunc(text, func(match string) string {
		return MarkOpen + match + MarkClose
	})
}
