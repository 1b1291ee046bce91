// Package collect normalizes user input into a single text blob.
//
// Input arrives either as directly typed text or as an uploaded document
// (PDF, HTML, plain text). Either way the result is one trimmed string,
// truncated to a bounded length with a warning flag rather than an error.
package collect

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxTextLen is the truncation threshold for collected text, in characters.
const MaxTextLen = 15000

// Blob is the normalized input text for one request.
type Blob struct {
	Text      string
	Truncated bool
	Source    string // "text", "pdf", "html" or "file"
}

// ExtractionError indicates an unreadable or unparseable uploaded document.
// The request aborts; downstream pipeline stages are never invoked.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// FromText normalizes directly typed text. Empty input yields an empty
// blob, not an error.
func FromText(text string) Blob {
	return bound(normalize(text), "text", MaxTextLen)
}

// FromTextN is FromText with a caller-supplied truncation threshold.
// A non-positive max falls back to MaxTextLen.
func FromTextN(text string, max int) Blob {
	if max <= 0 {
		max = MaxTextLen
	}
	return bound(normalize(text), "text", max)
}

// FromFile extracts text from a document, dispatching on file extension.
// Unsupported or unreadable documents return an *ExtractionError.
func FromFile(path string) (Blob, error) {
	var (
		text   string
		source string
		err    error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		source = "pdf"
		text, err = extractPDF(path)
	case ".html", ".htm":
		source = "html"
		text, err = extractHTML(path)
	case ".txt", ".text", ".md", ".markdown":
		source = "file"
		text, err = readTextFile(path)
	default:
		return Blob{}, &ExtractionError{Path: path, Err: fmt.Errorf("unsupported format %q", filepath.Ext(path))}
	}
	if err != nil {
		return Blob{}, &ExtractionError{Path: path, Err: err}
	}

	return bound(normalize(text), source, MaxTextLen), nil
}

// bound truncates text to max characters, flagging rather than failing.
// The limit counts runes, not bytes, so multibyte text is never cut
// mid-character.
func bound(text, source string, max int) Blob {
	blob := Blob{Text: text, Source: source}
	if utf8.RuneCountInString(text) > max {
		runes := []rune(text)
		blob.Text = string(runes[:max])
		blob.Truncated = true
	}
	return blob
}

var excessBlankLines = regexp.MustCompile(`\n\n\n+`)

// normalize unifies line endings, collapses runs of blank lines and trims
// the result.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	text = strings.Join(lines, "\n")

	text = excessBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
