// Package highlight derives keyword sets from extraction responses and
// annotates completion text with highlight markers.
package highlight

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed keywords.json
var keywordSchema string

// KeywordSet is an ordered sequence of case-normalized, deduplicated terms,
// sorted by descending length so longer terms take highlighting precedence.
type KeywordSet []string

// ParseKeywords validates a keyword-extraction response against the embedded
// schema and normalizes it into a KeywordSet. The raw string must already be
// stripped of markdown fences (see llm.CleanJSONBlock).
func ParseKeywords(raw string) (KeywordSet, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(keywordSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("keyword response is not valid JSON: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("keyword response failed schema validation: %s", strings.Join(msgs, "; "))
	}

	var terms []string
	if err := json.Unmarshal([]byte(raw), &terms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keyword response: %w", err)
	}

	return NewKeywordSet(terms), nil
}

// NewKeywordSet normalizes raw terms: trims, lowercases, drops empties and
// duplicates, and sorts by descending length (ties alphabetical, for
// deterministic output).
func NewKeywordSet(terms []string) KeywordSet {
	seen := make(map[string]bool, len(terms))
	set := make(KeywordSet, 0, len(terms))
	for _, term := range terms {
		norm := strings.ToLower(strings.TrimSpace(term))
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		set = append(set, norm)
	}

	sort.Slice(set, func(i, j int) bool {
		if len(set[i]) != len(set[j]) {
			return len(set[i]) > len(set[j])
		}
		return set[i] < set[j]
	})

	return set
}
