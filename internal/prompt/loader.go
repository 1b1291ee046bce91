// Package prompt composes the system/user message pairs sent to the
// completion client. Templates are stored as JSON and embedded at compile
// time; configuration choices (tone, audience, review type) select clauses
// from fixed ordered tables so that "first match wins" is explicit.
package prompt

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed templates.json
var templateFiles embed.FS

var (
	templates     map[string]string
	templatesOnce sync.Once
	templatesErr  error
)

// Spec is a composed prompt: a system instruction plus a user message.
// Identical inputs always yield an identical Spec.
type Spec struct {
	System string
	User   string
}

// mustTemplate retrieves an embedded template by key, panicking if missing.
// Template keys are fixed at compile time, so a miss is a programming error.
func mustTemplate(key string) string {
	templatesOnce.Do(func() {
		data, err := templateFiles.ReadFile("templates.json")
		if err != nil {
			templatesErr = fmt.Errorf("failed to read templates: %w", err)
			return
		}
		templatesErr = json.Unmarshal(data, &templates)
	})
	if templatesErr != nil {
		panic(fmt.Sprintf("failed to load prompt templates: %v", templatesErr))
	}
	tmpl, ok := templates[key]
	if !ok {
		panic(fmt.Sprintf("prompt template %q not found", key))
	}
	return tmpl
}

// format replaces placeholders of the form {{.Key}} with values from data.
// Keys are applied in sorted order through a single Replacer pass, so the
// result is deterministic and inserted values are never rescanned for
// placeholders they happen to contain.
func format(template string, data map[string]string) string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(data))
	for _, key := range keys {
		pairs = append(pairs, "{{."+key+"}}", data[key])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
