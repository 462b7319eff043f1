// Package fields extracts single scalar values from the full text of one
// Alabama SJIS case-detail document. Every getter follows the same
// contract: run one anchored pattern against the whole text and return the
// captured value, or the field's zero default when the pattern is absent or
// the value will not coerce. Getters never return an error and never panic,
// whatever the input.
//
// The document has no real field delimiters; labels run together, so many
// captures pick up the first letter of the following label. The per-field
// trailing-letter trims below (TrimRight "C", "T", "J", ...) are a fixed
// workaround table tied to the document layout. Do not re-derive them.
package fields

import (
	"regexp"
	"strconv"
	"strings"
)

// search runs re against text and returns capture group n. The boolean
// reports whether the pattern matched at all; callers collapse false to
// their field default.
func search(re *regexp.Regexp, text string, n int) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil || n >= len(m) {
		return "", false
	}
	return m[n], true
}

// searchAll returns every capture of group n across the text, in order.
func searchAll(re *regexp.Regexp, text string, n int) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if n < len(m) {
			out = append(out, m[n])
		}
	}
	return out
}

// money parses a dollar token, tolerating $ signs, commas, and padding.
// Failures report false rather than an error.
func money(s string) (float64, bool) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// joinAll formats a repeated field (sentencing blocks may appear once per
// sentence) as a comma-joined list.
func joinAll(re *regexp.Regexp, text string, n int) string {
	return strings.TrimSpace(strings.Join(searchAll(re, text, n), ", "))
}
