package htmldoc

import (
	"regexp"
	"strings"
)

// Precompiled fence patterns.
var (
	// Opening fence, optionally tagged with a language name.
	leadingFence = regexp.MustCompile("^```[A-Za-z0-9_+-]*[ \t]*\r?\n")

	// Closing fence at end of input.
	trailingFence = regexp.MustCompile("\r?\n?```[ \t]*$")
)

// StripFences removes a single pair of leading/trailing triple-backtick
// fence markers, the leading one optionally tagged with a language name
// (```html, ```markdown, ...). Input without a complete fence pair is
// returned unchanged. Idempotent: applying it twice yields the same result
// as applying it once.
func StripFences(text string) string {
	trimmed := strings.TrimSpace(text)

	lead := leadingFence.FindString(trimmed)
	if lead == "" {
		return text
	}

	rest := trimmed[len(lead):]
	if !trailingFence.MatchString(rest) {
		return text
	}

	return strings.TrimSpace(trailingFence.ReplaceAllString(rest, ""))
}
