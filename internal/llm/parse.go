// Package llm - parse.go turns free-form LLM replies into typed records.
// Replies arrive with inconsistent formatting: markdown fences, preamble prose,
// embedded newlines, explicit nulls. Parsing tolerates all of it.
package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanJSONBlock extracts the JSON payload from an LLM reply.
// If the reply contains a ```json or ``` fence, the content between the first
// opening fence and its matching closing fence is returned; surrounding prose
// is discarded. Replies without fences are returned trimmed.
func CleanJSONBlock(text string) string {
	if i := strings.Index(text, "```json"); i >= 0 {
		rest := text[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}

	if i := strings.Index(text, "```"); i >= 0 {
		rest := text[i+3:]
		if j := strings.Index(rest, "```"); j >= 0 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}

	return strings.TrimSpace(text)
}

// DecodeRecord decodes a raw LLM reply into v after fence stripping.
// v should be pre-filled with its default values: encoding/json leaves a field
// untouched both when it is absent and when it is an explicit JSON null (for
// non-pointer types), so defaults survive exactly as if nulls were filtered
// out before decoding.
func DecodeRecord(raw string, v any) error {
	return json.Unmarshal([]byte(CleanJSONBlock(raw)), v)
}

// NormalizeDescription flattens a description into a single line: literal
// backslash-n sequences and real newlines become spaces, then whitespace runs
// collapse to one space. Descriptions must never carry embedded newlines.
func NormalizeDescription(s string) string {
	s = strings.ReplaceAll(s, `\n`, " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
