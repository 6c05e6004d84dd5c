package utils

import "strings"

// StripCodeFences removes markdown code-fence markers that generative
// models wrap around JSON output despite being told not to. Text with no
// fences passes through unchanged apart from whitespace trimming.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
