package utils

import (
	"regexp"
	"strings"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON returns the trimmed body of the first fenced code block in text,
// optionally tagged json. Without a non-empty block the trimmed input is returned.
func ExtractJSON(text string) string {
	if m := fencedBlock.FindStringSubmatch(text); m != nil && m[1] != "" {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

// ContainsCodeBlock reports whether text has a fenced code block.
func ContainsCodeBlock(text string) bool {
	return strings.Contains(text, "```")
}
