package internal

import (
	"strings"
)

// SplitLines splits source text into lines. Both "\n" and "\r\n" end a
// line; text after the last line ending, even if empty, is the final line.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
