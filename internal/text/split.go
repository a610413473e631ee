package text

import "strings"

// SplitLines splits text on newlines, accepting CRLF, and trims trailing whitespace on each line.
// A single trailing newline does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return lines
}

// NonEmptyLines returns the trimmed lines of text that are not blank.
func NonEmptyLines(text string) []string {
	lines := SplitLines(text)
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
