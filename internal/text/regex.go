// Package text provides text processing utilities for lyrics, scripture and translations.
package text

import "regexp"

// Pre-compiled regex patterns shared by the lyrics parser and the translation backends.
var (
	// SectionLabelRegex matches a single bracketed label line such as [Verse 1]
	SectionLabelRegex = regexp.MustCompile(`^\[([^\[\]]+)\]$`)

	// CodeFenceRegex matches markdown fences that chat models wrap around plain output
	CodeFenceRegex = regexp.MustCompile("^```[A-Za-z]*$")

	// LiveSuffixRegex matches a trailing "(live)" marker on song titles
	LiveSuffixRegex = regexp.MustCompile(`(?i)\s*\(live\)\s*$`)

	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// SectionLabel returns the label of a bracketed section line.
func SectionLabel(line string) (string, bool) {
	m := SectionLabelRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return whitespaceRegex.ReplaceAllString(m[1], " "), true
}
