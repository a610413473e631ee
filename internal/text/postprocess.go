package text

import (
	"strings"
	"unicode"
)

// Postprocess cleans up a single translated line.
// It trims whitespace, collapses runs of spaces and strips wrapping quotes a model may add.
func Postprocess(text string) string {
	if text == "" {
		return ""
	}

	text = strings.TrimSpace(text)
	text = whitespaceRegex.ReplaceAllString(text, " ")

	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}

	return text
}

// TitleCase upper-cases the first letter of every word and lower-cases the rest,
// the way song folders and scripture references are labelled.
func TitleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	runes := []rune(strings.ToLower(s))
	startOfWord := true
	for i, r := range runes {
		if startOfWord && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
		}
		startOfWord = !unicode.IsLetter(r) && r != '\''
	}
	return string(runes)
}

// CleanSongTitle strips "(live)" markers and normalises casing of a song title.
func CleanSongTitle(title string) string {
	title = strings.TrimSpace(title)
	title = LiveSuffixRegex.ReplaceAllString(title, "")
	return TitleCase(title)
}
