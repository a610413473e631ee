// Package lyrics parses bracket-tagged lyric files into named sections.
//
// A lyric file looks like:
//
//	Song title
//	CCLI licence annotation
//	[Verse 1]
//	first line
//	second line
//	[Chorus]
//	...
//
// The first two lines are a header. Each bracketed label opens a section and
// every following line belongs to it until the next label.
package lyrics

import (
	"errors"
	"fmt"
	"strings"

	"service-slides/internal/config"
	"service-slides/internal/content"
	"service-slides/internal/text"
)

// ErrMalformedSource is returned when lyric text has no recognisable section markers.
var ErrMalformedSource = errors.New("song lyrics are empty or unparsable")

// Song is a parsed lyric file.
type Song struct {
	Title    string
	License  string
	Sections []content.Section
}

// Structure splits raw lyric text into sections of at most maxLinesPerGroup lines.
// An overflowing section continues in a new section carrying the same name.
func Structure(raw string, maxLinesPerGroup int) ([]content.Section, error) {
	song, err := Parse(raw, maxLinesPerGroup)
	if err != nil {
		return nil, err
	}
	return song.Sections, nil
}

// Parse reads the header and sections of a lyric file.
func Parse(raw string, maxLinesPerGroup int) (*Song, error) {
	if maxLinesPerGroup < 1 {
		maxLinesPerGroup = 1
	}

	lines := text.SplitLines(raw)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no content", ErrMalformedSource)
	}

	song := &Song{Title: strings.TrimSpace(lines[0])}
	if len(lines) > 1 {
		song.License = strings.TrimSpace(lines[1])
	}

	var current *content.Section
	for _, line := range lines[min(config.LyricsHeaderLines, len(lines)):] {
		line = strings.TrimSpace(line)

		if label, ok := text.SectionLabel(line); ok {
			song.Sections = append(song.Sections, content.Section{Name: label})
			current = &song.Sections[len(song.Sections)-1]
			continue
		}

		if current == nil {
			continue
		}

		if len(current.Units) >= maxLinesPerGroup {
			song.Sections = append(song.Sections, content.Section{Name: current.Name})
			current = &song.Sections[len(song.Sections)-1]
		}

		current.Units = append(current.Units, content.TextUnit{Index: len(current.Units), Text: line})
	}

	if len(song.Sections) == 0 {
		return nil, fmt.Errorf("%w: no [section] markers in %q", ErrMalformedSource, song.Title)
	}

	return song, nil
}

// Clean trims every line and drops blank ones, normalising lyrics fetched
// from an external source before they are saved.
func Clean(raw string) string {
	return strings.Join(text.NonEmptyLines(raw), "\n")
}

// Format renders a song back into the lyric file layout.
func Format(title, license, body string) string {
	return strings.Join([]string{strings.TrimSpace(title), strings.TrimSpace(license), Clean(body)}, "\n")
}
