// Package content provides the text types shared by the slide segmentation and translation stages.
package content

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by scripture and lyrics sources when a reference or song does not resolve.
var ErrNotFound = errors.New("not found")

// TextUnit is one atomic piece of source text: a scripture verse or a lyric line.
type TextUnit struct {
	Index int
	Text  string
}

// Lines returns the number of newlines inside the unit's text.
func (u TextUnit) Lines() int {
	return strings.Count(u.Text, "\n")
}

// IsBlank returns true if the unit has no visible text.
func (u TextUnit) IsBlank() bool {
	return strings.TrimSpace(u.Text) == ""
}

// NewUnits wraps raw strings as units, numbering them in order.
func NewUnits(texts []string) []TextUnit {
	units := make([]TextUnit, len(texts))
	for i, t := range texts {
		units[i] = TextUnit{Index: i, Text: t}
	}
	return units
}

// Section is a named group of units. Scripture uses a single unnamed section.
type Section struct {
	Name  string
	Units []TextUnit
}

// Text returns the section's units joined one per line.
func (s Section) Text() string {
	return JoinLines(s.Units)
}

// Chunk is a bounded run of units destined for exactly one slide.
type Chunk struct {
	Section   string
	Units     []TextUnit
	LineCount int
}

// Text returns the unit texts concatenated as they appeared in the source.
func (c Chunk) Text() string {
	var b strings.Builder
	for _, u := range c.Units {
		b.WriteString(u.Text)
	}
	return b.String()
}

// Texts returns the raw text of each unit.
func (c Chunk) Texts() []string {
	texts := make([]string, len(c.Units))
	for i, u := range c.Units {
		texts[i] = u.Text
	}
	return texts
}

// Backend identifies which translation path produced a result.
type Backend string

const (
	BackendAligned     Backend = "aligned"
	BackendIndependent Backend = "independent"
)

// TranslationPair pairs one original line with its translation.
// Blank originals carry no translation.
type TranslationPair struct {
	Original       string
	Translated     string
	HasTranslation bool
}

// JoinLines joins unit texts with newlines.
func JoinLines(units []TextUnit) string {
	texts := make([]string, len(units))
	for i, u := range units {
		texts[i] = u.Text
	}
	return strings.Join(texts, "\n")
}
