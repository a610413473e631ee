package services

import (
	"fmt"
	"io"
	"strings"

	"service-slides/internal/content"
)

// SongSlide is one song slide: a section label and its lines, each with an
// optional translation beneath it.
type SongSlide struct {
	Section string
	Lines   []content.TranslationPair
}

// Renderer turns paginated content into slides.
type Renderer interface {
	RenderScripture(title string, chunks []content.Chunk) error
	RenderSong(title, license string, slides []SongSlide) error
}

// OutlineRenderer writes a plain-text outline of the deck, one block per slide.
type OutlineRenderer struct {
	w      io.Writer
	slides int
}

// NewOutlineRenderer creates a renderer writing to w.
func NewOutlineRenderer(w io.Writer) *OutlineRenderer {
	return &OutlineRenderer{w: w}
}

// Slides returns the number of slides written so far.
func (r *OutlineRenderer) Slides() int {
	return r.slides
}

// RenderScripture writes one slide per chunk under a "Reference (VERSION)" heading.
func (r *OutlineRenderer) RenderScripture(title string, chunks []content.Chunk) error {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", title)
	for i, c := range chunks {
		fmt.Fprintf(&b, "\n--- %d/%d ---\n", i+1, len(chunks))
		b.WriteString(strings.TrimRight(c.Text(), "\n"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	r.slides += len(chunks)
	_, err := io.WriteString(r.w, b.String())
	return err
}

// RenderSong writes a title slide followed by the numbered lyric slides.
// Translated lines are indented under their original.
func (r *OutlineRenderer) RenderSong(title, license string, slides []SongSlide) error {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", title)
	if license != "" {
		b.WriteString(license)
		b.WriteString("\n")
	}
	for i, s := range slides {
		fmt.Fprintf(&b, "\n--- %s %d/%d ---\n", s.Section, i+1, len(slides))
		for _, p := range s.Lines {
			b.WriteString(p.Original)
			b.WriteString("\n")
			if p.HasTranslation {
				b.WriteString("    ")
				b.WriteString(p.Translated)
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\n")

	r.slides += len(slides) + 1
	_, err := io.WriteString(r.w, b.String())
	return err
}
