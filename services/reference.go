package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"service-slides/internal/content"
)

// ScriptureRange is a parsed reference such as "John 3:16-18" or "Psalm 23".
// A nil ChapterStart means the whole book.
type ScriptureRange struct {
	Book         string
	OSIS         string
	ChapterStart *int
	VerseStart   *int
	ChapterEnd   *int
	VerseEnd     *int
}

type referenceGrammar struct {
	Book         string `@Book`
	ChapterStart *int   `( @Number`
	VerseStart   *int   `( ":" @Number )?`
	ChapterEnd   *int   `( "-" ( @Number`
	VerseEnd     *int   `    ( ":" @Number )? )? )? )?`
}

var referenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Book", Pattern: `(?:\d\s*)?[A-Za-z]+(?:\s+(?:of\s+)?[A-Za-z]+)*\.?`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var referenceParser = participle.MustBuild[referenceGrammar](
	participle.Lexer(referenceLexer),
	participle.Elide("Whitespace"),
)

// ParseReference parses a scripture reference. Unknown books are reported as not found.
func ParseReference(input string) (*ScriptureRange, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(input), "–", "-")
	g, err := referenceParser.ParseString("", normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reference %q: %v", content.ErrNotFound, input, err)
	}

	book, ok := lookupBook(g.Book)
	if !ok {
		return nil, fmt.Errorf("%w: unknown book %q", content.ErrNotFound, g.Book)
	}

	ref := &ScriptureRange{
		Book:         book.Name,
		OSIS:         book.OSIS,
		ChapterStart: g.ChapterStart,
		VerseStart:   g.VerseStart,
		ChapterEnd:   g.ChapterEnd,
		VerseEnd:     g.VerseEnd,
	}

	// "John 3:16-18": the number after the dash is a verse, not a chapter
	if ref.VerseStart != nil && ref.ChapterEnd != nil && ref.VerseEnd == nil {
		ref.VerseEnd = ref.ChapterEnd
		ref.ChapterEnd = nil
	}

	return ref, nil
}

// Contains reports whether chapter:verse falls inside the range.
func (r *ScriptureRange) Contains(chapter, verse int) bool {
	if r.ChapterStart == nil {
		return true
	}

	startV := 0
	if r.VerseStart != nil {
		startV = *r.VerseStart
	}

	endC, endV := *r.ChapterStart, math.MaxInt
	switch {
	case r.ChapterEnd != nil:
		endC = *r.ChapterEnd
		if r.VerseEnd != nil {
			endV = *r.VerseEnd
		}
	case r.VerseEnd != nil:
		endV = *r.VerseEnd
	case r.VerseStart != nil:
		endV = *r.VerseStart
	}

	if chapter < *r.ChapterStart || (chapter == *r.ChapterStart && verse < startV) {
		return false
	}
	if chapter > endC || (chapter == endC && verse > endV) {
		return false
	}
	return true
}

// String returns the canonical form of the reference.
func (r *ScriptureRange) String() string {
	if r.ChapterStart == nil {
		return r.Book
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d", r.Book, *r.ChapterStart)
	if r.VerseStart != nil {
		fmt.Fprintf(&sb, ":%d", *r.VerseStart)
	}
	if r.ChapterEnd != nil {
		fmt.Fprintf(&sb, "-%d", *r.ChapterEnd)
		if r.VerseEnd != nil {
			fmt.Fprintf(&sb, ":%d", *r.VerseEnd)
		}
	} else if r.VerseEnd != nil {
		fmt.Fprintf(&sb, "-%d", *r.VerseEnd)
	}
	return sb.String()
}
