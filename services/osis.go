package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/antchfx/xmlquery"

	"service-slides/internal/content"
	"service-slides/internal/logger"
)

// OSISSource reads verses from a local OSIS XML bible. Only container
// verses (<verse osisID="John.3.16">text</verse>) are supported.
type OSISSource struct {
	path string

	once sync.Once
	doc  *xmlquery.Node
	err  error
}

// NewOSISSource creates a source for the OSIS file at path. The file is parsed on first lookup.
func NewOSISSource(path string) *OSISSource {
	return &OSISSource{path: path}
}

// NewOSISSourceFromBytes parses an in-memory OSIS document.
func NewOSISSourceFromBytes(data []byte) (*OSISSource, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing OSIS: %w", err)
	}
	s := &OSISSource{doc: doc}
	s.once.Do(func() {})
	return s, nil
}

func (s *OSISSource) load() (*xmlquery.Node, error) {
	s.once.Do(func() {
		f, err := os.Open(s.path)
		if err != nil {
			s.err = fmt.Errorf("opening OSIS file: %w", err)
			return
		}
		defer f.Close()

		s.doc, s.err = xmlquery.Parse(f)
		if s.err != nil {
			s.err = fmt.Errorf("parsing OSIS %s: %w", s.path, s.err)
			return
		}
		logger.Debug("Loaded OSIS bible from %s", s.path)
	})
	return s.doc, s.err
}

// Lookup returns the verses of reference in document order, each ending in a
// newline. The translation code is ignored since the file holds one translation.
func (s *OSISSource) Lookup(ctx context.Context, reference, translationCode string) ([]string, error) {
	ref, err := ParseReference(reference)
	if err != nil {
		return nil, err
	}

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	expr := fmt.Sprintf("//verse[starts-with(@osisID, '%s.')]", ref.OSIS)
	nodes, err := xmlquery.QueryAll(doc, expr)
	if err != nil {
		return nil, fmt.Errorf("querying OSIS: %w", err)
	}

	var verses []string
	for _, n := range nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chapter, verse, ok := parseOSISID(n.SelectAttr("osisID"), ref.OSIS)
		if !ok || !ref.Contains(chapter, verse) {
			continue
		}
		verses = append(verses, normalizeVerse(verseText(n)))
	}

	if len(verses) == 0 {
		return nil, fmt.Errorf("%w: %s", content.ErrNotFound, ref)
	}
	return verses, nil
}

// verseText returns the readable text of a verse, leaving out notes and titles.
func verseText(n *xmlquery.Node) string {
	var sb strings.Builder
	var walk func(*xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case xmlquery.TextNode, xmlquery.CharDataNode:
				sb.WriteString(c.Data)
			case xmlquery.ElementNode:
				switch c.Data {
				case "note", "title":
					continue
				case "l", "lb":
					if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
						sb.WriteString("\n")
					}
				}
				walk(c)
			}
		}
	}
	walk(n)

	lines := strings.Split(sb.String(), "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

// parseOSISID splits "John.3.16" into chapter and verse for the given book.
func parseOSISID(id, book string) (int, int, bool) {
	// osisID may list several verses separated by spaces; the first decides
	if i := strings.IndexByte(id, ' '); i >= 0 {
		id = id[:i]
	}
	parts := strings.Split(id, ".")
	if len(parts) != 3 || parts[0] != book {
		return 0, 0, false
	}
	chapter, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	verse, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, false
	}
	return chapter, verse, true
}
