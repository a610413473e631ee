package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"service-slides/internal/content"
	"service-slides/internal/logger"
	"service-slides/internal/text"
)

// Result is the bilingual rendering of one chunk.
type Result struct {
	Pairs   []content.TranslationPair
	Backend content.Backend
}

type outcomeKind int

const (
	outcomeSuccess outcomeKind = iota
	outcomeParseFailure
	outcomeBackendFailure
)

func (k outcomeKind) String() string {
	switch k {
	case outcomeSuccess:
		return "success"
	case outcomeParseFailure:
		return "parse-failure"
	case outcomeBackendFailure:
		return "backend-failure"
	default:
		return "unknown"
	}
}

// outcome is the tagged result of the aligned stage.
type outcome struct {
	kind  outcomeKind
	pairs []content.TranslationPair
	err   error
}

// Pipeline translates chunks through an aligned backend with a per-line fallback.
type Pipeline struct {
	aligned AlignedTranslator
	line    LineTranslator
	cache   *Cache
}

// NewPipeline creates a pipeline. aligned may be nil, in which case every
// request goes straight to the line translator. A nil cache gets a fresh one.
func NewPipeline(aligned AlignedTranslator, line LineTranslator, cache *Cache) *Pipeline {
	if cache == nil {
		cache = NewCache()
	}
	return &Pipeline{aligned: aligned, line: line, cache: cache}
}

// Cache returns the pipeline's memo table.
func (p *Pipeline) Cache() *Cache {
	return p.cache
}

// TranslateChunked returns one pair per line of input.
//
// The aligned backend is tried first; any error or unparsable response
// falls back to translating each non-blank line independently. Only an
// independent backend failure is returned as an error.
func (p *Pipeline) TranslateChunked(ctx context.Context, input, targetLanguage, sourceLanguage string) (Result, error) {
	if sourceLanguage == "" {
		sourceLanguage = DefaultSourceLanguage
	}

	if len(text.NonEmptyLines(input)) == 0 {
		pairs, err := p.independentStage(ctx, input, targetLanguage)
		return Result{Pairs: pairs, Backend: content.BackendIndependent}, err
	}

	out := p.alignedStage(ctx, input, targetLanguage, sourceLanguage)
	if out.kind == outcomeSuccess {
		return Result{Pairs: out.pairs, Backend: content.BackendAligned}, nil
	}

	logger.WarnWithFields("aligned translation failed, translating line by line", map[string]interface{}{
		"outcome": out.kind.String(),
		"target":  targetLanguage,
		"reason":  out.err.Error(),
	})

	pairs, err := p.independentStage(ctx, input, targetLanguage)
	if err != nil {
		return Result{}, err
	}
	return Result{Pairs: pairs, Backend: content.BackendIndependent}, nil
}

// TranslateChunk translates the lines of one chunk.
func (p *Pipeline) TranslateChunk(ctx context.Context, chunk content.Chunk, targetLanguage, sourceLanguage string) (Result, error) {
	return p.TranslateChunked(ctx, content.JoinLines(chunk.Units), targetLanguage, sourceLanguage)
}

// TranslateSection translates every line of a section in one request.
func (p *Pipeline) TranslateSection(ctx context.Context, section content.Section, targetLanguage, sourceLanguage string) (Result, error) {
	return p.TranslateChunked(ctx, section.Text(), targetLanguage, sourceLanguage)
}

func (p *Pipeline) alignedStage(ctx context.Context, input, target, source string) outcome {
	if p.aligned == nil {
		return outcome{kind: outcomeBackendFailure, err: ErrBackendUnavailable}
	}

	key := CacheKey{Backend: content.BackendAligned, Text: input, Target: target, Source: source}
	response, cached := p.cache.Get(key)
	if !cached {
		var err error
		response, err = p.aligned.TranslateAligned(ctx, input, target, source)
		if err != nil {
			return outcome{kind: outcomeBackendFailure, err: err}
		}
	}

	_, translated, err := ParseAligned(response)
	if err != nil {
		return outcome{kind: outcomeParseFailure, err: err}
	}

	// Pair against the requested lines; the echoed originals are not trusted.
	units := lineUnits(input)
	pairs, err := Align(nonBlank(units), translated, content.BackendAligned)
	if err != nil {
		return outcome{kind: outcomeParseFailure, err: err}
	}
	pairs = restoreBlanks(units, pairs)

	if !cached {
		p.cache.Put(key, response)
	}
	return outcome{kind: outcomeSuccess, pairs: pairs}
}

func (p *Pipeline) independentStage(ctx context.Context, input, target string) ([]content.TranslationPair, error) {
	units := lineUnits(input)
	var translated []string

	for _, u := range units {
		if u.IsBlank() {
			continue
		}

		t, err := p.translateLine(ctx, u.Text, target)
		if err != nil {
			return nil, err
		}
		translated = append(translated, t)
	}

	return Align(units, translated, content.BackendIndependent)
}

// lineUnits splits input into trimmed units, blank lines included.
func lineUnits(input string) []content.TextUnit {
	lines := text.SplitLines(input)
	units := make([]content.TextUnit, len(lines))
	for i, line := range lines {
		units[i] = content.TextUnit{Index: i, Text: strings.TrimSpace(line)}
	}
	return units
}

func nonBlank(units []content.TextUnit) []content.TextUnit {
	out := make([]content.TextUnit, 0, len(units))
	for _, u := range units {
		if !u.IsBlank() {
			out = append(out, u)
		}
	}
	return out
}

// restoreBlanks re-inserts blank units as untranslated pairs around the
// pairs produced for the non-blank units.
func restoreBlanks(units []content.TextUnit, pairs []content.TranslationPair) []content.TranslationPair {
	out := make([]content.TranslationPair, 0, len(units))
	next := 0
	for _, u := range units {
		if u.IsBlank() {
			out = append(out, content.TranslationPair{Original: u.Text})
			continue
		}
		out = append(out, pairs[next])
		next++
	}
	return out
}

// translateLine keys its cache entry without a source language: line
// backends translate from the source they were constructed with.
func (p *Pipeline) translateLine(ctx context.Context, line, target string) (string, error) {
	if p.line == nil {
		return "", &BackendError{Line: line, Err: ErrBackendUnavailable}
	}

	key := CacheKey{Backend: content.BackendIndependent, Text: line, Target: target}
	if t, ok := p.cache.Get(key); ok {
		return t, nil
	}

	t, err := p.line.TranslateLine(ctx, line, target)
	if err != nil {
		var be *BackendError
		if errors.As(err, &be) {
			return "", err
		}
		return "", &BackendError{Line: line, Err: err}
	}

	t = text.Postprocess(t)
	p.cache.Put(key, t)
	return t, nil
}

// ParseAligned splits an interleaved response into originals and translations.
// Blank lines and markdown fences are ignored; the remaining line count must
// be even and non-zero, otherwise the whole response is rejected.
func ParseAligned(response string) ([]content.TextUnit, []string, error) {
	var lines []string
	for _, l := range text.SplitLines(strings.TrimSpace(response)) {
		l = strings.TrimSpace(l)
		if l == "" || text.CodeFenceRegex.MatchString(l) {
			continue
		}
		lines = append(lines, l)
	}

	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("%w: empty response", ErrAlignmentParse)
	}
	if len(lines)%2 != 0 {
		return nil, nil, fmt.Errorf("%w: odd line count %d", ErrAlignmentParse, len(lines))
	}

	originals := make([]content.TextUnit, 0, len(lines)/2)
	translated := make([]string, 0, len(lines)/2)
	for k := 0; 2*k+1 < len(lines); k++ {
		originals = append(originals, content.TextUnit{Index: k, Text: lines[2*k]})
		translated = append(translated, text.Postprocess(lines[2*k+1]))
	}
	return originals, translated, nil
}
