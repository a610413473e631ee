package translation

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"service-slides/internal/content"
	"service-slides/internal/logger"
)

func init() {
	logger.SetOutput(io.Discard)
}

// fakeAligned returns a fixed response and counts calls.
type fakeAligned struct {
	response string
	err      error
	calls    int
}

func (f *fakeAligned) TranslateAligned(ctx context.Context, text, target, source string) (string, error) {
	f.calls++
	return f.response, f.err
}

// fakeLine prefixes each line with the target language and counts calls.
type fakeLine struct {
	err   error
	calls int
	seen  []string
}

func (f *fakeLine) TranslateLine(ctx context.Context, text, target string) (string, error) {
	f.calls++
	f.seen = append(f.seen, text)
	if f.err != nil {
		return "", f.err
	}
	return target + ":" + text, nil
}

const twoLines = "Amazing grace how sweet the sound\nThat saved a wretch like me"

func TestTranslateChunked_Aligned(t *testing.T) {
	aligned := &fakeAligned{response: "Amazing grace how sweet the sound\n奇异恩典 何等甘甜\nThat saved a wretch like me\n我罪已得赦免"}
	line := &fakeLine{}
	p := NewPipeline(aligned, line, nil)

	res, err := p.TranslateChunked(context.Background(), twoLines, "Chinese (Simplified)", "")
	if err != nil {
		t.Fatalf("TranslateChunked() error = %v", err)
	}
	if res.Backend != content.BackendAligned {
		t.Errorf("Backend = %q, want aligned", res.Backend)
	}
	if len(res.Pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(res.Pairs))
	}
	if res.Pairs[1].Translated != "我罪已得赦免" {
		t.Errorf("Pairs[1].Translated = %q", res.Pairs[1].Translated)
	}
	if line.calls != 0 {
		t.Errorf("line backend called %d times, want 0", line.calls)
	}
}

func TestTranslateChunked_OddResponseFallsBack(t *testing.T) {
	aligned := &fakeAligned{response: "Amazing grace how sweet the sound\n奇异恩典 何等甘甜\nThat saved a wretch like me"}
	line := &fakeLine{}
	p := NewPipeline(aligned, line, nil)

	res, err := p.TranslateChunked(context.Background(), twoLines, "Korean", "English")
	if err != nil {
		t.Fatalf("TranslateChunked() error = %v", err)
	}
	if res.Backend != content.BackendIndependent {
		t.Errorf("Backend = %q, want independent", res.Backend)
	}
	if line.calls != 2 {
		t.Errorf("line backend called %d times, want 2", line.calls)
	}
	if res.Pairs[0].Translated != "Korean:Amazing grace how sweet the sound" {
		t.Errorf("Pairs[0].Translated = %q", res.Pairs[0].Translated)
	}
}

func TestTranslateChunked_ShortEvenResponseFallsBack(t *testing.T) {
	aligned := &fakeAligned{response: "Line one\n一\nSomething else\n二"}
	line := &fakeLine{}
	p := NewPipeline(aligned, line, nil)

	res, err := p.TranslateChunked(context.Background(), "Line one\nLine two\nLine three\nLine four", "Chinese (Simplified)", "")
	if err != nil {
		t.Fatalf("TranslateChunked() error = %v", err)
	}
	if res.Backend != content.BackendIndependent {
		t.Errorf("Backend = %q, want independent", res.Backend)
	}
	if len(res.Pairs) != 4 {
		t.Fatalf("got %d pairs, want 4", len(res.Pairs))
	}
	for i, want := range []string{"Line one", "Line two", "Line three", "Line four"} {
		if res.Pairs[i].Original != want {
			t.Errorf("Pairs[%d].Original = %q, want %q", i, res.Pairs[i].Original, want)
		}
	}
	if p.Cache().Len() != 4 {
		t.Errorf("cache has %d entries, want only the 4 line translations", p.Cache().Len())
	}
}

func TestTranslateChunked_AlignedKeepsRequestedOriginals(t *testing.T) {
	aligned := &fakeAligned{response: "Line one\n一\nSomething else\n二"}
	p := NewPipeline(aligned, &fakeLine{}, nil)

	res, err := p.TranslateChunked(context.Background(), "Line one\nLine two", "Chinese (Simplified)", "")
	if err != nil {
		t.Fatalf("TranslateChunked() error = %v", err)
	}
	if res.Backend != content.BackendAligned {
		t.Errorf("Backend = %q, want aligned", res.Backend)
	}
	if res.Pairs[1].Original != "Line two" || res.Pairs[1].Translated != "二" {
		t.Errorf("Pairs[1] = %+v, want requested line with its translation", res.Pairs[1])
	}
}

func TestTranslateChunked_AlignedRestoresBlankLines(t *testing.T) {
	aligned := &fakeAligned{response: "first\nFIRST\nthird\nTHIRD"}
	line := &fakeLine{}
	p := NewPipeline(aligned, line, nil)

	res, err := p.TranslateChunked(context.Background(), "first\n\nthird", "Korean", "")
	if err != nil {
		t.Fatalf("TranslateChunked() error = %v", err)
	}
	if res.Backend != content.BackendAligned || len(res.Pairs) != 3 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Pairs[1].HasTranslation || res.Pairs[2].Translated != "THIRD" {
		t.Errorf("unexpected pairs: %+v", res.Pairs)
	}
	if line.calls != 0 {
		t.Errorf("line backend called %d times, want 0", line.calls)
	}
}

func TestTranslateChunked_BackendErrorFallsBack(t *testing.T) {
	aligned := &fakeAligned{err: errors.New("quota exceeded")}
	line := &fakeLine{}
	p := NewPipeline(aligned, line, nil)

	res, err := p.TranslateChunked(context.Background(), twoLines, "Korean", "English")
	if err != nil {
		t.Fatalf("TranslateChunked() error = %v", err)
	}
	if res.Backend != content.BackendIndependent {
		t.Errorf("Backend = %q, want independent", res.Backend)
	}
}

func TestTranslateChunked_NoAlignedBackend(t *testing.T) {
	line := &fakeLine{}
	p := NewPipeline(nil, line, nil)

	res, err := p.TranslateChunked(context.Background(), twoLines, "Korean", "")
	if err != nil {
		t.Fatalf("TranslateChunked() error = %v", err)
	}
	if res.Backend != content.BackendIndependent || len(res.Pairs) != 2 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestTranslateChunked_FallbackFailureSurfaces(t *testing.T) {
	aligned := &fakeAligned{response: "only one line"}
	line := &fakeLine{err: errors.New("network down")}
	p := NewPipeline(aligned, line, nil)

	_, err := p.TranslateChunked(context.Background(), twoLines, "Korean", "")
	var be *BackendError
	if !errors.As(err, &be) {
		t.Fatalf("error = %v, want *BackendError", err)
	}
	if !strings.Contains(be.Error(), "network down") {
		t.Errorf("BackendError should wrap cause, got %q", be.Error())
	}
}

func TestTranslateChunked_BlankLinesPassThrough(t *testing.T) {
	aligned := &fakeAligned{err: errors.New("unavailable")}
	line := &fakeLine{}
	p := NewPipeline(aligned, line, nil)

	res, err := p.TranslateChunked(context.Background(), "first\n\nthird", "Korean", "")
	if err != nil {
		t.Fatalf("TranslateChunked() error = %v", err)
	}
	if len(res.Pairs) != 3 {
		t.Fatalf("got %d pairs, want 3", len(res.Pairs))
	}
	if res.Pairs[1].HasTranslation || res.Pairs[1].Original != "" {
		t.Errorf("blank line should pass through untranslated, got %+v", res.Pairs[1])
	}
	if line.calls != 2 {
		t.Errorf("line backend called %d times, want 2", line.calls)
	}
}

func TestTranslateChunked_CachesAlignedResult(t *testing.T) {
	aligned := &fakeAligned{response: "a\nA\nb\nB"}
	p := NewPipeline(aligned, &fakeLine{}, nil)

	first, err := p.TranslateChunked(context.Background(), "a\nb", "Korean", "English")
	if err != nil {
		t.Fatalf("first call error = %v", err)
	}
	second, err := p.TranslateChunked(context.Background(), "a\nb", "Korean", "English")
	if err != nil {
		t.Fatalf("second call error = %v", err)
	}

	if aligned.calls != 1 {
		t.Errorf("aligned backend called %d times, want 1", aligned.calls)
	}
	if len(first.Pairs) != len(second.Pairs) || first.Pairs[1] != second.Pairs[1] || first.Backend != second.Backend {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestTranslateChunked_CacheKeyIncludesLanguages(t *testing.T) {
	aligned := &fakeAligned{response: "a\nA"}
	p := NewPipeline(aligned, &fakeLine{}, nil)

	p.TranslateChunked(context.Background(), "a", "Korean", "English")
	p.TranslateChunked(context.Background(), "a", "Japanese", "English")
	p.TranslateChunked(context.Background(), "a", "Korean", "Spanish")

	if aligned.calls != 3 {
		t.Errorf("aligned backend called %d times, want 3", aligned.calls)
	}
}

func TestTranslateChunked_DefaultSourceSharesCache(t *testing.T) {
	aligned := &fakeAligned{response: "a\nA"}
	p := NewPipeline(aligned, &fakeLine{}, nil)

	p.TranslateChunked(context.Background(), "a", "Korean", "")
	p.TranslateChunked(context.Background(), "a", "Korean", DefaultSourceLanguage)

	if aligned.calls != 1 {
		t.Errorf("aligned backend called %d times, want 1", aligned.calls)
	}
}

func TestTranslateChunked_FailedAlignedIsRetried(t *testing.T) {
	aligned := &fakeAligned{response: "odd"}
	line := &fakeLine{}
	p := NewPipeline(aligned, line, nil)

	p.TranslateChunked(context.Background(), "a", "Korean", "")
	p.TranslateChunked(context.Background(), "a", "Korean", "")

	if aligned.calls != 2 {
		t.Errorf("aligned backend called %d times, want 2 (failures are not cached)", aligned.calls)
	}
	if line.calls != 1 {
		t.Errorf("line backend called %d times, want 1 (lines are cached)", line.calls)
	}
}

func TestTranslateChunked_LineCacheSharedAcrossChunks(t *testing.T) {
	line := &fakeLine{}
	p := NewPipeline(nil, line, nil)

	p.TranslateChunked(context.Background(), "Hallelujah\nAmen", "Korean", "")
	p.TranslateChunked(context.Background(), "Amen\nHallelujah", "Korean", "")

	if line.calls != 2 {
		t.Errorf("line backend called %d times, want 2", line.calls)
	}
	if p.Cache().Len() != 2 {
		t.Errorf("cache has %d entries, want 2", p.Cache().Len())
	}
}

func TestTranslateChunked_LineCacheIgnoresSource(t *testing.T) {
	line := &fakeLine{}
	p := NewPipeline(nil, line, nil)

	p.TranslateChunked(context.Background(), "Amen", "Korean", "English")
	p.TranslateChunked(context.Background(), "Amen", "Korean", "Spanish")

	if line.calls != 1 {
		t.Errorf("line backend called %d times, want 1", line.calls)
	}
}

func TestTranslateChunked_EmptyInput(t *testing.T) {
	aligned := &fakeAligned{response: "x\ny"}
	line := &fakeLine{}
	p := NewPipeline(aligned, line, nil)

	res, err := p.TranslateChunked(context.Background(), "\n  \n", "Korean", "")
	if err != nil {
		t.Fatalf("TranslateChunked() error = %v", err)
	}
	if aligned.calls != 0 || line.calls != 0 {
		t.Errorf("no backend should be called for blank input")
	}
	for _, pair := range res.Pairs {
		if pair.HasTranslation {
			t.Errorf("blank pair should not carry a translation: %+v", pair)
		}
	}
}

func TestTranslateSection(t *testing.T) {
	aligned := &fakeAligned{response: "x\nX\ny\nY"}
	p := NewPipeline(aligned, nil, NewCache())

	section := content.Section{Name: "Chorus", Units: content.NewUnits([]string{"x", "y"})}
	res, err := p.TranslateSection(context.Background(), section, "Korean", "")
	if err != nil {
		t.Fatalf("TranslateSection() error = %v", err)
	}
	if len(res.Pairs) != 2 || res.Pairs[0].Original != "x" {
		t.Errorf("unexpected pairs: %+v", res.Pairs)
	}
}

func TestParseAligned(t *testing.T) {
	tests := []struct {
		name     string
		response string
		pairs    int
		wantErr  bool
	}{
		{"even", "a\nA\nb\nB", 2, false},
		{"blank lines ignored", "a\n\nA\n\nb\nB\n", 2, false},
		{"code fence ignored", "```text\na\nA\n```", 1, false},
		{"odd", "a\nA\nb", 0, true},
		{"empty", "   ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originals, translated, err := ParseAligned(tt.response)
			if tt.wantErr {
				if !errors.Is(err, ErrAlignmentParse) {
					t.Errorf("error = %v, want ErrAlignmentParse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(originals) != tt.pairs || len(translated) != tt.pairs {
				t.Errorf("got %d/%d, want %d pairs", len(originals), len(translated), tt.pairs)
			}
		})
	}
}
