// Package translation turns lyric chunks into bilingual line pairs.
//
// A Pipeline first asks an alignment-aware backend for interleaved
// original/translated lines. When that backend is unavailable or returns
// something that does not parse into pairs, every line is translated on its
// own through an independent backend instead.
package translation

import (
	"context"
	"errors"
	"fmt"
)

// DefaultSourceLanguage is assumed when a request does not name one.
const DefaultSourceLanguage = "English"

// AlignedTranslator translates a whole block of lines and is expected (not
// guaranteed) to answer with original and translated lines alternating.
type AlignedTranslator interface {
	TranslateAligned(ctx context.Context, text, targetLanguage, sourceLanguage string) (string, error)
}

// LineTranslator translates one line at a time with no alignment contract.
type LineTranslator interface {
	TranslateLine(ctx context.Context, text, targetLanguage string) (string, error)
}

// ProviderType identifies a translation provider.
type ProviderType string

const (
	ProviderGemini   ProviderType = "gemini"
	ProviderDeepSeek ProviderType = "deepseek"
	ProviderArgos    ProviderType = "argos"
	ProviderNone     ProviderType = "none"
)

var (
	// ErrAlignmentParse means the aligned response could not be split into pairs.
	ErrAlignmentParse = errors.New("aligned translation response is unusable")

	// ErrBackendUnavailable means no aligned backend is configured.
	ErrBackendUnavailable = errors.New("translation backend unavailable")

	// ErrLengthMismatch means originals and translations cannot be paired one-for-one.
	ErrLengthMismatch = errors.New("original and translated line counts differ")
)

// BackendError reports a failure of the independent backend. There is no
// further fallback, so it is returned to the caller.
type BackendError struct {
	Line string
	Err  error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("independent translation failed for %q: %v", e.Line, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
