package translation

import (
	"fmt"

	"service-slides/internal/content"
)

// Align pairs original lines with translated lines.
//
// In aligned mode the pairing was established by the backend, so the two
// slices must simply have equal length. In independent mode translated holds
// one entry per non-blank original; blank originals are re-inserted at their
// position as untranslated pairs.
func Align(originals []content.TextUnit, translated []string, mode content.Backend) ([]content.TranslationPair, error) {
	switch mode {
	case content.BackendAligned:
		if len(originals) != len(translated) {
			return nil, fmt.Errorf("%w: %d originals, %d translations", ErrLengthMismatch, len(originals), len(translated))
		}
		pairs := make([]content.TranslationPair, len(originals))
		for i, u := range originals {
			pairs[i] = content.TranslationPair{Original: u.Text, Translated: translated[i], HasTranslation: true}
		}
		return pairs, nil

	case content.BackendIndependent:
		nonBlank := 0
		for _, u := range originals {
			if !u.IsBlank() {
				nonBlank++
			}
		}
		if nonBlank != len(translated) {
			return nil, fmt.Errorf("%w: %d non-blank originals, %d translations", ErrLengthMismatch, nonBlank, len(translated))
		}

		pairs := make([]content.TranslationPair, len(originals))
		next := 0
		for i, u := range originals {
			if u.IsBlank() {
				pairs[i] = content.TranslationPair{Original: u.Text}
				continue
			}
			pairs[i] = content.TranslationPair{Original: u.Text, Translated: translated[next], HasTranslation: true}
			next++
		}
		return pairs, nil

	default:
		return nil, fmt.Errorf("unknown alignment mode %q", mode)
	}
}
