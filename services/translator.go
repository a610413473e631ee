package services

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"service-slides/internal/config"
	"service-slides/internal/text"
	"service-slides/internal/translation"
)

// TranslatorService uses Argos Translate (free, local, no API key)
type TranslatorService struct {
	pythonPath string
	sourceLang string
}

// NewTranslatorService creates an Argos translator. An empty pythonPath
// searches common install locations for one with argostranslate.
func NewTranslatorService(pythonPath string) *TranslatorService {
	if pythonPath == "" {
		pythonPath = findPythonWithArgos()
	}
	return &TranslatorService{
		pythonPath: pythonPath,
		sourceLang: "en",
	}
}

// WithSourceLanguage sets the language lines are translated from (name or code).
func (s *TranslatorService) WithSourceLanguage(lang string) *TranslatorService {
	if code, ok := text.GetLanguageCode(lang); ok {
		s.sourceLang = code
	}
	return s
}

// findPythonWithArgos searches for a Python installation that has argostranslate
func findPythonWithArgos() string {
	for _, p := range executableCandidates("python3") {
		cmd := exec.Command(p, "-c", "import argostranslate.translate; print('ok')")
		if output, err := cmd.Output(); err == nil && strings.TrimSpace(string(output)) == "ok" {
			return p
		}
	}

	// Fall back to python3 and let CheckInstalled report the error
	return "python3"
}

// CheckInstalled verifies Argos Translate is installed
func (s *TranslatorService) CheckInstalled() error {
	cmd := exec.Command(s.pythonPath, "-c", "import argostranslate.translate\nprint('ok')")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("argos translate not installed. Run: pip install argostranslate\nError: %s", string(output))
	}
	return nil
}

// argosCode maps a language name to the code Argos expects.
func argosCode(lang string) (string, error) {
	code, ok := text.GetLanguageCode(lang)
	if !ok {
		return "", fmt.Errorf("unsupported language %q", lang)
	}
	return code, nil
}

// TranslateLine translates one lyric line through a Python subprocess.
func (s *TranslatorService) TranslateLine(ctx context.Context, line, targetLanguage string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}

	target, err := argosCode(targetLanguage)
	if err != nil {
		return "", err
	}

	script := fmt.Sprintf(`
import argostranslate.translate
result = argostranslate.translate.translate('%s', '%s', '%s')
print(result)
`, text.EscapeForPython(line), s.sourceLang, target)

	ctx, cancel := context.WithTimeout(ctx, config.ExecTimeoutPython)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.pythonPath, "-c", script)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("translation failed: %w\nOutput: %s", err, string(output))
	}

	return text.Postprocess(string(output)), nil
}

var _ translation.LineTranslator = (*TranslatorService)(nil)
