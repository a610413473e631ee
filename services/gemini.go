package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"service-slides/internal/config"
	internalhttp "service-slides/internal/http"
	"service-slides/internal/translation"
)

// GeminiService asks Gemini for a line-by-line song translation with
// original and translated lines alternating.
type GeminiService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiService creates a Gemini client using the shared pooled HTTP client.
func NewGeminiService(apiKey, model string) *GeminiService {
	if model == "" {
		model = config.GeminiModel
	}
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: config.GeminiAPIEndpoint,
		client:  internalhttp.GeminiClient,
	}
}

// WithBaseURL points the service at a different API root.
func (s *GeminiService) WithBaseURL(url string) *GeminiService {
	s.baseURL = strings.TrimRight(url, "/")
	return s
}

// CheckAPIKey validates that the API key is set
func (s *GeminiService) CheckAPIKey() error {
	if s.apiKey == "" {
		return fmt.Errorf("Gemini API key is not configured")
	}
	return nil
}

func alignedPrompt(text, targetLanguage, sourceLanguage string) string {
	return fmt.Sprintf(`You are a song translator. For the song below, please translate the song line by line into %[2]s.

Make sure the number of syllables on each %[2]s line match up with the number of syllables in each %[1]s line.

Since this song is going to be sung in church matching the syllables in each %[2]s line to the number of syllables in each %[1]s line is also very important.

Make sure your output format alternates lines of %[1]s and %[2]s. For example

%[1]s LINE
%[2]s LINE
%[1]s LINE
%[2]s LINE

%[3]s

DO NOT PROVIDE ANY OTHER OUTPUTS OTHER THAN THE SONG LINES IN THE FORMAT ABOVE
`, sourceLanguage, targetLanguage, text)
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// TranslateAligned returns the raw model output. It is expected, not
// guaranteed, to alternate original and translated lines.
func (s *GeminiService) TranslateAligned(ctx context.Context, text, targetLanguage, sourceLanguage string) (string, error) {
	if err := s.CheckAPIKey(); err != nil {
		return "", err
	}
	if sourceLanguage == "" {
		sourceLanguage = translation.DefaultSourceLanguage
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: alignedPrompt(text, targetLanguage, sourceLanguage)}},
		}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     config.TranslationTemperature,
			MaxOutputTokens: config.TranslationMaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("Gemini API error (status %d): %s", resp.StatusCode, string(respBody))
		}
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if result.Error != nil && result.Error.Message != "" {
			return "", fmt.Errorf("Gemini API error: %s", result.Error.Message)
		}
		return "", fmt.Errorf("Gemini API error (status %d)", resp.StatusCode)
	}

	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	var out strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		out.WriteString(part.Text)
	}
	return out.String(), nil
}
