package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"service-slides/internal/config"
	internalhttp "service-slides/internal/http"
	"service-slides/internal/text"
	"service-slides/internal/translation"
)

// DeepSeekService translates single lines via the DeepSeek chat API.
// It is the line-by-line fallback when aligned translation fails.
type DeepSeekService struct {
	apiKey         string
	endpoint       string
	model          string
	sourceLanguage string
	client         *http.Client
}

// NewDeepSeekService creates a new DeepSeek translation service
func NewDeepSeekService(apiKey string) *DeepSeekService {
	return &DeepSeekService{
		apiKey:         apiKey,
		endpoint:       config.DeepSeekAPIEndpoint,
		model:          config.DeepSeekModel,
		sourceLanguage: translation.DefaultSourceLanguage,
		client:         internalhttp.DeepSeekClient,
	}
}

// WithEndpoint points the service at a different chat completions URL.
func (s *DeepSeekService) WithEndpoint(url string) *DeepSeekService {
	s.endpoint = url
	return s
}

// WithSourceLanguage sets the language lines are translated from.
func (s *DeepSeekService) WithSourceLanguage(lang string) *DeepSeekService {
	if lang != "" {
		s.sourceLanguage = lang
	}
	return s
}

// CheckAPIKey validates that the API key is set
func (s *DeepSeekService) CheckAPIKey() error {
	if s.apiKey == "" {
		return fmt.Errorf("DeepSeek API key is not configured")
	}
	return nil
}

// TranslateLine translates one lyric line. Blank input returns blank output without a request.
func (s *DeepSeekService) TranslateLine(ctx context.Context, line, targetLanguage string) (string, error) {
	if line == "" {
		return "", nil
	}
	if err := s.CheckAPIKey(); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Translate the following line of a worship song from %s to %s.
Keep it singable and close to the original meaning.
Return ONLY the translated line, with no explanations or quotes.

%s`, text.GetLanguageName(s.sourceLanguage), text.GetLanguageName(targetLanguage), line)

	// OpenAI-compatible format
	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": config.TranslationTemperature,
		"max_tokens":  config.TranslationMaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("DeepSeek API error: %s", errResp.Error.Message)
		}
		return "", fmt.Errorf("DeepSeek API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from DeepSeek")
	}

	return text.Postprocess(result.Choices[0].Message.Content), nil
}
