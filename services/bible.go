package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"service-slides/internal/config"
	"service-slides/internal/content"
	internalhttp "service-slides/internal/http"
	"service-slides/internal/logger"
)

// BibleAPISource looks passages up on bible-api.com.
type BibleAPISource struct {
	baseURL string
	client  *http.Client
	retry   internalhttp.RetryConfig
}

// NewBibleAPISource creates a source for the given API root. Empty uses the public endpoint.
func NewBibleAPISource(baseURL string) *BibleAPISource {
	if baseURL == "" {
		baseURL = config.BibleAPIEndpoint
	}
	return &BibleAPISource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  internalhttp.BibleClient,
		retry:   internalhttp.DefaultRetryConfig(),
	}
}

type bibleAPIResponse struct {
	Reference       string `json:"reference"`
	TranslationID   string `json:"translation_id"`
	TranslationName string `json:"translation_name"`
	Verses          []struct {
		BookName string `json:"book_name"`
		Chapter  int    `json:"chapter"`
		Verse    int    `json:"verse"`
		Text     string `json:"text"`
	} `json:"verses"`
	Error string `json:"error"`
}

// Lookup returns one string per verse, each ending in a newline.
func (s *BibleAPISource) Lookup(ctx context.Context, reference, translationCode string) ([]string, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("%w: empty reference", content.ErrNotFound)
	}

	u := s.baseURL + "/" + url.PathEscape(reference)
	if translationCode != "" {
		u += "?translation=" + url.QueryEscape(strings.ToLower(translationCode))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := internalhttp.DoWithRetry(ctx, s.client, req, s.retry)
	if err != nil {
		return nil, fmt.Errorf("bible lookup failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", content.ErrNotFound, reference)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bible API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result bibleAPIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if result.Error != "" || len(result.Verses) == 0 {
		return nil, fmt.Errorf("%w: %s", content.ErrNotFound, reference)
	}

	verses := make([]string, 0, len(result.Verses))
	for _, v := range result.Verses {
		verses = append(verses, normalizeVerse(v.Text))
	}

	logger.Debug("Fetched %s (%s): %d verses", result.Reference, result.TranslationID, len(verses))
	return verses, nil
}

// normalizeVerse trims a verse and gives it exactly one trailing newline.
func normalizeVerse(s string) string {
	return strings.TrimSpace(s) + "\n"
}
