// Package http holds the HTTP clients shared by the translation backends and
// the scripture lookup, plus request retry.
package http

import (
	"net/http"
	"time"

	"service-slides/internal/config"
)

// NewPooledClient returns a client with the given overall request timeout.
// Idle connection limits come from the config package.
func NewPooledClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        config.HTTPMaxIdleConns,
			MaxIdleConnsPerHost: config.HTTPMaxIdleConnsPerHost,
			IdleConnTimeout:     config.HTTPIdleConnTimeout,
		},
	}
}

var (
	// GeminiClient sends one generateContent call per lyric section.
	GeminiClient = NewPooledClient(config.HTTPTimeout)

	// DeepSeekClient sends one chat completion per lyric line, so it keeps
	// connections warm across a whole song.
	DeepSeekClient = NewPooledClient(config.HTTPTimeout)

	// BibleClient fetches passages from bible-api.com.
	BibleClient = NewPooledClient(config.BibleAPITimeout)
)
