// Package config provides centralized defaults and constants for the slide builder.
package config

import "time"

// Pagination defaults
const (
	// ScriptureVersesPerSlide is the verse budget for one scripture slide.
	ScriptureVersesPerSlide = 2
	// ScriptureNewlinesPerSlide caps the line breaks inside one scripture slide.
	ScriptureNewlinesPerSlide = 4

	// SongLinesPerSection is the line budget for an untranslated song section.
	SongLinesPerSection = 4
	// TranslatedSongLinesPerSection halves the budget since every line gets a translation beneath it.
	TranslatedSongLinesPerSection = 2
	// SongNewlinesPerSlide caps line breaks in one song slide.
	SongNewlinesPerSlide = 8
)

// Lyrics file layout
const (
	LyricsHeaderLines = 2 // title, license
	LyricsFileSuffix  = "_Lyrics.txt"
)

// Default languages
const (
	DefaultSourceLanguage = "English"
	DefaultTargetLanguage = "Chinese (Simplified)"
	DefaultBibleVersion   = "web"
)

// Retry settings
const (
	DefaultMaxRetries     = 3
	DefaultRetryDelayBase = time.Second
)

// HTTP client settings
const (
	HTTPTimeout             = 2 * time.Minute
	HTTPMaxIdleConns        = 10
	HTTPMaxIdleConnsPerHost = 10
	HTTPIdleConnTimeout     = 90 * time.Second
	BibleAPITimeout         = 30 * time.Second
)

// API endpoints
const (
	GeminiAPIEndpoint   = "https://generativelanguage.googleapis.com/v1beta/models"
	DeepSeekAPIEndpoint = "https://api.deepseek.com/v1/chat/completions"
	BibleAPIEndpoint    = "https://bible-api.com"
)

// API models
const (
	GeminiModel   = "gemini-2.5-flash"
	DeepSeekModel = "deepseek-chat"
)

// Temperature settings for LLM calls
const (
	TranslationTemperature = 0.3
	TranslationMaxTokens   = 4096
)

// Exec command timeouts (for os/exec calls)
const (
	ExecTimeoutPython = 5 * time.Minute
)
