package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"service-slides/internal/config"
	"service-slides/internal/text"
)

// Config holds application settings.
// Thresholds feed the paginator and lyrics structurer; providers pick translation backends.
type Config struct {
	// Languages
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language"`

	// Scripture source (api, osis)
	ScriptureSource string `json:"scripture_source"`
	BibleVersion    string `json:"bible_version"`
	BibleAPIURL     string `json:"bible_api_url"`
	OSISPath        string `json:"osis_path"`

	// Song library root: <dir>/<Title>/<Title>_Lyrics.txt
	SongsDirectory string `json:"songs_directory"`

	// Aligned provider (gemini, none)
	AlignedProvider string `json:"aligned_provider"`
	// Line-by-line fallback provider (deepseek, argos)
	LineProvider string `json:"line_provider"`

	// Gemini API settings
	GeminiKey   string `json:"gemini_key"`
	GeminiModel string `json:"gemini_model"`

	// DeepSeek API settings
	DeepSeekKey string `json:"deepseek_key"`

	// Argos runs through a local Python
	PythonPath string `json:"python_path"`

	// Pagination thresholds
	VersesPerSlide                int `json:"verses_per_slide"`
	NewlinesPerSlide              int `json:"newlines_per_slide"`
	SongLinesPerSection           int `json:"song_lines_per_section"`
	TranslatedSongLinesPerSection int `json:"translated_song_lines_per_section"`
	SongNewlinesPerSlide          int `json:"song_newlines_per_slide"`

	LogLevel string `json:"log_level"`
}

func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		TargetLanguage: config.DefaultTargetLanguage,
		SourceLanguage: config.DefaultSourceLanguage,

		ScriptureSource: "api",
		BibleVersion:    config.DefaultBibleVersion,
		BibleAPIURL:     config.BibleAPIEndpoint,

		SongsDirectory: filepath.Join(homeDir, "Songs"),

		AlignedProvider: "gemini",
		LineProvider:    "argos",

		GeminiModel: config.GeminiModel,
		PythonPath:  "python3",

		VersesPerSlide:                config.ScriptureVersesPerSlide,
		NewlinesPerSlide:              config.ScriptureNewlinesPerSlide,
		SongLinesPerSection:           config.SongLinesPerSection,
		TranslatedSongLinesPerSection: config.TranslatedSongLinesPerSection,
		SongNewlinesPerSlide:          config.SongNewlinesPerSlide,

		LogLevel: "info",
	}
}

func (c *Config) ConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "service-slides", "config.json")
}

func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(cfg.ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfg.ConfigPath(), err)
	}

	return cfg, nil
}

func (c *Config) Save() error {
	configPath := c.ConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600) // keys live here
}

// LoadEnv loads a .env file into the process environment. A missing file is not an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ApplyEnv overrides keys and paths with environment variables when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiKey = v
	}
	if v := os.Getenv("DEEPSEEK_API_KEY"); v != "" {
		c.DeepSeekKey = v
	}
	if v := os.Getenv("SONGS_DIR"); v != "" {
		c.SongsDirectory = v
	}
	if v := os.Getenv("OSIS_PATH"); v != "" {
		c.OSISPath = v
	}
}

// Validate checks thresholds and provider names.
func (c *Config) Validate() error {
	var errs []error

	positive := map[string]int{
		"verses_per_slide":                  c.VersesPerSlide,
		"song_lines_per_section":            c.SongLinesPerSection,
		"translated_song_lines_per_section": c.TranslatedSongLinesPerSection,
	}
	for name, v := range positive {
		if v < 1 {
			errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", name, v))
		}
	}
	if c.NewlinesPerSlide < 0 {
		errs = append(errs, fmt.Errorf("newlines_per_slide must not be negative, got %d", c.NewlinesPerSlide))
	}
	if c.SongNewlinesPerSlide < 0 {
		errs = append(errs, fmt.Errorf("song_newlines_per_slide must not be negative, got %d", c.SongNewlinesPerSlide))
	}

	switch c.ScriptureSource {
	case "api":
	case "osis":
		if c.OSISPath == "" {
			errs = append(errs, errors.New("osis_path is required for the osis scripture source"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown scripture_source %q", c.ScriptureSource))
	}

	switch c.AlignedProvider {
	case "gemini", "none", "":
	default:
		errs = append(errs, fmt.Errorf("unknown aligned_provider %q", c.AlignedProvider))
	}
	switch c.LineProvider {
	case "deepseek", "argos":
	default:
		errs = append(errs, fmt.Errorf("unknown line_provider %q", c.LineProvider))
	}

	if c.TargetLanguage == "" {
		errs = append(errs, errors.New("target_language is required"))
	} else if c.LineProvider == "argos" && !text.IsValidTargetLanguage(c.TargetLanguage) {
		errs = append(errs, fmt.Errorf("target_language %q is not supported by argos", c.TargetLanguage))
	}

	return errors.Join(errs...)
}
