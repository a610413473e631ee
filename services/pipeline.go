package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"service-slides/internal/content"
	"service-slides/internal/logger"
	"service-slides/internal/lyrics"
	"service-slides/internal/paginate"
	"service-slides/internal/text"
	"service-slides/internal/translation"
	"service-slides/models"
)

type ProgressCallback func(stage string, percent int, message string)

// ScriptureSource yields the verses of a reference, one string per verse.
type ScriptureSource interface {
	Lookup(ctx context.Context, reference, translationCode string) ([]string, error)
}

// LyricsSource yields the raw lyric file for a song.
type LyricsSource interface {
	RawText(ctx context.Context, songName string) (string, error)
}

// songSearcher is implemented by lyric sources that can look up near matches.
type songSearcher interface {
	Search(term string) ([]string, error)
}

// DeckBuilder assembles scripture and song slides for a service.
type DeckBuilder struct {
	config     *models.Config
	scripture  ScriptureSource
	songs      LyricsSource
	translator *translation.Pipeline

	onProgress ProgressCallback
}

// NewDeckBuilder wires a builder from explicit collaborators.
func NewDeckBuilder(cfg *models.Config, scripture ScriptureSource, songs LyricsSource, translator *translation.Pipeline) *DeckBuilder {
	if translator == nil {
		translator = translation.NewPipeline(nil, nil, nil)
	}
	return &DeckBuilder{
		config:     cfg,
		scripture:  scripture,
		songs:      songs,
		translator: translator,
	}
}

// NewDeckBuilderFromConfig picks scripture, lyrics and translation backends from cfg.
func NewDeckBuilderFromConfig(cfg *models.Config) (*DeckBuilder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var scripture ScriptureSource
	switch cfg.ScriptureSource {
	case "osis":
		scripture = NewOSISSource(cfg.OSISPath)
	default:
		scripture = NewBibleAPISource(cfg.BibleAPIURL)
	}

	// Aligned backend is optional; the pipeline falls back line by line without it
	var aligned translation.AlignedTranslator
	if cfg.AlignedProvider == string(translation.ProviderGemini) {
		if cfg.GeminiKey != "" {
			aligned = NewGeminiService(cfg.GeminiKey, cfg.GeminiModel)
		} else {
			logger.Warn("Gemini selected but no API key set, translating line by line")
		}
	}

	var line translation.LineTranslator
	switch cfg.LineProvider {
	case string(translation.ProviderDeepSeek):
		line = NewDeepSeekService(cfg.DeepSeekKey).WithSourceLanguage(cfg.SourceLanguage)
	default:
		line = NewTranslatorService(cfg.PythonPath).WithSourceLanguage(cfg.SourceLanguage)
	}

	return NewDeckBuilder(cfg, scripture, NewSongLibrary(cfg.SongsDirectory), translation.NewPipeline(aligned, line, nil)), nil
}

func (b *DeckBuilder) SetProgressCallback(cb ProgressCallback) {
	b.onProgress = cb
}

func (b *DeckBuilder) progress(stage string, percent int, message string) {
	if b.onProgress != nil {
		b.onProgress(stage, percent, message)
	}
}

// Translator returns the translation pipeline, shared across builds so its cache persists.
func (b *DeckBuilder) Translator() *translation.Pipeline {
	return b.translator
}

// BuildPassage looks up a reference and renders it in verse chunks.
func (b *DeckBuilder) BuildPassage(ctx context.Context, reference, version string, r Renderer) error {
	if b.scripture == nil {
		return errors.New("no scripture source configured")
	}
	if version == "" {
		version = b.config.BibleVersion
	}

	verses, err := b.scripture.Lookup(ctx, reference, version)
	if err != nil {
		return fmt.Errorf("passage %q: %w", reference, err)
	}

	chunks := paginate.PaginateTexts(verses, b.config.VersesPerSlide, b.config.NewlinesPerSlide)
	logger.Info("Passage %s: %d verses on %d slides", reference, len(verses), len(chunks))

	title := fmt.Sprintf("%s (%s)", text.TitleCase(reference), strings.ToUpper(version))
	return r.RenderScripture(title, chunks)
}

// BuildSong renders a song's sections. With translate set, every line gets
// a translation beneath it and sections hold fewer lines.
func (b *DeckBuilder) BuildSong(ctx context.Context, name string, translate bool, r Renderer) error {
	raw, err := b.resolveSong(ctx, name)
	if err != nil {
		return err
	}

	maxLines := b.config.SongLinesPerSection
	if translate {
		maxLines = b.config.TranslatedSongLinesPerSection
	}

	song, err := lyrics.Parse(raw, maxLines)
	if err != nil {
		return fmt.Errorf("song %q: %w", name, err)
	}

	var slides []SongSlide
	for _, section := range song.Sections {
		// A label with no lines has nothing to show
		if len(section.Units) == 0 {
			continue
		}
		for _, chunk := range paginate.PaginateSection(section, maxLines, b.config.SongNewlinesPerSlide) {
			slide := SongSlide{Section: chunk.Section}
			if translate {
				res, err := b.translator.TranslateChunk(ctx, chunk, b.config.TargetLanguage, b.config.SourceLanguage)
				if err != nil {
					return fmt.Errorf("song %q, %s: %w", name, chunk.Section, err)
				}
				slide.Lines = res.Pairs
			} else {
				for _, u := range chunk.Units {
					slide.Lines = append(slide.Lines, content.TranslationPair{Original: u.Text})
				}
			}
			slides = append(slides, slide)
		}
	}

	title := song.Title
	if title == "" {
		title = name
	}
	return r.RenderSong(text.CleanSongTitle(title), song.License, slides)
}

// resolveSong reads lyrics by name, falling back to a unique near match in the library.
func (b *DeckBuilder) resolveSong(ctx context.Context, name string) (string, error) {
	if b.songs == nil {
		return "", errors.New("no song library configured")
	}

	raw, err := b.songs.RawText(ctx, name)
	if err == nil || !errors.Is(err, content.ErrNotFound) {
		return raw, err
	}

	searcher, ok := b.songs.(songSearcher)
	if !ok {
		return "", err
	}
	matches, searchErr := searcher.Search(text.CleanSongTitle(name))
	if searchErr != nil || len(matches) != 1 {
		return "", err
	}

	logger.Info("Song %q not found, using %q", name, matches[0])
	return b.songs.RawText(ctx, matches[0])
}

// Build renders the whole deck and records the outcome on it.
func (b *DeckBuilder) Build(ctx context.Context, deck *models.ServiceDeck) (string, error) {
	var out strings.Builder
	r := NewOutlineRenderer(&out)

	if deck.TargetLanguage != "" {
		cfg := *b.config
		cfg.TargetLanguage = deck.TargetLanguage
		b = &DeckBuilder{config: &cfg, scripture: b.scripture, songs: b.songs, translator: b.translator, onProgress: b.onProgress}
	}

	fail := func(err error) (string, error) {
		deck.Fail(err)
		logger.ErrorWithFields(err, "deck build failed", map[string]interface{}{"deck": deck.ID})
		b.progress("Failed", 0, err.Error())
		return "", err
	}

	total := len(deck.Songs)
	if deck.Passage != "" {
		total++
	}
	done := 0
	percent := func() int {
		if total == 0 {
			return 100
		}
		return done * 100 / total
	}

	deck.SetStatus(models.StatusBuilding, "Starting", 0)
	fmt.Fprintf(&out, "Service %s\n\n", deck.Date.Format("2006-01-02"))

	if deck.Passage != "" {
		b.progress("Scripture", percent(), "Looking up "+deck.Passage)
		deck.SetStatus(models.StatusBuilding, "Scripture", percent())
		if err := b.BuildPassage(ctx, deck.Passage, deck.BibleVersion, r); err != nil {
			return fail(err)
		}
		done++
	}

	for _, song := range deck.Songs {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		translate := deck.IsTranslated(song)
		status := models.StatusBuilding
		if translate {
			status = models.StatusTranslating
		}
		b.progress("Songs", percent(), "Building "+song)
		deck.SetStatus(status, song, percent())

		if err := b.BuildSong(ctx, song, translate, r); err != nil {
			return fail(err)
		}
		done++
	}

	deck.Complete(out.String())
	b.progress("Done", 100, fmt.Sprintf("%d slides", r.Slides()))
	logger.InfoWithFields("deck built", map[string]interface{}{
		"deck":   deck.ID,
		"slides": r.Slides(),
		"cached": b.translator.Cache().Len(),
	})
	return deck.Output, nil
}

// CheckDependencies reports, per configured backend, whether it is usable.
// A nil entry means the backend is ready.
func CheckDependencies(cfg *models.Config) map[string]error {
	results := make(map[string]error)

	if info, err := os.Stat(cfg.SongsDirectory); err != nil {
		results["songs-dir"] = err
	} else if !info.IsDir() {
		results["songs-dir"] = fmt.Errorf("%s is not a directory", cfg.SongsDirectory)
	} else {
		results["songs-dir"] = nil
	}

	if cfg.ScriptureSource == "osis" {
		_, err := os.Stat(cfg.OSISPath)
		results["osis"] = err
	}

	if cfg.AlignedProvider == string(translation.ProviderGemini) {
		results["gemini"] = NewGeminiService(cfg.GeminiKey, cfg.GeminiModel).CheckAPIKey()
	}

	switch cfg.LineProvider {
	case string(translation.ProviderDeepSeek):
		results["deepseek"] = NewDeepSeekService(cfg.DeepSeekKey).CheckAPIKey()
	default:
		results["argos-translate"] = NewTranslatorService(cfg.PythonPath).CheckInstalled()
	}

	return results
}
