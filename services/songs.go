package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"service-slides/internal/config"
	"service-slides/internal/content"
	"service-slides/internal/logger"
	"service-slides/internal/lyrics"
	"service-slides/internal/text"
)

// SongLibrary is a directory of lyric files laid out as <dir>/<Title>/<Title>_Lyrics.txt.
type SongLibrary struct {
	dir string
}

// NewSongLibrary creates a library rooted at dir.
func NewSongLibrary(dir string) *SongLibrary {
	return &SongLibrary{dir: dir}
}

// Dir returns the library root.
func (l *SongLibrary) Dir() string {
	return l.dir
}

// Path returns where the lyrics for title live.
func (l *SongLibrary) Path(title string) string {
	title = text.CleanSongTitle(title)
	return filepath.Join(l.dir, title, title+config.LyricsFileSuffix)
}

// RawText reads the lyric file for songName. The name is matched as given
// first, then title-cased with any "(live)" marker removed.
func (l *SongLibrary) RawText(ctx context.Context, songName string) (string, error) {
	name := strings.TrimSpace(songName)
	if name == "" {
		return "", fmt.Errorf("%w: empty song name", content.ErrNotFound)
	}

	candidates := []string{
		filepath.Join(l.dir, name, name+config.LyricsFileSuffix),
		l.Path(name),
	}
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("reading lyrics for %q: %w", songName, err)
		}
	}

	return "", fmt.Errorf("%w: no lyrics for %q in %s", content.ErrNotFound, songName, l.dir)
}

// List returns every song folder that holds a lyric file, sorted by name.
func (l *SongLibrary) List() ([]string, error) {
	seen := make(map[string]bool)
	err := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".txt") {
			seen[filepath.Base(filepath.Dir(path))] = true
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing songs: %w", err)
	}

	delete(seen, filepath.Base(l.dir))
	songs := make([]string, 0, len(seen))
	for name := range seen {
		songs = append(songs, name)
	}
	sort.Strings(songs)
	return songs, nil
}

// Search returns songs whose names contain term, ignoring case.
func (l *SongLibrary) Search(term string) ([]string, error) {
	all, err := l.List()
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	var matches []string
	for _, name := range all {
		if strings.Contains(strings.ToLower(name), term) {
			matches = append(matches, name)
		}
	}
	return matches, nil
}

// Save writes cleaned lyrics for title and returns the file path.
func (l *SongLibrary) Save(title, license, body string) (string, error) {
	title = text.CleanSongTitle(title)
	if title == "" {
		return "", errors.New("song title is required")
	}
	if _, err := lyrics.Parse(lyrics.Format(title, license, body), config.SongLinesPerSection); err != nil {
		return "", err
	}

	path := l.Path(title)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(lyrics.Format(title, license, body)), 0644); err != nil {
		return "", fmt.Errorf("saving lyrics: %w", err)
	}

	logger.Info("Saved lyrics for %s to %s", title, path)
	return path, nil
}
