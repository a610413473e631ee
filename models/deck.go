package models

import (
	"time"

	"github.com/google/uuid"
)

type DeckStatus string

const (
	StatusPending     DeckStatus = "pending"
	StatusBuilding    DeckStatus = "building"
	StatusTranslating DeckStatus = "translating"
	StatusCompleted   DeckStatus = "completed"
	StatusFailed      DeckStatus = "failed"
)

// ServiceDeck is one service's worth of slides: a scripture passage and a song list.
type ServiceDeck struct {
	ID           string
	Date         time.Time
	Passage      string
	Songs        []string
	Status       DeckStatus
	Progress     int // 0-100
	CurrentStage string
	Error        error
	CreatedAt    time.Time
	CompletedAt  *time.Time

	// Songs listed here get a translated line under each original line
	TranslatedSongs map[string]bool
	TargetLanguage  string
	BibleVersion    string

	// Rendered outline, set on completion
	Output string
}

func NewServiceDeck(date time.Time, passage string, songs []string) *ServiceDeck {
	return &ServiceDeck{
		ID:              uuid.New().String(),
		Date:            date,
		Passage:         passage,
		Songs:           songs,
		Status:          StatusPending,
		CreatedAt:       time.Now(),
		TranslatedSongs: make(map[string]bool),
	}
}

// TranslateSong marks a song for bilingual slides.
func (d *ServiceDeck) TranslateSong(name string) {
	if d.TranslatedSongs == nil {
		d.TranslatedSongs = make(map[string]bool)
	}
	d.TranslatedSongs[name] = true
}

func (d *ServiceDeck) IsTranslated(name string) bool {
	return d.TranslatedSongs[name]
}

func (d *ServiceDeck) SetStatus(status DeckStatus, stage string, progress int) {
	d.Status = status
	d.CurrentStage = stage
	d.Progress = progress
}

func (d *ServiceDeck) Complete(output string) {
	d.Status = StatusCompleted
	d.Output = output
	d.Progress = 100
	now := time.Now()
	d.CompletedAt = &now
}

func (d *ServiceDeck) Fail(err error) {
	d.Status = StatusFailed
	d.Error = err
	d.Progress = 0
	d.CurrentStage = "Failed"
}

func (d *ServiceDeck) StatusText() string {
	switch d.Status {
	case StatusPending:
		return "Ready to build"
	case StatusBuilding:
		return "Building slides..."
	case StatusTranslating:
		return "Translating..."
	case StatusCompleted:
		return "Completed!"
	case StatusFailed:
		if d.Error != nil {
			return "Failed: " + d.Error.Error()
		}
		return "Failed"
	default:
		return string(d.Status)
	}
}

// StatusIcon returns an emoji icon representing the deck status
func (d *ServiceDeck) StatusIcon() string {
	switch d.Status {
	case StatusPending:
		return "⏳"
	case StatusBuilding, StatusTranslating:
		return "🔄"
	case StatusCompleted:
		return "✅"
	case StatusFailed:
		return "❌"
	default:
		return "📄"
	}
}
