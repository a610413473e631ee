package models

import (
	"errors"
	"testing"
	"time"
)

func TestNewServiceDeck(t *testing.T) {
	date := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	deck := NewServiceDeck(date, "John 3:16-18", []string{"Amazing Grace", "Be Thou My Vision"})

	if deck.ID == "" {
		t.Error("expected non-empty ID")
	}
	if deck.Passage != "John 3:16-18" {
		t.Errorf("expected Passage John 3:16-18, got %s", deck.Passage)
	}
	if len(deck.Songs) != 2 {
		t.Errorf("expected 2 songs, got %d", len(deck.Songs))
	}
	if deck.Status != StatusPending {
		t.Errorf("expected StatusPending, got %s", deck.Status)
	}
	if !deck.Date.Equal(date) {
		t.Errorf("expected Date %v, got %v", date, deck.Date)
	}
	if deck.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestNewServiceDeck_UniqueIDs(t *testing.T) {
	a := NewServiceDeck(time.Now(), "", nil)
	b := NewServiceDeck(time.Now(), "", nil)
	if a.ID == b.ID {
		t.Errorf("expected unique IDs, both were %s", a.ID)
	}
}

func TestTranslateSong(t *testing.T) {
	deck := &ServiceDeck{}
	deck.TranslateSong("Amazing Grace")

	if !deck.IsTranslated("Amazing Grace") {
		t.Error("expected Amazing Grace to be translated")
	}
	if deck.IsTranslated("Be Thou My Vision") {
		t.Error("expected Be Thou My Vision to stay monolingual")
	}
}

func TestSetStatus(t *testing.T) {
	deck := NewServiceDeck(time.Now(), "Psalm 23", nil)
	deck.SetStatus(StatusBuilding, "Scripture", 10)

	if deck.Status != StatusBuilding {
		t.Errorf("expected StatusBuilding, got %s", deck.Status)
	}
	if deck.CurrentStage != "Scripture" {
		t.Errorf("expected stage 'Scripture', got %s", deck.CurrentStage)
	}
	if deck.Progress != 10 {
		t.Errorf("expected progress 10, got %d", deck.Progress)
	}
}

func TestComplete(t *testing.T) {
	deck := NewServiceDeck(time.Now(), "Psalm 23", nil)
	deck.Complete("outline")

	if deck.Status != StatusCompleted {
		t.Errorf("expected StatusCompleted, got %s", deck.Status)
	}
	if deck.Output != "outline" {
		t.Errorf("expected Output 'outline', got %q", deck.Output)
	}
	if deck.Progress != 100 {
		t.Errorf("expected Progress 100, got %d", deck.Progress)
	}
	if deck.CompletedAt == nil {
		t.Error("expected CompletedAt to be set")
	}
}

func TestFail(t *testing.T) {
	deck := NewServiceDeck(time.Now(), "Psalm 23", nil)
	deck.SetStatus(StatusBuilding, "Songs", 50)

	testErr := errors.New("test error")
	deck.Fail(testErr)

	if deck.Status != StatusFailed {
		t.Errorf("expected StatusFailed, got %s", deck.Status)
	}
	if deck.Error != testErr {
		t.Errorf("expected error to be set")
	}
	if deck.Progress != 0 {
		t.Errorf("expected Progress 0 after failure, got %d", deck.Progress)
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		status   DeckStatus
		err      error
		expected string
	}{
		{StatusPending, nil, "Ready to build"},
		{StatusBuilding, nil, "Building slides..."},
		{StatusTranslating, nil, "Translating..."},
		{StatusCompleted, nil, "Completed!"},
		{StatusFailed, nil, "Failed"},
		{StatusFailed, errors.New("some error"), "Failed: some error"},
		{DeckStatus("custom"), nil, "custom"},
	}

	for _, tt := range tests {
		deck := &ServiceDeck{Status: tt.status, Error: tt.err}
		if got := deck.StatusText(); got != tt.expected {
			t.Errorf("StatusText(%s) = %q, want %q", tt.status, got, tt.expected)
		}
	}
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status DeckStatus
		icon   string
	}{
		{StatusPending, "⏳"},
		{StatusBuilding, "🔄"},
		{StatusTranslating, "🔄"},
		{StatusCompleted, "✅"},
		{StatusFailed, "❌"},
		{DeckStatus("unknown"), "📄"},
	}

	for _, tt := range tests {
		deck := &ServiceDeck{Status: tt.status}
		if got := deck.StatusIcon(); got != tt.icon {
			t.Errorf("StatusIcon(%s) = %q, want %q", tt.status, got, tt.icon)
		}
	}
}
