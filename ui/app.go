package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"service-slides/internal/logger"
	"service-slides/models"
	"service-slides/services"
	"service-slides/ui/dialogs"
)

// MainUI is the main application UI
type MainUI struct {
	window  fyne.Window
	config  *models.Config
	builder *services.DeckBuilder

	songList      *SongList
	deckForm      *DeckForm
	progressPanel *ProgressPanel

	// Set while a build runs; builds are not queued
	cancel context.CancelFunc
}

// NewMainUI creates the main application UI
func NewMainUI(w fyne.Window) *MainUI {
	config, err := models.LoadConfig()
	if err != nil {
		logger.Warn("Failed to load config, using defaults: %v", err)
		config = models.DefaultConfig()
	}
	config.ApplyEnv()
	logger.SetLevel(logger.ParseLevel(config.LogLevel))

	ui := &MainUI{
		window: w,
		config: config,
	}
	ui.resetBuilder()

	w.SetOnClosed(func() {
		if ui.cancel != nil {
			ui.cancel()
		}
	})
	return ui
}

// resetBuilder rebuilds the deck builder after a config change.
// An invalid config leaves the builder nil until settings are fixed.
func (ui *MainUI) resetBuilder() {
	builder, err := services.NewDeckBuilderFromConfig(ui.config)
	if err != nil {
		logger.Warn("Config is incomplete: %v", err)
		ui.builder = nil
		return
	}

	builder.SetProgressCallback(func(stage string, percent int, message string) {
		fyne.Do(func() {
			if ui.progressPanel != nil {
				ui.progressPanel.SetProgress(stage, percent)
				ui.progressPanel.SetStatus(message)
			}
		})
	})
	ui.builder = builder
}

// Build creates the complete UI layout
func (ui *MainUI) Build() fyne.CanvasObject {
	ui.progressPanel = NewProgressPanel()
	ui.deckForm = NewDeckForm(ui.config, ui.onBuild, ui.showSettings)
	ui.songList = NewSongList(services.NewSongLibrary(ui.config.SongsDirectory), ui.deckForm.AddSong)
	ui.songList.Reload()

	left := container.NewVSplit(ui.songList.Build(), container.NewVScroll(ui.deckForm.Build()))
	left.SetOffset(0.4)

	right := container.NewBorder(nil, container.NewHBox(
		widget.NewButton("Check Setup", ui.showDependencyCheck),
		widget.NewButton("Save Outline...", ui.saveOutline),
	), nil, nil, ui.progressPanel.Build())

	split := container.NewHSplit(left, right)
	split.SetOffset(0.45)
	return split
}

func (ui *MainUI) onBuild() {
	if ui.cancel != nil {
		dialog.ShowInformation("Busy", "A deck is already being built.", ui.window)
		return
	}
	if ui.builder == nil {
		dialog.ShowError(fmt.Errorf("settings are incomplete, open Settings to fix them"), ui.window)
		return
	}

	deck := ui.deckForm.Deck()
	if deck.Passage == "" && len(deck.Songs) == 0 {
		dialog.ShowInformation("Nothing to Build", "Enter a passage or at least one song.", ui.window)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	ui.cancel = cancel
	ui.progressPanel.SetCurrentDeck(deck)

	builder := ui.builder
	go func() {
		_, err := builder.Build(ctx, deck)

		fyne.Do(func() {
			ui.cancel = nil
			cancel()
			ui.progressPanel.Update()
			if err != nil {
				dialog.ShowError(err, ui.window)
			}
		})
	}()
}

func (ui *MainUI) showSettings() {
	settingsDialog := dialogs.NewSettingsDialog(ui.window, ui.config)
	settingsDialog.OnSave = func(config *models.Config) {
		ui.config = config
		ui.resetBuilder()
		ui.songList.SetLibrary(services.NewSongLibrary(config.SongsDirectory))
	}
	settingsDialog.Show()
}

func (ui *MainUI) showDependencyCheck() {
	dialogs.ShowDependencyCheck(ui.window, services.CheckDependencies(ui.config))
}

func (ui *MainUI) saveOutline() {
	outline := ui.progressPanel.Output()
	if outline == "" {
		dialog.ShowInformation("Nothing to Save", "Build a deck first.", ui.window)
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if _, err := writer.Write([]byte(outline)); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save outline: %w", err), ui.window)
			return
		}
		logger.Info("Saved outline to %s", writer.URI().Path())
	}, ui.window)

	fd.SetFileName("service-outline.txt")
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	if home, err := os.UserHomeDir(); err == nil {
		if dir, err := storage.ListerForURI(storage.NewFileURI(filepath.Join(home, "Desktop"))); err == nil {
			fd.SetLocation(dir)
		}
	}
	fd.Show()
}

// GetWindow returns the main window
func (ui *MainUI) GetWindow() fyne.Window {
	return ui.window
}
