package ui

import (
	"strings"
	"time"

	"service-slides/internal/text"
	"service-slides/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// upcomingSundays is how many service dates the date picker offers.
const upcomingSundays = 10

// DeckForm collects the passage, song order and translation choices for one service.
type DeckForm struct {
	dateSelect       *widget.Select
	passageEntry     *widget.Entry
	versionEntry     *widget.Entry
	songsEntry       *widget.Entry
	translateGroup   *widget.CheckGroup
	targetLangSelect *widget.Select

	dates map[string]time.Time

	onBuild    func()
	onSettings func()
}

func NewDeckForm(cfg *models.Config, onBuild, onSettings func()) *DeckForm {
	f := &DeckForm{
		dates:      make(map[string]time.Time),
		onBuild:    onBuild,
		onSettings: onSettings,
	}

	var options []string
	now := time.Now()
	for n := 1; n <= upcomingSundays; n++ {
		d := models.NextSunday(now, n)
		label := d.Format("Mon 2006-01-02")
		f.dates[label] = d
		options = append(options, label)
	}
	f.dateSelect = widget.NewSelect(options, nil)
	f.dateSelect.SetSelectedIndex(0)

	f.passageEntry = widget.NewEntry()
	f.passageEntry.SetPlaceHolder("John 3:16-18")

	f.versionEntry = widget.NewEntry()
	f.versionEntry.SetPlaceHolder(cfg.BibleVersion)

	f.translateGroup = widget.NewCheckGroup(nil, nil)

	f.songsEntry = widget.NewMultiLineEntry()
	f.songsEntry.SetPlaceHolder("One song per line, in service order")
	f.songsEntry.SetMinRowsVisible(6)
	f.songsEntry.OnChanged = func(string) { f.syncTranslateOptions() }

	f.targetLangSelect = widget.NewSelect(text.SupportedTargetLanguages, nil)
	f.targetLangSelect.SetSelected(cfg.TargetLanguage)

	return f
}

func (f *DeckForm) Build() fyne.CanvasObject {
	buildBtn := widget.NewButton("Build Slides", func() {
		if f.onBuild != nil {
			f.onBuild()
		}
	})
	buildBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton("Settings", func() {
		if f.onSettings != nil {
			f.onSettings()
		}
	})

	form := widget.NewForm(
		widget.NewFormItem("Date", f.dateSelect),
		widget.NewFormItem("Passage", f.passageEntry),
		widget.NewFormItem("Version", f.versionEntry),
		widget.NewFormItem("Songs", f.songsEntry),
		widget.NewFormItem("Translate", f.translateGroup),
		widget.NewFormItem("Language", f.targetLangSelect),
	)

	return container.NewVBox(
		form,
		widget.NewSeparator(),
		container.NewHBox(settingsBtn, layout.NewSpacer(), buildBtn),
	)
}

// AddSong appends a title to the song list unless it is already there.
func (f *DeckForm) AddSong(title string) {
	for _, s := range f.Songs() {
		if strings.EqualFold(s, title) {
			return
		}
	}
	current := strings.TrimRight(f.songsEntry.Text, "\n")
	if current != "" {
		current += "\n"
	}
	f.songsEntry.SetText(current + title)
}

// Songs returns the non-blank song lines in order.
func (f *DeckForm) Songs() []string {
	return text.NonEmptyLines(f.songsEntry.Text)
}

// syncTranslateOptions keeps the translate checkboxes in step with the song list,
// preserving ticks on songs that are still listed.
func (f *DeckForm) syncTranslateOptions() {
	songs := f.Songs()
	var keep []string
	for _, s := range f.translateGroup.Selected {
		for _, song := range songs {
			if s == song {
				keep = append(keep, s)
				break
			}
		}
	}
	f.translateGroup.Options = songs
	f.translateGroup.Selected = keep
	f.translateGroup.Refresh()
}

// Deck assembles a ServiceDeck from the form.
func (f *DeckForm) Deck() *models.ServiceDeck {
	date, ok := f.dates[f.dateSelect.Selected]
	if !ok {
		date = models.NextSunday(time.Now(), 1)
	}

	deck := models.NewServiceDeck(date, strings.TrimSpace(f.passageEntry.Text), f.Songs())
	deck.BibleVersion = strings.TrimSpace(f.versionEntry.Text)
	deck.TargetLanguage = f.targetLangSelect.Selected
	for _, s := range f.translateGroup.Selected {
		deck.TranslateSong(s)
	}
	return deck
}
