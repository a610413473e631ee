package dialogs

import (
	"fmt"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"service-slides/models"
)

// SettingsDialog displays and manages application settings
type SettingsDialog struct {
	window fyne.Window
	config *models.Config

	songsDirEntry   *widget.Entry
	scriptureSelect *widget.Select
	versionEntry    *widget.Entry
	osisPathEntry   *widget.Entry
	alignedSelect   *widget.Select
	lineSelect      *widget.Select
	geminiKeyEntry  *widget.Entry
	geminiModel     *widget.Entry
	deepSeekKey     *widget.Entry
	pythonPathEntry *widget.Entry

	versesEntry       *widget.Entry
	songLinesEntry    *widget.Entry
	translatedEntry   *widget.Entry
	scriptureSettings *fyne.Container

	OnSave func(config *models.Config)
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, config *models.Config) *SettingsDialog {
	return &SettingsDialog{
		window: window,
		config: config,
	}
}

// Show displays the settings dialog
func (d *SettingsDialog) Show() {
	content := d.build()

	scrollContent := container.NewVScroll(content)
	scrollContent.SetMinSize(fyne.NewSize(480, 520))

	dialog.ShowCustomConfirm("Settings", "Save", "Cancel", scrollContent, func(save bool) {
		if !save {
			return
		}
		updated, err := d.collect()
		if err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		if err := updated.Save(); err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		*d.config = *updated
		if d.OnSave != nil {
			d.OnSave(d.config)
		}
	}, d.window)
}

func (d *SettingsDialog) build() fyne.CanvasObject {
	d.songsDirEntry = widget.NewEntry()
	d.songsDirEntry.SetText(d.config.SongsDirectory)
	browseBtn := widget.NewButton("Browse...", func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			d.songsDirEntry.SetText(uri.Path())
		}, d.window)
	})
	songsRow := container.NewBorder(nil, nil, nil, browseBtn, d.songsDirEntry)

	d.versionEntry = widget.NewEntry()
	d.versionEntry.SetText(d.config.BibleVersion)

	d.osisPathEntry = widget.NewEntry()
	d.osisPathEntry.SetPlaceHolder("Path to an OSIS XML bible")
	d.osisPathEntry.SetText(d.config.OSISPath)
	d.scriptureSettings = container.NewVBox(widget.NewForm(
		widget.NewFormItem("OSIS File", d.osisPathEntry),
	))

	d.scriptureSelect = widget.NewSelect([]string{"api", "osis"}, func(string) {
		d.updateConditionalUI()
	})
	d.scriptureSelect.SetSelected(getOrDefault(d.config.ScriptureSource, "api"))

	d.alignedSelect = widget.NewSelect([]string{"gemini", "none"}, nil)
	d.alignedSelect.SetSelected(getOrDefault(d.config.AlignedProvider, "none"))

	d.lineSelect = widget.NewSelect([]string{"argos", "deepseek"}, nil)
	d.lineSelect.SetSelected(getOrDefault(d.config.LineProvider, "argos"))

	d.geminiKeyEntry = widget.NewPasswordEntry()
	d.geminiKeyEntry.SetPlaceHolder("AIza...")
	d.geminiKeyEntry.SetText(d.config.GeminiKey)

	d.geminiModel = widget.NewEntry()
	d.geminiModel.SetText(d.config.GeminiModel)

	d.deepSeekKey = widget.NewPasswordEntry()
	d.deepSeekKey.SetPlaceHolder("sk-...")
	d.deepSeekKey.SetText(d.config.DeepSeekKey)

	d.pythonPathEntry = widget.NewEntry()
	d.pythonPathEntry.SetText(d.config.PythonPath)

	d.versesEntry = widget.NewEntry()
	d.versesEntry.SetText(strconv.Itoa(d.config.VersesPerSlide))
	d.songLinesEntry = widget.NewEntry()
	d.songLinesEntry.SetText(strconv.Itoa(d.config.SongLinesPerSection))
	d.translatedEntry = widget.NewEntry()
	d.translatedEntry.SetText(strconv.Itoa(d.config.TranslatedSongLinesPerSection))

	d.updateConditionalUI()

	return container.NewVBox(
		widget.NewLabel("Library"),
		widget.NewForm(widget.NewFormItem("Songs Folder", songsRow)),
		widget.NewSeparator(),
		widget.NewLabel("Scripture"),
		widget.NewForm(
			widget.NewFormItem("Source", d.scriptureSelect),
			widget.NewFormItem("Version", d.versionEntry),
		),
		d.scriptureSettings,
		widget.NewSeparator(),
		widget.NewLabel("Translation"),
		widget.NewForm(
			widget.NewFormItem("Song-aware", d.alignedSelect),
			widget.NewFormItem("Line by line", d.lineSelect),
			widget.NewFormItem("Gemini Model", d.geminiModel),
			widget.NewFormItem("Python", d.pythonPathEntry),
		),
		widget.NewSeparator(),
		widget.NewLabel("API Keys"),
		widget.NewForm(
			widget.NewFormItem("Gemini API Key", d.geminiKeyEntry),
			widget.NewFormItem("DeepSeek API Key", d.deepSeekKey),
		),
		widget.NewSeparator(),
		widget.NewLabel("Slide Layout"),
		widget.NewForm(
			widget.NewFormItem("Verses per slide", d.versesEntry),
			widget.NewFormItem("Song lines per slide", d.songLinesEntry),
			widget.NewFormItem("Translated lines per slide", d.translatedEntry),
		),
	)
}

func (d *SettingsDialog) updateConditionalUI() {
	// Called from the select callback before the container exists
	if d.scriptureSettings == nil {
		return
	}
	if d.scriptureSelect.Selected == "osis" {
		d.scriptureSettings.Show()
	} else {
		d.scriptureSettings.Hide()
	}
}

// collect builds a validated copy of the config from the form.
func (d *SettingsDialog) collect() (*models.Config, error) {
	cfg := *d.config
	cfg.SongsDirectory = d.songsDirEntry.Text
	cfg.ScriptureSource = d.scriptureSelect.Selected
	cfg.BibleVersion = d.versionEntry.Text
	cfg.OSISPath = d.osisPathEntry.Text
	cfg.AlignedProvider = d.alignedSelect.Selected
	cfg.LineProvider = d.lineSelect.Selected
	cfg.GeminiKey = d.geminiKeyEntry.Text
	cfg.GeminiModel = d.geminiModel.Text
	cfg.DeepSeekKey = d.deepSeekKey.Text
	cfg.PythonPath = d.pythonPathEntry.Text

	for _, f := range []struct {
		name  string
		entry *widget.Entry
		dst   *int
	}{
		{"verses per slide", d.versesEntry, &cfg.VersesPerSlide},
		{"song lines per slide", d.songLinesEntry, &cfg.SongLinesPerSection},
		{"translated lines per slide", d.translatedEntry, &cfg.TranslatedSongLinesPerSection},
	} {
		n, err := strconv.Atoi(f.entry.Text)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number", f.name)
		}
		*f.dst = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func getOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

// ShowDependencyCheck shows the dependency check dialog
func ShowDependencyCheck(window fyne.Window, results map[string]error) {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	var status string
	allGood := true
	for _, name := range names {
		if err := results[name]; err != nil {
			status += "  " + name + ": " + err.Error() + "\n"
			allGood = false
		} else {
			status += "  " + name + ": OK\n"
		}
	}

	if allGood {
		status += "\nEverything is ready."
	} else {
		status += "\nFix the items above in Settings."
	}

	dialog.ShowInformation("Dependency Check", status, window)
}
