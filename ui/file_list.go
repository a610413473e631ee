package ui

import (
	"service-slides/internal/logger"
	"service-slides/services"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SongList browses the lyric library and hands picked titles to the deck form.
type SongList struct {
	library       *services.SongLibrary
	songs         []string
	list          *widget.List
	search        *widget.Entry
	selectedIndex int

	onSongChosen func(title string)
}

func NewSongList(library *services.SongLibrary, onChosen func(string)) *SongList {
	sl := &SongList{
		library:       library,
		selectedIndex: -1,
		onSongChosen:  onChosen,
	}

	sl.list = widget.NewList(
		func() int { return len(sl.songs) },
		func() fyne.CanvasObject {
			return widget.NewLabel("Song title")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(sl.songs[id])
		},
	)
	sl.list.OnSelected = func(id widget.ListItemID) {
		sl.selectedIndex = int(id)
	}

	sl.search = widget.NewEntry()
	sl.search.SetPlaceHolder("Search songs...")
	sl.search.OnChanged = func(string) { sl.Reload() }

	return sl
}

// SetLibrary switches to another library directory, e.g. after settings change.
func (sl *SongList) SetLibrary(library *services.SongLibrary) {
	sl.library = library
	sl.Reload()
}

// Reload re-reads the library, filtered by the search box.
func (sl *SongList) Reload() {
	var songs []string
	var err error
	if sl.search.Text == "" {
		songs, err = sl.library.List()
	} else {
		songs, err = sl.library.Search(sl.search.Text)
	}
	if err != nil {
		logger.Warn("Failed to read song library %s: %v", sl.library.Dir(), err)
	}

	sl.songs = songs
	sl.selectedIndex = -1
	sl.list.UnselectAll()
	sl.list.Refresh()
}

func (sl *SongList) Build() fyne.CanvasObject {
	addBtn := widget.NewButton("Add to Service", sl.chooseSelected)
	refreshBtn := widget.NewButton("Refresh", sl.Reload)

	return container.NewBorder(
		container.NewVBox(widget.NewLabel("Song Library"), sl.search),
		container.NewHBox(addBtn, refreshBtn),
		nil, nil,
		sl.list,
	)
}

func (sl *SongList) chooseSelected() {
	if sl.selectedIndex < 0 || sl.selectedIndex >= len(sl.songs) {
		return
	}
	if sl.onSongChosen != nil {
		sl.onSongChosen(sl.songs[sl.selectedIndex])
	}
}

func (sl *SongList) GetSelectedIndex() int {
	return sl.selectedIndex
}
