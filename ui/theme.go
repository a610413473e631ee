package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SlidesTheme keeps the default theme with a purple accent and roomier text
// for reading lyrics back before a service.
type SlidesTheme struct{}

var _ fyne.Theme = (*SlidesTheme)(nil)

func (t *SlidesTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameButton:
		return color.NRGBA{R: 124, G: 58, B: 237, A: 255} // Violet
	case theme.ColorNameFocus:
		return color.NRGBA{R: 124, G: 58, B: 237, A: 96}
	}
	// Everything else follows the default theme so dark and light variants still work
	return theme.DefaultTheme().Color(name, variant)
}

func (t *SlidesTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *SlidesTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *SlidesTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameText:
		return 15
	}
	return theme.DefaultTheme().Size(name)
}
