package main

import (
	"service-slides/internal/logger"
	"service-slides/models"
	"service-slides/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

func main() {
	if err := models.LoadEnv(".env"); err != nil {
		logger.Warn("Failed to load .env: %v", err)
	}

	a := app.New()
	a.Settings().SetTheme(&ui.SlidesTheme{})

	w := a.NewWindow("Service Slides")
	w.Resize(fyne.NewSize(1000, 700))

	mainUI := ui.NewMainUI(w)
	w.SetContent(mainUI.Build())

	w.ShowAndRun()
}
