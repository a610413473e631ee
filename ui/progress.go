package ui

import (
	"fmt"

	"service-slides/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ProgressPanel shows the current deck's status and its rendered outline.
type ProgressPanel struct {
	progressBar *widget.ProgressBar
	statusLabel *widget.Label
	stageLabel  *widget.Label
	deckLabel   *widget.Label
	output      *widget.Entry

	currentDeck *models.ServiceDeck
}

func NewProgressPanel() *ProgressPanel {
	output := widget.NewMultiLineEntry()
	output.Wrapping = fyne.TextWrapWord
	output.SetPlaceHolder("The slide outline appears here once built")

	return &ProgressPanel{
		progressBar: widget.NewProgressBar(),
		statusLabel: widget.NewLabel("No deck built yet"),
		stageLabel:  widget.NewLabel(""),
		deckLabel:   widget.NewLabel(""),
		output:      output,
	}
}

func (p *ProgressPanel) Build() fyne.CanvasObject {
	p.progressBar.Min = 0
	p.progressBar.Max = 100

	header := container.NewVBox(
		p.deckLabel,
		container.NewHBox(widget.NewLabel("Status:"), p.statusLabel),
		container.NewHBox(widget.NewLabel("Stage:"), p.stageLabel),
		p.progressBar,
		widget.NewSeparator(),
	)
	return container.NewBorder(header, nil, nil, nil, p.output)
}

func (p *ProgressPanel) SetCurrentDeck(deck *models.ServiceDeck) {
	p.currentDeck = deck
	p.Update()
}

// Output returns the outline text, including any edits made in the panel.
func (p *ProgressPanel) Output() string {
	return p.output.Text
}

func (p *ProgressPanel) Update() {
	if p.currentDeck == nil {
		p.deckLabel.SetText("")
		p.statusLabel.SetText("-")
		p.stageLabel.SetText("-")
		p.progressBar.SetValue(0)
		return
	}

	d := p.currentDeck
	p.deckLabel.SetText(fmt.Sprintf("Service %s", d.Date.Format("2006-01-02")))
	p.statusLabel.SetText(fmt.Sprintf("%s %s", d.StatusIcon(), d.StatusText()))

	if d.Status == models.StatusFailed && d.Error != nil {
		p.stageLabel.SetText("Error: " + d.Error.Error())
		p.progressBar.SetValue(0)
	} else {
		p.stageLabel.SetText(d.CurrentStage)
		p.progressBar.SetValue(float64(d.Progress))
	}

	if d.Status == models.StatusCompleted {
		p.output.SetText(d.Output)
	}
}

// SetProgress must be called on the Fyne thread.
func (p *ProgressPanel) SetProgress(stage string, percent int) {
	p.stageLabel.SetText(stage)
	p.progressBar.SetValue(float64(percent))
}

// SetStatus must be called on the Fyne thread.
func (p *ProgressPanel) SetStatus(status string) {
	p.statusLabel.SetText(status)
}
