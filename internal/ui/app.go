package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"MathBoard/internal/config"
	"MathBoard/internal/glyph"
	"MathBoard/internal/state"
)

// RunApp opens the whiteboard window and blocks until it is closed. A
// non-empty shareLink is shown so viewers can follow the board.
func RunApp(cfg *config.Config, board *state.Board, rec glyph.Recognizer, shareLink string, log zerolog.Logger) {
	myApp := app.New()
	myWindow := myApp.NewWindow("MathBoard")
	myWindow.Resize(fyne.NewSize(float32(cfg.Export.Width), float32(cfg.Export.Height)))

	// Create the interactive board widget
	bw := NewBoardWidget(board, rec, cfg.Capture.MinDistance, log)

	// Create the toolbar and pass it a reference to the board
	toolbar := NewToolbar(bw, myWindow, cfg.Pen.Color, cfg.Pen.Thickness)

	bottom := fyne.CanvasObject(bw.StatusBar())
	if shareLink != "" {
		link := widget.NewEntry()
		link.SetText(shareLink)
		bottom = container.NewBorder(nil, nil, widget.NewLabel("Share:"), nil, container.NewVBox(link, bw.StatusBar()))
	}

	content := container.NewBorder(toolbar, bottom, nil, nil, bw)

	myWindow.SetContent(content)
	log.Info().Msg("whiteboard window opened")
	myWindow.ShowAndRun()
}
