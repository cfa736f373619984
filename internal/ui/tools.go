package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MathBoard/internal/state"
)

// Palette offered by the toolbar.
var palette = []string{"black", "red", "green", "blue", "orange", "purple"}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the drawing controls for board. File dialogs are shown
// over win.
func NewToolbar(board *BoardWidget, win fyne.Window, penColor string, thickness float64) fyne.CanvasObject {
	board.SetColor(state.ParseColor(penColor))
	board.SetStroke(thickness)

	mode := widget.NewRadioGroup([]string{"Draw", "Erase"}, func(v string) {
		board.SetErase(v == "Erase")
	})
	mode.Horizontal = true
	mode.SetSelected("Draw")

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.Undo),
		widget.NewToolbarAction(theme.ContentClearIcon(), board.ClearPaths),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() { openBoard(board, win) }),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			saveAs(win, "board.json", ".json", board.SaveToFile)
		}),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			saveAs(win, "board.pdf", ".pdf", board.ExportPDF)
		}),
		widget.NewToolbarAction(theme.MediaPhotoIcon(), func() {
			saveAs(win, "board.png", ".png", board.ExportPNG)
		}),
	)

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		board.SetColor(c)
		mode.SetSelected("Draw")
	}
	colorBox := container.NewHBox()
	for _, name := range palette {
		colorBox.Add(newColorSwatch(state.ParseColor(name), onColorTapped))
	}

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 30.0)
	strokeSlider.SetValue(thickness)
	strokeSlider.OnChanged = board.SetStroke
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		mode,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		tb,
		layout.NewSpacer(),
	)
}

func saveAs(win fyne.Window, name, ext string, write func(fyne.URIWriteCloser)) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if w == nil {
			return
		}
		write(w)
	}, win)
	d.SetFileName(name)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

func openBoard(board *BoardWidget, win fyne.Window) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if r == nil {
			return
		}
		board.LoadFromFile(r)
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}
