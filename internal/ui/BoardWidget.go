package ui

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"MathBoard/internal/export"
	"MathBoard/internal/geom"
	"MathBoard/internal/glyph"
	"MathBoard/internal/smooth"
	"MathBoard/internal/state"
)

// mainLoop defers recognition onto fyne's main goroutine, after the event
// that committed the stroke has been handled.
type mainLoop struct{}

func (mainLoop) Defer(task func()) {
	go fyne.Do(task)
}

// BoardWidget captures pointer strokes, commits them through the glyph
// controller and draws the board.
type BoardWidget struct {
	widget.BaseWidget

	ctrl    *glyph.Controller
	capture *state.Capture
	log     zerolog.Logger

	currentColor  string
	currentStroke float64
	erase         bool
	panX, panY    float32

	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

// NewBoardWidget builds a widget drawing on board. Recognition runs through
// rec on the fyne main goroutine.
func NewBoardWidget(board *state.Board, rec glyph.Recognizer, minDistance float64, log zerolog.Logger) *BoardWidget {
	return newBoardWidget(board, rec, mainLoop{}, minDistance, log)
}

func newBoardWidget(board *state.Board, rec glyph.Recognizer, sched glyph.Scheduler, minDistance float64, log zerolog.Logger) *BoardWidget {
	b := &BoardWidget{
		capture:       state.NewCapture(minDistance),
		log:           log.With().Str("component", "ui").Logger(),
		currentColor:  "black",
		currentStroke: 6,
		statusBar:     widget.NewLabel("Ready"),
	}
	b.ctrl = glyph.NewController(board, rec, sched, log)
	b.ctrl.OnStatus = b.SetStatus
	b.ctrl.OnChange = b.Refresh
	b.ExtendBaseWidget(b)
	return b
}

// Controller exposes the glyph controller behind the widget.
func (b *BoardWidget) Controller() *glyph.Controller { return b.ctrl }

// StatusBar is the label recognition results are shown in.
func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

func (b *BoardWidget) SetColor(c color.Color) {
	b.currentColor = state.ColorString(c)
}

func (b *BoardWidget) SetStroke(s float64) {
	b.currentStroke = s
}

// SetErase switches between drawing and erasing.
func (b *BoardWidget) SetErase(on bool) {
	b.erase = on
}

func (b *BoardWidget) Undo() {
	if b.ctrl.Undo() {
		b.Refresh()
	}
}

func (b *BoardWidget) ClearPaths() {
	b.ctrl.Clear()
	b.Refresh()
}

// SaveToFile writes the board as JSON.
func (b *BoardWidget) SaveToFile(writer fyne.URIWriteCloser) {
	defer b.closeLogged(writer)

	es := b.ctrl.Board().Entities()
	if err := state.Save(writer, es); err != nil {
		b.log.Error().Err(err).Msg("failed to save board")
		b.SetStatus("Error saving file")
		return
	}
	b.SetStatus(fmt.Sprintf("Saved %d drawings", len(es)))
	b.log.Info().Int("entities", len(es)).Str("uri", writer.URI().String()).Msg("board saved")
}

// LoadFromFile replaces the board with a JSON file written by SaveToFile.
func (b *BoardWidget) LoadFromFile(reader fyne.URIReadCloser) {
	defer b.closeLogged(reader)

	es, err := state.Load(reader)
	if err != nil {
		b.log.Error().Err(err).Msg("failed to load board")
		b.SetStatus("Error parsing file - invalid format")
		return
	}
	b.ctrl.Board().Load(es)
	b.Refresh()
	b.SetStatus(fmt.Sprintf("Loaded %d drawings", len(es)))
	b.log.Info().Int("entities", len(es)).Str("uri", reader.URI().String()).Msg("board loaded")
}

// ExportPDF writes the board as a PDF page.
func (b *BoardWidget) ExportPDF(writer fyne.URIWriteCloser) {
	defer b.closeLogged(writer)
	if err := export.PDF(writer, b.ctrl.Board().Entities()); err != nil {
		b.log.Error().Err(err).Msg("pdf export failed")
		b.SetStatus("Error exporting PDF")
		return
	}
	b.SetStatus("Exported PDF")
}

// ExportPNG writes the visible board area as a PNG image.
func (b *BoardWidget) ExportPNG(writer fyne.URIWriteCloser) {
	defer b.closeLogged(writer)
	size := b.Size()
	w, h := max(int(size.Width), 1), max(int(size.Height), 1)
	if err := export.PNG(writer, b.ctrl.Board().Entities(), w, h); err != nil {
		b.log.Error().Err(err).Msg("png export failed")
		b.SetStatus("Error exporting PNG")
		return
	}
	b.SetStatus("Exported PNG")
}

func (b *BoardWidget) closeLogged(c io.Closer) {
	if err := c.Close(); err != nil {
		b.log.Warn().Err(err).Msg("error closing file")
	}
}

func (b *BoardWidget) toBoard(p fyne.Position) geom.Point {
	return geom.Point{X: float64(p.X - b.panX), Y: float64(p.Y - b.panY)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	col, width := b.currentColor, b.currentStroke
	if b.erase {
		col = state.ColorString(export.Background)
		width = max(width, 20)
	}
	b.capture.Begin(b.toBoard(e.Position), col, width, b.erase)
	b.ctrl.Begin(b.capture.ID())
	b.SetStatus("")
	b.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !b.capture.Active() {
		return
	}
	if s := b.capture.End(); s != nil {
		b.ctrl.Commit(s)
	}
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.capture.Active() {
		if b.capture.Add(b.toBoard(e.Position)) {
			b.Refresh()
		}
		return
	}
	b.panX += e.Dragged.DX
	b.panY += e.Dragged.DY
	b.Refresh()
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.panX += e.Scrolled.DX
	b.panY += e.Scrolled.DY
	b.Refresh()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}
func (b *BoardWidget) DragEnd()                       {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(export.Background)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	b := r.board
	objects := []fyne.CanvasObject{r.background}

	for _, e := range b.ctrl.Board().Entities() {
		switch v := e.(type) {
		case *state.Stroke:
			objects = r.appendPolyline(objects, smooth.Flatten(smooth.Smooth(v.Points), smooth.DefaultSteps), export.InkColor(v), v.Width)
		case *state.Glyph:
			objects = append(objects, r.glyphText(v))
		}
	}

	if b.capture.Active() {
		col, width := b.capture.Style()
		// The stroke in progress is drawn raw for responsiveness.
		objects = r.appendPolyline(objects, b.capture.Points(), state.ParseColor(col), width)
	}
	return objects
}

func (r *boardWidgetRenderer) appendPolyline(objects []fyne.CanvasObject, pts []geom.Point, c color.Color, width float64) []fyne.CanvasObject {
	if len(pts) == 1 {
		pts = append(pts, pts[0])
	}
	for i := 1; i < len(pts); i++ {
		segment := canvas.NewLine(c)
		segment.StrokeWidth = float32(width)
		segment.Position1 = r.toScreen(pts[i-1])
		segment.Position2 = r.toScreen(pts[i])
		objects = append(objects, segment)
	}
	return objects
}

func (r *boardWidgetRenderer) glyphText(g *state.Glyph) fyne.CanvasObject {
	txt := strconv.Itoa(g.Digit)
	size := float32(export.GlyphSize(g.Box))
	t := canvas.NewText(txt, state.ParseColor(state.GlyphColor))
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Bold: true}

	measured := fyne.MeasureText(txt, size, t.TextStyle)
	center := r.toScreen(g.Box.Center())
	t.Move(fyne.NewPos(center.X-measured.Width/2, center.Y-measured.Height/2))
	t.Resize(measured)
	return t
}

func (r *boardWidgetRenderer) toScreen(p geom.Point) fyne.Position {
	return fyne.NewPos(float32(p.X)+r.board.panX, float32(p.Y)+r.board.panY)
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
