// Package glyph swaps committed strokes for clean digit glyphs when the
// recogniser is confident.
package glyph

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"MathBoard/internal/geom"
	"MathBoard/internal/state"
	"MathBoard/internal/stroke"
)

// Phase is where a stroke is in its life on the board.
type Phase int

const (
	Unknown Phase = iota
	Capturing
	Committed
	Kept
	Replaced
)

func (p Phase) String() string {
	switch p {
	case Capturing:
		return "capturing"
	case Committed:
		return "committed"
	case Kept:
		return "kept"
	case Replaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// Recognizer is the part of *stroke.Recognizer the controller needs.
type Recognizer interface {
	Recognize(points []geom.Point) (stroke.Result, bool)
}

// Controller commits strokes to a board and, once the commit has been
// drawn, tries to turn them into glyphs.
type Controller struct {
	board *state.Board
	rec   Recognizer
	sched Scheduler
	log   zerolog.Logger

	phases map[uuid.UUID]Phase

	// OnStatus receives a human readable line after each recognition
	// attempt.
	OnStatus func(string)
	// OnChange is called after the controller changed the board.
	OnChange func()
}

func NewController(board *state.Board, rec Recognizer, sched Scheduler, log zerolog.Logger) *Controller {
	return &Controller{
		board:  board,
		rec:    rec,
		sched:  sched,
		log:    log.With().Str("component", "glyph").Logger(),
		phases: make(map[uuid.UUID]Phase),
	}
}

// Board returns the board the controller writes to.
func (c *Controller) Board() *state.Board { return c.board }

// Begin marks a stroke as being captured, for Phase reporting.
func (c *Controller) Begin(id uuid.UUID) {
	c.phases[id] = Capturing
}

// Commit puts s on the board straight away and schedules recognition for it.
// Eraser strokes are never recognised.
func (c *Controller) Commit(s *state.Stroke) {
	c.board.Append(s)
	c.phases[s.ID] = Committed
	c.log.Debug().Str("stroke", s.ID.String()).Int("points", len(s.Points)).Msg("stroke committed")

	if s.Erase {
		c.phases[s.ID] = Kept
		return
	}
	c.sched.Defer(func() { c.classify(s) })
}

// Phase reports where the stroke id is in its life.
func (c *Controller) Phase(id uuid.UUID) Phase {
	return c.phases[id]
}

func (c *Controller) classify(s *state.Stroke) {
	if _, live := c.phases[s.ID]; !live {
		// Undone or cleared before recognition ran.
		c.log.Debug().Str("stroke", s.ID.String()).Msg("stroke gone, skipping recognition")
		return
	}

	res, ok := c.rec.Recognize(s.Points)
	if !ok {
		c.phases[s.ID] = Kept
		c.log.Debug().Str("stroke", s.ID.String()).Msg("no digit match")
		c.status("")
		return
	}

	g := state.NewGlyph(s, res.Digit, res.Score)
	if !c.board.Replace(s.ID, g) {
		// Replaced wholesale by a board load.
		delete(c.phases, s.ID)
		c.log.Debug().Str("stroke", s.ID.String()).Msg("stroke gone, skipping replacement")
		return
	}

	c.phases[s.ID] = Replaced
	c.log.Info().Str("stroke", s.ID.String()).Int("digit", res.Digit).Float64("score", res.Score).Msg("stroke replaced by glyph")
	c.status(StatusLine(res))
	if c.OnChange != nil {
		c.OnChange()
	}
}

func (c *Controller) status(msg string) {
	if c.OnStatus != nil {
		c.OnStatus(msg)
	}
}

// StatusLine formats a recognition result for display.
func StatusLine(res stroke.Result) string {
	return fmt.Sprintf("Recognized as: %d (confidence ≈ %.1f)", res.Digit, res.Score)
}

// Undo removes the top entity of the board.
func (c *Controller) Undo() bool {
	e, ok := c.board.Undo()
	if ok {
		delete(c.phases, e.EntityID())
		if g, isGlyph := e.(*state.Glyph); isGlyph {
			delete(c.phases, g.StrokeID)
		}
	}
	return ok
}

// Clear empties the board.
func (c *Controller) Clear() {
	c.board.Clear()
	clear(c.phases)
	c.status("")
}
