package export

import (
	"bufio"
	"fmt"
	"io"

	"MathBoard/internal/state"
)

// Summary writes a plain text listing of es, one block per entity.
func Summary(out io.Writer, es []state.Entity) error {
	w := bufio.NewWriter(out)
	var strokes, glyphs int
	for _, e := range es {
		if _, ok := e.(*state.Glyph); ok {
			glyphs++
		} else {
			strokes++
		}
	}

	fmt.Fprintf(w, "MathBoard Export\n")
	fmt.Fprintf(w, "================\n\n")
	fmt.Fprintf(w, "Total entities: %d (%d strokes, %d digits)\n\n", len(es), strokes, glyphs)

	for i, e := range es {
		b := e.Bounds()
		switch v := e.(type) {
		case *state.Stroke:
			kind := "Stroke"
			if v.Erase {
				kind = "Eraser"
			}
			fmt.Fprintf(w, "%s %d:\n", kind, i+1)
			fmt.Fprintf(w, "  Points: %d\n", len(v.Points))
			fmt.Fprintf(w, "  Color: %s\n", v.Color)
			fmt.Fprintf(w, "  Width: %.1f\n", v.Width)
			fmt.Fprintf(w, "  Time: %s\n", v.Time.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(w, "  Start: (%.2f, %.2f)\n", v.Points[0].X, v.Points[0].Y)
			if len(v.Points) > 1 {
				last := v.Points[len(v.Points)-1]
				fmt.Fprintf(w, "  End: (%.2f, %.2f)\n", last.X, last.Y)
			}
		case *state.Glyph:
			fmt.Fprintf(w, "Digit %d:\n", i+1)
			fmt.Fprintf(w, "  Value: %d\n", v.Digit)
			fmt.Fprintf(w, "  Score: %.1f\n", v.Score)
		}
		fmt.Fprintf(w, "  Box: (%.2f, %.2f) %.2fx%.2f\n", b.MinX, b.MinY, b.Width(), b.Height())
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
