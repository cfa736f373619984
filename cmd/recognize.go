package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"MathBoard/internal/geom"
	"MathBoard/internal/glyph"
)

var recognizeCmd = &cobra.Command{
	Use:   "recognize <points.json>",
	Short: "Recognize a stroke given as a JSON array of {x, y} points",
	Args:  cobra.ExactArgs(1),
	RunE:  recognize,
}

func init() {
	rootCmd.AddCommand(recognizeCmd)
}

func recognize(cmd *cobra.Command, args []string) error {
	points, err := readPoints(args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("%s: no points", args[0])
	}

	rec := newRecognizer(cfg)
	out := cmd.OutOrStdout()
	if res, ok := rec.Recognize(points); ok {
		fmt.Fprintln(out, glyph.StatusLine(res))
		return nil
	}

	best := rec.Classify(points)
	logger.Debug().Int("points", len(points)).Float64("maxDim", geom.BoundingBox(points).MaxDim()).Msg("stroke rejected")
	fmt.Fprintf(out, "No match (closest: %d, score %.1f)\n", best.Digit, best.Score)
	return nil
}

// readPoints reads a point array from path, or stdin when path is "-".
func readPoints(path string) ([]geom.Point, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open points: %w", err)
		}
		defer f.Close()
		r = f
	}

	var points []geom.Point
	if err := json.NewDecoder(r).Decode(&points); err != nil {
		return nil, fmt.Errorf("decode points: %w", err)
	}
	return points, nil
}
