package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"MathBoard/internal/geom"
	"MathBoard/internal/stroke"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the digit templates and how each scores against itself",
	Run:   listTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func listTemplates(cmd *cobra.Command, args []string) {
	rec := newRecognizer(cfg)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Digit templates:")
	for d := range stroke.Digits {
		raw := stroke.RawTemplate(d)
		res := rec.Classify(raw)
		box := geom.BoundingBox(raw)
		fmt.Fprintf(out, "  %d  points=%-4d size=%.0fx%.0f  best=%d score=%.2f\n",
			d, len(raw), box.Width(), box.Height(), res.Digit, res.Score)
	}
}
