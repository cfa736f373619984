package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"MathBoard/internal/export"
	"MathBoard/internal/state"
)

var exportCmd = &cobra.Command{
	Use:   "export <board.json>",
	Short: "Render a saved board to PDF, PNG or a text summary",
	Args:  cobra.ExactArgs(1),
	RunE:  exportBoard,
}

var (
	exportPDF     string
	exportPNG     string
	exportSummary string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportPDF, "pdf", "", "write a PDF to this path")
	exportCmd.Flags().StringVar(&exportPNG, "png", "", "write a PNG to this path")
	exportCmd.Flags().StringVar(&exportSummary, "summary", "", "write a text summary to this path")
}

func exportBoard(cmd *cobra.Command, args []string) error {
	if exportPDF == "" && exportPNG == "" && exportSummary == "" {
		return errors.New("nothing to do: pass --pdf, --png or --summary")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open board: %w", err)
	}
	es, err := state.Load(f)
	f.Close()
	if err != nil {
		return err
	}
	logger.Info().Int("entities", len(es)).Str("board", args[0]).Msg("board loaded")

	if exportPDF != "" {
		if err := writeFile(exportPDF, func(f *os.File) error { return export.PDF(f, es) }); err != nil {
			return err
		}
	}
	if exportPNG != "" {
		if err := writeFile(exportPNG, func(f *os.File) error {
			return export.PNG(f, es, cfg.Export.Width, cfg.Export.Height)
		}); err != nil {
			return err
		}
	}
	if exportSummary != "" {
		if err := writeFile(exportSummary, func(f *os.File) error { return export.Summary(f, es) }); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("exported")
	return nil
}
