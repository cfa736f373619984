package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"MathBoard/internal/config"
	"MathBoard/internal/logging"
	"MathBoard/internal/stroke"
)

var (
	configPath string
	logLevel   string

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mathboard",
	Short: "A whiteboard that turns handwritten digits into clean glyphs",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Bootstrap logger until the configured level is known.
		logger = logging.New(logLevel, os.Stderr)

		c, err := config.Load(configPath, logger)
		if err != nil {
			return err
		}
		cfg = c

		if !cmd.Flags().Changed("log-level") {
			logger = logging.New(cfg.LogLevel, os.Stderr)
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "mathboard.json", "settings file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "log level (TRACE, DEBUG, INFO, WARN, ERROR)")
}

func newRecognizer(c *config.Config) *stroke.Recognizer {
	return &stroke.Recognizer{
		MinPoints: c.Recognition.MinPoints,
		MinSize:   c.Recognition.MinSize,
		Threshold: c.Recognition.Threshold,
	}
}
