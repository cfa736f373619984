package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"MathBoard/internal/net"
	"MathBoard/internal/state"
	"MathBoard/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the whiteboard",
	RunE:  runBoard,
}

var shareFlag bool

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&shareFlag, "share", false, "mirror the board to viewers on the LAN")
}

func runBoard(cmd *cobra.Command, args []string) error {
	board := state.NewBoard()
	rec := newRecognizer(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var shareLink string
	if cfg.Share.Enabled || shareFlag {
		mirror := net.NewMirror(board, logger)
		addr := fmt.Sprintf(":%d", cfg.Share.Port)
		go func() {
			if err := mirror.ListenAndServe(ctx, addr); err != nil {
				logger.Error().Err(err).Msg("mirror stopped")
			}
		}()

		if cfg.Share.MDNS {
			server, err := net.Advertise(cfg.Share.Port)
			if err != nil {
				logger.Warn().Err(err).Msg("mDNS advertisement unavailable")
			} else {
				defer server.Shutdown()
				logger.Info().Str("service", net.ServiceType).Int("port", cfg.Share.Port).Msg("board advertised")
			}
		}
		shareLink = net.ViewerURL(cfg.Share.Port)
	}

	ui.RunApp(cfg, board, rec, shareLink, logger)
	return nil
}
