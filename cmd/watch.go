package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"MathBoard/internal/net"
	"MathBoard/internal/state"
)

var watchCmd = &cobra.Command{
	Use:   "watch <ws-url>",
	Short: "Follow a shared board and print its changes",
	Args:  cobra.ExactArgs(1),
	RunE:  watchBoard,
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List boards shared on the local network",
	RunE:  discoverBoards,
}

var discoverTimeout time.Duration

func init() {
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().DurationVar(&discoverTimeout, "timeout", 2*time.Second, "how long to listen for answers")
}

func watchBoard(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	board := state.NewBoard()
	var seen uint64
	out := cmd.OutOrStdout()
	return net.Watch(ctx, args[0], func(op state.Op) {
		if op.Type != state.OpLoad && op.Lamport <= seen {
			return
		}
		seen = max(seen, op.Lamport)
		if err := board.Apply(op); err != nil {
			logger.Warn().Err(err).Str("type", string(op.Type)).Msg("could not apply op")
			return
		}
		fmt.Fprintf(out, "%-8s lamport=%d entities=%d\n", op.Type, op.Lamport, board.Len())
	})
}

func discoverBoards(cmd *cobra.Command, args []string) error {
	found, err := net.Browse(discoverTimeout)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(found) == 0 {
		fmt.Fprintln(out, "No boards found")
		return nil
	}
	fmt.Fprintln(out, "Shared boards:")
	for _, addr := range found {
		fmt.Fprintf(out, "  ws://%s/ws\n", addr)
	}
	return nil
}
