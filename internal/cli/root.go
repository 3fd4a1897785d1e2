package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rileyhilliard/widgetmon/internal/logger"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	verbose bool
)

// rootCmd runs the widget when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "widgetmon",
	Short: "Simulated system telemetry widget for the terminal",
	Long: `widgetmon draws a draggable system monitor widget in your terminal.

CPU, memory, GPU, disk, temperature and network readings are simulated.
Drag the widget with the mouse, open settings with the gear (or 's') to pick
which metrics show and in what order, and switch between a vertical list and
a horizontal grid.

Run 'widgetmon serve' to expose the same widget to a browser over HTTP and
WebSocket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			_ = os.Setenv(logger.DebugEnv, "1")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidget(cmd.Context(), runFlags)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .widgetmon.yaml, then ~/.config/widgetmon/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging (same as WIDGETMON_DEBUG=1)")
	addRunFlags(rootCmd, &runFlags)
}

// Execute runs the root command. Interrupts cancel the command's context so
// the widget and server shut down cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		msg := err.Error()
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		fmt.Fprint(os.Stderr, msg)
		os.Exit(1)
	}
}
