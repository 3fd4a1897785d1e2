package cli

import (
	"os"

	"github.com/rileyhilliard/widgetmon/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	runFlags      RunOptions
	serveAddrFlag string
	snapshotFlags RunOptions
	snapshotJSON  bool
)

// runCmd starts the terminal widget
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the widget in the terminal (default)",
	Long: `Start the telemetry widget full-screen in the terminal.

Mouse:
  drag the widget     move it
  click ⚙             open or close settings
  drag a settings row reorder metrics

Keyboard shortcuts:
  q / Ctrl+C          Quit
  s                   Open or close settings
  l                   Switch vertical / horizontal layout
  d                   Track the next disk
  u                   Check for updates
  arrows              Move the widget (settings closed) or the cursor (open)
  space / Enter       Show or hide the metric under the cursor
  K / J               Move the metric under the cursor up or down
  ?                   Show help

Examples:
  widgetmon run
  widgetmon run --orientation vertical --disk nvme
  widgetmon run --interval 500ms`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidget(cmd.Context(), runFlags)
	},
}

// serveCmd exposes the widget over HTTP and WebSocket
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the widget state over HTTP and WebSocket",
	Long: `Run the simulated generators and expose the widget state to browser or
desktop renderers.

GET /api/state returns the full state; GET /ws streams it after every tick
and accepts the same mutations as the POST /api routes.

Examples:
  widgetmon serve
  widgetmon serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCommand(cmd.Context(), serveAddrFlag)
	},
}

// snapshotCmd renders a single frame and exits
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one rendered widget frame",
	Long: `Generate one hardware and one network reading, render the widget once and
print it. With --json, print the widget state instead.

Examples:
  widgetmon snapshot
  widgetmon snapshot --orientation vertical
  widgetmon snapshot --json | jq '.data.view.metrics'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(cmd.OutOrStdout(), snapshotFlags, snapshotJSON)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for widgetmon.

Examples:
  # Bash
  widgetmon completion bash > /etc/bash_completion.d/widgetmon

  # Zsh
  widgetmon completion zsh > "${fpath[1]}/_widgetmon"

  # Fish
  widgetmon completion fish > ~/.config/fish/completions/widgetmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

// addRunFlags registers the widget overrides shared by run, the root command
// and snapshot.
func addRunFlags(cmd *cobra.Command, opts *RunOptions) {
	cmd.Flags().DurationVar(&opts.Interval, "interval", 0, "generator interval for both sources (e.g. 500ms, 2s)")
	cmd.Flags().StringVar(&opts.Orientation, "orientation", "", "vertical or horizontal")
	cmd.Flags().StringVar(&opts.Disk, "disk", "", "disk id to track (e.g. ssd, hdd, nvme)")
}

func init() {
	addRunFlags(runCmd, &runFlags)

	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "listen address (default from config: 127.0.0.1:8787)")

	addRunFlags(snapshotCmd, &snapshotFlags)
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "print the widget state as JSON")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.SetOut(os.Stdout)
}
