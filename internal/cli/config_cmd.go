package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rileyhilliard/widgetmon/internal/config"
	"github.com/rileyhilliard/widgetmon/internal/errors"
	"github.com/spf13/cobra"
)

// config init flags
var (
	initForce          bool
	initGlobal         bool
	initNonInteractive bool
	initOrientation    string
	initInterval       time.Duration
	initDisk           string
	initHidden         []string
)

// configCmd groups the config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect the widgetmon config",
}

// configInitCmd writes a starter config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .widgetmon.yaml configuration",
	Long: `Write a starter configuration file.

Creates .widgetmon.yaml in the current directory (or the global config with
--global). In a terminal you are asked for the layout, tracked disk, interval
and hidden metrics; flags pre-fill the answers.

Examples:
  widgetmon config init
  widgetmon config init --orientation vertical --disk nvme --non-interactive
  widgetmon config init --global --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := Init(cmd.OutOrStdout(), InitOptions{
			Orientation:    initOrientation,
			Interval:       initInterval,
			Disk:           initDisk,
			Hidden:         initHidden,
			Overwrite:      initForce,
			Global:         initGlobal,
			NonInteractive: initNonInteractive,
		})
		return err
	},
}

// configShowCmd prints the resolved config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Long: `Print the configuration widgetmon would run with, after the config file,
WIDGETMON_ environment variables and defaults are merged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd.OutOrStdout())
	},
}

func showConfig(w io.Writer) error {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Couldn't render the config", "")
	}

	source := path
	if source == "" {
		source = "defaults"
	}
	fmt.Fprintf(w, "# source: %s\n", source)
	_, err = w.Write(data)
	return err
}

func init() {
	configInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	configInitCmd.Flags().BoolVar(&initGlobal, "global", false, "write the global config in ~/.config/widgetmon")
	configInitCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts and use flags and defaults")
	configInitCmd.Flags().StringVar(&initOrientation, "orientation", "", "vertical or horizontal")
	configInitCmd.Flags().DurationVar(&initInterval, "interval", 0, "generator interval (e.g. 1s)")
	configInitCmd.Flags().StringVar(&initDisk, "disk", "", "disk id to track")
	configInitCmd.Flags().StringSliceVar(&initHidden, "hidden", nil, "metric ids to start hidden (comma-separated)")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
