package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/widgetmon/internal/config"
	"github.com/rileyhilliard/widgetmon/internal/errors"
	"github.com/rileyhilliard/widgetmon/internal/layout"
	"github.com/rileyhilliard/widgetmon/internal/metrics"
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
	"github.com/rileyhilliard/widgetmon/internal/ui"
	"golang.org/x/term"
)

// InitOptions holds options for the config init command.
type InitOptions struct {
	Orientation    string        // Pre-specified orientation
	Interval       time.Duration // Pre-specified generator interval
	Disk           string        // Pre-specified tracked disk
	Hidden         []string      // Metric ids to start hidden
	Overwrite      bool          // Overwrite existing config without asking
	Global         bool          // Write ~/.config/widgetmon/config.yaml instead of ./.widgetmon.yaml
	NonInteractive bool          // Skip prompts, use flags and defaults
}

// Init writes a starter configuration file and returns its path.
func Init(w io.Writer, opts InitOptions) (string, error) {
	path, err := initPath(opts.Global)
	if err != nil {
		return "", err
	}

	interactive := !opts.NonInteractive && isInteractive()

	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		if !interactive {
			return "", errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return "", nil
		}
		opts.Overwrite = true
	}

	starter := config.StarterOptions{
		Orientation: opts.Orientation,
		Interval:    opts.Interval,
		Disk:        opts.Disk,
		Hidden:      opts.Hidden,
	}
	if interactive {
		if err := promptStarter(&starter); err != nil {
			return "", err
		}
	}

	cfg := config.Starter(starter)
	if err := config.Validate(cfg); err != nil {
		return "", err
	}
	if err := config.Write(path, cfg, opts.Overwrite); err != nil {
		return "", err
	}

	fmt.Fprintf(w, "%s Created %s\n", ui.SymbolSuccess, path)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  widgetmon            Show the widget")
	fmt.Fprintln(w, "  widgetmon serve      Serve it over HTTP and WebSocket")
	return path, nil
}

func initPath(global bool) (string, error) {
	if !global {
		return filepath.Join(".", config.ConfigFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't find your home directory",
			"Set $HOME or write a project config without --global")
	}
	return config.GlobalPath(home), nil
}

// isInteractive reports whether prompts can be shown. CI and
// WIDGETMON_NON_INTERACTIVE force the non-interactive path.
func isInteractive() bool {
	if os.Getenv("CI") != "" || os.Getenv(config.EnvPrefix+"_NON_INTERACTIVE") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func promptStarter(opts *config.StarterOptions) error {
	if opts.Orientation == "" {
		opts.Orientation = layout.Horizontal.String()
	}
	interval := ""
	if opts.Interval > 0 {
		interval = opts.Interval.String()
	}

	disks := telemetry.DefaultDisks()
	diskOptions := make([]huh.Option[string], 0, len(disks))
	for _, d := range disks {
		diskOptions = append(diskOptions, huh.NewOption(d.Name, d.ID))
	}
	if opts.Disk == "" && len(disks) > 0 {
		opts.Disk = disks[0].ID
	}

	metricOptions := make([]huh.Option[string], 0)
	for _, kind := range metrics.AllKinds() {
		if kind == metrics.HeaderKind {
			continue
		}
		metricOptions = append(metricOptions, huh.NewOption(kind.FullLabel(), kind.ID()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Layout").
				Options(
					huh.NewOption("Horizontal grid", layout.Horizontal.String()),
					huh.NewOption("Vertical list", layout.Vertical.String()),
				).
				Value(&opts.Orientation),
			huh.NewSelect[string]().
				Title("Tracked disk").
				Options(diskOptions...).
				Value(&opts.Disk),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Update interval").
				Description("How often readings refresh (e.g. 1s, 500ms)").
				Placeholder(telemetry.DefaultInterval.String()).
				Value(&interval).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					d, err := time.ParseDuration(s)
					if err != nil {
						return fmt.Errorf("not a duration: %s", s)
					}
					if d < config.MinInterval {
						return fmt.Errorf("must be at least %s", config.MinInterval)
					}
					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("Start hidden").
				Description("Metrics you can turn back on from settings").
				Options(metricOptions...).
				Value(&opts.Hidden),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}

	if s := strings.TrimSpace(interval); s != "" {
		d, err := time.ParseDuration(s)
		if err == nil {
			opts.Interval = d
		}
	}
	return nil
}
