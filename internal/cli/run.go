package cli

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/widgetmon/internal/config"
	"github.com/rileyhilliard/widgetmon/internal/errors"
	"github.com/rileyhilliard/widgetmon/internal/logger"
	"github.com/rileyhilliard/widgetmon/internal/metrics"
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
	"github.com/rileyhilliard/widgetmon/internal/widget"
)

// debugLogFile receives log output while the widget owns the terminal.
const debugLogFile = "widgetmon-debug.log"

// RunOptions are command-line overrides applied on top of the config file.
type RunOptions struct {
	Interval    time.Duration
	Orientation string
	Disk        string
}

// Apply writes the non-zero overrides into cfg.
func (o RunOptions) Apply(cfg *config.Config) {
	if o.Interval > 0 {
		cfg.Telemetry.HardwareInterval = o.Interval
		cfg.Telemetry.NetworkInterval = o.Interval
	}
	if o.Orientation != "" {
		cfg.Widget.Orientation = o.Orientation
	}
	if o.Disk != "" {
		cfg.Widget.Disk = o.Disk
	}
}

// loadConfig resolves the config file (or defaults), applies overrides and
// validates the result.
func loadConfig(overrides ...func(*config.Config)) (*config.Config, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	for _, apply := range overrides {
		apply(cfg)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if path == "" {
		logger.Default().Debug("no config file found, using defaults")
	} else {
		logger.Default().Debug("loaded config from %s", path)
	}
	return cfg, nil
}

// buildRegistry creates the metric registry with the configured order,
// visibility and tracked disk.
func buildRegistry(cfg *config.Config) *metrics.Registry {
	reg := metrics.NewRegistry(cfg.Telemetry.Disks)
	reg.ApplyOrder(cfg.Widget.Order)
	reg.ApplyHidden(cfg.Widget.Hidden)
	if cfg.Widget.Disk != "" {
		reg.SelectDisk(cfg.Widget.Disk)
	}
	return reg
}

func newSources(cfg *config.Config) telemetry.Sources {
	return telemetry.NewSources(cfg.HardwareConfig(), cfg.NetworkConfig(), logger.NewEnvLogger("[telemetry]"))
}

func newWidget(cfg *config.Config, reg *metrics.Registry) widget.Model {
	return widget.New(reg, widget.Options{
		Layout:        cfg.LayoutState(),
		CheckingDelay: cfg.Widget.UpdateCheck.CheckingDelay,
		ClearDelay:    cfg.Widget.UpdateCheck.ClearDelay,
		Logger:        logger.NewEnvLogger("[widget]"),
	})
}

// runWidget starts the terminal widget.
func runWidget(ctx context.Context, opts RunOptions) error {
	cfg, err := loadConfig(opts.Apply)
	if err != nil {
		return err
	}

	restore, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	if ctx == nil {
		ctx = context.Background()
	}
	return widget.Run(ctx, newWidget(cfg, buildRegistry(cfg)), newSources(cfg))
}

// redirectLogs keeps log output off the screen while the widget is drawn:
// to debugLogFile when debugging, otherwise nowhere.
func redirectLogs() (func(), error) {
	if !logger.DebugEnabled() {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	f, err := tea.LogToFile(debugLogFile, "widgetmon")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTUI,
			"Couldn't open "+debugLogFile,
			"Check that the current directory is writable, or unset WIDGETMON_DEBUG")
	}
	return func() {
		_ = f.Close()
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	}, nil
}
