package config

import (
	"time"

	"github.com/rileyhilliard/widgetmon/internal/layout"
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .widgetmon.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
	Widget    WidgetConfig    `yaml:"widget" mapstructure:"widget"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
}

// TelemetryConfig controls the simulated data sources.
type TelemetryConfig struct {
	// HardwareInterval is how often a hardware snapshot is generated.
	HardwareInterval time.Duration `yaml:"hardware_interval" mapstructure:"hardware_interval"`

	// NetworkInterval is how often a network snapshot is generated.
	NetworkInterval time.Duration `yaml:"network_interval" mapstructure:"network_interval"`

	// MemoryTotalGB is the simulated installed memory.
	MemoryTotalGB float64 `yaml:"memory_total_gb" mapstructure:"memory_total_gb"`

	// Disks is the simulated disk catalog. The first entry is tracked by default.
	Disks []telemetry.DiskInfo `yaml:"disks" mapstructure:"disks"`

	// Apps are the labels the network generator reports as the active app.
	Apps []string `yaml:"apps" mapstructure:"apps"`

	// IdleApp is reported when network usage is low.
	IdleApp string `yaml:"idle_app" mapstructure:"idle_app"`
}

// WidgetConfig is the widget's starting layout.
type WidgetConfig struct {
	// Orientation: "vertical" or "horizontal".
	Orientation string `yaml:"orientation" mapstructure:"orientation"`

	// X and Y are the top-left corner, in cells for the terminal widget.
	X int `yaml:"x" mapstructure:"x"`
	Y int `yaml:"y" mapstructure:"y"`

	// Disk is the id of the disk tracked at startup. Empty tracks the first disk.
	Disk string `yaml:"disk" mapstructure:"disk"`

	// Order lists metric ids to move to the front, in order.
	Order []string `yaml:"order" mapstructure:"order"`

	// Hidden lists metric ids that start hidden.
	Hidden []string `yaml:"hidden" mapstructure:"hidden"`

	UpdateCheck UpdateCheckConfig `yaml:"update_check" mapstructure:"update_check"`
}

// UpdateCheckConfig times the two stages of the update check message.
type UpdateCheckConfig struct {
	// CheckingDelay is how long "Checking for updates..." shows.
	CheckingDelay time.Duration `yaml:"checking_delay" mapstructure:"checking_delay"`

	// ClearDelay is how long the result shows before it is cleared.
	ClearDelay time.Duration `yaml:"clear_delay" mapstructure:"clear_delay"`
}

// ServerConfig controls `widgetmon serve`.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `yaml:"addr" mapstructure:"addr"`

	// Rate is the number of commands per second each WebSocket client may send.
	Rate float64 `yaml:"rate" mapstructure:"rate"`

	// Burst is the command burst each client may send.
	Burst int `yaml:"burst" mapstructure:"burst"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	catalog := telemetry.DefaultAppCatalog()
	return &Config{
		Version: CurrentConfigVersion,
		Telemetry: TelemetryConfig{
			HardwareInterval: telemetry.DefaultInterval,
			NetworkInterval:  telemetry.DefaultInterval,
			MemoryTotalGB:    telemetry.DefaultMemoryGB,
			Disks:            telemetry.DefaultDisks(),
			Apps:             catalog.Apps,
			IdleApp:          catalog.Idle,
		},
		Widget: WidgetConfig{
			Orientation: layout.Horizontal.String(),
			X:           2,
			Y:           1,
			Order:       []string{},
			Hidden:      []string{},
			UpdateCheck: UpdateCheckConfig{
				CheckingDelay: 1500 * time.Millisecond,
				ClearDelay:    3 * time.Second,
			},
		},
		Server: ServerConfig{
			Addr:  "127.0.0.1:8787",
			Rate:  20,
			Burst: 40,
		},
	}
}

// HardwareConfig returns the hardware generator settings.
func (c *Config) HardwareConfig() telemetry.HardwareConfig {
	return telemetry.HardwareConfig{
		Interval:      c.Telemetry.HardwareInterval,
		MemoryTotalGB: c.Telemetry.MemoryTotalGB,
		Disks:         append([]telemetry.DiskInfo(nil), c.Telemetry.Disks...),
	}
}

// NetworkConfig returns the network generator settings.
func (c *Config) NetworkConfig() telemetry.NetworkConfig {
	return telemetry.NetworkConfig{
		Interval: c.Telemetry.NetworkInterval,
		Catalog: telemetry.AppCatalog{
			Apps: append([]string(nil), c.Telemetry.Apps...),
			Idle: c.Telemetry.IdleApp,
		},
		LabelEvery: telemetry.DefaultLabelEvery,
	}
}

// LayoutState returns the widget's starting layout. An unparseable
// orientation falls back to horizontal; Validate reports it.
func (c *Config) LayoutState() layout.State {
	o, err := layout.ParseOrientation(c.Widget.Orientation)
	if err != nil {
		o = layout.Horizontal
	}
	return layout.NewState(layout.Point{X: c.Widget.X, Y: c.Widget.Y}, o)
}
