package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/widgetmon/internal/errors"
	"github.com/rileyhilliard/widgetmon/internal/layout"
	"github.com/rileyhilliard/widgetmon/internal/metrics"
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
)

// MinInterval is the fastest tick rate the generators accept.
const MinInterval = 100 * time.Millisecond

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but widgetmon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade widgetmon or lower the version field.")
	}

	if err := validateTelemetry(cfg.Telemetry); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'telemetry' section in your .widgetmon.yaml.")
	}

	if err := validateWidget(cfg.Widget, cfg.Telemetry.Disks); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'widget' section in your .widgetmon.yaml.")
	}

	if err := validateServer(cfg.Server); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'server' section in your .widgetmon.yaml.")
	}

	return nil
}

func validateInterval(name string, d time.Duration) error {
	if d < MinInterval {
		return fmt.Errorf("%s is %v - it needs to be at least %v", name, d, MinInterval)
	}
	return nil
}

// validateTelemetry checks generator settings.
func validateTelemetry(t TelemetryConfig) error {
	if err := validateInterval("telemetry.hardware_interval", t.HardwareInterval); err != nil {
		return err
	}
	if err := validateInterval("telemetry.network_interval", t.NetworkInterval); err != nil {
		return err
	}
	if t.MemoryTotalGB <= 0 {
		return fmt.Errorf("telemetry.memory_total_gb needs to be positive (got %v)", t.MemoryTotalGB)
	}

	if len(t.Disks) == 0 {
		return fmt.Errorf("telemetry.disks is empty - list at least one disk")
	}
	seen := make(map[string]bool, len(t.Disks))
	for i, d := range t.Disks {
		if strings.TrimSpace(d.ID) == "" {
			return fmt.Errorf("telemetry.disks[%d] has no id", i)
		}
		if seen[d.ID] {
			return fmt.Errorf("telemetry.disks has '%s' twice - disk ids need to be unique", d.ID)
		}
		seen[d.ID] = true
	}

	if strings.TrimSpace(t.IdleApp) == "" {
		return fmt.Errorf("telemetry.idle_app is empty - it's shown when the network is quiet")
	}
	busy := 0
	for _, app := range t.Apps {
		if strings.TrimSpace(app) == "" {
			return fmt.Errorf("telemetry.apps has an empty entry - remove it or add a name")
		}
		if app != t.IdleApp {
			busy++
		}
	}
	if busy == 0 {
		return fmt.Errorf("telemetry.apps needs at least one app besides '%s'", t.IdleApp)
	}

	return nil
}

// validateWidget checks the starting layout against the known metrics and disks.
func validateWidget(w WidgetConfig, disks []telemetry.DiskInfo) error {
	if _, err := layout.ParseOrientation(w.Orientation); err != nil {
		return fmt.Errorf("widget.orientation '%s' isn't valid - use 'vertical' or 'horizontal'", w.Orientation)
	}

	if w.Disk != "" {
		found := false
		for _, d := range disks {
			if d.ID == w.Disk {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("widget.disk '%s' isn't in telemetry.disks", w.Disk)
		}
	}

	seen := make(map[string]bool, len(w.Order))
	for _, id := range w.Order {
		if _, ok := metrics.ParseKind(id); !ok {
			return unknownMetric("widget.order", id)
		}
		if seen[id] {
			return fmt.Errorf("widget.order has '%s' twice", id)
		}
		seen[id] = true
	}
	for _, id := range w.Hidden {
		if _, ok := metrics.ParseKind(id); !ok {
			return unknownMetric("widget.hidden", id)
		}
	}

	if w.UpdateCheck.CheckingDelay < 0 {
		return fmt.Errorf("widget.update_check.checking_delay can't be negative")
	}
	if w.UpdateCheck.ClearDelay < 0 {
		return fmt.Errorf("widget.update_check.clear_delay can't be negative")
	}

	return nil
}

func unknownMetric(field, id string) error {
	return fmt.Errorf("%s has unknown metric '%s' - valid ids: %s", field, id, strings.Join(metrics.IDs(), ", "))
}

// validateServer checks serve settings.
func validateServer(s ServerConfig) error {
	if strings.TrimSpace(s.Addr) == "" {
		return fmt.Errorf("server.addr is empty - try '127.0.0.1:8787'")
	}
	if s.Rate <= 0 {
		return fmt.Errorf("server.rate needs to be positive (got %v)", s.Rate)
	}
	if s.Burst < 1 {
		return fmt.Errorf("server.burst needs to be at least 1 (got %d)", s.Burst)
	}
	return nil
}
