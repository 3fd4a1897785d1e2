package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rileyhilliard/widgetmon/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = "# widgetmon configuration\n# Environment variables prefixed with WIDGETMON_ override these values.\n"

// Marshal renders cfg as YAML with two-space indentation.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Write saves cfg to path with a short header. An existing file is only
// replaced when overwrite is set.
func Write(path string, cfg *Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrConfig,
				"Config already exists: "+path,
				"Pass --force to overwrite it")
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Couldn't build the config file", "")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create the config directory",
			"Check permissions on "+filepath.Dir(path))
	}

	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write "+path,
			"Check file permissions")
	}
	return nil
}

// StarterOptions are the choices `config init` asks about.
type StarterOptions struct {
	Orientation string
	Interval    time.Duration
	Disk        string
	Hidden      []string
}

// Starter returns the defaults with the given choices applied. Zero fields
// keep the default.
func Starter(opts StarterOptions) *Config {
	cfg := DefaultConfig()
	if opts.Orientation != "" {
		cfg.Widget.Orientation = opts.Orientation
	}
	if opts.Interval > 0 {
		cfg.Telemetry.HardwareInterval = opts.Interval
		cfg.Telemetry.NetworkInterval = opts.Interval
	}
	cfg.Widget.Disk = opts.Disk
	if len(opts.Hidden) > 0 {
		cfg.Widget.Hidden = append([]string(nil), opts.Hidden...)
	}
	return cfg
}
