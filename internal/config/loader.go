package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/widgetmon/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".widgetmon.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/widgetmon"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. WIDGETMON_SERVER_ADDR.
	EnvPrefix = "WIDGETMON"
)

// Load reads config from the specified path. Environment overrides apply on top.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'widgetmon config init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// LoadEnv returns the defaults with environment overrides applied.
func LoadEnv() (*Config, error) {
	return parseConfig(newViper(), "")
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .widgetmon.yaml in current directory
// 3. .widgetmon.yaml in parent directories (stops at git root or home)
// 4. ~/.config/widgetmon/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	home, _ := os.UserHomeDir()
	if path := findUp(cwd, home); path != "" {
		return path, nil
	}

	if home != "" {
		globalConfig := GlobalPath(home)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// findUp looks for ConfigFileName in dir and its parents. It stops after a
// directory containing .git, and never goes above home.
func findUp(dir, home string) string {
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		if isGitRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		if home != "" && parent == home {
			return ""
		}
		dir = parent
	}
}

// GlobalPath returns the global config location under home.
func GlobalPath(home string) string {
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// LoadOrDefault loads config from the found path, or returns defaults (with
// environment overrides) if no file exists.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg, err := LoadEnv()
		return cfg, "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults registers scalar defaults so AutomaticEnv can see the keys.
// List values are filled after decoding, see fillDefaults.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("version", def.Version)
	v.SetDefault("telemetry.hardware_interval", def.Telemetry.HardwareInterval)
	v.SetDefault("telemetry.network_interval", def.Telemetry.NetworkInterval)
	v.SetDefault("telemetry.memory_total_gb", def.Telemetry.MemoryTotalGB)
	v.SetDefault("telemetry.idle_app", def.Telemetry.IdleApp)
	v.SetDefault("widget.orientation", def.Widget.Orientation)
	v.SetDefault("widget.x", def.Widget.X)
	v.SetDefault("widget.y", def.Widget.Y)
	v.SetDefault("widget.disk", def.Widget.Disk)
	v.SetDefault("widget.update_check.checking_delay", def.Widget.UpdateCheck.CheckingDelay)
	v.SetDefault("widget.update_check.clear_delay", def.Widget.UpdateCheck.ClearDelay)
	v.SetDefault("server.addr", def.Server.Addr)
	v.SetDefault("server.rate", def.Server.Rate)
	v.SetDefault("server.burst", def.Server.Burst)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	// Decoding into a zero Config keeps list values from being merged
	// element-wise into the default lists.
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		where := "your environment overrides"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+where)
	}

	fillDefaults(cfg)
	return cfg, nil
}

func fillDefaults(cfg *Config) {
	def := DefaultConfig()
	if len(cfg.Telemetry.Disks) == 0 {
		cfg.Telemetry.Disks = def.Telemetry.Disks
	}
	if len(cfg.Telemetry.Apps) == 0 {
		cfg.Telemetry.Apps = def.Telemetry.Apps
	}
	if cfg.Widget.Order == nil {
		cfg.Widget.Order = []string{}
	}
	if cfg.Widget.Hidden == nil {
		cfg.Widget.Hidden = []string{}
	}
}

// ExpandTilde replaces ~ or ~/path with the user's home directory.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
