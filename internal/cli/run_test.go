package cli

import (
	"testing"
	"time"

	"github.com/rileyhilliard/widgetmon/internal/config"
	"github.com/rileyhilliard/widgetmon/internal/errors"
	"github.com/rileyhilliard/widgetmon/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOptions_Apply(t *testing.T) {
	tests := []struct {
		name  string
		opts  RunOptions
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "zero options keep defaults",
			opts: RunOptions{},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.DefaultConfig(), cfg)
			},
		},
		{
			name: "interval sets both generators",
			opts: RunOptions{Interval: 250 * time.Millisecond},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 250*time.Millisecond, cfg.Telemetry.HardwareInterval)
				assert.Equal(t, 250*time.Millisecond, cfg.Telemetry.NetworkInterval)
			},
		},
		{
			name: "orientation and disk",
			opts: RunOptions{Orientation: "vertical", Disk: "nvme"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "vertical", cfg.Widget.Orientation)
				assert.Equal(t, "nvme", cfg.Widget.Disk)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.opts.Apply(cfg)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Widget.Orientation, cfg.Widget.Orientation)
}

func TestLoadConfig_FileAndOverrides(t *testing.T) {
	_, cwd := isolate(t)
	writeConfig(t, cwd, `version: 1
widget:
  orientation: vertical
  disk: hdd
`)

	cfg, err := loadConfig(RunOptions{Disk: "nvme"}.Apply)
	require.NoError(t, err)
	assert.Equal(t, "vertical", cfg.Widget.Orientation)
	assert.Equal(t, "nvme", cfg.Widget.Disk)
}

func TestLoadConfig_InvalidOverride(t *testing.T) {
	isolate(t)

	_, err := loadConfig(RunOptions{Orientation: "diagonal"}.Apply)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "diagonal")
}

func TestLoadConfig_ExplicitPathMissing(t *testing.T) {
	isolate(t)
	cfgFile = "does-not-exist.yaml"

	_, err := loadConfig()
	require.Error(t, err)
}

func TestBuildRegistry(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Widget.Order = []string{"gpu", "cpu"}
	cfg.Widget.Hidden = []string{"upload"}
	cfg.Widget.Disk = "hdd"

	reg := buildRegistry(cfg)

	order := reg.Order()
	require.GreaterOrEqual(t, len(order), 2)
	assert.Equal(t, []string{"gpu", "cpu"}, order[:2])
	assert.Contains(t, reg.Hidden(), "upload")
	assert.Equal(t, "hdd", reg.SelectedDiskID())
}

func TestBuildRegistry_DefaultDisk(t *testing.T) {
	cfg := config.DefaultConfig()

	reg := buildRegistry(cfg)

	assert.Equal(t, cfg.Telemetry.Disks[0].ID, reg.SelectedDiskID())
}

func TestNewWidget_UsesConfiguredLayout(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Widget.Orientation = "vertical"
	cfg.Widget.X = 7
	cfg.Widget.Y = 3

	m := newWidget(cfg, buildRegistry(cfg))

	l := m.Layout()
	assert.Equal(t, layout.Vertical, l.Orientation)
	assert.Equal(t, layout.Point{X: 7, Y: 3}, l.Position)
}
