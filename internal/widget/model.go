package widget

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/widgetmon/internal/layout"
	"github.com/rileyhilliard/widgetmon/internal/logger"
	"github.com/rileyhilliard/widgetmon/internal/metrics"
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
	"github.com/rileyhilliard/widgetmon/internal/ui"
)

// Default terminal size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Update check messages.
const (
	UpdateChecking = "Checking for updates..."
	UpdateLatest   = "You're on the latest version."
	UpdateIdle     = "Check for updates"
)

// HardwareMsg delivers a hardware snapshot to the program.
type HardwareMsg telemetry.HardwareSnapshot

// NetworkMsg delivers a network snapshot to the program.
type NetworkMsg telemetry.NetworkSnapshot

// updateStage is the step an update check has reached.
type updateStage int

const (
	stageLatest updateStage = iota + 1
	stageClear
)

// updateStageMsg advances the update check numbered seq. Messages from an
// earlier check carry an older seq and are ignored.
type updateStageMsg struct {
	seq   int
	stage updateStage
}

// Options configure a Model.
type Options struct {
	Layout        layout.State
	CheckingDelay time.Duration
	ClearDelay    time.Duration
	HistorySize   int
	Logger        logger.Logger
}

// Model is the Bubble Tea model for the telemetry widget.
type Model struct {
	registry *metrics.Registry
	layout   layout.State
	history  *History
	log      logger.Logger

	help     help.Model
	showHelp bool

	width  int
	height int

	// settings panel
	cursor     int
	rowDragID  string
	rowHoverID string

	// update check
	status        ui.StatusSpinner
	updateSeq     int
	checkingDelay time.Duration
	clearDelay    time.Duration

	quitting bool
}

// New creates a widget model around registry.
func New(registry *metrics.Registry, opts Options) Model {
	if opts.CheckingDelay <= 0 {
		opts.CheckingDelay = 1500 * time.Millisecond
	}
	if opts.ClearDelay <= 0 {
		opts.ClearDelay = 3 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	h := help.New()
	h.ShowAll = true

	return Model{
		registry:      registry,
		layout:        opts.Layout,
		history:       NewHistory(opts.HistorySize),
		log:           opts.Logger,
		help:          h,
		width:         defaultWidth,
		height:        defaultHeight,
		status:        ui.NewStatusSpinner(),
		checkingDelay: opts.CheckingDelay,
		clearDelay:    opts.ClearDelay,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Registry returns the metric registry the widget renders.
func (m Model) Registry() *metrics.Registry {
	return m.registry
}

// Layout returns the current layout state.
func (m Model) Layout() layout.State {
	return m.layout
}

// History returns the sparkline history.
func (m Model) History() *History {
	return m.history
}

// Cursor returns the settings cursor row.
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the update check text, empty when idle.
func (m Model) Status() string {
	if !m.status.Active() {
		return ""
	}
	return m.status.Label
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// cursorID returns the id under the settings cursor.
func (m Model) cursorID() string {
	order := m.registry.Order()
	if m.cursor < 0 || m.cursor >= len(order) {
		return ""
	}
	return order[m.cursor]
}
