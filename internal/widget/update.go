package widget

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/widgetmon/internal/metrics"
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case HardwareMsg:
		hw := telemetry.HardwareSnapshot(msg)
		m.registry.UpdateHardware(hw)
		m.history.PushHardware(hw, m.registry.SelectedDisk())
		return m, nil

	case NetworkMsg:
		net := telemetry.NetworkSnapshot(msg)
		m.registry.UpdateNetwork(net)
		m.history.PushNetwork(net)
		return m, nil

	case updateStageMsg:
		return m, m.advanceUpdateCheck(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.status, cmd = m.status.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, m.quit()
	}

	// Help toggle takes priority
	if key.Matches(msg, keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}

	if key.Matches(msg, keys.Close) {
		switch {
		case m.showHelp:
			m.showHelp = false
		case m.layout.SettingsOpen:
			m.layout.ToggleSettings()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Settings):
		m.toggleSettings()
	case key.Matches(msg, keys.Orientation):
		m.layout.ToggleOrientation()
	case key.Matches(msg, keys.NextDisk):
		m.nextDisk()
	case key.Matches(msg, keys.UpdateCheck):
		return m, m.startUpdateCheck()
	case key.Matches(msg, keys.MoveUp):
		m.moveCursorMetric(-1)
	case key.Matches(msg, keys.MoveDown):
		m.moveCursorMetric(1)
	case key.Matches(msg, keys.Up):
		if m.layout.SettingsOpen {
			m.moveCursor(-1)
		} else {
			m.layout.MoveBy(0, -1)
		}
	case key.Matches(msg, keys.Down):
		if m.layout.SettingsOpen {
			m.moveCursor(1)
		} else {
			m.layout.MoveBy(0, 1)
		}
	case key.Matches(msg, keys.Left):
		if !m.layout.SettingsOpen {
			m.layout.MoveBy(-1, 0)
		}
	case key.Matches(msg, keys.Right):
		if !m.layout.SettingsOpen {
			m.layout.MoveBy(1, 0)
		}
	case key.Matches(msg, keys.Toggle):
		if m.layout.SettingsOpen {
			m.registry.Toggle(m.cursorID())
		}
	}

	return m, nil
}

// quit invalidates any pending update check stages and exits.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.updateSeq++
	m.status.Clear()
	m.layout.PointerUp()
	return tea.Quit
}

func (m *Model) toggleSettings() {
	if !m.layout.ToggleSettings() {
		m.rowDragID = ""
		m.rowHoverID = ""
	}
}

func (m *Model) nextDisk() {
	m.registry.NextDisk()
	m.history.Reset(metrics.KindDisk, metrics.KindDiskTemp)
}

func (m *Model) selectDisk(id string) {
	if id == m.registry.SelectedDisk().ID {
		return
	}
	m.registry.SelectDisk(id)
	m.history.Reset(metrics.KindDisk, metrics.KindDiskTemp)
}

func (m *Model) moveCursor(delta int) {
	n := len(m.registry.Order())
	if n == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > n-1 {
		m.cursor = n - 1
	}
}

// moveCursorMetric swaps the metric under the cursor with its neighbour and
// keeps the cursor on it.
func (m *Model) moveCursorMetric(delta int) {
	if !m.layout.SettingsOpen {
		return
	}
	order := m.registry.Order()
	target := m.cursor + delta
	if m.cursor < 0 || m.cursor >= len(order) || target < 0 || target >= len(order) {
		return
	}
	if m.registry.Reorder(order[m.cursor], order[target]) {
		m.cursor = target
	}
}
