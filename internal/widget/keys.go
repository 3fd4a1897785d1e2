package widget

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the widget responds to.
type keyMap struct {
	Quit        key.Binding
	Settings    key.Binding
	Orientation key.Binding
	NextDisk    key.Binding
	UpdateCheck key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Toggle      key.Binding
	MoveUp      key.Binding
	MoveDown    key.Binding
	Close       key.Binding
	Help        key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	Orientation: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "layout"),
	),
	NextDisk: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "next disk"),
	),
	UpdateCheck: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "check for updates"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "right"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "show/hide metric"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("shift+up", "K"),
		key.WithHelp("K", "move metric up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("shift+down", "J"),
		key.WithHelp("J", "move metric down"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Settings, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Settings, k.Orientation, k.NextDisk, k.UpdateCheck},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.MoveUp, k.MoveDown},
		{k.Close, k.Help, k.Quit},
	}
}
