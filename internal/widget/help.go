package widget

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/widgetmon/internal/ui"
)

// Help overlay styles
var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)
)

// renderHelpOverlay renders a centered box listing every key binding, plus
// the mouse gestures the key map cannot describe.
func (m Model) renderHelpOverlay() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("Keyboard Shortcuts"),
		m.help.FullHelpView(keys.FullHelp()),
		"",
		mutedStyle.Render("Drag the widget to move it. Click "+ui.SymbolGear+" for settings."),
		mutedStyle.Render("In settings, drag rows to reorder them."),
		"",
		mutedStyle.Render("Press ? to close"),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBoxStyle.Render(content),
		lipgloss.WithWhitespaceChars(" "),
	)
}
