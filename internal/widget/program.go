package widget

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/widgetmon/internal/errors"
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
)

// Run starts the widget full-screen with mouse support and feeds it from
// the generators until the user quits or ctx is cancelled. The generators
// are stopped before Run returns.
func Run(ctx context.Context, m Model, src telemetry.Sources, opts ...tea.ProgramOption) error {
	base := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}
	p := tea.NewProgram(m, append(base, opts...)...)

	unsubHW := src.Hardware.Subscribe(func(s telemetry.HardwareSnapshot) {
		p.Send(HardwareMsg(s))
	})
	defer unsubHW()
	unsubNet := src.Network.Subscribe(func(s telemetry.NetworkSnapshot) {
		p.Send(NetworkMsg(s))
	})
	defer unsubNet()

	// Send blocks until the event loop is running, so the generators start
	// from a goroutine. The first snapshots land right after startup.
	go src.Start(ctx)
	defer src.Stop()

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrTUI,
			"The widget stopped unexpectedly",
			"Run with WIDGETMON_DEBUG=1 and check widgetmon-debug.log")
	}
	return nil
}
