package widget

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// startUpdateCheck shows the checking message and schedules the result.
// Starting a new check supersedes one already in flight.
func (m *Model) startUpdateCheck() tea.Cmd {
	m.updateSeq++
	seq := m.updateSeq
	m.log.Debug("update check %d started", seq)

	return tea.Batch(
		m.status.Start(UpdateChecking),
		stageAfter(m.checkingDelay, seq, stageLatest),
	)
}

// advanceUpdateCheck moves the check to its next stage. Stages of a
// superseded or cancelled check are dropped.
func (m *Model) advanceUpdateCheck(msg updateStageMsg) tea.Cmd {
	if msg.seq != m.updateSeq || m.quitting {
		m.log.Debug("dropping stale update stage %d (current %d)", msg.seq, m.updateSeq)
		return nil
	}

	switch msg.stage {
	case stageLatest:
		m.status.Done(UpdateLatest)
		return stageAfter(m.clearDelay, msg.seq, stageClear)
	case stageClear:
		m.status.Clear()
	}
	return nil
}

func stageAfter(d time.Duration, seq int, stage updateStage) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return updateStageMsg{seq: seq, stage: stage}
	})
}
