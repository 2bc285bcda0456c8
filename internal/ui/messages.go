package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/smpd/internal/player"
	"github.com/olivier-w/smpd/internal/queue"
)

type frameMsg time.Time

type snapshotMsg struct {
	tracks []queue.Track
	status player.Status
	err    error
}

type pauseToggledMsg struct {
	phase player.Phase
	err   error
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// fetchCmd reads the queue and then the status. Either failing fails the
// whole snapshot so the view never mixes fresh and stale halves.
func fetchCmd(p Player) tea.Cmd {
	return func() tea.Msg {
		tracks, err := p.Queue()
		if err != nil {
			return snapshotMsg{err: err}
		}
		st, err := p.Status()
		if err != nil {
			return snapshotMsg{err: err}
		}
		return snapshotMsg{tracks: tracks, status: st}
	}
}

func togglePauseCmd(p Player) tea.Cmd {
	return func() tea.Msg {
		phase, err := p.TogglePause()
		return pauseToggledMsg{phase: phase, err: err}
	}
}
