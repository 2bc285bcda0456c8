package ui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/olivier-w/smpd/internal/config"
	"github.com/olivier-w/smpd/internal/player"
	"github.com/olivier-w/smpd/internal/queue"
	"github.com/olivier-w/smpd/internal/scroll"
	"github.com/olivier-w/smpd/internal/visualizer"
)

const (
	queueShare     = 59 // percent of the width
	scrollbarShare = 1
	errorTTL       = 5 * time.Second
	minBodyRows    = 3

	minRetry = 250 * time.Millisecond
	maxRetry = 5 * time.Second
)

// Player is the part of the MPD session the TUI drives.
type Player interface {
	Queue() ([]queue.Track, error)
	Status() (player.Status, error)
	TogglePause() (player.Phase, error)
	Close() error
}

// Model is the Bubbletea model for the smpd TUI.
type Model struct {
	player Player
	log    *logrus.Entry

	keys     keyMap
	help     help.Model
	progress progress.Model

	engine *visualizer.Engine
	bars   []uint8
	glyphs visualizer.GlyphStyle

	scroll *scroll.Controller
	thumb  scrollThumb

	snapshot queue.Snapshot
	status   player.Status
	fetching bool
	lastErr  error
	errAt    time.Time

	// Failed refreshes back off instead of retrying every frame.
	retry   time.Duration
	retryAt time.Time

	frame time.Duration
	start time.Time
	now   func() time.Time

	width    int
	height   int
	quitting bool
}

// New creates a Model that polls p on every frame.
func New(p Player, cfg config.Config) Model {
	frame := cfg.FrameInterval
	if frame <= 0 {
		frame = config.DefaultFrameInterval
	}
	return Model{
		player: p,
		log:    logrus.WithField("component", "ui"),
		keys:   newKeyMap(),
		help:   help.New(),
		progress: progress.New(
			progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
			progress.WithoutPercentage(),
		),
		engine: visualizer.NewEngine(visualizer.DefaultBars, rand.New(rand.NewSource(time.Now().UnixNano()))),
		glyphs: cfg.Glyphs,
		scroll: scroll.New(cfg.ScrollDebounce),
		thumb:  newScrollThumb(frame),
		status: player.Status{SongPos: -1, Volume: -1},
		frame:  frame,
		now:    time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.frame), tea.SetWindowTitle("smpd"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		now := time.Time(msg)
		if m.start.IsZero() {
			m.start = now
		}
		m.bars = m.engine.Advance(now.Sub(m.start).Seconds(), m.status.Phase, m.barCount())
		m.thumb.step(m.scroll.Offset(), m.snapshot.Len())
		if m.lastErr != nil && now.Sub(m.errAt) > errorTTL {
			m.lastErr = nil
		}

		cmds := []tea.Cmd{frameCmd(m.frame)}
		if !now.Before(m.retryAt) {
			if cmd := m.refresh(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.fetching = false
		if msg.err != nil {
			m.backOff(msg.err)
			return m, nil
		}
		if m.retry > 0 {
			m.log.Info("refresh recovered")
			m.retry = 0
			m.retryAt = time.Time{}
		}
		m.snapshot = queue.New(msg.tracks)
		m.status = msg.status
		m.scroll.Sync(m.snapshot.Len())
		m.lastErr = nil
		return m, nil

	case pauseToggledMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("pause toggle failed")
			m.setError(msg.err)
			return m, nil
		}
		m.status.Phase = msg.phase
		return m, m.refresh()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if err := m.player.Close(); err != nil {
			m.log.WithError(err).Debug("close")
		}
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case key.Matches(msg, m.keys.Up):
		m.scroll.Scroll(scroll.Up, m.snapshot.Len(), m.now())
	case key.Matches(msg, m.keys.Down):
		m.scroll.Scroll(scroll.Down, m.snapshot.Len(), m.now())
	case key.Matches(msg, m.keys.Pause):
		return m, togglePauseCmd(m.player)
	case key.Matches(msg, m.keys.Glyphs):
		m.glyphs = m.glyphs.Next()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// refresh starts a snapshot fetch unless one is already in flight.
func (m *Model) refresh() tea.Cmd {
	if m.fetching {
		return nil
	}
	m.fetching = true
	return fetchCmd(m.player)
}

// backOff records a failed refresh and schedules the next attempt. Only the
// first failure of an outage is logged as a warning.
func (m *Model) backOff(err error) {
	if m.retry == 0 {
		m.retry = minRetry
		m.log.WithError(err).Warn("refresh failed, backing off")
	} else {
		m.retry = min(m.retry*2, maxRetry)
		m.log.WithError(err).WithField("retry", m.retry).Debug("refresh still failing")
	}
	m.retryAt = m.now().Add(m.retry)
	m.setError(err)
}

func (m *Model) setError(err error) {
	m.lastErr = err
	m.errAt = m.now()
}

// layout splits the width into queue, scrollbar, and spectrum columns.
func (m Model) layout() (queueW, barW, spectrumW int) {
	queueW = m.width * queueShare / 100
	barW = max(m.width*scrollbarShare/100, 1)
	spectrumW = max(m.width-queueW-barW, 0)
	return queueW, barW, spectrumW
}

func (m Model) barCount() int {
	if m.width <= 0 {
		return visualizer.DefaultBars
	}
	_, _, w := m.layout()
	return w
}

func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}

	sel, ok := m.scroll.Selected()
	if !ok {
		sel = -1
	}

	status := renderStatusLine(m.status, m.snapshot.Len(), m.progress, m.lastErr, m.width)
	footer := m.help.View(m.keys)
	bodyH := m.height - 1 - lipgloss.Height(footer)
	if bodyH < minBodyRows {
		footer = ""
		bodyH = m.height - 1
	}
	if bodyH < minBodyRows {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(errorStyle.Render("terminal too small"))
	}

	queueW, barW, spectrumW := m.layout()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderQueue(m.snapshot, sel, queueW, bodyH),
		renderScrollbar(m.thumb.pos, barW, bodyH),
		visualizer.RenderBars(m.bars, spectrumW, bodyH, m.glyphs),
	)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(status)
	if footer != "" {
		b.WriteString("\n")
		b.WriteString(footer)
	}
	return b.String()
}
