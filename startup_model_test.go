package main

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/smpd/internal/config"
	"github.com/olivier-w/smpd/internal/player"
	"github.com/olivier-w/smpd/internal/queue"
	"github.com/olivier-w/smpd/internal/ui"
)

type stubPlayer struct{}

func (stubPlayer) Queue() ([]queue.Track, error)      { return nil, nil }
func (stubPlayer) Status() (player.Status, error)     { return player.Status{}, nil }
func (stubPlayer) TogglePause() (player.Phase, error) { return player.PhasePlaying, nil }
func (stubPlayer) Close() error                       { return nil }

func failingDial(err error) dialFunc {
	return func(config.Config) (ui.Player, error) { return nil, err }
}

func TestStartupViewShowsAddress(t *testing.T) {
	m := newStartupModel(config.Default(), failingDial(errBoom{}))
	if view := m.View(); !strings.Contains(view, "Connecting to mpd at 127.0.0.1:6600") {
		t.Fatalf("expected connecting message, got %q", view)
	}
}

func TestConnectCmdReportsDialError(t *testing.T) {
	msg, ok := connectCmd(config.Default(), failingDial(errBoom{}))().(startupResolvedMsg)
	if !ok {
		t.Fatal("expected startupResolvedMsg")
	}
	if !errors.Is(msg.err, errBoom{}) {
		t.Fatalf("expected dial error, got %v", msg.err)
	}
}

func TestConnectCmdPassesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Address = "music.lan:6601"

	var got config.Config
	dial := func(c config.Config) (ui.Player, error) {
		got = c
		return stubPlayer{}, nil
	}
	msg := connectCmd(cfg, dial)().(startupResolvedMsg)
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}
	if got.Address != "music.lan:6601" {
		t.Fatalf("expected dial with configured address, got %q", got.Address)
	}
}

func TestStartupModelErrorQuitsWithError(t *testing.T) {
	m := newStartupModel(config.Default(), failingDial(errBoom{}))

	model, cmd := m.Update(startupResolvedMsg{err: errBoom{}})
	if cmd == nil {
		t.Fatal("expected quit command on connection failure")
	}

	startup, ok := model.(startupModel)
	if !ok {
		t.Fatalf("expected startupModel, got %T", model)
	}
	if startup.err == nil {
		t.Fatal("expected error to be kept for the exit status")
	}
	if !strings.Contains(startup.View(), "boom") {
		t.Fatal("expected error in view")
	}
}

func TestStartupModelHandsOverToPlaybackModel(t *testing.T) {
	m := newStartupModel(config.Default(), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	model, cmd := next.Update(startupResolvedMsg{model: ui.New(stubPlayer{}, config.Default())})
	if cmd == nil {
		t.Fatal("expected init command from playback model")
	}
	if _, ok := model.(ui.Model); !ok {
		t.Fatalf("expected ui.Model, got %T", model)
	}
}

func TestStartupModelQuitKey(t *testing.T) {
	m := newStartupModel(config.Default(), nil)
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if model.(startupModel).err != nil {
		t.Fatal("expected a clean quit")
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
