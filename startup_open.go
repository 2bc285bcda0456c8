package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/olivier-w/smpd/internal/config"
	"github.com/olivier-w/smpd/internal/player"
	"github.com/olivier-w/smpd/internal/ui"
)

// dialFunc opens the session the TUI will drive.
type dialFunc func(cfg config.Config) (ui.Player, error)

func dialSession(cfg config.Config) (ui.Player, error) {
	opts := []player.Option{player.WithLogger(logrus.WithField("component", "player"))}
	if cfg.Password != "" {
		opts = append(opts, player.WithPassword(cfg.Password))
	}
	s, err := player.Dial(cfg.Network, cfg.Address, opts...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func buildPlaybackModel(cfg config.Config, dial dialFunc) (ui.Model, error) {
	p, err := dial(cfg)
	if err != nil {
		return ui.Model{}, err
	}
	return ui.New(p, cfg), nil
}

func connectCmd(cfg config.Config, dial dialFunc) tea.Cmd {
	return func() tea.Msg {
		model, err := buildPlaybackModel(cfg, dial)
		return startupResolvedMsg{model: model, err: err}
	}
}
