package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/olivier-w/smpd/internal/config"
	"github.com/olivier-w/smpd/internal/logging"
)

// Populated at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "smpd",
	Short:         "A terminal front-end for MPD with a queue and a spectrum view",
	Long:          "smpd connects to the MPD server named by MPD_HOST/MPD_PORT (default 127.0.0.1:6600), shows the play queue next to an animated spectrum, and toggles playback.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	closeLog, err := logging.Setup(cfg.LogPath, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer closeLog()

	log := logrus.WithFields(logrus.Fields{"network": cfg.Network, "addr": cfg.Address})
	log.WithField("version", version).Info("starting")

	program := tea.NewProgram(newStartupModel(cfg, dialSession), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		log.WithError(err).Error("terminal failure")
		return err
	}

	if sm, ok := final.(startupModel); ok && sm.err != nil {
		log.WithError(sm.err).Error("could not connect")
		return sm.err
	}
	log.Info("bye")
	return nil
}
