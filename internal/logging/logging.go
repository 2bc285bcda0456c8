// Package logging sends logrus output to a file, since the terminal belongs
// to the TUI for the life of the process.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Setup points the standard logrus logger at path and returns a function
// that closes the file. When the file cannot be opened logs are discarded
// and the error is returned alongside a no-op closer.
func Setup(path string, debug bool) (func() error, error) {
	return setup(logrus.StandardLogger(), path, debug)
}

func setup(log *logrus.Logger, path string, debug bool) (func() error, error) {
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	noop := func() error { return nil }
	if path == "" {
		log.SetOutput(io.Discard)
		return noop, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return noop, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return noop, err
	}
	log.SetOutput(f)
	return f.Close, nil
}
