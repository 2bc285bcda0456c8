// Package config resolves where to find the MPD server and how the client
// runs. There is no config file; the standard MPD client variables are
// honored.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/olivier-w/smpd/internal/scroll"
	"github.com/olivier-w/smpd/internal/visualizer"
)

const (
	DefaultHost          = "127.0.0.1"
	DefaultPort          = 6600
	DefaultFrameInterval = 16 * time.Millisecond
)

// Config holds everything main needs to start the client.
type Config struct {
	Network  string // "tcp" or "unix"
	Address  string // host:port, or socket path for unix
	Password string

	FrameInterval  time.Duration
	ScrollDebounce time.Duration

	LogPath string
	Debug   bool

	Glyphs visualizer.GlyphStyle
}

// Default returns the fixed local endpoint with the stock timings.
func Default() Config {
	return Config{
		Network:        "tcp",
		Address:        net.JoinHostPort(DefaultHost, strconv.Itoa(DefaultPort)),
		FrameInterval:  DefaultFrameInterval,
		ScrollDebounce: scroll.DefaultInterval,
		LogPath:        filepath.Join(os.TempDir(), "smpd.log"),
		Glyphs:         visualizer.GlyphBlocks,
	}
}

// FromEnv returns Default adjusted by the process environment.
func FromEnv() (Config, error) {
	return Load(os.LookupEnv)
}

// Load applies variables read through lookup on top of Default.
//
//	MPD_HOST    host, [password@]host, or an absolute unix socket path
//	MPD_PORT    tcp port
//	SMPD_LOG    log file path
//	SMPD_DEBUG  any non-empty value other than 0/false enables debug logs
//	SMPD_GLYPHS "blocks" or "dots"
func Load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	host := DefaultHost
	if v, ok := lookup("MPD_HOST"); ok && v != "" {
		if pw, rest, found := strings.Cut(v, "@"); found && !strings.HasPrefix(v, "/") {
			cfg.Password = pw
			v = rest
		}
		host = v
	}

	port := DefaultPort
	if v, ok := lookup("MPD_PORT"); ok && v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 || p > 65535 {
			return Config{}, fmt.Errorf("invalid MPD_PORT %q", v)
		}
		port = p
	}

	if strings.HasPrefix(host, "/") {
		cfg.Network = "unix"
		cfg.Address = host
	} else {
		if host == "" {
			return Config{}, fmt.Errorf("invalid MPD_HOST: empty host")
		}
		cfg.Address = net.JoinHostPort(host, strconv.Itoa(port))
	}

	if v, ok := lookup("SMPD_LOG"); ok && v != "" {
		cfg.LogPath = v
	}
	if v, ok := lookup("SMPD_DEBUG"); ok {
		cfg.Debug = parseBool(v)
	}
	if v, ok := lookup("SMPD_GLYPHS"); ok && v != "" {
		style, ok := visualizer.ParseGlyphStyle(strings.ToLower(v))
		if !ok {
			return Config{}, fmt.Errorf("invalid SMPD_GLYPHS %q", v)
		}
		cfg.Glyphs = style
	}
	return cfg, nil
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}
