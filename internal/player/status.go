package player

import (
	"strconv"
	"strings"
	"time"
)

// Phase is the daemon's playback state.
type Phase int

const (
	PhaseStopped Phase = iota
	PhasePlaying
	PhasePaused
)

// String returns the name of the phase as shown in the status line.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// Icon returns a short glyph for the phase.
func (p Phase) Icon() string {
	switch p {
	case PhasePlaying:
		return "▶"
	case PhasePaused:
		return "❚❚"
	default:
		return "■"
	}
}

// Status is the subset of the daemon status the UI uses.
type Status struct {
	Phase    Phase
	Elapsed  time.Duration
	Duration time.Duration
	SongPos  int // -1 when no song is current
	Volume   int // -1 when the daemon has no mixer
}

func parsePhase(state string) (Phase, bool) {
	switch state {
	case "play":
		return PhasePlaying, true
	case "pause":
		return PhasePaused, true
	case "stop":
		return PhaseStopped, true
	}
	return PhaseStopped, false
}

// parseStatus reads a status response. Only "state" is required; the
// numeric fields are optional and fall back to defaults when missing.
func parseStatus(attrs map[string]string) (Status, error) {
	phase, ok := parsePhase(attrs["state"])
	if !ok {
		return Status{}, protocolErrorf("status", "unknown state %q", attrs["state"])
	}

	st := Status{
		Phase:    phase,
		Elapsed:  parseSeconds(attrs["elapsed"]),
		Duration: parseSeconds(attrs["duration"]),
		SongPos:  parseIntOr(attrs["song"], -1),
		Volume:   parseIntOr(attrs["volume"], -1),
	}
	if st.Duration == 0 {
		// Older daemons only report "time: elapsed:total".
		if _, total, found := strings.Cut(attrs["time"], ":"); found {
			st.Duration = parseSeconds(total)
		}
	}
	return st, nil
}

func parseSeconds(s string) time.Duration {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return time.Duration(f * float64(time.Second))
}

func parseIntOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
