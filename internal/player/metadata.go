package player

import (
	"strconv"
	"strings"

	"github.com/olivier-w/smpd/internal/queue"
)

// trackFromAttrs converts one playlistinfo entry into a queue track. Tags
// are optional; the position is not.
func trackFromAttrs(attrs map[string]string) (queue.Track, error) {
	pos, err := strconv.Atoi(attrs["Pos"])
	if err != nil {
		return queue.Track{}, protocolErrorf("playlistinfo", "bad position %q for %q", attrs["Pos"], attrs["file"])
	}
	return queue.Track{
		Title:  strings.TrimSpace(attrs["Title"]),
		Artist: strings.TrimSpace(attrs["Artist"]),
		File:   attrs["file"],
		Pos:    pos,
	}, nil
}
