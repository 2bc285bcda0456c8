package queue

import "fmt"

const (
	noTitle  = "No Title"
	noArtist = "No Artist"
)

// Track is a single entry of the daemon's play queue.
type Track struct {
	Title  string
	Artist string
	File   string
	Pos    int
}

// Label returns the display line for the track: "pos: artist - title".
func (t Track) Label() string {
	title := t.Title
	if title == "" {
		title = noTitle
	}
	artist := t.Artist
	if artist == "" {
		artist = noArtist
	}
	return fmt.Sprintf("%d: %s - %s", t.Pos, artist, title)
}

// Snapshot is the queue as seen by one fetch. It is never mutated after
// New returns, so it can be handed around between frames freely.
type Snapshot struct {
	tracks []Track
	lines  []string
}

// New creates a Snapshot from the given tracks.
func New(tracks []Track) Snapshot {
	s := Snapshot{
		tracks: make([]Track, len(tracks)),
		lines:  make([]string, len(tracks)),
	}
	copy(s.tracks, tracks)
	for i, t := range s.tracks {
		s.lines[i] = t.Label()
	}
	return s
}

// Len returns the total number of tracks.
func (s Snapshot) Len() int {
	return len(s.tracks)
}

// Track returns a pointer to a copy of the track at the given index, or nil
// if out of range.
func (s Snapshot) Track(i int) *Track {
	if i < 0 || i >= len(s.tracks) {
		return nil
	}
	t := s.tracks[i]
	return &t
}

// Line returns the display line at the given index, or "" if out of range.
func (s Snapshot) Line(i int) string {
	if i < 0 || i >= len(s.lines) {
		return ""
	}
	return s.lines[i]
}

// Window returns up to n display lines starting at index start.
func (s Snapshot) Window(start, n int) []string {
	if start < 0 {
		start = 0
	}
	if start >= len(s.lines) || n <= 0 {
		return nil
	}
	end := start + n
	if end > len(s.lines) {
		end = len(s.lines)
	}
	out := make([]string, end-start)
	copy(out, s.lines[start:end])
	return out
}

// IndexOfPos returns the snapshot index of the track at queue position pos,
// or -1 if no track has it.
func (s Snapshot) IndexOfPos(pos int) int {
	for i, t := range s.tracks {
		if t.Pos == pos {
			return i
		}
	}
	return -1
}
