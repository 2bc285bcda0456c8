package queue

import (
	"reflect"
	"testing"
)

func TestLabelUsesDefaultsForMissingTags(t *testing.T) {
	tests := []struct {
		track Track
		want  string
	}{
		{Track{Title: "Song", Artist: "Band", Pos: 0}, "0: Band - Song"},
		{Track{Artist: "Band", Pos: 3}, "3: Band - No Title"},
		{Track{Title: "Song", Pos: 12}, "12: No Artist - Song"},
		{Track{Pos: 1}, "1: No Artist - No Title"},
	}
	for _, tt := range tests {
		if got := tt.track.Label(); got != tt.want {
			t.Fatalf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestSnapshotIsolatedFromCallerSlice(t *testing.T) {
	tracks := []Track{{Title: "A", Pos: 0}, {Title: "B", Pos: 1}}
	s := New(tracks)
	tracks[0].Title = "changed"

	if got := s.Track(0).Title; got != "A" {
		t.Fatalf("expected snapshot to keep its own copy, got %q", got)
	}
	s.Track(1).Title = "mutated"
	if got := s.Line(1); got != "1: No Artist - B" {
		t.Fatalf("expected line unchanged, got %q", got)
	}
}

func TestSnapshotWindow(t *testing.T) {
	s := New([]Track{{Pos: 0}, {Pos: 1}, {Pos: 2}, {Pos: 3}})

	got := s.Window(1, 2)
	want := []string{"1: No Artist - No Title", "2: No Artist - No Title"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Window(1, 2) = %#v, want %#v", got, want)
	}
	if got := s.Window(3, 10); len(got) != 1 {
		t.Fatalf("expected window clipped to 1 line, got %d", len(got))
	}
	if got := s.Window(4, 1); got != nil {
		t.Fatalf("expected nil window past end, got %#v", got)
	}
	if got := s.Window(-2, 1); len(got) != 1 || got[0] != s.Line(0) {
		t.Fatalf("expected negative start to clamp to 0, got %#v", got)
	}
}

func TestSnapshotOutOfRange(t *testing.T) {
	var s Snapshot
	if s.Len() != 0 {
		t.Fatalf("expected empty snapshot, got %d", s.Len())
	}
	if s.Track(0) != nil {
		t.Fatal("expected nil track on empty snapshot")
	}
	if s.Line(-1) != "" {
		t.Fatal("expected empty line for negative index")
	}
}

func TestIndexOfPos(t *testing.T) {
	s := New([]Track{{Pos: 4}, {Pos: 5}})
	if got := s.IndexOfPos(5); got != 1 {
		t.Fatalf("IndexOfPos(5) = %d, want 1", got)
	}
	if got := s.IndexOfPos(0); got != -1 {
		t.Fatalf("IndexOfPos(0) = %d, want -1", got)
	}
}
