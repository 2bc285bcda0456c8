package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{-3 * time.Second, "0:00"},
		{9*time.Second + 900*time.Millisecond, "0:09"},
		{3*time.Minute + 5*time.Second, "3:05"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour, "1:00:00"},
		{75*time.Minute + 4*time.Second, "1:15:04"},
		{26*time.Hour + 30*time.Second, "26:00:30"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
