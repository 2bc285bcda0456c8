package ui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
)

// scrollThumb eases the scrollbar thumb toward the scroll offset instead of
// jumping a whole row per step.
type scrollThumb struct {
	spring harmonica.Spring
	pos    float64 // fraction of the track, 0 at the top
	vel    float64
}

func newScrollThumb(frame time.Duration) scrollThumb {
	fps := int(time.Second / frame)
	if fps < 1 {
		fps = 1
	}
	return scrollThumb{spring: harmonica.NewSpring(harmonica.FPS(fps), 9.0, 1.0)}
}

func (s *scrollThumb) step(offset, n int) {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, thumbTarget(offset, n))
}

func thumbTarget(offset, n int) float64 {
	if n <= 1 {
		return 0
	}
	return math.Min(float64(offset)/float64(n-1), 1)
}

// renderScrollbar draws ▲, a │ track holding the thumb, and ▼ in a column
// of the given size.
func renderScrollbar(pos float64, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	pad := strings.Repeat(" ", width-1)
	if height < 3 {
		rows := make([]string, height)
		for i := range rows {
			rows[i] = scrollbarStyle.Render("│") + pad
		}
		return strings.Join(rows, "\n")
	}

	track := height - 2
	thumb := int(math.Round(math.Max(0, math.Min(pos, 1)) * float64(track-1)))

	rows := make([]string, 0, height)
	rows = append(rows, scrollbarStyle.Render("▲")+pad)
	for i := 0; i < track; i++ {
		if i == thumb {
			rows = append(rows, thumbStyle.Render("█")+pad)
			continue
		}
		rows = append(rows, scrollbarStyle.Render("│")+pad)
	}
	rows = append(rows, scrollbarStyle.Render("▼")+pad)
	return strings.Join(rows, "\n")
}
