package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/olivier-w/smpd/internal/player"
	"github.com/olivier-w/smpd/internal/queue"
	"github.com/olivier-w/smpd/internal/util"
)

const (
	queueTitle    = "Queue"
	highlightMark = ">> "
)

// renderQueue draws the queue inside a titled box of exactly width x height
// cells. The visible window follows the selection; sel < 0 means none.
func renderQueue(snap queue.Snapshot, sel, width, height int) string {
	if width < 2 || height < 3 {
		return ""
	}
	inner := width - 2
	rows := height - 2

	start := 0
	if sel >= rows {
		start = sel - rows + 1
	}

	body := make([]string, 0, rows)
	if snap.Len() == 0 && rows > 0 {
		body = append(body, emptyStyle.Render(fitWidth("  queue is empty", inner)))
	}
	for i, line := range snap.Window(start, rows) {
		idx := start + i
		if idx == sel {
			body = append(body, selectedStyle.Render(fitWidth(highlightMark+line, inner)))
			continue
		}
		body = append(body, trackStyle.Render(fitWidth(strings.Repeat(" ", len(highlightMark))+line, inner)))
	}
	for len(body) < rows {
		body = append(body, strings.Repeat(" ", inner))
	}

	// lipgloss borders carry no title, so only the top edge is drawn by hand.
	return boxTop(queueTitle, inner) + "\n" + queueBoxStyle.Render(strings.Join(body, "\n"))
}

func boxTop(title string, inner int) string {
	title = runewidth.Truncate(title, inner, "")
	fill := inner - runewidth.StringWidth(title)
	return boxStyle.Render("┌") + boxTitleStyle.Render(title) + boxStyle.Render(strings.Repeat("─", fill)+"┐")
}

// fitWidth truncates or pads s to exactly w terminal cells.
func fitWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

// renderStatusLine shows the playback phase, queue position, and song
// progress, or the last refresh error while it is fresh.
func renderStatusLine(st player.Status, total int, bar progress.Model, lastErr error, width int) string {
	if lastErr != nil {
		return lipgloss.NewStyle().MaxWidth(width).Render(errorStyle.Render("mpd: " + lastErr.Error()))
	}

	left := fmt.Sprintf("%s  %s", st.Phase.Icon(), st.Phase)
	if st.SongPos >= 0 && total > 0 {
		left += fmt.Sprintf("  %d/%d", st.SongPos+1, total)
	}
	if st.Volume >= 0 {
		left += fmt.Sprintf("  vol %d%%", st.Volume)
	}

	elapsed := util.FormatDuration(st.Elapsed)
	duration := util.FormatDuration(st.Duration)
	bar.Width = width - lipgloss.Width(left) - len(elapsed) - len(duration) - 6
	if bar.Width < 10 {
		return lipgloss.NewStyle().MaxWidth(width).Render(statusStyle.Render(left))
	}

	var ratio float64
	if st.Duration > 0 {
		ratio = min(float64(st.Elapsed)/float64(st.Duration), 1)
	}
	line := fmt.Sprintf("%s  %s %s %s",
		statusStyle.Render(left),
		timeStyle.Render(elapsed),
		bar.ViewAs(ratio),
		timeStyle.Render(duration),
	)
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
