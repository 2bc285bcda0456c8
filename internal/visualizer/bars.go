package visualizer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barsTitle = " SPECTRUM "

var (
	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	barsTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	barsBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)

// RenderBars draws one bar per column into a width x height region: a title
// row, the bars, and a double rule along the bottom. Bars beyond the width
// are dropped. Regions shorter than three rows get bars only.
func RenderBars(heights []uint8, width, height int, style GlyphStyle) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	decorated := height >= 3
	cellRows := height
	if decorated {
		cellRows = height - 2
	}

	grid := make([][]rune, cellRows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", width))
	}
	for x, h := range heights {
		if x >= width {
			break
		}
		for _, c := range RenderColumn(h, uint16(cellRows), style) {
			grid[cellRows-1-c.Row][x] = c.Glyph
		}
	}

	lines := make([]string, 0, height)
	if decorated {
		lines = append(lines, barsTitleStyle.Render(fitTitle(barsTitle, width)))
	}
	for _, row := range grid {
		lines = append(lines, barStyle.Render(string(row)))
	}
	if decorated {
		lines = append(lines, barsBorderStyle.Render(strings.Repeat("═", width)))
	}
	return strings.Join(lines, "\n")
}

func fitTitle(title string, width int) string {
	r := []rune(title)
	if len(r) >= width {
		return string(r[:width])
	}
	return title + strings.Repeat(" ", width-len(r))
}
