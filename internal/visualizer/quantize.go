package visualizer

// UnitsPerRow is the number of sub-row fill steps a single text row holds.
const UnitsPerRow = 4

// Glyph tables indexed by fill units (0..UnitsPerRow).
var (
	blockGlyphs = [UnitsPerRow + 1]rune{' ', '▂', '▄', '▆', '█'}
	dotGlyphs   = [UnitsPerRow + 1]rune{'⠀', '⠁', '⠃', '⠇', '⠏'}
)

// Cell is one quantized (column, row) piece of a bar. Row 0 is the bottom row.
type Cell struct {
	Row   int
	Units int
	Glyph rune
}

// Glyph returns the symbol for a row filled with the given number of units.
// Units outside 0..UnitsPerRow are clamped.
func Glyph(units int, style GlyphStyle) rune {
	if units < 0 {
		units = 0
	}
	if units > UnitsPerRow {
		units = UnitsPerRow
	}
	if style == GlyphDots {
		return dotGlyphs[units]
	}
	return blockGlyphs[units]
}

// RenderColumn quantizes a bar height into per-row glyphs, bottom-up.
// Rows that receive no units are left out so whatever is behind them shows
// through.
func RenderColumn(height uint8, cellRows uint16, style GlyphStyle) []Cell {
	total := int(cellRows) * UnitsPerRow
	h := int(height)
	if h > total {
		h = total
	}
	if h == 0 {
		return nil
	}

	cells := make([]Cell, 0, (h+UnitsPerRow-1)/UnitsPerRow)
	for r := range int(cellRows) {
		units := h - r*UnitsPerRow
		if units <= 0 {
			break
		}
		if units > UnitsPerRow {
			units = UnitsPerRow
		}
		cells = append(cells, Cell{Row: r, Units: units, Glyph: Glyph(units, style)})
	}
	return cells
}
