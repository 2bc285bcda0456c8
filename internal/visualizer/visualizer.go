package visualizer

// GlyphStyle selects the glyph table used to draw bar cells.
type GlyphStyle int

const (
	GlyphBlocks GlyphStyle = iota
	GlyphDots
)

// Styles returns all available glyph styles in cycle order.
func Styles() []GlyphStyle {
	return []GlyphStyle{GlyphBlocks, GlyphDots}
}

// Next cycles to the next glyph style.
func (s GlyphStyle) Next() GlyphStyle {
	switch s {
	case GlyphBlocks:
		return GlyphDots
	default:
		return GlyphBlocks
	}
}

// String returns the name of the glyph style.
func (s GlyphStyle) String() string {
	switch s {
	case GlyphDots:
		return "dots"
	default:
		return "blocks"
	}
}

// ParseGlyphStyle maps a style name back to its value. Unknown names
// report false and GlyphBlocks.
func ParseGlyphStyle(name string) (GlyphStyle, bool) {
	for _, s := range Styles() {
		if s.String() == name {
			return s, true
		}
	}
	return GlyphBlocks, false
}
