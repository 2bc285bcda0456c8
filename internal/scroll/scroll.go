// Package scroll tracks the selection and scrollbar position over a list
// whose length may change between frames.
package scroll

import "time"

// DefaultInterval is the minimum time between two accepted steps.
const DefaultInterval = 20 * time.Millisecond

// Direction is the way a scroll step moves.
type Direction int

const (
	Up Direction = iota
	Down
)

// Controller owns the selection index and the scrollbar offset. Steps
// arriving faster than the interval are dropped, so a burst of queued key
// events cannot run the selection away.
type Controller struct {
	interval time.Duration
	offset   int
	selected int // -1 when nothing is selected
	last     time.Time
}

// New creates a Controller with nothing selected. A non-positive interval
// selects DefaultInterval.
func New(interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{interval: interval, selected: -1}
}

// Offset returns the scrollbar position.
func (c *Controller) Offset() int { return c.offset }

// Selected returns the selected index and whether there is one.
func (c *Controller) Selected() (int, bool) {
	return c.selected, c.selected >= 0
}

// Scroll moves one step in dir over a list of n items. It reports whether
// the step was taken; a step within the interval of the previous one is
// ignored and leaves the state untouched.
func (c *Controller) Scroll(dir Direction, n int, now time.Time) bool {
	if !c.last.IsZero() && now.Sub(c.last) <= c.interval {
		return false
	}
	c.last = now

	switch dir {
	case Up:
		c.offset--
	case Down:
		c.offset++
	}
	c.clampOffset(n)

	if n <= 0 {
		c.selected = -1
		return true
	}
	sel := c.selected
	if sel < 0 {
		sel = 0
	}
	if sel > n-1 {
		sel = n - 1
	}
	switch dir {
	case Up:
		sel--
	case Down:
		sel++
	}
	c.selected = clamp(sel, 0, n-1)
	return true
}

// Sync re-bounds the state after the list length changed to n. An empty
// list clears the selection; a fresh list selects its first item.
func (c *Controller) Sync(n int) {
	c.clampOffset(n)
	if n <= 0 {
		c.selected = -1
		return
	}
	if c.selected < 0 {
		c.selected = 0
		return
	}
	c.selected = clamp(c.selected, 0, n-1)
}

func (c *Controller) clampOffset(n int) {
	c.offset = clamp(c.offset, 0, max(n-1, 0))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
