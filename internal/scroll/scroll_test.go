package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time { return epoch.Add(time.Duration(ms) * time.Millisecond) }

func TestScrollDebounce(t *testing.T) {
	c := New(DefaultInterval)
	c.Sync(10)

	require.True(t, c.Scroll(Down, 10, at(0)))
	sel, _ := c.Selected()
	require.Equal(t, 1, sel)

	require.False(t, c.Scroll(Down, 10, at(5)))
	require.False(t, c.Scroll(Down, 10, at(20)))
	sel, _ = c.Selected()
	require.Equal(t, 1, sel)
	require.Equal(t, 1, c.Offset())

	require.True(t, c.Scroll(Down, 10, at(21)))
	sel, _ = c.Selected()
	require.Equal(t, 2, sel)
}

func TestRejectedStepDoesNotExtendWindow(t *testing.T) {
	c := New(DefaultInterval)
	c.Sync(10)

	require.True(t, c.Scroll(Down, 10, at(0)))
	require.False(t, c.Scroll(Down, 10, at(15)))
	// measured from the last accepted step, not the rejected one
	require.True(t, c.Scroll(Down, 10, at(25)))
}

func TestScrollEmptyListKeepsNoSelection(t *testing.T) {
	c := New(0)
	c.Sync(0)
	_, ok := c.Selected()
	require.False(t, ok)

	for i := 0; i < 3; i++ {
		require.True(t, c.Scroll(Down, 0, at(i*100)))
		_, ok = c.Selected()
		require.False(t, ok)
		require.Zero(t, c.Offset())
	}
}

func TestScrollDownThreeSteps(t *testing.T) {
	c := New(DefaultInterval)
	c.Sync(5)
	sel, ok := c.Selected()
	require.True(t, ok)
	require.Equal(t, 0, sel)

	for i := 1; i <= 3; i++ {
		require.True(t, c.Scroll(Down, 5, at(i*50)))
	}
	sel, _ = c.Selected()
	require.Equal(t, 3, sel)
}

func TestScrollClampsAtEnds(t *testing.T) {
	c := New(DefaultInterval)
	c.Sync(3)

	require.True(t, c.Scroll(Up, 3, at(0)))
	sel, _ := c.Selected()
	require.Equal(t, 0, sel)
	require.Equal(t, 0, c.Offset())

	for i := 1; i <= 6; i++ {
		c.Scroll(Down, 3, at(i*50))
	}
	sel, _ = c.Selected()
	require.Equal(t, 2, sel)
	require.Equal(t, 2, c.Offset())
}

func TestScrollWithoutSelectionStartsAtFirst(t *testing.T) {
	c := New(DefaultInterval)
	require.True(t, c.Scroll(Down, 4, at(0)))
	sel, ok := c.Selected()
	require.True(t, ok)
	require.Equal(t, 1, sel)
}

func TestSyncShrinkAndGrow(t *testing.T) {
	c := New(DefaultInterval)
	c.Sync(10)
	for i := 1; i <= 8; i++ {
		c.Scroll(Down, 10, at(i*50))
	}
	sel, _ := c.Selected()
	require.Equal(t, 8, sel)
	require.Equal(t, 8, c.Offset())

	c.Sync(4)
	sel, ok := c.Selected()
	require.True(t, ok)
	require.Equal(t, 3, sel)
	require.Equal(t, 3, c.Offset())

	c.Sync(0)
	_, ok = c.Selected()
	require.False(t, ok)
	require.Zero(t, c.Offset())

	c.Sync(6)
	sel, ok = c.Selected()
	require.True(t, ok)
	require.Equal(t, 0, sel)
}

func TestScrollShrunkListBetweenSteps(t *testing.T) {
	c := New(DefaultInterval)
	c.Sync(10)
	for i := 1; i <= 7; i++ {
		c.Scroll(Down, 10, at(i*50))
	}

	// list shrank without a Sync in between
	require.True(t, c.Scroll(Down, 3, at(1000)))
	sel, _ := c.Selected()
	require.Equal(t, 2, sel)
	require.LessOrEqual(t, c.Offset(), 2)

	require.True(t, c.Scroll(Up, 3, at(1100)))
	sel, _ = c.Selected()
	require.Equal(t, 1, sel)
}

func TestSelectionAlwaysInBounds(t *testing.T) {
	c := New(time.Millisecond)
	lengths := []int{5, 0, 2, 9, 1, 1, 0, 7, 3}
	ms := 0
	for _, n := range lengths {
		c.Sync(n)
		for _, dir := range []Direction{Down, Down, Up, Down, Down, Down} {
			ms += 10
			c.Scroll(dir, n, at(ms))
			sel, ok := c.Selected()
			if n == 0 {
				require.False(t, ok, "n=%d", n)
				continue
			}
			require.True(t, ok, "n=%d", n)
			require.GreaterOrEqual(t, sel, 0)
			require.Less(t, sel, n)
			require.GreaterOrEqual(t, c.Offset(), 0)
			require.Less(t, c.Offset(), n)
		}
	}
}
