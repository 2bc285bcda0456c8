package visualizer

import (
	"math"

	"github.com/olivier-w/smpd/internal/player"
)

const (
	// MaxHeight is the ceiling of a bar's continuous height.
	MaxHeight = 400.0
	// MinHeight is the floor every bar rests at.
	MinHeight = 1.0
	// DefaultBars is the bar count used before the display width is known.
	DefaultBars = 40

	attack      = 0.325
	decay       = 0.10
	release     = 0.30
	waveScale   = 7.0
	baseLevel   = 5.0
	beatChance  = 0.05
	beatMin     = 10.0
	beatMax     = 30.0
	jitterFloor = 0.75
)

// Source supplies uniform random numbers in [0, 1). *math/rand.Rand
// satisfies it; tests pass a seeded one.
type Source interface {
	Float64() float64
}

// Engine animates a bank of bars with a procedural wave model. Bars rise
// quickly toward a moving target and fall back slowly.
type Engine struct {
	rng     Source
	heights []float64
	out     []uint8
}

// NewEngine creates an engine with the given bar count and random source.
func NewEngine(bars int, rng Source) *Engine {
	e := &Engine{rng: rng}
	e.resize(bars)
	return e
}

// Len returns the current bar count.
func (e *Engine) Len() int { return len(e.heights) }

// Heights returns a copy of the continuous bar heights.
func (e *Engine) Heights() []float64 {
	out := make([]float64, len(e.heights))
	copy(out, e.heights)
	return out
}

// resize keeps the overlapping bars and starts new ones at the floor.
func (e *Engine) resize(n int) {
	if n < 0 {
		n = 0
	}
	if n == len(e.heights) {
		return
	}
	heights := make([]float64, n)
	copied := copy(heights, e.heights)
	for i := copied; i < n; i++ {
		heights[i] = MinHeight
	}
	e.heights = heights
	e.out = make([]uint8, n)
}

// Advance moves every bar one tick toward its target at time t (seconds
// since start) and returns the heights truncated to 8 bits. The returned
// slice is reused by the next call.
func (e *Engine) Advance(t float64, phase player.Phase, bars int) []uint8 {
	e.resize(bars)

	if phase == player.PhasePlaying {
		e.animate(t)
	} else {
		for i, h := range e.heights {
			e.heights[i] = math.Max(h+(MinHeight-h)*release, MinHeight)
		}
	}

	for i, h := range e.heights {
		e.out[i] = uint8(math.Min(h, math.MaxUint8))
	}
	return e.out
}

func (e *Engine) animate(t float64) {
	n := float64(len(e.heights))
	for i, current := range e.heights {
		fi := float64(i)

		low := (math.Sin(t/5)*0.5 + 0.5) * (5 * waveScale) * e.jitter()

		midAmp := (math.Cos(t)*0.5 + 0.5) * (15 * waveScale) * e.jitter()
		mid := (math.Sin(t*3+fi/2)*0.5 + 0.5) * midAmp

		trebleAmp := math.Pow(fi/n, 2) * (20 * waveScale) * e.jitter()
		high := (math.Cos(t*10+fi*5)*0.5 + 0.5) * trebleAmp

		target := baseLevel + low + mid + high
		if e.rng.Float64() < beatChance {
			target += beatMin + e.rng.Float64()*(beatMax-beatMin)
		}
		target = clampHeight(target)

		delta := target - current
		if delta > 0 {
			current += delta * attack
		} else {
			current += delta * decay
		}
		e.heights[i] = clampHeight(current)
	}
}

// jitter returns a multiplier in [0.75, 1.0).
func (e *Engine) jitter() float64 {
	return jitterFloor + e.rng.Float64()*(1-jitterFloor)
}

func clampHeight(h float64) float64 {
	return math.Min(math.Max(h, MinHeight), MaxHeight)
}
