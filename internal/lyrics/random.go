package lyrics

import (
	"math"
	"math/rand"
)

// Source yields successive values in [0, 1).
type Source interface {
	Next() float64
}

// SeededRandom is a reproducible, non-cryptographic generator: the fractional
// part of sin(state)*10000, with state advancing by one per draw. The same
// seed always yields the same sequence.
type SeededRandom struct {
	state float64
}

// NewSeededRandom starts a generator at seed.
func NewSeededRandom(seed float64) *SeededRandom {
	return &SeededRandom{state: seed}
}

// Next returns the next value and advances the state.
func (r *SeededRandom) Next() float64 {
	x := math.Sin(r.state) * 10000
	r.state++
	return x - math.Floor(x)
}

// NewSeed draws a fresh seed for a new lyric sheet.
func NewSeed() float64 {
	return rand.Float64()
}
