// Package lyrics builds lounge lyric sheets from fixed line pools using a
// seeded generator, so a sheet can be replayed from its seed.
package lyrics

import (
	"errors"
	"fmt"

	"github.com/Conceptual-Machines/lounge-api/internal/models"
)

// ErrPoolExhausted is returned when more lines are requested than a pool holds.
var ErrPoolExhausted = errors.New("not enough lines in pool")

// Generator draws lyric sheets from a set of pools.
type Generator struct {
	pools *Pools
}

// NewGenerator returns a generator over pools.
func NewGenerator(pools *Pools) *Generator {
	return &Generator{pools: pools}
}

// Generate builds the sheet for seed. Draw order is fixed: title lead-in,
// verses, choruses, bridge, all from one generator.
func (g *Generator) Generate(keyLabel string, seed float64) (*models.LyricSheet, error) {
	if err := g.pools.Validate(); err != nil {
		return nil, err
	}
	rng := NewSeededRandom(seed)

	leadIn := g.pools.TitleLeadIns[pickIndex(rng, len(g.pools.TitleLeadIns))]

	verse, err := PickUnique(g.pools.Verses, versePicks, rng)
	if err != nil {
		return nil, fmt.Errorf("verse: %w", err)
	}
	chorus, err := PickUnique(g.pools.Choruses, chorusPicks, rng)
	if err != nil {
		return nil, fmt.Errorf("chorus: %w", err)
	}
	bridge, err := PickUnique(g.pools.Bridges, bridgePicks, rng)
	if err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}

	return &models.LyricSheet{
		Seed:   seed,
		Title:  fmt.Sprintf("%s in %s", leadIn, keyLabel),
		Verse:  verse,
		Chorus: chorus,
		Bridge: bridge,
	}, nil
}

// PickUnique draws count distinct entries from pool without replacement,
// in draw order. pool is not modified.
func PickUnique(pool []string, count int, rng Source) ([]string, error) {
	if count > len(pool) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrPoolExhausted, count, len(pool))
	}

	available := make([]string, len(pool))
	copy(available, pool)

	chosen := make([]string, 0, count)
	for i := 0; i < count; i++ {
		index := pickIndex(rng, len(available))
		chosen = append(chosen, available[index])
		available = append(available[:index], available[index+1:]...)
	}
	return chosen, nil
}

func pickIndex(rng Source, n int) int {
	index := int(rng.Next() * float64(n))
	if index >= n {
		index = n - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}
