package lyrics

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource replays a list of values
type fixedSource struct {
	values []float64
	i      int
}

func (f *fixedSource) Next() float64 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}

func TestSeededRandom_Reproducible(t *testing.T) {
	a := NewSeededRandom(0.4242)
	b := NewSeededRandom(0.4242)
	for i := 0; i < 100; i++ {
		va, vb := a.Next(), b.Next()
		require.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
}

func TestSeededRandom_Recurrence(t *testing.T) {
	r := NewSeededRandom(2)
	for state := 2.0; state < 6; state++ {
		x := math.Sin(state) * 10000
		assert.Equal(t, x-math.Floor(x), r.Next())
	}
}

func TestNewSeed(t *testing.T) {
	seed := NewSeed()
	assert.GreaterOrEqual(t, seed, 0.0)
	assert.Less(t, seed, 1.0)
}

func TestPickUnique(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}

	// 0.5*4 = index 2 ("c"); then 0.5*3 = index 1 of [a b d] ("b")
	got, err := PickUnique(pool, 2, &fixedSource{values: []float64{0.5}})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, got)
	assert.Equal(t, []string{"a", "b", "c", "d"}, pool, "pool must not be modified")

	got, err = PickUnique(pool, 4, &fixedSource{values: []float64{0.99}})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b", "a"}, got)
}

func TestPickUnique_NoDuplicates(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f"}
	for seed := 0; seed < 200; seed++ {
		for count := 0; count <= len(pool); count++ {
			got, err := PickUnique(pool, count, NewSeededRandom(float64(seed)*0.37))
			require.NoError(t, err)
			require.Len(t, got, count)

			seen := map[string]bool{}
			for _, line := range got {
				require.False(t, seen[line], "duplicate %q for seed %d", line, seed)
				seen[line] = true
			}
		}
	}
}

func TestPickUnique_TooMany(t *testing.T) {
	_, err := PickUnique([]string{"a"}, 2, NewSeededRandom(1))
	assert.ErrorIs(t, err, ErrPoolExhausted)
}

func TestPickUnique_ClampsTopOfRange(t *testing.T) {
	got, err := PickUnique([]string{"a", "b"}, 1, &fixedSource{values: []float64{1.0}})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got)
}

func TestDefaultPools(t *testing.T) {
	pools, err := DefaultPools()
	require.NoError(t, err)
	assert.Len(t, pools.TitleLeadIns, 4)
	assert.Len(t, pools.Verses, 4)
	assert.Len(t, pools.Choruses, 4)
	assert.Len(t, pools.Bridges, 4)
	assert.Equal(t, "Midnight velvet whispers", pools.TitleLeadIns[0])
}

func TestLoadPools_Errors(t *testing.T) {
	_, err := LoadPools([]byte("verses: [unterminated"))
	assert.Error(t, err)

	_, err = LoadPools([]byte("title_lead_ins: [x]\nverses: [one]\nchoruses: [a, b]\nbridges: [c]\n"))
	assert.ErrorIs(t, err, ErrPoolExhausted)
	assert.Contains(t, err.Error(), "verses")
}

func TestGenerate_SameSeedSameSheet(t *testing.T) {
	pools, err := DefaultPools()
	require.NoError(t, err)
	gen := NewGenerator(pools)

	for _, seed := range []float64{0, 0.1234, 0.98765, 42} {
		t.Run(fmt.Sprint(seed), func(t *testing.T) {
			a, err := gen.Generate("C Major", seed)
			require.NoError(t, err)
			b, err := gen.Generate("C Major", seed)
			require.NoError(t, err)
			assert.Equal(t, a, b)

			assert.Equal(t, seed, a.Seed)
			assert.True(t, strings.HasSuffix(a.Title, " in C Major"), a.Title)
			assert.Len(t, a.Verse, 2)
			assert.Len(t, a.Chorus, 2)
			assert.Len(t, a.Bridge, 1)
			assert.NotEqual(t, a.Verse[0], a.Verse[1])
			assert.NotEqual(t, a.Chorus[0], a.Chorus[1])
			assert.Subset(t, pools.Verses, a.Verse)
			assert.Subset(t, pools.Choruses, a.Chorus)
			assert.Subset(t, pools.Bridges, a.Bridge)
		})
	}
}

func TestGenerate_DrawOrder(t *testing.T) {
	pools, err := DefaultPools()
	require.NoError(t, err)

	const seed = 7.5
	sheet, err := NewGenerator(pools).Generate("G Major", seed)
	require.NoError(t, err)

	rng := NewSeededRandom(seed)
	leadIn := pools.TitleLeadIns[int(rng.Next()*4)]
	verse, _ := PickUnique(pools.Verses, 2, rng)
	chorus, _ := PickUnique(pools.Choruses, 2, rng)
	bridge, _ := PickUnique(pools.Bridges, 1, rng)

	assert.Equal(t, leadIn+" in G Major", sheet.Title)
	assert.Equal(t, verse, sheet.Verse)
	assert.Equal(t, chorus, sheet.Chorus)
	assert.Equal(t, bridge, sheet.Bridge)
}

func TestGenerate_InvalidPools(t *testing.T) {
	_, err := NewGenerator(&Pools{}).Generate("C Major", 1)
	assert.ErrorIs(t, err, ErrPoolExhausted)
}
