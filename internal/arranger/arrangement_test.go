package arranger

import (
	"fmt"
	"testing"

	"github.com/Conceptual-Machines/lounge-api/internal/models"
	"github.com/Conceptual-Machines/lounge-api/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sixteenths converts a transport position to an absolute sixteenth count
func sixteenths(t *testing.T, position string) int {
	t.Helper()
	var measure, beat, sixteenth int
	_, err := fmt.Sscanf(position, "%dm + 0:%d:%d", &measure, &beat, &sixteenth)
	require.NoError(t, err, "position %q", position)
	return measure*16 + beat*4 + sixteenth
}

func mustKey(t *testing.T, id string) models.Key {
	t.Helper()
	key, err := LookupKey(id)
	require.NoError(t, err)
	return key
}

func TestBlueprint_MeasuresSumToFourBeats(t *testing.T) {
	for _, section := range Blueprint {
		for i, cells := range section.Measures {
			total := 0
			for _, c := range cells {
				total += c.Beats()
			}
			assert.Equal(t, theory.BeatsPerMeasure, total, "section %s measure %d", section.Label, i)
		}
	}
	assert.Equal(t, 21, TotalMeasures(Blueprint))
}

func TestBuildArrangement_CMajorOpening(t *testing.T) {
	arr, err := BuildArrangement(mustKey(t, "C"))
	require.NoError(t, err)

	first := arr.ChordEvents[0]
	assert.Equal(t, "0m + 0:0:0", first.Time)
	assert.Equal(t, "1m", first.Duration)
	assert.Equal(t, []string{"C3", "E3", "G3", "B3", "D4"}, first.Notes)

	require.GreaterOrEqual(t, len(arr.BassEvents), 4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, fmt.Sprintf("0m + 0:%d:0", i), arr.BassEvents[i].Time)
	}
	assert.Equal(t, "C2", arr.BassEvents[0].Notes[0])

	melody := arr.MelodyEvents[0]
	assert.Equal(t, "0m + 0:0:2", melody.Time)
	assert.Equal(t, "4n.", melody.Duration)
	assert.Equal(t, []string{"C4", "C3"}, melody.Notes)
}

func TestBuildArrangement_SplitMeasure(t *testing.T) {
	arr, err := BuildArrangement(mustKey(t, "C"))
	require.NoError(t, err)

	// Intro measure 2: vi9 (chromaticDown) then ii11 (scalar)
	vi9 := arr.ChordEvents[1]
	assert.Equal(t, "1m + 0:0:0", vi9.Time)
	assert.Equal(t, "2n", vi9.Duration)
	assert.Equal(t, []string{"A3", "C4", "E4", "G4", "B4"}, vi9.Notes)

	ii11 := arr.ChordEvents[2]
	assert.Equal(t, "1m + 0:2:0", ii11.Time)
	assert.Equal(t, []string{"D3", "F3", "A3", "C4", "E4", "G4"}, ii11.Notes)

	bass := arr.BassEvents[4:8]
	assert.Equal(t, "A2", bass[0].Notes[0])
	assert.Equal(t, "B3", bass[1].Notes[0])
	assert.Equal(t, "D2", bass[2].Notes[0])
	assert.Equal(t, "E3", bass[3].Notes[0])
	assert.Equal(t, "1m + 0:3:0", bass[3].Time)

	assert.Equal(t, []string{"A4", "A3"}, arr.MelodyEvents[1].Notes)
	assert.Equal(t, "1m + 0:0:2", arr.MelodyEvents[1].Time)
	// ii11 starts on beat 2, so the melody takes the fifth above D4
	assert.Equal(t, []string{"A4", "A3"}, arr.MelodyEvents[2].Notes)
	assert.Equal(t, "1m + 0:2:2", arr.MelodyEvents[2].Time)
}

func TestBuildArrangement_StructureIndependentOfKey(t *testing.T) {
	for _, key := range Keys {
		t.Run(key.ID, func(t *testing.T) {
			arr, err := BuildArrangement(key)
			require.NoError(t, err)

			assert.Equal(t, key, arr.Key)
			assert.Equal(t, TotalMeasures(Blueprint), arr.TotalMeasures)
			require.Len(t, arr.Sections, len(Blueprint))

			cells, beats := 0, 0
			for i, section := range Blueprint {
				assert.Equal(t, section.Label, arr.Sections[i].Label)
				require.Len(t, arr.Sections[i].Measures, len(section.Measures))
				for m, measure := range section.Measures {
					require.Len(t, arr.Sections[i].Measures[m], len(measure))
					for c, mc := range measure {
						assert.Equal(t, mc.Display, arr.Sections[i].Measures[m][c])
						cells++
						beats += mc.Beats()
					}
				}
			}

			assert.Len(t, arr.ChordEvents, cells)
			assert.Len(t, arr.MelodyEvents, cells)
			assert.Len(t, arr.BassEvents, beats)
			assert.Equal(t, arr.TotalMeasures*theory.BeatsPerMeasure, beats)
		})
	}
}

func TestBuildArrangement_StreamsAreOrderedAndBounded(t *testing.T) {
	for _, key := range Keys {
		arr, err := BuildArrangement(key)
		require.NoError(t, err)

		limit := arr.TotalMeasures * 16
		for name, stream := range map[string][]models.PartEvent{
			"chord":  arr.ChordEvents,
			"bass":   arr.BassEvents,
			"melody": arr.MelodyEvents,
		} {
			prev := -1
			for i, e := range stream {
				pos := sixteenths(t, e.Time)
				assert.GreaterOrEqual(t, pos, prev, "%s %s event %d", key.ID, name, i)
				assert.Less(t, pos, limit, "%s %s event %d", key.ID, name, i)
				prev = pos
			}
		}

		last := arr.BassEvents[len(arr.BassEvents)-1]
		assert.Equal(t, fmt.Sprintf("%dm + 0:3:0", arr.TotalMeasures-1), last.Time)
	}
}

func TestBuildArrangement_BassPerCell(t *testing.T) {
	arr, err := BuildArrangement(mustKey(t, "F"))
	require.NoError(t, err)

	offset := 0
	cellIndex := 0
	for _, section := range Blueprint {
		for _, measure := range section.Measures {
			for _, c := range measure {
				chordStart := sixteenths(t, arr.ChordEvents[cellIndex].Time)
				for b := 0; b < c.Beats(); b++ {
					assert.Equal(t, chordStart+b*4, sixteenths(t, arr.BassEvents[offset+b].Time))
				}
				offset += c.Beats()
				cellIndex++
			}
		}
	}
	assert.Equal(t, len(arr.BassEvents), offset)
}

func TestBuildArrangement_BbUsesSharpSpelling(t *testing.T) {
	arr, err := BuildArrangement(mustKey(t, "Bb"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A#3", "D4", "F4", "A4", "C5"}, arr.ChordEvents[0].Notes)
	assert.Equal(t, "A#2", arr.BassEvents[0].Notes[0])
}

func TestBuildArrangement_AllOrNothing(t *testing.T) {
	arr, err := BuildArrangement(models.Key{ID: "Bb", Label: "B♭ Major", Tonic: "Bb"})
	assert.Nil(t, arr)
	assert.ErrorIs(t, err, theory.ErrInvalidNoteFormat)
}

func TestBuildArrangement_FreshOutputs(t *testing.T) {
	key := mustKey(t, "D")
	a, err := BuildArrangement(key)
	require.NoError(t, err)
	b, err := BuildArrangement(key)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	a.ChordEvents[0].Notes[0] = "changed"
	assert.NotEqual(t, a.ChordEvents[0].Notes[0], b.ChordEvents[0].Notes[0])
}

func TestLookupKey(t *testing.T) {
	key, err := LookupKey("Eb")
	require.NoError(t, err)
	assert.Equal(t, "D#", key.Tonic)
	assert.Equal(t, "E♭ Major", key.Label)

	_, err = LookupKey("H")
	assert.ErrorIs(t, err, ErrUnknownKey)
}
