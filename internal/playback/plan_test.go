package playback

import (
	"testing"

	"github.com/Conceptual-Machines/lounge-api/internal/arranger"
	"github.com/Conceptual-Machines/lounge-api/internal/lyrics"
	"github.com/Conceptual-Machines/lounge-api/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	pools, err := lyrics.DefaultPools()
	require.NoError(t, err)
	return NewPlanner(lyrics.NewGenerator(pools))
}

func TestValidateTempo(t *testing.T) {
	assert.NoError(t, ValidateTempo(84))
	assert.NoError(t, ValidateTempo(162))
	assert.ErrorIs(t, ValidateTempo(83), ErrTempoOutOfRange)
	assert.ErrorIs(t, ValidateTempo(163), ErrTempoOutOfRange)
}

func TestValidateSwing(t *testing.T) {
	assert.NoError(t, ValidateSwing(0.2))
	assert.NoError(t, ValidateSwing(0.75))
	assert.ErrorIs(t, ValidateSwing(0.19), ErrSwingOutOfRange)
	assert.ErrorIs(t, ValidateSwing(0.8), ErrSwingOutOfRange)
}

func TestSwingLabel(t *testing.T) {
	assert.Equal(t, "Light swing", SwingLabel(0.2))
	assert.Equal(t, "Light swing", SwingLabel(0.29))
	assert.Equal(t, "Classic swing", SwingLabel(0.3))
	assert.Equal(t, "Classic swing", SwingLabel(0.55))
	assert.Equal(t, "Hard swing", SwingLabel(0.65))
	assert.Equal(t, "Hard swing", SwingLabel(0.75))
}

func TestTempoMarks(t *testing.T) {
	marks := TempoMarks(120)
	require.Len(t, marks, 3)
	assert.False(t, marks[0].Active)
	assert.True(t, marks[1].Active)
	assert.Equal(t, "Medium", marks[1].Label)

	for _, m := range TempoMarks(100) {
		assert.False(t, m.Active)
	}
	assert.False(t, TempoMarks(120)[0].Active, "marks are copied, not shared")
}

func TestRunningTime(t *testing.T) {
	tests := []struct {
		bpm, measures int
		expected      string
	}{
		{120, 21, "0:42"},
		{84, 21, "1:00"},
		{90, 21, "0:56"},
		{162, 21, "0:31"},
		{120, 30, "1:00"},
		{121, 30, "1:00"}, // 59.5s rounds up and carries
		{119, 30, "1:01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, RunningTime(tt.bpm, tt.measures), "bpm=%d measures=%d", tt.bpm, tt.measures)
	}
}

func TestRidePattern(t *testing.T) {
	events := RidePattern(2)
	require.Len(t, events, 4)
	assert.Equal(t, "0m + 0:0:0", events[0].Time)
	assert.Equal(t, "0.5m + 0:0:2", events[1].Time)
	assert.Equal(t, "1m + 0:0:0", events[2].Time)
	assert.Equal(t, "1.5m + 0:0:2", events[3].Time)
	for _, e := range events {
		assert.Equal(t, "32n", e.Duration)
		assert.Empty(t, e.Notes)
	}
}

func TestPlan(t *testing.T) {
	key, err := arranger.LookupKey("Eb")
	require.NoError(t, err)

	plan, err := newTestPlanner(t).Plan(Settings{Key: key, Tempo: 148, Swing: 0.55, Seed: 0.25})
	require.NoError(t, err)

	assert.Equal(t, 148, plan.Tempo)
	assert.Equal(t, "Classic swing", plan.SwingLabel)
	assert.Equal(t, "8n", plan.SwingSubdivision)
	assert.True(t, plan.TempoMarks[2].Active)
	assert.Equal(t, RunningTime(148, 21), plan.RunningTime)
	assert.Equal(t, 21, plan.Arrangement.TotalMeasures)
	assert.Len(t, plan.RideEvents, 42)
	assert.Equal(t, 0.25, plan.Lyrics.Seed)
	assert.Contains(t, plan.Lyrics.Title, "E♭ Major")
}

func TestPlan_Rejects(t *testing.T) {
	planner := newTestPlanner(t)
	key, err := arranger.LookupKey("C")
	require.NoError(t, err)

	_, err = planner.Plan(Settings{Key: key, Tempo: 200, Swing: 0.5})
	assert.ErrorIs(t, err, ErrTempoOutOfRange)

	_, err = planner.Plan(Settings{Key: key, Tempo: 120, Swing: 0.9})
	assert.ErrorIs(t, err, ErrSwingOutOfRange)

	key.Tonic = "Cb"
	plan, err := planner.Plan(Settings{Key: key, Tempo: 120, Swing: 0.5})
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, theory.ErrInvalidNoteFormat)
}
