package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Conceptual-Machines/lounge-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLeadSheet_Plain(t *testing.T) {
	out, err := execute(t, "--key", "Bb", "--seed", "42", "--plain")
	require.NoError(t, err)

	assert.Contains(t, out, "B♭ Major")
	for _, label := range []string{"Intro", "A'", "Tag", "Verse", "Chorus", "Bridge"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "seed 42")
}

func TestLeadSheet_JSON(t *testing.T) {
	out, err := execute(t, "--key", "G", "--tempo", "148", "--swing", "0.7", "--seed", "5", "--json")
	require.NoError(t, err)

	var plan models.PlaybackPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, 148, plan.Tempo)
	assert.Equal(t, "Hard swing", plan.SwingLabel)
	assert.Equal(t, "G", plan.Arrangement.Key.ID)
	assert.Equal(t, 5.0, plan.Lyrics.Seed)
}

func TestLeadSheet_SameSeedSameLyrics(t *testing.T) {
	first, err := execute(t, "--seed", "9", "--plain")
	require.NoError(t, err)
	second, err := execute(t, "--seed", "9", "--plain")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLeadSheet_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown key", args: []string{"--key", "H"}},
		{name: "tempo out of range", args: []string{"--tempo", "300"}},
		{name: "swing out of range", args: []string{"--swing", "0.1"}},
		{name: "positional argument", args: []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
