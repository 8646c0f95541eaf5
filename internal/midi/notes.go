// Package midi renders arrangements as beat-positioned MIDI note events so
// they can be dropped into a DAW track instead of the browser transport.
package midi

import (
	"fmt"
	"math"

	"github.com/Conceptual-Machines/lounge-api/internal/models"
	"github.com/Conceptual-Machines/lounge-api/internal/theory"
)

const (
	minMIDINote = 0
	maxMIDINote = 127
	maxVelocity = 127
)

// Feel defines the accent and articulation of one part
type Feel struct {
	Velocity int
	// Velocity multipliers per beat of the bar (1.0 = normal)
	Accents [theory.BeatsPerMeasure]float64
	// Duration multiplier (affects note length, 0.0-1.0)
	Articulation float64
}

// Part feels, keyed by track name
var (
	CompingFeel = Feel{Velocity: 72, Accents: [4]float64{1.0, 0.85, 0.95, 0.85}, Articulation: 0.95}
	WalkingFeel = Feel{Velocity: 96, Accents: [4]float64{1.0, 0.8, 0.9, 0.8}, Articulation: 0.9}
	MelodyFeel  = Feel{Velocity: 88, Accents: [4]float64{1.0, 0.9, 0.95, 0.9}, Articulation: 0.85}
)

// Track names
const (
	TrackChords = "chords"
	TrackBass   = "bass"
	TrackMelody = "melody"
)

// ExportArrangement renders the chord, bass and melody streams as note tracks
func ExportArrangement(arr *models.PreparedArrangement) (*models.NoteExport, error) {
	parts := []struct {
		name   string
		events []models.PartEvent
		feel   Feel
	}{
		{TrackChords, arr.ChordEvents, CompingFeel},
		{TrackBass, arr.BassEvents, WalkingFeel},
		{TrackMelody, arr.MelodyEvents, MelodyFeel},
	}

	tracks := make([]models.NoteTrack, 0, len(parts))
	for _, part := range parts {
		notes, err := EventsToNotes(part.events, part.feel)
		if err != nil {
			return nil, fmt.Errorf("%s track: %w", part.name, err)
		}
		tracks = append(tracks, models.NoteTrack{Name: part.name, Notes: notes})
	}

	return &models.NoteExport{
		Key:        arr.Key,
		TotalBeats: float64(arr.TotalMeasures * theory.BeatsPerMeasure),
		Tracks:     tracks,
	}, nil
}

// EventsToNotes converts part events into MIDI notes. Every note of an event
// shares its start, length and accent. Notes outside 0-127 are skipped.
func EventsToNotes(events []models.PartEvent, feel Feel) ([]models.NoteEvent, error) {
	notes := make([]models.NoteEvent, 0, len(events))
	for _, event := range events {
		start, err := theory.PositionToBeats(event.Time)
		if err != nil {
			return nil, err
		}
		length, err := theory.DurationLength(event.Duration)
		if err != nil {
			return nil, err
		}
		velocity := accentedVelocity(feel, start)

		for _, note := range event.Notes {
			midiNote, err := theory.NoteToPitchIndex(note)
			if err != nil {
				return nil, err
			}
			if midiNote < minMIDINote || midiNote > maxMIDINote {
				continue // Skip out-of-range notes
			}
			notes = append(notes, models.NoteEvent{
				MidiNoteNumber: midiNote,
				Velocity:       velocity,
				StartBeats:     start,
				DurationBeats:  length * feel.Articulation,
			})
		}
	}
	return notes, nil
}

func accentedVelocity(feel Feel, start float64) int {
	beat := int(math.Floor(start)) % theory.BeatsPerMeasure
	velocity := int(float64(feel.Velocity) * feel.Accents[beat])
	if velocity > maxVelocity {
		velocity = maxVelocity
	}
	if velocity < 1 {
		velocity = 1
	}
	return velocity
}
