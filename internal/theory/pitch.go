package theory

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrInvalidNoteFormat is returned when a note string is not <A-G>[#]<octave>.
	ErrInvalidNoteFormat = errors.New("invalid note format")
	// ErrUnknownPitchClass is returned for letter/sharp pairs outside the chromatic table (E#, B#).
	ErrUnknownPitchClass = errors.New("unknown pitch class")
)

// NoteSequence is the chromatic pitch-class table, C = 0.
var NoteSequence = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

const semitonesPerOctave = 12

var noteRe = regexp.MustCompile(`^([A-G]#?)(-?\d+)$`)

// PitchClassIndex returns the position of a pitch class name ("C", "F#") in NoteSequence.
func PitchClassIndex(pitchClass string) (int, error) {
	for i, name := range NoteSequence {
		if name == pitchClass {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownPitchClass, pitchClass)
}

// ParseNote splits a note string like "F#3" into its pitch class index and octave.
func ParseNote(note string) (pitchClass, octave int, err error) {
	match := noteRe.FindStringSubmatch(note)
	if match == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNoteFormat, note)
	}

	pitchClass, err = PitchClassIndex(match[1])
	if err != nil {
		return 0, 0, err
	}

	octave, err = strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNoteFormat, note)
	}

	return pitchClass, octave, nil
}

// NoteToPitchIndex converts a note name to an absolute pitch index
// (MIDI numbering: C-1 = 0, C4 = 60).
func NoteToPitchIndex(note string) (int, error) {
	pitchClass, octave, err := ParseNote(note)
	if err != nil {
		return 0, err
	}
	return pitchClass + (octave+1)*semitonesPerOctave, nil
}

// PitchIndexToNote converts an absolute pitch index back to a note name.
// Indexes below zero render with negative octaves ("B-2").
func PitchIndexToNote(pitchIndex int) string {
	octave := floorDiv(pitchIndex, semitonesPerOctave) - 1
	pitchClass := pitchIndex - floorDiv(pitchIndex, semitonesPerOctave)*semitonesPerOctave
	return NoteSequence[pitchClass] + strconv.Itoa(octave)
}

// Transpose moves a note by the given number of semitones (negative goes down).
func Transpose(note string, semitones int) (string, error) {
	pitchIndex, err := NoteToPitchIndex(note)
	if err != nil {
		return "", err
	}
	return PitchIndexToNote(pitchIndex + semitones), nil
}

// WithOctave keeps a note's pitch class and replaces its octave.
func WithOctave(note string, octave int) (string, error) {
	pitchClass, _, err := ParseNote(note)
	if err != nil {
		return "", err
	}
	return NoteSequence[pitchClass] + strconv.Itoa(octave), nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
