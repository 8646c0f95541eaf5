package playback

import (
	"errors"
	"fmt"
	"math"

	"github.com/Conceptual-Machines/lounge-api/internal/models"
	"github.com/Conceptual-Machines/lounge-api/internal/theory"
)

// Control surface ranges
const (
	MinTempo = 84
	MaxTempo = 162
	MinSwing = 0.2
	MaxSwing = 0.75

	// SwingSubdivision is the note value the transport swings
	SwingSubdivision = "8n"
)

var (
	ErrTempoOutOfRange = errors.New("tempo out of range")
	ErrSwingOutOfRange = errors.New("swing out of range")
)

const (
	lightSwingBelow   = 0.3
	classicSwingBelow = 0.65
	secondsPerMinute  = 60
)

var tempoMarks = []models.TempoMark{
	{Label: "Ballad", Value: 90},
	{Label: "Medium", Value: 120},
	{Label: "Up", Value: 148},
}

// ValidateTempo checks a BPM against the control range
func ValidateTempo(bpm int) error {
	if bpm < MinTempo || bpm > MaxTempo {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrTempoOutOfRange, bpm, MinTempo, MaxTempo)
	}
	return nil
}

// ValidateSwing checks a swing ratio against the control range
func ValidateSwing(swing float64) error {
	if math.IsNaN(swing) || swing < MinSwing || swing > MaxSwing {
		return fmt.Errorf("%w: %v (want %v-%v)", ErrSwingOutOfRange, swing, MinSwing, MaxSwing)
	}
	return nil
}

// SwingLabel names a swing ratio for display
func SwingLabel(swing float64) string {
	switch {
	case swing < lightSwingBelow:
		return "Light swing"
	case swing < classicSwingBelow:
		return "Classic swing"
	default:
		return "Hard swing"
	}
}

// TempoMarks returns the named tempos, flagging the one equal to bpm
func TempoMarks(bpm int) []models.TempoMark {
	marks := make([]models.TempoMark, len(tempoMarks))
	for i, mark := range tempoMarks {
		mark.Active = mark.Value == bpm
		marks[i] = mark
	}
	return marks
}

// RunningTime estimates "m:ss" for measures of 4/4 at bpm
func RunningTime(bpm, measures int) string {
	totalBeats := measures * theory.BeatsPerMeasure
	minutes := float64(totalBeats) / float64(bpm)

	wholeMinutes := int(math.Floor(minutes))
	seconds := int(math.Floor((minutes-float64(wholeMinutes))*secondsPerMinute + 0.5))
	if seconds == secondsPerMinute {
		wholeMinutes++
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", wholeMinutes, seconds)
}
