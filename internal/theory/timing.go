package theory

import (
	"errors"
	"fmt"
	"math"
)

// Symbolic durations in the transport's notation.
const (
	DurationMeasure      = "1m"
	DurationHalf         = "2n"
	DurationQuarter      = "4n"
	DurationDottedEighth = "4n."
	DurationThirtySecond = "32n"
)

// BeatsPerMeasure is fixed: every arrangement is in 4/4.
const BeatsPerMeasure = 4

const sixteenthsPerBeat = 4

// DurationToBeats maps a cell duration to a beat count. Unrecognised symbols
// count as a whole measure.
func DurationToBeats(duration string) int {
	switch duration {
	case DurationMeasure:
		return 4
	case DurationHalf:
		return 2
	case DurationQuarter:
		return 1
	default:
		return BeatsPerMeasure
	}
}

// FormatBeatOffset renders a fractional beat as "0:<beats>:<sixteenths>".
// The sixteenth count is rounded and may reach 4; the transport carries it.
func FormatBeatOffset(beat float64) string {
	wholeBeats := math.Floor(beat)
	sixteenths := roundHalfUp((beat - wholeBeats) * sixteenthsPerBeat)
	return fmt.Sprintf("0:%d:%d", int(wholeBeats), sixteenths)
}

// CreateTimeAt composes a transport position "<measure>m + 0:<beat>:<sixteenth>".
func CreateTimeAt(measureOffset int, beat float64) string {
	return fmt.Sprintf("%dm + %s", measureOffset, FormatBeatOffset(beat))
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// ErrInvalidPosition is returned for transport positions not of the form "<m>m + 0:<b>:<s>".
var ErrInvalidPosition = errors.New("invalid transport position")

// ErrUnknownDuration is returned for symbolic durations outside the supported set.
var ErrUnknownDuration = errors.New("unknown duration")

var durationBeats = map[string]float64{
	DurationMeasure:      4,
	DurationHalf:         2,
	DurationQuarter:      1,
	DurationDottedEighth: 1.5,
	DurationThirtySecond: 0.125,
}

// DurationLength returns the exact beat length of any symbolic duration the
// generators emit, including "4n." and "32n".
func DurationLength(duration string) (float64, error) {
	beats, ok := durationBeats[duration]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDuration, duration)
	}
	return beats, nil
}

// PositionToBeats converts a transport position back to an absolute beat.
// Measures may be fractional ("0.5m + 0:0:2").
func PositionToBeats(position string) (float64, error) {
	var measure float64
	var beat, sixteenth int
	n, err := fmt.Sscanf(position, "%gm + 0:%d:%d", &measure, &beat, &sixteenth)
	if err != nil || n != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, position)
	}
	return measure*BeatsPerMeasure + float64(beat) + float64(sixteenth)/sixteenthsPerBeat, nil
}
