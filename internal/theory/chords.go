package theory

import "strconv"

// ChordQuality names a stack of intervals above a chord root.
type ChordQuality string

const (
	Maj9        ChordQuality = "maj9"
	Min9        ChordQuality = "min9"
	Min11       ChordQuality = "min11"
	Dom13       ChordQuality = "dom13"
	Dom13b9     ChordQuality = "dom13b9"
	Maj7Sharp11 ChordQuality = "maj7sharp11"
	HalfDim     ChordQuality = "halfDim"
	Dim7        ChordQuality = "dim7"
	AltDom      ChordQuality = "altDom"
)

// ChordOctave is the reference octave chord voicings are built in.
const ChordOctave = 3

// Semitone offsets from the root. Values above 12 are upper extensions.
// The order is the voicing order and is not pitch-sorted.
var qualityIntervals = map[ChordQuality][]int{
	Maj9:        {0, 4, 7, 11, 14},
	Min9:        {0, 3, 7, 10, 14},
	Min11:       {0, 3, 7, 10, 14, 17},
	Dom13:       {0, 4, 7, 10, 14, 17, 21},
	Dom13b9:     {0, 4, 7, 10, 13, 17, 21},
	Maj7Sharp11: {0, 4, 6, 11, 14},
	HalfDim:     {0, 3, 6, 10, 13},
	Dim7:        {0, 3, 6, 9},
	AltDom:      {0, 4, 7, 10, 13, 15},
}

// Qualities lists every catalog entry in a stable order.
var Qualities = []ChordQuality{Maj9, Min9, Min11, Dom13, Dom13b9, Maj7Sharp11, HalfDim, Dim7, AltDom}

// Intervals returns a copy of the catalog entry for q, or nil if q is unknown.
func (q ChordQuality) Intervals() []int {
	intervals, ok := qualityIntervals[q]
	if !ok {
		return nil
	}
	out := make([]int, len(intervals))
	copy(out, intervals)
	return out
}

// IntervalAt returns the catalog interval at position i, or fallback when
// the entry is too short.
func (q ChordQuality) IntervalAt(i, fallback int) int {
	intervals := qualityIntervals[q]
	if i < 0 || i >= len(intervals) {
		return fallback
	}
	return intervals[i]
}

// Chord is a voiced chord: its root note and the notes in catalog order.
type Chord struct {
	Root  string
	Notes []string
}

// BuildChord voices quality on the scale degree (semitones above tonic) at ChordOctave.
// tonic is a pitch class name such as "C" or "A#".
func BuildChord(tonic string, degree int, quality ChordQuality) (Chord, error) {
	root, err := Transpose(tonic+strconv.Itoa(ChordOctave), degree)
	if err != nil {
		return Chord{}, err
	}

	intervals := qualityIntervals[quality]
	notes := make([]string, 0, len(intervals))
	for _, interval := range intervals {
		note, err := Transpose(root, interval)
		if err != nil {
			return Chord{}, err
		}
		notes = append(notes, note)
	}

	return Chord{Root: root, Notes: notes}, nil
}
