package arranger

import (
	"strconv"

	"github.com/Conceptual-Machines/lounge-api/internal/models"
	"github.com/Conceptual-Machines/lounge-api/internal/theory"
)

// BassOctave is the register the walking line is rooted in.
const BassOctave = 2

const (
	defaultColorInterval = 3
	defaultFifthInterval = 7
	minorSeventh         = 10
	octave               = 12
)

var scalarPattern = []int{0, 2, 4, 5}

// BassRequest describes the cell a bass line is walked over.
type BassRequest struct {
	Tonic         string
	Degree        int
	Quality       theory.ChordQuality
	Beats         int
	MeasureOffset int
	StartBeat     float64
	Approach      BassApproach
}

// CreateBassPattern returns one quarter-note bass event per beat of the cell.
//
// Notes follow the scalar cycle for ApproachScalar and the chord-tone cycle
// (root, catalog intervals 1 and 2, minor seventh) otherwise. The final beat
// is nudged a semitone for chromatic approaches and, when the cell spans two
// or more beats, lifted an octave.
func CreateBassPattern(req BassRequest) ([]models.PartEvent, error) {
	root, err := theory.Transpose(req.Tonic+strconv.Itoa(BassOctave), req.Degree)
	if err != nil {
		return nil, err
	}
	rootIndex, err := theory.NoteToPitchIndex(root)
	if err != nil {
		return nil, err
	}

	pattern := chordTonePattern(req.Quality)
	if req.Approach == ApproachScalar {
		pattern = scalarPattern
	}

	events := make([]models.PartEvent, 0, req.Beats)
	for i := 0; i < req.Beats; i++ {
		semitone := pattern[i%len(pattern)]

		if i == req.Beats-1 {
			semitone += approachNudge(req.Approach)
			if req.Beats >= 2 {
				semitone += octave
			}
		}

		events = append(events, models.PartEvent{
			Time:     theory.CreateTimeAt(req.MeasureOffset, req.StartBeat+float64(i)),
			Duration: theory.DurationQuarter,
			Notes:    []string{theory.PitchIndexToNote(rootIndex + semitone)},
		})
	}

	return events, nil
}

func chordTonePattern(quality theory.ChordQuality) []int {
	return []int{
		0,
		quality.IntervalAt(1, defaultColorInterval),
		quality.IntervalAt(2, defaultFifthInterval),
		minorSeventh,
	}
}

func approachNudge(approach BassApproach) int {
	switch approach {
	case ApproachChromaticDown:
		return -1
	case ApproachChromaticUp:
		return 1
	default:
		return 0
	}
}
