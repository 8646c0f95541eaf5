package arranger

import (
	"fmt"
	"math"

	"github.com/Conceptual-Machines/lounge-api/internal/models"
	"github.com/Conceptual-Machines/lounge-api/internal/theory"
)

const (
	melodyOctave = 4
	// Melody notes land half a beat after the chord
	melodyDelayBeats = 0.5
)

// Melody intervals above the chord root, chosen by the beat the cell starts on
var melodyCycle = [theory.BeatsPerMeasure]int{0, 4, 7, 9}

// BuildArrangement walks Blueprint in key and produces display labels plus
// chord, bass and melody event streams. It returns nothing on failure.
func BuildArrangement(key models.Key) (*models.PreparedArrangement, error) {
	return buildFromBlueprint(key, Blueprint)
}

func buildFromBlueprint(key models.Key, blueprint []SectionBlueprint) (*models.PreparedArrangement, error) {
	var (
		chordEvents  []models.PartEvent
		bassEvents   []models.PartEvent
		melodyEvents []models.PartEvent
		sections     = make([]models.GeneratedSection, 0, len(blueprint))
	)

	measureOffset := 0
	for _, section := range blueprint {
		sectionMeasures := make([][]string, 0, len(section.Measures))

		for _, cells := range section.Measures {
			labels := make([]string, 0, len(cells))
			beatCursor := 0.0

			for _, c := range cells {
				chord, err := theory.BuildChord(key.Tonic, c.Degree, c.Quality)
				if err != nil {
					return nil, fmt.Errorf("section %s measure %d: %w", section.Label, measureOffset, err)
				}
				beats := c.Beats()
				startTime := theory.CreateTimeAt(measureOffset, beatCursor)

				chordEvents = append(chordEvents, models.PartEvent{
					Time:     startTime,
					Duration: c.Duration,
					Notes:    chord.Notes,
				})

				bass, err := CreateBassPattern(BassRequest{
					Tonic:         key.Tonic,
					Degree:        c.Degree,
					Quality:       c.Quality,
					Beats:         beats,
					MeasureOffset: measureOffset,
					StartBeat:     beatCursor,
					Approach:      c.Approach,
				})
				if err != nil {
					return nil, fmt.Errorf("section %s measure %d bass: %w", section.Label, measureOffset, err)
				}
				bassEvents = append(bassEvents, bass...)

				melody, err := melodyEvent(chord.Root, measureOffset, beatCursor)
				if err != nil {
					return nil, fmt.Errorf("section %s measure %d melody: %w", section.Label, measureOffset, err)
				}
				melodyEvents = append(melodyEvents, melody)

				labels = append(labels, c.Display)
				beatCursor += float64(beats)
			}

			sectionMeasures = append(sectionMeasures, labels)
			measureOffset++
		}

		sections = append(sections, models.GeneratedSection{
			Label:    section.Label,
			Measures: sectionMeasures,
		})
	}

	return &models.PreparedArrangement{
		Key:           key,
		TotalMeasures: measureOffset,
		Sections:      sections,
		ChordEvents:   chordEvents,
		BassEvents:    bassEvents,
		MelodyEvents:  melodyEvents,
	}, nil
}

// melodyEvent places the chord root (moved to octave 4, raised by the beat's
// cycle interval) plus its lower octave, as a dotted eighth half a beat after the chord.
func melodyEvent(chordRoot string, measureOffset int, beatCursor float64) (models.PartEvent, error) {
	base, err := theory.WithOctave(chordRoot, melodyOctave)
	if err != nil {
		return models.PartEvent{}, err
	}

	interval := melodyCycle[int(math.Floor(beatCursor))%len(melodyCycle)]
	note, err := theory.Transpose(base, interval)
	if err != nil {
		return models.PartEvent{}, err
	}
	doubled, err := theory.Transpose(note, -octave)
	if err != nil {
		return models.PartEvent{}, err
	}

	return models.PartEvent{
		Time:     theory.CreateTimeAt(measureOffset, beatCursor+melodyDelayBeats),
		Duration: theory.DurationDottedEighth,
		Notes:    []string{note, doubled},
	}, nil
}
