// Package playback assembles what the playback engine needs for one play:
// transport settings, the arrangement, a ride cymbal cue stream and a
// freshly seeded lyric sheet.
package playback

import (
	"fmt"
	"strconv"

	"github.com/Conceptual-Machines/lounge-api/internal/arranger"
	"github.com/Conceptual-Machines/lounge-api/internal/lyrics"
	"github.com/Conceptual-Machines/lounge-api/internal/models"
	"github.com/Conceptual-Machines/lounge-api/internal/theory"
)

// Settings are the control surface parameters for one play
type Settings struct {
	Key   models.Key
	Tempo int
	Swing float64
	Seed  float64
}

// Planner builds playback plans
type Planner struct {
	lyrics *lyrics.Generator
}

// NewPlanner returns a planner drawing lyrics from gen
func NewPlanner(gen *lyrics.Generator) *Planner {
	return &Planner{lyrics: gen}
}

// Plan validates settings and builds the full plan. Nothing is returned on failure.
func (p *Planner) Plan(s Settings) (*models.PlaybackPlan, error) {
	if err := ValidateTempo(s.Tempo); err != nil {
		return nil, err
	}
	if err := ValidateSwing(s.Swing); err != nil {
		return nil, err
	}

	arrangement, err := arranger.BuildArrangement(s.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to build arrangement: %w", err)
	}

	sheet, err := p.lyrics.Generate(s.Key.Label, s.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate lyrics: %w", err)
	}

	return &models.PlaybackPlan{
		Tempo:            s.Tempo,
		Swing:            s.Swing,
		SwingLabel:       SwingLabel(s.Swing),
		SwingSubdivision: SwingSubdivision,
		TempoMarks:       TempoMarks(s.Tempo),
		RunningTime:      RunningTime(s.Tempo, arrangement.TotalMeasures),
		Arrangement:      arrangement,
		RideEvents:       RidePattern(arrangement.TotalMeasures),
		Lyrics:           sheet,
	}, nil
}

// RidePattern returns the ride cymbal cues: two hits per measure index,
// at "<i/2>m + 0:0:0" for even i and "<i/2>m + 0:0:2" for odd i.
func RidePattern(totalMeasures int) []models.PartEvent {
	events := make([]models.PartEvent, 0, totalMeasures*2)
	for i := 0; i < totalMeasures*2; i++ {
		sixteenth := 0
		if i%2 != 0 {
			sixteenth = 2
		}
		measure := strconv.FormatFloat(float64(i)/2, 'f', -1, 64)
		events = append(events, models.PartEvent{
			Time:     fmt.Sprintf("%sm + 0:0:%d", measure, sixteenth),
			Duration: theory.DurationThirtySecond,
			Notes:    []string{},
		})
	}
	return events
}
