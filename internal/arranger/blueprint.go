package arranger

import "github.com/Conceptual-Machines/lounge-api/internal/theory"

// BassApproach shapes the last bass note of a cell so it leads into the next chord.
type BassApproach string

const (
	ApproachNone          BassApproach = ""
	ApproachChromaticUp   BassApproach = "chromaticUp"
	ApproachChromaticDown BassApproach = "chromaticDown"
	ApproachScalar        BassApproach = "scalar"
)

// MeasureCell is one chord within a measure.
type MeasureCell struct {
	Degree   int // Semitones above the tonic, 0-11
	Quality  theory.ChordQuality
	Display  string // Roman numeral label, display only
	Duration string // "1m", "2n" or "4n"
	Approach BassApproach
}

// Beats returns the cell's length in beats.
func (c MeasureCell) Beats() int {
	return theory.DurationToBeats(c.Duration)
}

// SectionBlueprint is a named section; each measure's cells must sum to 4 beats.
type SectionBlueprint struct {
	Label    string
	Measures [][]MeasureCell
}

func cell(degree int, quality theory.ChordQuality, display, duration string, approach BassApproach) MeasureCell {
	return MeasureCell{Degree: degree, Quality: quality, Display: display, Duration: duration, Approach: approach}
}

// Blueprint is the tune's form: Intro, A, B, A', Tag.
var Blueprint = []SectionBlueprint{
	{
		Label: "Intro",
		Measures: [][]MeasureCell{
			{cell(0, theory.Maj9, "Imaj9", "1m", ApproachNone)},
			{
				cell(9, theory.Min9, "vi9", "2n", ApproachChromaticDown),
				cell(2, theory.Min11, "ii11", "2n", ApproachScalar),
			},
			{cell(7, theory.Dom13, "V13sus", "1m", ApproachChromaticDown)},
		},
	},
	{
		Label: "A",
		Measures: [][]MeasureCell{
			{cell(0, theory.Maj9, "Imaj9", "1m", ApproachNone)},
			{
				cell(2, theory.Min9, "ii9", "2n", ApproachScalar),
				cell(7, theory.Dom13b9, "V13♭9", "2n", ApproachChromaticDown),
			},
			{
				cell(9, theory.Min9, "vi9", "2n", ApproachScalar),
				cell(5, theory.Maj7Sharp11, "IVΔ♯11", "2n", ApproachNone),
			},
			{
				cell(0, theory.Maj9, "Imaj9", "2n", ApproachNone),
				cell(10, theory.HalfDim, "viiø", "2n", ApproachChromaticUp),
			},
			{
				cell(2, theory.Min11, "ii11", "2n", ApproachNone),
				cell(7, theory.AltDom, "Valt", "2n", ApproachChromaticDown),
			},
			{cell(0, theory.Maj9, "Imaj9", "1m", ApproachNone)},
		},
	},
	{
		Label: "B",
		Measures: [][]MeasureCell{
			{
				cell(3, theory.Min9, "iii9", "2n", ApproachNone),
				cell(8, theory.Dom13, "VI13", "2n", ApproachChromaticDown),
			},
			{
				cell(1, theory.Min11, "♭iii11", "2n", ApproachNone),
				cell(6, theory.Dom13b9, "♭VI13♭9", "2n", ApproachChromaticDown),
			},
			{
				cell(11, theory.Dim7, "vii°", "2n", ApproachNone),
				cell(4, theory.Dom13, "III13", "2n", ApproachChromaticDown),
			},
			{
				cell(9, theory.Min9, "vi9", "2n", ApproachNone),
				cell(2, theory.Min11, "ii11", "2n", ApproachNone),
			},
			{
				cell(7, theory.AltDom, "Valt", "2n", ApproachChromaticDown),
				cell(0, theory.Maj9, "Imaj9", "2n", ApproachNone),
			},
		},
	},
	{
		Label: "A'",
		Measures: [][]MeasureCell{
			{cell(0, theory.Maj9, "Imaj9", "1m", ApproachNone)},
			{
				cell(2, theory.Min9, "ii9", "2n", ApproachNone),
				cell(7, theory.Dom13, "V13", "2n", ApproachScalar),
			},
			{
				cell(9, theory.Min9, "vi9", "2n", ApproachNone),
				cell(5, theory.Maj7Sharp11, "IVΔ♯11", "2n", ApproachNone),
			},
			{
				cell(0, theory.Maj9, "Imaj9", "2n", ApproachNone),
				cell(7, theory.Dom13b9, "V13♭9", "2n", ApproachChromaticDown),
			},
			{cell(0, theory.Maj9, "Imaj9", "1m", ApproachNone)},
		},
	},
	{
		Label: "Tag",
		Measures: [][]MeasureCell{
			{
				cell(9, theory.Min11, "vi11", "2n", ApproachChromaticDown),
				cell(2, theory.Min11, "ii11", "2n", ApproachNone),
			},
			{
				cell(7, theory.AltDom, "Valt", "2n", ApproachChromaticDown),
				cell(0, theory.Maj9, "Imaj9", "2n", ApproachNone),
			},
		},
	},
}

// TotalMeasures counts the measures across all sections of blueprint.
func TotalMeasures(blueprint []SectionBlueprint) int {
	total := 0
	for _, section := range blueprint {
		total += len(section.Measures)
	}
	return total
}
