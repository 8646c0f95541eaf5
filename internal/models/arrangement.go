package models

// PartEvent is one scheduled unit for the playback engine
type PartEvent struct {
	Time     string   `json:"time"`     // Transport position, e.g. "3m + 0:2:0"
	Duration string   `json:"duration"` // Symbolic duration: "1m", "2n", "4n", "4n.", "32n"
	Notes    []string `json:"notes"`    // Notes sounded together, in voicing order
}

// GeneratedSection is a display row: a section label and the chord labels of each measure
type GeneratedSection struct {
	Label    string     `json:"label"`
	Measures [][]string `json:"measures"`
}

// PreparedArrangement is the output of one arrangement generation
type PreparedArrangement struct {
	ID            string             `json:"id"`
	Key           Key                `json:"key"`
	TotalMeasures int                `json:"total_measures"`
	Sections      []GeneratedSection `json:"sections"`
	ChordEvents   []PartEvent        `json:"chord_events"`
	BassEvents    []PartEvent        `json:"bass_events"`
	MelodyEvents  []PartEvent        `json:"melody_events"`
}

// Key is one of the supported keys
type Key struct {
	ID    string `json:"id"`    // "Bb"
	Label string `json:"label"` // "B♭ Major"
	Tonic string `json:"tonic"` // Pitch class in sharp spelling: "A#"
}
