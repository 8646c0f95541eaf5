package models

// NoteEvent represents a single musical note with timing and pitch information
type NoteEvent struct {
	MidiNoteNumber int     `json:"midiNoteNumber"`
	Velocity       int     `json:"velocity"`
	StartBeats     float64 `json:"startBeats"`
	DurationBeats  float64 `json:"durationBeats"`
}

// NoteTrack is one instrument part rendered as MIDI notes
type NoteTrack struct {
	Name  string      `json:"name"`
	Notes []NoteEvent `json:"notes"`
}

// NoteExport is an arrangement rendered for a DAW or MIDI player
type NoteExport struct {
	Key        Key         `json:"key"`
	TotalBeats float64     `json:"totalBeats"`
	Tracks     []NoteTrack `json:"tracks"`
}
