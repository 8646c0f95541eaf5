package models

// TempoMark is a named tempo shown next to the tempo control
type TempoMark struct {
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Active bool   `json:"active"`
}

// PlaybackPlan bundles everything the playback engine and the display need for one play
type PlaybackPlan struct {
	Tempo            int                  `json:"tempo"`
	Swing            float64              `json:"swing"`
	SwingLabel       string               `json:"swing_label"`
	SwingSubdivision string               `json:"swing_subdivision"`
	TempoMarks       []TempoMark          `json:"tempo_marks"`
	RunningTime      string               `json:"running_time"`
	Arrangement      *PreparedArrangement `json:"arrangement"`
	RideEvents       []PartEvent          `json:"ride_events"`
	Lyrics           *LyricSheet          `json:"lyrics"`
}
