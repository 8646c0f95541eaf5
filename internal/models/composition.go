package models

// LyricsRequest asks for a lyric sheet in a key
type LyricsRequest struct {
	Key  string   `json:"key" binding:"required"`
	Seed *float64 `json:"seed,omitempty"` // Optional seed for reproducibility; drawn fresh when absent
}

// PlaybackRequest carries the control surface parameters for one play
type PlaybackRequest struct {
	Key   string   `json:"key"`             // Defaults to DEFAULT_KEY
	Tempo *int     `json:"tempo,omitempty"` // BPM, 84-162
	Swing *float64 `json:"swing,omitempty"` // Swing ratio, 0.2-0.75
	Seed  *float64 `json:"seed,omitempty"`  // Lyric seed; drawn fresh when absent
}
