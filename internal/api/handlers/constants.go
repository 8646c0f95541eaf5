package handlers

const (
	// Generation kinds, used as log and metric dimensions
	kindArrangement = "arrangement"
	kindNotes       = "notes"
	kindLyrics      = "lyrics"
	kindPlayback    = "playback"
)
