package models

// LyricSheet is a generated title plus verse, chorus and bridge lines in draw order
type LyricSheet struct {
	ID     string   `json:"id"`
	Seed   float64  `json:"seed"`
	Title  string   `json:"title"`
	Verse  []string `json:"verse"`
	Chorus []string `json:"chorus"`
	Bridge []string `json:"bridge"`
}
