package arranger

import (
	"errors"
	"fmt"

	"github.com/Conceptual-Machines/lounge-api/internal/models"
)

// ErrUnknownKey is returned for key ids outside the supported set.
var ErrUnknownKey = errors.New("unknown key")

// Keys are the supported keys in display order. Tonics use sharp spelling
// because the pitch model has no flats.
var Keys = []models.Key{
	{ID: "C", Label: "C Major", Tonic: "C"},
	{ID: "F", Label: "F Major", Tonic: "F"},
	{ID: "Bb", Label: "B♭ Major", Tonic: "A#"},
	{ID: "Eb", Label: "E♭ Major", Tonic: "D#"},
	{ID: "G", Label: "G Major", Tonic: "G"},
	{ID: "D", Label: "D Major", Tonic: "D"},
}

// LookupKey finds a supported key by id.
func LookupKey(id string) (models.Key, error) {
	for _, key := range Keys {
		if key.ID == id {
			return key, nil
		}
	}
	return models.Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, id)
}
