package ratings

import "errors"

// Ratings range from 0 to 5 stars; 0 means unrated.
const (
	Unrated = 0
	Max     = 5
)

// ErrOutOfRange reports a rating outside [0, 5].
var ErrOutOfRange = errors.New("rating out of range")

// Store is the persistence boundary for album ratings. Keys are album keys
// in the form "artist/album". Get is total: unknown keys and storage
// failures read as Unrated.
type Store interface {
	// Get returns the stored rating for key, or Unrated when absent.
	Get(key string) int
	// Set stores a rating in [0, 5] for key. Setting Unrated clears the key.
	Set(key string, rating int) error
}

func validate(rating int) error {
	if rating < Unrated || rating > Max {
		return ErrOutOfRange
	}
	return nil
}

func clamp(rating int) int {
	if rating < Unrated {
		return Unrated
	}
	if rating > Max {
		return Max
	}
	return rating
}
