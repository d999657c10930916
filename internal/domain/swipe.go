package domain

import "time"

type SwipeDirection string

const (
	SwipeLeft  SwipeDirection = "left"
	SwipeRight SwipeDirection = "right"
	SwipeUp    SwipeDirection = "up"
)

// IsPositive reports whether a swipe in this direction can produce a match.
func (d SwipeDirection) IsPositive() bool {
	return d == SwipeRight || d == SwipeUp
}

// Swipe is one directional decision on a character card.
// Swipes are append-only per user; repeated swipes on the same
// character are recorded as-is (the client excludes already-swiped
// characters from its deck, the server does not).
type Swipe struct {
	CharacterID string         `json:"characterId"`
	Direction   SwipeDirection `json:"direction"`
	Timestamp   time.Time      `json:"timestamp"`
}
