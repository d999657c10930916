// Package clientstate implements the client-side session stores: swipe
// history, match list and per-match message logs. Each store serializes
// its whole value as one JSON blob under a fixed key and rewrites it on
// every mutation, mirroring browser local storage. Concurrent writers to
// the same key race with last-writer-wins resolution.
package clientstate

import "context"

// Fixed storage keys. The session sentinel marks that the current
// session has already been initialised; its absence on load triggers a
// wipe of the other three.
const (
	swipesKey   = "tinder-coin-swipes-v2"
	matchesKey  = "tinder-coin-matches"
	messagesKey = "tinder-coin-messages"
	sessionKey  = "tinder-coin-session"
)

// Storage persists whole string blobs under fixed keys. Implementations
// must be safe for concurrent use.
type Storage interface {
	// Get returns the blob and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
