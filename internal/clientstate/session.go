package clientstate

import "context"

// Session bundles the three stores behind one lifecycle. Begin must be
// called once per client start: when the sentinel is absent every store
// is wiped, emulating the ephemeral one-session-per-page-load demo.
type Session struct {
	storage Storage

	Swipes   *SwipeHistory
	Matches  *Matches
	Messages *Messages
}

func New(storage Storage) *Session {
	return &Session{
		storage:  storage,
		Swipes:   NewSwipeHistory(storage),
		Matches:  NewMatches(storage),
		Messages: NewMessages(storage),
	}
}

// Begin checks the session sentinel, wiping all stores and setting it
// when this is a fresh session. It reports whether a wipe happened.
func (s *Session) Begin(ctx context.Context) (bool, error) {
	_, ok, err := s.storage.Get(ctx, sessionKey)
	if err != nil {
		return false, err
	}
	if ok {
		return false, nil
	}

	if err := s.Swipes.Clear(ctx); err != nil {
		return false, err
	}
	if err := s.Matches.Clear(ctx); err != nil {
		return false, err
	}
	if err := s.Messages.ClearAll(ctx); err != nil {
		return false, err
	}

	if err := s.storage.Set(ctx, sessionKey, "true"); err != nil {
		return false, err
	}
	return true, nil
}
