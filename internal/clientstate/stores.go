package clientstate

import (
	"context"
	"encoding/json"
	"sync"
)

// MatchSummary is the client's view of a match: enough to render the
// match list and route into a chat.
type MatchSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	LastMessage string `json:"lastMessage,omitempty"`
	IsNew       bool   `json:"isNew,omitempty"`
}

// ChatMessage is one rendered chat bubble.
type ChatMessage struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	IsUser    bool   `json:"isUser"`
	Timestamp string `json:"timestamp"`
}

// readJSON loads and decodes a whole-store blob. A missing key or a
// blob that fails to parse both read as the zero value, matching the
// original's catch-and-return-empty behavior.
func readJSON[T any](ctx context.Context, storage Storage, key string, out *T) error {
	blob, ok, err := storage.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(blob), out); err != nil {
		var zero T
		*out = zero
	}
	return nil
}

func writeJSON(ctx context.Context, storage Storage, key string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return storage.Set(ctx, key, string(blob))
}

// SwipeHistory tracks which character ids have already been swiped so
// the deck excludes them. Unlike the server log, it deduplicates.
type SwipeHistory struct {
	storage Storage
}

func NewSwipeHistory(storage Storage) *SwipeHistory {
	return &SwipeHistory{storage: storage}
}

func (s *SwipeHistory) IDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := readJSON(ctx, s.storage, swipesKey, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *SwipeHistory) Add(ctx context.Context, characterID string) error {
	ids, err := s.IDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == characterID {
			return nil
		}
	}
	return writeJSON(ctx, s.storage, swipesKey, append(ids, characterID))
}

func (s *SwipeHistory) Clear(ctx context.Context) error {
	return s.storage.Delete(ctx, swipesKey)
}

// Matches is the client match list. Every mutation rewrites the whole
// blob and notifies subscribers so other live views can refresh.
type Matches struct {
	storage Storage

	mu   sync.Mutex
	subs []chan []MatchSummary
}

func NewMatches(storage Storage) *Matches {
	return &Matches{storage: storage}
}

func (m *Matches) List(ctx context.Context) ([]MatchSummary, error) {
	var matches []MatchSummary
	if err := readJSON(ctx, m.storage, matchesKey, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Add inserts a match at the front, or merges into the existing entry
// when the id is already present.
func (m *Matches) Add(ctx context.Context, match MatchSummary) error {
	matches, err := m.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range matches {
		if matches[i].ID == match.ID {
			matches[i] = match
			replaced = true
			break
		}
	}
	if !replaced {
		matches = append([]MatchSummary{match}, matches...)
	}

	if err := writeJSON(ctx, m.storage, matchesKey, matches); err != nil {
		return err
	}
	m.notify(matches)
	return nil
}

// TouchMessage records the latest message on a match and clears its
// "new" badge.
func (m *Matches) TouchMessage(ctx context.Context, matchID, message string) error {
	matches, err := m.List(ctx)
	if err != nil {
		return err
	}

	for i := range matches {
		if matches[i].ID == matchID {
			matches[i].LastMessage = message
			matches[i].IsNew = false
			if err := writeJSON(ctx, m.storage, matchesKey, matches); err != nil {
				return err
			}
			m.notify(matches)
			return nil
		}
	}
	return nil
}

func (m *Matches) Get(ctx context.Context, matchID string) (MatchSummary, bool, error) {
	matches, err := m.List(ctx)
	if err != nil {
		return MatchSummary{}, false, err
	}
	for _, match := range matches {
		if match.ID == matchID {
			return match, true, nil
		}
	}
	return MatchSummary{}, false, nil
}

func (m *Matches) Clear(ctx context.Context) error {
	if err := m.storage.Delete(ctx, matchesKey); err != nil {
		return err
	}
	m.notify(nil)
	return nil
}

// Subscribe returns a channel receiving the full match list after every
// mutation. Slow subscribers miss intermediate updates rather than
// blocking writers.
func (m *Matches) Subscribe() <-chan []MatchSummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan []MatchSummary, 1)
	m.subs = append(m.subs, ch)
	return ch
}

func (m *Matches) notify(matches []MatchSummary) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, ch := range m.subs {
		select {
		case ch <- matches:
		default:
			// Drop stale update, replace with the newest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- matches:
			default:
			}
		}
	}
}

// Messages holds the per-match chat logs as one blob keyed by match id.
type Messages struct {
	storage Storage
}

func NewMessages(storage Storage) *Messages {
	return &Messages{storage: storage}
}

func (m *Messages) load(ctx context.Context) (map[string][]ChatMessage, error) {
	store := make(map[string][]ChatMessage)
	if err := readJSON(ctx, m.storage, messagesKey, &store); err != nil {
		return nil, err
	}
	if store == nil {
		store = make(map[string][]ChatMessage)
	}
	return store, nil
}

func (m *Messages) Get(ctx context.Context, matchID string) ([]ChatMessage, error) {
	store, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	return store[matchID], nil
}

func (m *Messages) Save(ctx context.Context, matchID string, messages []ChatMessage) error {
	store, err := m.load(ctx)
	if err != nil {
		return err
	}
	store[matchID] = messages
	return writeJSON(ctx, m.storage, messagesKey, store)
}

func (m *Messages) Append(ctx context.Context, matchID string, message ChatMessage) error {
	store, err := m.load(ctx)
	if err != nil {
		return err
	}
	store[matchID] = append(store[matchID], message)
	return writeJSON(ctx, m.storage, messagesKey, store)
}

func (m *Messages) ClearMatch(ctx context.Context, matchID string) error {
	store, err := m.load(ctx)
	if err != nil {
		return err
	}
	delete(store, matchID)
	return writeJSON(ctx, m.storage, messagesKey, store)
}

func (m *Messages) ClearAll(ctx context.Context) error {
	return m.storage.Delete(ctx, messagesKey)
}
