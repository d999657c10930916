package memory

import (
	"context"
	"sync"

	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/repository"
)

type matchRepository struct {
	mu      sync.RWMutex
	matches map[string][]*domain.Match
}

func NewMatchRepository() repository.MatchRepository {
	return &matchRepository{
		matches: make(map[string][]*domain.Match),
	}
}

func (r *matchRepository) Append(ctx context.Context, userID string, match *domain.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[userID] = append(r.matches[userID], match)
	return nil
}

func (r *matchRepository) GetByUser(ctx context.Context, userID string) ([]*domain.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*domain.Match, len(r.matches[userID]))
	copy(matches, r.matches[userID])
	return matches, nil
}
