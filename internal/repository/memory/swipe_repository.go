// Package memory holds the in-memory repository implementations. All
// server-side state is process-lifetime only; restarting the process
// discards it. Each repository guards its map with a mutex because the
// HTTP layer serves requests concurrently.
package memory

import (
	"context"
	"sync"

	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/repository"
)

type swipeRepository struct {
	mu     sync.RWMutex
	swipes map[string][]*domain.Swipe
}

func NewSwipeRepository() repository.SwipeRepository {
	return &swipeRepository{
		swipes: make(map[string][]*domain.Swipe),
	}
}

func (r *swipeRepository) Append(ctx context.Context, userID string, swipe *domain.Swipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.swipes[userID] = append(r.swipes[userID], swipe)
	return nil
}

func (r *swipeRepository) GetByUser(ctx context.Context, userID string) ([]*domain.Swipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	swipes := make([]*domain.Swipe, len(r.swipes[userID]))
	copy(swipes, r.swipes[userID])
	return swipes, nil
}
