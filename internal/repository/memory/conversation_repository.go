package memory

import (
	"context"
	"sync"

	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/repository"
)

type conversationRepository struct {
	mu            sync.RWMutex
	conversations map[string][]*domain.Message
}

func NewConversationRepository() repository.ConversationRepository {
	return &conversationRepository{
		conversations: make(map[string][]*domain.Message),
	}
}

func (r *conversationRepository) Append(ctx context.Context, conversationID string, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conversations[conversationID] = append(r.conversations[conversationID], msg)
	return nil
}

// GetHistory returns the full log for a conversation, empty when the
// conversation has never been written to.
func (r *conversationRepository) GetHistory(ctx context.Context, conversationID string) ([]*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := make([]*domain.Message, len(r.conversations[conversationID]))
	copy(history, r.conversations[conversationID])
	return history, nil
}
