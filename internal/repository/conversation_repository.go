package repository

import (
	"context"

	"github.com/tindercoin/tindercoin-backend/internal/domain"
)

// ConversationRepository stores append-only per-conversation message logs.
type ConversationRepository interface {
	Append(ctx context.Context, conversationID string, msg *domain.Message) error
	GetHistory(ctx context.Context, conversationID string) ([]*domain.Message, error)
}
