package repository

import (
	"context"

	"github.com/tindercoin/tindercoin-backend/internal/domain"
)

type SwipeRepository interface {
	Append(ctx context.Context, userID string, swipe *domain.Swipe) error
	GetByUser(ctx context.Context, userID string) ([]*domain.Swipe, error)
}
