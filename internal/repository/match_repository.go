package repository

import (
	"context"

	"github.com/tindercoin/tindercoin-backend/internal/domain"
)

type MatchRepository interface {
	Append(ctx context.Context, userID string, match *domain.Match) error
	GetByUser(ctx context.Context, userID string) ([]*domain.Match, error)
}
