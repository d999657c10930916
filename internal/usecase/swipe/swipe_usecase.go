package swipe

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/repository"
)

// RandFunc supplies the uniform [0,1) draw deciding whether a positive
// swipe becomes a match. Injectable so tests can pin the outcome.
type RandFunc func() float64

type SwipeUseCase struct {
	swipeRepo repository.SwipeRepository
	matchRepo repository.MatchRepository
	rand      RandFunc
}

func NewSwipeUseCase(
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	rnd RandFunc,
) *SwipeUseCase {
	if rnd == nil {
		rnd = rand.Float64
	}
	return &SwipeUseCase{
		swipeRepo: swipeRepo,
		matchRepo: matchRepo,
		rand:      rnd,
	}
}

// SwipeResult is what a recorded swipe produced.
type SwipeResult struct {
	Swipe   *domain.Swipe `json:"swipe"`
	IsMatch bool          `json:"isMatch"`
	Match   *domain.Match `json:"match"`
}

// CreateSwipe appends the swipe to the user's log and, for right/up
// swipes, rolls a 50% chance of a match at a random crypto location.
// Repeated swipes on the same character are not deduplicated here; the
// client keeps already-swiped characters out of its deck.
func (uc *SwipeUseCase) CreateSwipe(ctx context.Context, userID, characterID string, direction domain.SwipeDirection) (*SwipeResult, error) {
	swipe := &domain.Swipe{
		CharacterID: characterID,
		Direction:   direction,
		Timestamp:   time.Now(),
	}

	if err := uc.swipeRepo.Append(ctx, userID, swipe); err != nil {
		return nil, fmt.Errorf("failed to record swipe: %w", err)
	}

	result := &SwipeResult{Swipe: swipe}

	if direction.IsPositive() && uc.rand() > 0.5 {
		match := &domain.Match{
			ID:          uuid.NewString(),
			CharacterID: characterID,
			MatchedAt:   time.Now(),
			Location:    domain.CryptoLocations[rand.Intn(len(domain.CryptoLocations))],
		}

		if err := uc.matchRepo.Append(ctx, userID, match); err != nil {
			return nil, fmt.Errorf("failed to record match: %w", err)
		}

		result.IsMatch = true
		result.Match = match
	}

	return result, nil
}

// GetUserSwipes returns the user's full swipe log.
func (uc *SwipeUseCase) GetUserSwipes(ctx context.Context, userID string) ([]*domain.Swipe, error) {
	swipes, err := uc.swipeRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get swipes: %w", err)
	}
	return swipes, nil
}
