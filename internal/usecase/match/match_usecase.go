package match

import (
	"context"
	"fmt"
	"time"

	"github.com/tindercoin/tindercoin-backend/internal/catalog"
	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/repository"
)

type MatchUseCase struct {
	matchRepo repository.MatchRepository
	catalog   *catalog.Catalog
}

func NewMatchUseCase(matchRepo repository.MatchRepository, cat *catalog.Catalog) *MatchUseCase {
	return &MatchUseCase{
		matchRepo: matchRepo,
		catalog:   cat,
	}
}

// EnrichedMatch joins a match with its catalog character. Character is
// null when the id is not in the catalog; callers substitute placeholder
// content.
type EnrichedMatch struct {
	domain.Match
	Character *domain.Character `json:"character"`
}

// GetUserMatches returns all matches for a user, left-joined with the
// character catalog.
func (uc *MatchUseCase) GetUserMatches(ctx context.Context, userID string) ([]*EnrichedMatch, error) {
	matches, err := uc.matchRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	enriched := make([]*EnrichedMatch, 0, len(matches))
	for _, m := range matches {
		character, _ := uc.catalog.GetByID(m.CharacterID)
		enriched = append(enriched, &EnrichedMatch{
			Match:     *m,
			Character: character,
		})
	}
	return enriched, nil
}

// CreateMatch appends a match directly, e.g. when the client simulates
// one. Location defaults when absent.
func (uc *MatchUseCase) CreateMatch(ctx context.Context, userID, characterID, location string) (*EnrichedMatch, error) {
	if location == "" {
		location = domain.DefaultMatchLocation
	}

	match := &domain.Match{
		ID:          fmt.Sprintf("match-%d", time.Now().UnixMilli()),
		CharacterID: characterID,
		MatchedAt:   time.Now(),
		Location:    location,
	}

	if err := uc.matchRepo.Append(ctx, userID, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	character, _ := uc.catalog.GetByID(characterID)
	return &EnrichedMatch{
		Match:     *match,
		Character: character,
	}, nil
}
