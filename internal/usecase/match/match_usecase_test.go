package match

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindercoin/tindercoin-backend/internal/catalog"
	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/repository"
	"github.com/tindercoin/tindercoin-backend/internal/repository/memory"
)

func newTestUseCase(t *testing.T) (*MatchUseCase, repository.MatchRepository) {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	repo := memory.NewMatchRepository()
	return NewMatchUseCase(repo, cat), repo
}

func TestGetUserMatches_JoinsCatalogCharacter(t *testing.T) {
	uc, repo := newTestUseCase(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "demo-user", &domain.Match{
		ID:          "match-1",
		CharacterID: "pepe-01",
		MatchedAt:   time.Now(),
		Location:    "The DEX",
	}))

	matches, err := uc.GetUserMatches(ctx, "demo-user")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.NotNil(t, matches[0].Character)
	assert.Equal(t, "pepe-01", matches[0].Character.ID)
	assert.Equal(t, "The DEX", matches[0].Location)
}

func TestGetUserMatches_UnknownCharacterYieldsNullCharacter(t *testing.T) {
	uc, repo := newTestUseCase(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "demo-user", &domain.Match{
		ID:          "match-x",
		CharacterID: "delisted-coin",
		MatchedAt:   time.Now(),
	}))

	matches, err := uc.GetUserMatches(ctx, "demo-user")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Nil(t, matches[0].Character)
}

func TestGetUserMatches_EmptyForUnknownUser(t *testing.T) {
	uc, _ := newTestUseCase(t)

	matches, err := uc.GetUserMatches(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestCreateMatch_DefaultsLocation(t *testing.T) {
	uc, _ := newTestUseCase(t)

	created, err := uc.CreateMatch(context.Background(), "demo-user", "doge-02", "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMatchLocation, created.Location)
	assert.True(t, strings.HasPrefix(created.ID, "match-"))
	require.NotNil(t, created.Character)
	assert.Equal(t, "doge-02", created.Character.ID)
}

func TestCreateMatch_KeepsExplicitLocation(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.CreateMatch(ctx, "demo-user", "shib-03", "WAGMI Valley")
	require.NoError(t, err)
	assert.Equal(t, "WAGMI Valley", created.Location)

	matches, err := uc.GetUserMatches(ctx, "demo-user")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, created.ID, matches[0].ID)
}
