package clientstate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_FirstBeginWipesLeftoverState(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	// Leftover state from a process that never set the sentinel
	leftover := New(storage)
	require.NoError(t, leftover.Swipes.Add(ctx, "pepe-01"))
	require.NoError(t, leftover.Matches.Add(ctx, MatchSummary{ID: "match-1", Name: "Pepe"}))
	require.NoError(t, leftover.Messages.Append(ctx, "match-1", ChatMessage{ID: "m1", Content: "gm"}))

	session := New(storage)
	wiped, err := session.Begin(ctx)
	require.NoError(t, err)
	assert.True(t, wiped)

	ids, err := session.Swipes.IDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	matches, err := session.Matches.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches)

	log, err := session.Messages.Get(ctx, "match-1")
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestSession_SecondBeginKeepsState(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	session := New(storage)
	wiped, err := session.Begin(ctx)
	require.NoError(t, err)
	require.True(t, wiped)

	require.NoError(t, session.Swipes.Add(ctx, "pepe-01"))
	require.NoError(t, session.Matches.Add(ctx, MatchSummary{ID: "match-1", Name: "Pepe"}))

	again := New(storage)
	wiped, err = again.Begin(ctx)
	require.NoError(t, err)
	assert.False(t, wiped)

	ids, err := again.Swipes.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pepe-01"}, ids)

	matches, err := again.Matches.List(ctx)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
