package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStatsStore(t *testing.T) *StatsStore {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStatsStore(client)
}

func TestRecordAndGetStats(t *testing.T) {
	store := newTestStatsStore(t)
	ctx := context.Background()

	players := []string{"Ada", "Bob", "Cyd"}
	require.NoError(t, store.RecordResult(ctx, players, []string{"Ada"}))
	require.NoError(t, store.RecordResult(ctx, players, []string{"Ada", "Cyd"}))

	ada, err := store.GetStats(ctx, "Ada")
	require.NoError(t, err)
	assert.Equal(t, 2, ada.Games)
	assert.Equal(t, 2, ada.Wins)

	bob, err := store.GetStats(ctx, "Bob")
	require.NoError(t, err)
	assert.Equal(t, 2, bob.Games)
	assert.Equal(t, 0, bob.Wins)
}

func TestGetStatsUnknownPlayer(t *testing.T) {
	store := newTestStatsStore(t)

	stats, err := store.GetStats(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Games)
	assert.Equal(t, 0, stats.Wins)
	assert.Equal(t, "Nobody", stats.PlayerName)
}

func TestDrawCountsGamesOnly(t *testing.T) {
	store := newTestStatsStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordResult(ctx, []string{"Ada", "Bob"}, nil))

	ada, err := store.GetStats(ctx, "Ada")
	require.NoError(t, err)
	assert.Equal(t, 1, ada.Games)
	assert.Equal(t, 0, ada.Wins)

	entries, err := store.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetLeaderboard(t *testing.T) {
	store := newTestStatsStore(t)
	ctx := context.Background()

	players := []string{"Ada", "Bob", "Cyd"}
	require.NoError(t, store.RecordResult(ctx, players, []string{"Bob"}))
	require.NoError(t, store.RecordResult(ctx, players, []string{"Bob"}))
	require.NoError(t, store.RecordResult(ctx, players, []string{"Ada"}))

	entries, err := store.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Bob", entries[0].PlayerName)
	assert.Equal(t, 2, entries[0].Wins)
	assert.Equal(t, "Ada", entries[1].PlayerName)

	// Limit trims the result.
	entries, err = store.GetLeaderboard(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Bob", entries[0].PlayerName)

	// Zero falls back to the default size.
	entries, err = store.GetLeaderboard(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
