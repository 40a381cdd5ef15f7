package storage

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/folletto/vault/internal/protocol"
)

// Redis keys
const (
	statsKeyPrefix = "vault:stats:"      // hash per player name
	leaderboardKey = "vault:leaderboard" // sorted set scored by wins
)

const (
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

// StatsStore keeps win statistics in Redis, keyed by display name. Room
// state itself is memory-only; this is the only thing that outlives a
// restart.
type StatsStore struct {
	rdb *redis.Client
}

// NewStatsStore wraps a Redis client.
func NewStatsStore(rdb *redis.Client) *StatsStore {
	return &StatsStore{rdb: rdb}
}

// RecordResult counts one finished game for every seated player and one
// win for each winner. A no-contest draw has no winners but still counts
// as a played game.
func (s *StatsStore) RecordResult(ctx context.Context, players, winners []string) error {
	pipe := s.rdb.TxPipeline()
	for _, name := range players {
		pipe.HIncrBy(ctx, statsKeyPrefix+name, "games", 1)
	}
	for _, name := range winners {
		pipe.HIncrBy(ctx, statsKeyPrefix+name, "wins", 1)
		pipe.ZIncrBy(ctx, leaderboardKey, 1, name)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// GetStats returns a player's record. Unknown players read as zeroes.
func (s *StatsStore) GetStats(ctx context.Context, name string) (*protocol.StatsPayload, error) {
	vals, err := s.rdb.HGetAll(ctx, statsKeyPrefix+name).Result()
	if err != nil {
		return nil, err
	}

	games, _ := strconv.Atoi(vals["games"])
	wins, _ := strconv.Atoi(vals["wins"])
	return &protocol.StatsPayload{
		PlayerName: name,
		Games:      games,
		Wins:       wins,
	}, nil
}

// GetLeaderboard returns the top players by wins. The limit defaults to
// 10 and is capped at 100.
func (s *StatsStore) GetLeaderboard(ctx context.Context, limit int) ([]protocol.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	if limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}

	rows, err := s.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]protocol.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		name, _ := row.Member.(string)
		entries = append(entries, protocol.LeaderboardEntry{
			Rank:       i + 1,
			PlayerName: name,
			Wins:       int(row.Score),
		})
	}
	return entries, nil
}
