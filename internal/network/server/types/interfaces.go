package types

import (
	"context"

	"github.com/folletto/vault/internal/game/room"
	"github.com/folletto/vault/internal/protocol"
)

// ClientInterface is a connected player as the handlers see it.
type ClientInterface interface {
	GetID() string
	GetName() string
	GetRoom() string
	SetRoom(code string)
	SendMessage(msg *protocol.Message)
	Close()
}

// StatsStoreInterface records and serves win statistics.
type StatsStoreInterface interface {
	RecordResult(ctx context.Context, players, winners []string) error
	GetStats(ctx context.Context, name string) (*protocol.StatsPayload, error)
	GetLeaderboard(ctx context.Context, limit int) ([]protocol.LeaderboardEntry, error)
}

// ServerContext is the slice of the server the handlers depend on.
type ServerContext interface {
	GetRoomManager() *room.Manager
	GetStats() StatsStoreInterface
	GetOnlineCount() int
	BroadcastToRoom(code string, msg *protocol.Message)
}
