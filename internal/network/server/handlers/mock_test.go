package handlers

import (
	"context"
	"sync"

	"github.com/folletto/vault/internal/game/room"
	"github.com/folletto/vault/internal/network/server/types"
	"github.com/folletto/vault/internal/protocol"
)

// mockClient records every message sent to it.
type mockClient struct {
	id   string
	name string
	room string

	mu   sync.Mutex
	sent []*protocol.Message
}

func newMockClient(id, name string) *mockClient {
	return &mockClient{id: id, name: name}
}

func (c *mockClient) GetID() string   { return c.id }
func (c *mockClient) GetName() string { return c.name }
func (c *mockClient) GetRoom() string { return c.room }
func (c *mockClient) SetRoom(code string) {
	c.room = code
}

func (c *mockClient) SendMessage(msg *protocol.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, msg)
}

func (c *mockClient) Close() {}

// lastOfType returns the most recent sent message of the given type.
func (c *mockClient) lastOfType(t protocol.MessageType) *protocol.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.sent) - 1; i >= 0; i-- {
		if c.sent[i].Type == t {
			return c.sent[i]
		}
	}
	return nil
}

func (c *mockClient) sentCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

// mockStats is an in-memory stand-in for the Redis stats store.
type mockStats struct {
	mu       sync.Mutex
	recorded [][2][]string // players, winners per call
}

func (s *mockStats) RecordResult(_ context.Context, players, winners []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorded = append(s.recorded, [2][]string{players, winners})
	return nil
}

func (s *mockStats) GetStats(_ context.Context, name string) (*protocol.StatsPayload, error) {
	return &protocol.StatsPayload{PlayerName: name, Games: 3, Wins: 1}, nil
}

func (s *mockStats) GetLeaderboard(_ context.Context, limit int) ([]protocol.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	entries := []protocol.LeaderboardEntry{
		{Rank: 1, PlayerName: "SwiftBadger", Wins: 9},
		{Rank: 2, PlayerName: "CalmOtter", Wins: 4},
	}
	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

// mockServer wires a real room manager to recorded clients so handler
// behavior is observable end to end without sockets.
type mockServer struct {
	rooms *room.Manager
	stats *mockStats

	mu      sync.Mutex
	clients []*mockClient
}

func newMockServer() *mockServer {
	return &mockServer{
		rooms: room.NewManager(),
		stats: &mockStats{},
	}
}

func (s *mockServer) addClient(c *mockClient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, c)
}

func (s *mockServer) GetRoomManager() *room.Manager       { return s.rooms }
func (s *mockServer) GetStats() types.StatsStoreInterface { return s.stats }
func (s *mockServer) GetOnlineCount() int                 { return len(s.clients) }

func (s *mockServer) BroadcastToRoom(code string, msg *protocol.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if c.GetRoom() == code {
			c.SendMessage(msg)
		}
	}
}
