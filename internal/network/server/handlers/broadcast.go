package handlers

import (
	"context"
	"time"

	"github.com/folletto/vault/internal/game/room"
	"github.com/folletto/vault/internal/game/vault"
	"github.com/folletto/vault/internal/logger"
	"github.com/folletto/vault/internal/protocol"
)

// roomHandle pairs a resolved room with the dispatcher so handlers can
// broadcast outcomes without repeating the plumbing.
type roomHandle struct {
	h    *Handler
	room *room.Room
}

// broadcastState pushes the full authoritative snapshot to everyone
// watching the room.
func (rh *roomHandle) broadcastState() {
	snap := rh.room.Snapshot()
	rh.h.server.BroadcastToRoom(rh.room.Code, protocol.MustNewMessage(protocol.MsgRoomState, snap))
}

// publishEvents turns engine events into broadcasts. A game-over event
// also records the result asynchronously; stats must never block a turn.
func (rh *roomHandle) publishEvents(events []vault.Event) {
	for _, ev := range events {
		switch ev.Type {
		case vault.EventGameOver:
			rh.h.server.BroadcastToRoom(rh.room.Code, protocol.MustNewMessage(protocol.MsgGameOver, protocol.GameOverPayload{
				Winners: ev.Winners,
				Coins:   ev.Coins,
			}))
			rh.recordResult(ev.Winners)
		}
	}
}

// recordResult persists the game outcome off the intent path.
func (rh *roomHandle) recordResult(winners []int) {
	all, winning := rh.room.SeatNames(winners)
	stats := rh.h.server.GetStats()
	code := rh.room.Code
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := stats.RecordResult(ctx, all, winning); err != nil {
			logger.LogError("📊 failed to record result for room %s: %v", code, err)
		}
	}()
}
