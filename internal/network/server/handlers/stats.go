package handlers

import (
	"context"
	"time"

	"github.com/folletto/vault/internal/logger"
	"github.com/folletto/vault/internal/network/server/types"
	"github.com/folletto/vault/internal/protocol"
)

const statsQueryTimeout = 3 * time.Second

// handleGetStats serves a player's win record, defaulting to the
// caller's own name.
func (h *Handler) handleGetStats(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GetStatsPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	name := payload.PlayerName
	if name == "" {
		name = client.GetName()
	}

	ctx, cancel := context.WithTimeout(context.Background(), statsQueryTimeout)
	defer cancel()

	stats, err := h.server.GetStats().GetStats(ctx, name)
	if err != nil {
		logger.LogError("📊 stats lookup for %q failed: %v", name, err)
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "stats unavailable"))
		return
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, stats))
}

// handleGetLeaderboard serves the top players by wins.
func (h *Handler) handleGetLeaderboard(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), statsQueryTimeout)
	defer cancel()

	entries, err := h.server.GetStats().GetLeaderboard(ctx, payload.Limit)
	if err != nil {
		logger.LogError("📊 leaderboard lookup failed: %v", err)
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "leaderboard unavailable"))
		return
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboardResult, protocol.LeaderboardPayload{
		Entries: entries,
	}))
}
