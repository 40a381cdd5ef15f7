package handlers

import (
	"github.com/folletto/vault/internal/network/server/types"
	"github.com/folletto/vault/internal/protocol"
)

// handlePing answers the heartbeat, echoing the client timestamp so the
// client can measure round-trip latency.
func (h *Handler) handlePing(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PingPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		Timestamp: payload.Timestamp,
	}))
}
