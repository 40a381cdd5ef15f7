package handlers

import (
	"github.com/folletto/vault/internal/logger"
	"github.com/folletto/vault/internal/network/server/types"
	"github.com/folletto/vault/internal/protocol"
)

// handleStartGame unpauses the room. Host only.
func (h *Handler) handleStartGame(client types.ClientInterface) {
	rh, ok := h.currentRoom(client)
	if !ok {
		return
	}

	if err := rh.room.Start(client.GetID()); err != nil {
		sendError(client, err)
		return
	}
	logger.LogInfo("🎲 room %s started by host %s", rh.room.Code, client.GetID())
	rh.broadcastState()
}

// handleRoll rolls both dice for the current player.
func (h *Handler) handleRoll(client types.ClientInterface) {
	rh, ok := h.currentRoom(client)
	if !ok {
		return
	}

	events, err := rh.room.Roll(client.GetID())
	if err != nil {
		sendError(client, err)
		return
	}
	rh.broadcastState()
	rh.publishEvents(events)
}

// handleConfirmSum checks the player's claimed total against the dice.
// A wrong claim keeps the room in the confirm step; everyone sees the
// dice, so the table self-corrects.
func (h *Handler) handleConfirmSum(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ConfirmSumPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	rh, ok := h.currentRoom(client)
	if !ok {
		return
	}

	events, err := rh.room.ConfirmSum(client.GetID(), payload.Sum)
	if err != nil {
		sendError(client, err)
		return
	}
	rh.broadcastState()
	rh.publishEvents(events)
}

// handleDoAction executes the pending required move for the current
// player.
func (h *Handler) handleDoAction(client types.ClientInterface) {
	rh, ok := h.currentRoom(client)
	if !ok {
		return
	}

	events, err := rh.room.DoAction(client.GetID())
	if err != nil {
		sendError(client, err)
		return
	}
	rh.broadcastState()
	rh.publishEvents(events)
}

// handleHostControl applies a pause/resume/reset verb. Host only.
func (h *Handler) handleHostControl(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.HostControlPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	rh, ok := h.currentRoom(client)
	if !ok {
		return
	}

	if err := rh.room.HostControl(client.GetID(), payload.Action); err != nil {
		sendError(client, err)
		return
	}
	logger.LogInfo("🎲 room %s host control: %s", rh.room.Code, payload.Action)
	rh.broadcastState()
}
