package handlers

import (
	"github.com/folletto/vault/internal/logger"
	"github.com/folletto/vault/internal/network/server/types"
	"github.com/folletto/vault/internal/protocol"
)

// handleCreateRoom creates a room with the caller as host and puts the
// caller into it. The caller still has to claim a seat to play.
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r := h.server.GetRoomManager().Create(client.GetID(), payload.PlayerCount)
	client.SetRoom(r.Code)

	snap := r.Snapshot()
	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		RoomCode:    r.Code,
		PlayerCount: snap.PlayerCount,
	}))
	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomState, snap))
	logger.LogInfo("🏠 client %s created room %s", client.GetID(), r.Code)
}

// handleJoinRoom attaches the caller to an existing room as a watcher.
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r, err := h.server.GetRoomManager().Get(payload.RoomCode)
	if err != nil {
		sendError(client, err)
		return
	}

	client.SetRoom(r.Code)
	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, r.Snapshot()))
	logger.LogInfo("✅ client %s joined room %s", client.GetID(), r.Code)
}

// handleClaimSeat takes a vacant seat. Claiming the seat you already
// hold is a no-op, not an error.
func (h *Handler) handleClaimSeat(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ClaimSeatPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	rh, ok := h.currentRoom(client)
	if !ok {
		return
	}

	if err := rh.room.ClaimSeat(client.GetID(), payload.Seat, payload.Nickname, payload.Avatar, client.GetName()); err != nil {
		sendError(client, err)
		return
	}
	rh.broadcastState()
}

// handleRename changes the nickname on a seat held by the caller.
func (h *Handler) handleRename(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.RenamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	rh, ok := h.currentRoom(client)
	if !ok {
		return
	}

	if err := rh.room.Rename(client.GetID(), payload.Seat, payload.Nickname); err != nil {
		sendError(client, err)
		return
	}
	rh.broadcastState()
}

// handleLeaveRoom vacates the caller's seat, if any, and detaches the
// caller from the room. The last person out turns off the lights.
func (h *Handler) handleLeaveRoom(client types.ClientInterface) {
	code := client.GetRoom()
	if code == "" {
		return
	}
	client.SetRoom("")

	r, err := h.server.GetRoomManager().Get(code)
	if err != nil {
		return
	}

	changed := r.Vacate(client.GetID())
	if r.Occupants() == 0 {
		h.server.GetRoomManager().Remove(code)
		logger.LogInfo("🧹 room %s emptied and removed", code)
		return
	}
	if changed {
		h.server.BroadcastToRoom(code, protocol.MustNewMessage(protocol.MsgRoomState, r.Snapshot()))
	}
}
