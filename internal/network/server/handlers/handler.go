package handlers

import (
	"errors"
	"log"

	"github.com/folletto/vault/internal/apperrors"
	"github.com/folletto/vault/internal/logger"
	"github.com/folletto/vault/internal/network/server/types"
	"github.com/folletto/vault/internal/protocol"
)

// Handler dispatches inbound messages to intent handlers.
type Handler struct {
	server types.ServerContext
}

// NewHandler creates a dispatcher.
func NewHandler(s types.ServerContext) *Handler {
	return &Handler{server: s}
}

// Handle routes one message. A panic in a handler is contained: it must
// not take down the room, let alone the process.
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeUnknown))
		}
	}()

	switch msg.Type {
	// Connection
	case protocol.MsgPing:
		h.handlePing(client, msg)

	// Room operations
	case protocol.MsgCreateRoom:
		h.handleCreateRoom(client, msg)
	case protocol.MsgJoinRoom:
		h.handleJoinRoom(client, msg)
	case protocol.MsgClaimSeat:
		h.handleClaimSeat(client, msg)
	case protocol.MsgRename:
		h.handleRename(client, msg)
	case protocol.MsgLeaveRoom:
		h.handleLeaveRoom(client)

	// Game operations
	case protocol.MsgStartGame:
		h.handleStartGame(client)
	case protocol.MsgRoll:
		h.handleRoll(client)
	case protocol.MsgConfirmSum:
		h.handleConfirmSum(client, msg)
	case protocol.MsgDoAction:
		h.handleDoAction(client)
	case protocol.MsgHostControl:
		h.handleHostControl(client, msg)

	// Statistics
	case protocol.MsgGetStats:
		h.handleGetStats(client, msg)
	case protocol.MsgGetLeaderboard:
		h.handleGetLeaderboard(client, msg)

	default:
		log.Printf("unknown message type %q from %s", msg.Type, client.GetID())
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}

// currentRoom resolves the room the client is watching. A missing or
// vanished room reads as "room not found" to the caller.
func (h *Handler) currentRoom(client types.ClientInterface) (*roomHandle, bool) {
	code := client.GetRoom()
	if code == "" {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return nil, false
	}
	r, err := h.server.GetRoomManager().Get(code)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeRoomNotFound))
		return nil, false
	}
	return &roomHandle{h: h, room: r}, true
}

// sendError maps any error to a scoped error notice for the caller only.
func sendError(client types.ClientInterface, err error) {
	var ge *apperrors.GameError
	if errors.As(err, &ge) {
		client.SendMessage(protocol.NewErrorMessageWithText(ge.Code, ge.Message))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
