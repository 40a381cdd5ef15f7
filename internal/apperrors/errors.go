package apperrors

import (
	"github.com/folletto/vault/internal/protocol"
)

// GameError is shared by the room manager and the handlers.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Predefined errors
var (
	ErrRoomNotFound = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "room not found"}
	ErrSeatTaken    = &GameError{Code: protocol.ErrCodeSeatTaken, Message: "seat already claimed"}
	ErrSeatInvalid  = &GameError{Code: protocol.ErrCodeSeatInvalid, Message: "seat out of range"}
	ErrNotInRoom    = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "you are not in a room"}
	ErrNotYourTurn  = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: "not your turn"}
	ErrNotHost      = &GameError{Code: protocol.ErrCodeNotHost, Message: "host privileges required"}
	ErrGamePaused   = &GameError{Code: protocol.ErrCodeGamePaused, Message: "game is paused"}
	ErrGameOver     = &GameError{Code: protocol.ErrCodeGameOver, Message: "game is over"}
	ErrOutOfPhase   = &GameError{Code: protocol.ErrCodeOutOfPhase, Message: "not expecting that right now"}
)
