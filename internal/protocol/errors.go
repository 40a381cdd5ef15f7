package protocol

// Error codes
const (
	ErrCodeUnknown      = 1000
	ErrCodeInvalidMsg   = 1001
	ErrCodeRateLimit    = 1002
	ErrCodeRoomNotFound = 2001
	ErrCodeSeatTaken    = 2002
	ErrCodeSeatInvalid  = 2003
	ErrCodeNotInRoom    = 2004
	ErrCodeNotYourTurn  = 3001
	ErrCodeNotHost      = 3002
	ErrCodeGamePaused   = 3003
	ErrCodeNoPendingAct = 3004
	ErrCodeGameOver     = 3005
	ErrCodeOutOfPhase   = 3006
)

// ErrorMessages maps error codes to default texts.
var ErrorMessages = map[int]string{
	ErrCodeUnknown:      "unknown error",
	ErrCodeInvalidMsg:   "invalid message format",
	ErrCodeRateLimit:    "too many requests",
	ErrCodeRoomNotFound: "room not found",
	ErrCodeSeatTaken:    "seat already claimed",
	ErrCodeSeatInvalid:  "seat out of range",
	ErrCodeNotInRoom:    "you are not in a room",
	ErrCodeNotYourTurn:  "not your turn",
	ErrCodeNotHost:      "host privileges required",
	ErrCodeGamePaused:   "game is paused",
	ErrCodeNoPendingAct: "no pending move",
	ErrCodeGameOver:     "game is over",
	ErrCodeOutOfPhase:   "not expecting that right now",
}
