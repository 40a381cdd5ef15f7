package protocol

// --- Client request payloads ---

// PingPayload carries the client clock for latency measurement.
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // client time, milliseconds
}

// CreateRoomPayload requests a new room.
type CreateRoomPayload struct {
	PlayerCount int `json:"player_count"` // clamped to [3,6] server-side
}

// JoinRoomPayload joins an existing room by code.
type JoinRoomPayload struct {
	RoomCode string `json:"room_code"` // case-insensitive
}

// ClaimSeatPayload takes a vacant seat.
type ClaimSeatPayload struct {
	Seat     int    `json:"seat"`
	Nickname string `json:"nickname"` // defaulted if empty, capped at 24 runes
	Avatar   string `json:"avatar"`
}

// RenamePayload changes the nickname on an already-claimed seat.
type RenamePayload struct {
	Seat     int    `json:"seat"`
	Nickname string `json:"nickname"`
}

// ConfirmSumPayload is the player's claimed dice total.
type ConfirmSumPayload struct {
	Sum int `json:"sum"`
}

// HostControlPayload is a host-only control verb.
type HostControlPayload struct {
	Action HostAction `json:"action"`
}

// GetStatsPayload asks for a win record, defaulting to the caller's name.
type GetStatsPayload struct {
	PlayerName string `json:"player_name,omitempty"`
}

// GetLeaderboardPayload limits the leaderboard query.
type GetLeaderboardPayload struct {
	Limit int `json:"limit"` // default 10, max 100
}

// --- Server response payloads ---

// ConnectedPayload tells a client its assigned identity.
type ConnectedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PongPayload echoes the ping timestamp.
type PongPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// RoomCreatedPayload confirms room creation.
type RoomCreatedPayload struct {
	RoomCode    string `json:"room_code"`
	PlayerCount int    `json:"player_count"`
}

// SeatInfo describes one seat of the board.
type SeatInfo struct {
	Index    int    `json:"index"`
	Occupied bool   `json:"occupied"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// RequiredMoveInfo is the pending mandatory action, if any.
type RequiredMoveInfo struct {
	Kind string `json:"kind"` // deposit/deposit_center/withdraw/collect_borders/collect_all
	Slot int    `json:"slot,omitempty"`
}

// RoomSnapshot is the full authoritative state pushed after every mutation.
type RoomSnapshot struct {
	RoomCode     string            `json:"room_code"`
	PlayerCount  int               `json:"player_count"`
	Phase        string            `json:"phase"`
	Paused       bool              `json:"paused"`
	CurrentTurn  int               `json:"current_turn"`
	Coins        []int             `json:"coins"`
	Eliminated   []bool            `json:"eliminated"`
	RollsTaken   []int             `json:"rolls_taken"`
	Grace        []string          `json:"grace"`
	CenterPool   int               `json:"center_pool"`
	Borders      map[int]bool      `json:"borders"` // slot number -> occupied
	LastRoll     []int             `json:"last_roll,omitempty"`
	RequiredMove *RequiredMoveInfo `json:"required_move,omitempty"`
	Seats        []SeatInfo        `json:"seats"`
	EventLog     []string          `json:"event_log"` // most recent first
	HostID       string            `json:"host_id"`
}

// GameOverPayload announces the terminal result.
type GameOverPayload struct {
	Winners []int `json:"winners"` // seat indices; empty means no-contest draw
	Coins   []int `json:"coins"`   // final coin counts per seat
}

// StatsPayload is a player's win record.
type StatsPayload struct {
	PlayerName string `json:"player_name"`
	Games      int    `json:"games"`
	Wins       int    `json:"wins"`
}

// LeaderboardEntry is one row of the leaderboard.
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	PlayerName string `json:"player_name"`
	Wins       int    `json:"wins"`
}

// LeaderboardPayload is the leaderboard response.
type LeaderboardPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// ErrorPayload carries a scoped error to the offending caller.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
