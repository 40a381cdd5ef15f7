package protocol

import "encoding/json"

// Message is the envelope for every frame on the wire.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType identifies a message.
type MessageType string

// Client → server message types.
const (
	// Connection
	MsgPing MessageType = "ping" // heartbeat

	// Room operations
	MsgCreateRoom MessageType = "create_room" // create a room
	MsgJoinRoom   MessageType = "join_room"   // join by code
	MsgClaimSeat  MessageType = "claim_seat"  // take a vacant seat
	MsgRename     MessageType = "rename"      // change nickname on a claimed seat
	MsgLeaveRoom  MessageType = "leave_room"  // vacate seat and leave

	// Game operations
	MsgStartGame   MessageType = "start_game"   // host starts the game
	MsgRoll        MessageType = "roll"         // roll both dice
	MsgConfirmSum  MessageType = "confirm_sum"  // confirm the dice total
	MsgDoAction    MessageType = "do_action"    // execute the required move
	MsgHostControl MessageType = "host_control" // pause/resume/reset

	// Statistics
	MsgGetStats       MessageType = "get_stats"       // personal win record
	MsgGetLeaderboard MessageType = "get_leaderboard" // top players by wins
)

// Server → client message types.
const (
	// Connection
	MsgConnected MessageType = "connected" // assigned identity
	MsgPong      MessageType = "pong"      // heartbeat reply

	// Room lifecycle
	MsgRoomCreated MessageType = "room_created" // room code assigned
	MsgRoomJoined  MessageType = "room_joined"  // snapshot on join
	MsgRoomState   MessageType = "room_state"   // full snapshot after every mutation

	// Game flow
	MsgGameOver MessageType = "game_over" // terminal result

	// Statistics
	MsgStatsResult       MessageType = "stats_result"
	MsgLeaderboardResult MessageType = "leaderboard_result"

	// Errors
	MsgError MessageType = "error"
)

// HostAction is the verb of a host_control message.
type HostAction string

const (
	HostPause  HostAction = "pause"
	HostResume HostAction = "resume"
	HostReset  HostAction = "reset"
)
