package vault

import (
	"fmt"

	"github.com/folletto/vault/internal/game/rule"
)

// Game constants fixed by the rules of Folletto's Vault.
const (
	MinPlayers    = 3
	MaxPlayers    = 6
	StartingCoins = 4   // coins per player at game start
	MaxRolls      = 8   // per-player roll budget before the game is scored
	EventLogCap   = 160 // retained event lines, most recent first
	MaxNickLen    = 24
)

// GraceStatus tracks the one-turn reprieve granted to a player who
// reaches zero coins.
type GraceStatus int

const (
	GraceNormal  GraceStatus = iota
	GracePending             // gets one more chance, starting next turn
	GraceActive              // this turn is the last chance
)

var graceNames = map[GraceStatus]string{
	GraceNormal:  "normal",
	GracePending: "pending",
	GraceActive:  "active",
}

func (g GraceStatus) String() string { return graceNames[g] }

// Phase is the position of the room in the turn state machine.
type Phase int

const (
	PhaseAwaitingRoll Phase = iota
	PhaseAwaitingConfirm
	PhaseAwaitingAction
	PhaseTerminal
)

var phaseNames = map[Phase]string{
	PhaseAwaitingRoll:    "awaiting_roll",
	PhaseAwaitingConfirm: "awaiting_confirm",
	PhaseAwaitingAction:  "awaiting_action",
	PhaseTerminal:        "terminal",
}

func (p Phase) String() string { return phaseNames[p] }

// Seat is one player slot. A seat is vacant until a connection claims it.
type Seat struct {
	Name   string
	Avatar string
	ConnID string
}

// Occupied reports whether the seat has been claimed.
func (s Seat) Occupied() bool { return s.ConnID != "" }

// State is the authoritative record of one room. All slices are exactly
// PlayerCount long. Callers serialize access; State itself holds no lock.
type State struct {
	PlayerCount int // fixed at creation, clamped to [MinPlayers, MaxPlayers]

	Coins      []int
	Eliminated []bool
	RollsTaken []int
	Grace      []GraceStatus

	CurrentTurn int
	CenterPool  int
	Borders     map[int]bool // slot number -> occupied

	LastRoll *[2]int
	Required *rule.RequiredMove
	Phase    Phase
	Paused   bool

	EventLog []string // most recent first

	Seats      []Seat
	HostConnID string
}

// NewState builds a fresh room record. The player count is clamped, never
// rejected; the creator becomes host. Rooms start paused until the host
// starts the game.
func NewState(playerCount int, hostConnID string) *State {
	if playerCount < MinPlayers {
		playerCount = MinPlayers
	}
	if playerCount > MaxPlayers {
		playerCount = MaxPlayers
	}

	s := &State{
		PlayerCount: playerCount,
		Coins:       make([]int, playerCount),
		Eliminated:  make([]bool, playerCount),
		RollsTaken:  make([]int, playerCount),
		Grace:       make([]GraceStatus, playerCount),
		Borders:     make(map[int]bool, len(rule.BorderSlots)),
		Seats:       make([]Seat, playerCount),
		Paused:      true,
		HostConnID:  hostConnID,
	}
	for i := range s.Coins {
		s.Coins[i] = StartingCoins
	}
	for _, slot := range rule.BorderSlots {
		s.Borders[slot] = false
	}
	return s
}

// Reset reinitializes the game for the same player count, preserving the
// seat assignments and the host identity.
func (s *State) Reset() {
	fresh := NewState(s.PlayerCount, s.HostConnID)
	fresh.Seats = s.Seats
	*s = *fresh
	s.logf("room reset by the host")
}

// logf prepends a formatted line to the event log, discarding the oldest
// entries beyond the cap.
func (s *State) logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	s.EventLog = append([]string{line}, s.EventLog...)
	if len(s.EventLog) > EventLogCap {
		s.EventLog = s.EventLog[:EventLogCap]
	}
}

// SeatName returns the display name for a seat, falling back to its index.
func (s *State) SeatName(i int) string {
	if i >= 0 && i < len(s.Seats) && s.Seats[i].Name != "" {
		return s.Seats[i].Name
	}
	return fmt.Sprintf("seat %d", i)
}

// SeatOf returns the seat index claimed by a connection, or -1.
func (s *State) SeatOf(connID string) int {
	if connID == "" {
		return -1
	}
	for i, seat := range s.Seats {
		if seat.ConnID == connID {
			return i
		}
	}
	return -1
}

// AliveSeats returns the indices of all non-eliminated seats.
func (s *State) AliveSeats() []int {
	alive := make([]int, 0, s.PlayerCount)
	for i, out := range s.Eliminated {
		if !out {
			alive = append(alive, i)
		}
	}
	return alive
}

// nextAlive scans forward cyclically from the seat after `from` and
// returns the first non-eliminated seat. With no other seat alive the
// scan degenerates to `from` itself; termination is checked before this
// matters.
func (s *State) nextAlive(from int) int {
	for step := 1; step <= s.PlayerCount; step++ {
		i := (from + step) % s.PlayerCount
		if !s.Eliminated[i] {
			return i
		}
	}
	return from
}

// CirculatingCoins sums coins in play: player stacks, center pool, and
// occupied border slots. Conserved across every non-elimination move.
func (s *State) CirculatingCoins() int {
	total := s.CenterPool
	for _, c := range s.Coins {
		total += c
	}
	for _, occupied := range s.Borders {
		if occupied {
			total++
		}
	}
	return total
}
