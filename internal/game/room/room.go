package room

import (
	"sync"
	"time"

	"github.com/folletto/vault/internal/apperrors"
	"github.com/folletto/vault/internal/game/dice"
	"github.com/folletto/vault/internal/game/vault"
	"github.com/folletto/vault/internal/protocol"
)

// Room owns one vault.State. Every intent against the room runs to
// completion under the room mutex, so roll -> confirm -> action sequences
// never interleave with each other; intents on different rooms are
// independent.
type Room struct {
	Code      string
	CreatedAt time.Time

	state  *vault.State
	roller *dice.Roller

	mu         sync.Mutex
	lastActive time.Time
}

// Touch records activity for idle-room cleanup.
func (r *Room) touch() {
	r.lastActive = time.Now()
}

// IdleSince reports how long the room has been without intents.
func (r *Room) IdleSince() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return time.Since(r.lastActive)
}

// ClaimSeat seats a connection, with the nickname defaulting and capping
// rules applied in the state layer.
func (r *Room) ClaimSeat(connID string, seat int, nick, avatar, fallbackName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	return r.state.ClaimSeat(connID, seat, nick, avatar, fallbackName)
}

// Rename changes the nickname on a seat held by the connection.
func (r *Room) Rename(connID string, seat int, nick string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	return r.state.Rename(connID, seat, nick)
}

// Start unpauses the game. Host only.
func (r *Room) Start(connID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	if connID != r.state.HostConnID {
		return apperrors.ErrNotHost
	}
	return r.state.Start()
}

// HostControl applies a pause/resume/reset verb. Host only.
func (r *Room) HostControl(connID string, action protocol.HostAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	if connID != r.state.HostConnID {
		return apperrors.ErrNotHost
	}

	switch action {
	case protocol.HostPause:
		r.state.Pause()
		return nil
	case protocol.HostResume:
		return r.state.Resume()
	case protocol.HostReset:
		r.state.Reset()
		return nil
	default:
		return apperrors.ErrOutOfPhase
	}
}

// Roll rolls the dice for the connection, which must hold the current
// turn's seat.
func (r *Room) Roll(connID string) ([]vault.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	if err := r.requireTurn(connID); err != nil {
		return nil, err
	}
	return r.state.Roll(r.roller)
}

// ConfirmSum confirms the claimed dice total for the current player.
func (r *Room) ConfirmSum(connID string, sum int) ([]vault.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	if err := r.requireTurn(connID); err != nil {
		return nil, err
	}
	return r.state.ConfirmSum(sum)
}

// DoAction executes the pending required move.
func (r *Room) DoAction(connID string) ([]vault.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch()
	if err := r.requireTurn(connID); err != nil {
		return nil, err
	}
	return r.state.DoAction()
}

// Vacate clears any seat held by the connection and reports whether the
// room changed.
func (r *Room) Vacate(connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.VacateConn(connID)
}

// Occupants reports how many seats are claimed.
func (r *Room) Occupants() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.OccupiedSeats()
}

// SeatNames returns the display names of all claimed seats, and of the
// winning seats for the given indices.
func (r *Room) SeatNames(winners []int) (all []string, winning []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, seat := range r.state.Seats {
		if seat.Occupied() {
			all = append(all, seat.Name)
		}
	}
	for _, i := range winners {
		if i >= 0 && i < len(r.state.Seats) && r.state.Seats[i].Occupied() {
			winning = append(winning, r.state.Seats[i].Name)
		}
	}
	return all, winning
}

// requireTurn checks that the connection holds the current turn's seat.
// Callers hold r.mu.
func (r *Room) requireTurn(connID string) error {
	seat := r.state.SeatOf(connID)
	if seat == -1 {
		return apperrors.ErrNotInRoom
	}
	if seat != r.state.CurrentTurn {
		return apperrors.ErrNotYourTurn
	}
	return nil
}
