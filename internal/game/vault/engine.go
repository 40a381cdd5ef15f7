package vault

import (
	"github.com/folletto/vault/internal/apperrors"
	"github.com/folletto/vault/internal/game/dice"
	"github.com/folletto/vault/internal/game/rule"
)

// EventType classifies discrete outcomes the transport must publish
// beyond the state snapshot itself.
type EventType int

const (
	EventGameOver EventType = iota
)

// Event is emitted by a state transition. Mutators return events instead
// of broadcasting so the engine runs without a transport.
type Event struct {
	Type    EventType
	Winners []int // seat indices; empty means no-contest draw
	Coins   []int // final coin counts per seat
}

// Roll produces a new pending roll for the current player and moves the
// room to the confirm step.
func (s *State) Roll(roller *dice.Roller) ([]Event, error) {
	if s.Phase == PhaseTerminal {
		return nil, apperrors.ErrGameOver
	}
	if s.Paused {
		return nil, apperrors.ErrGamePaused
	}
	if s.Phase != PhaseAwaitingRoll {
		return nil, apperrors.ErrOutOfPhase
	}

	d1, d2 := roller.Roll()
	s.LastRoll = &[2]int{d1, d2}
	s.RollsTaken[s.CurrentTurn]++
	s.Phase = PhaseAwaitingConfirm
	s.logf("%s rolled %d and %d", s.SeatName(s.CurrentTurn), d1, d2)
	return nil, nil
}

// ConfirmSum checks the player's claimed total against the pending roll.
// A wrong claim is logged and leaves the room in the confirm step; the
// client is expected to re-add and try again. A correct claim derives the
// required move and announces it, except that a deposit demanded of a
// player with no coins eliminates them on the spot.
func (s *State) ConfirmSum(claimed int) ([]Event, error) {
	if s.Phase == PhaseTerminal {
		return nil, apperrors.ErrGameOver
	}
	if s.Paused {
		return nil, apperrors.ErrGamePaused
	}
	if s.Phase != PhaseAwaitingConfirm || s.LastRoll == nil {
		return nil, apperrors.ErrOutOfPhase
	}

	cur := s.CurrentTurn
	total := s.LastRoll[0] + s.LastRoll[1]
	if claimed != total {
		s.logf("%s miscounted: claimed %d but the dice show %d", s.SeatName(cur), claimed, total)
		return nil, nil
	}

	mv := rule.Derive(total, s.Borders)
	if mv == nil {
		// Unreachable with two dice; finish the turn rather than wedge the room.
		s.logf("total %d requires no move", total)
		return s.endTurn(), nil
	}

	if isDeposit(mv.Kind) && s.Coins[cur] == 0 {
		s.eliminate(cur, "cannot pay the deposit")
		return s.endTurn(), nil
	}

	s.Required = mv
	s.Phase = PhaseAwaitingAction
	s.logf("%s must %s", s.SeatName(cur), mv.Describe())
	return nil, nil
}

// DoAction executes the pending required move for the current player.
// Calls with no pending move, or while paused, are no-ops.
func (s *State) DoAction() ([]Event, error) {
	if s.Paused || s.Required == nil || s.Phase != PhaseAwaitingAction {
		return nil, nil
	}

	cur := s.CurrentTurn
	mv := s.Required

	switch mv.Kind {
	case rule.Deposit, rule.DepositCenter:
		if s.Coins[cur] == 0 {
			s.eliminate(cur, "cannot pay the deposit")
			break
		}
		s.Coins[cur]--
		if mv.Kind == rule.DepositCenter {
			s.CenterPool++
			s.logf("%s fed a coin to the center pool (%d inside)", s.SeatName(cur), s.CenterPool)
		} else {
			s.Borders[mv.Slot] = true
			s.logf("%s placed a coin on slot %d", s.SeatName(cur), mv.Slot)
		}
		if s.Coins[cur] == 0 && s.Grace[cur] == GraceNormal {
			s.Grace[cur] = GracePending
			s.logf("%s is down to zero coins: one last chance next turn", s.SeatName(cur))
		}

	case rule.Withdraw:
		// Stale-state guard: an empty slot yields nothing but still ends the turn.
		if s.Borders[mv.Slot] {
			s.Borders[mv.Slot] = false
			s.Coins[cur]++
			s.logf("%s took the coin from slot %d", s.SeatName(cur), mv.Slot)
			if s.Coins[cur] > 0 {
				s.Grace[cur] = GraceNormal
			}
		}

	case rule.CollectBorders, rule.CollectAll:
		won := 0
		for slot, occupied := range s.Borders {
			if occupied {
				s.Borders[slot] = false
				won++
			}
		}
		if mv.Kind == rule.CollectAll {
			won += s.CenterPool
			s.CenterPool = 0
			s.logf("%s swept the border and the center pool for %d coins", s.SeatName(cur), won)
		} else {
			s.logf("%s swept %d coins off the border", s.SeatName(cur), won)
		}
		s.Coins[cur] += won
		if s.Coins[cur] > 0 {
			s.Grace[cur] = GraceNormal
		}
	}

	return s.endTurn(), nil
}

// Start unpauses a freshly created (or reset) room.
func (s *State) Start() error {
	if s.Phase == PhaseTerminal {
		return apperrors.ErrGameOver
	}
	if !s.Paused {
		return nil
	}
	s.Paused = false
	s.logf("the game is on")
	return nil
}

// Pause blocks roll/confirm/action intents until resumed.
func (s *State) Pause() {
	if !s.Paused {
		s.Paused = true
		s.logf("game paused by the host")
	}
}

// Resume lifts a host pause. A finished game stays frozen until reset.
func (s *State) Resume() error {
	if s.Phase == PhaseTerminal {
		return apperrors.ErrGameOver
	}
	if s.Paused {
		s.Paused = false
		s.logf("game resumed")
	}
	return nil
}

// endTurn runs the shared turn-end procedure: resolve grace expiry for
// the finishing player, check termination, then hand the turn to the next
// surviving seat, promoting a pending grace to its active turn.
func (s *State) endTurn() []Event {
	s.Required = nil
	cur := s.CurrentTurn

	if s.Grace[cur] == GraceActive {
		if s.Coins[cur] == 0 {
			s.eliminate(cur, "grace exhausted")
		} else {
			s.Grace[cur] = GraceNormal
		}
	}

	if events := s.checkTermination(); events != nil {
		s.LastRoll = nil
		return events
	}

	s.CurrentTurn = s.nextAlive(cur)
	if s.Grace[s.CurrentTurn] == GracePending {
		s.Grace[s.CurrentTurn] = GraceActive
		s.logf("last-chance turn for %s", s.SeatName(s.CurrentTurn))
	}

	s.LastRoll = nil
	s.Phase = PhaseAwaitingRoll
	return nil
}

// checkTermination ends the game on a sole survivor (or a no-contest
// draw when a single resolution eliminated everyone), or when every
// surviving player has used up their roll budget, in which case the
// richest survivors share the win.
func (s *State) checkTermination() []Event {
	alive := s.AliveSeats()

	var winners []int
	switch {
	case len(alive) == 0:
		winners = []int{}
		s.logf("everyone is out: no-contest draw")

	case len(alive) == 1:
		winners = alive
		s.logf("%s is the last one standing and wins the vault", s.SeatName(alive[0]))

	default:
		for _, i := range alive {
			if s.RollsTaken[i] < MaxRolls {
				return nil
			}
		}
		best := 0
		for _, i := range alive {
			if s.Coins[i] > best {
				best = s.Coins[i]
			}
		}
		winners = []int{}
		for _, i := range alive {
			if s.Coins[i] == best {
				winners = append(winners, i)
			}
		}
		if len(winners) == 1 {
			s.logf("all rolls spent: %s wins with %d coins", s.SeatName(winners[0]), best)
		} else {
			s.logf("all rolls spent: %d players tie at %d coins", len(winners), best)
		}
	}

	s.Phase = PhaseTerminal
	s.Paused = true

	coins := make([]int, len(s.Coins))
	copy(coins, s.Coins)
	return []Event{{Type: EventGameOver, Winners: winners, Coins: coins}}
}

// eliminate marks a seat out of the game. Eliminated players always hold
// zero coins, so nothing leaks from circulation.
func (s *State) eliminate(seat int, reason string) {
	s.Eliminated[seat] = true
	s.Grace[seat] = GraceNormal
	s.logf("%s is eliminated (%s)", s.SeatName(seat), reason)
}

func isDeposit(kind rule.MoveKind) bool {
	return kind == rule.Deposit || kind == rule.DepositCenter
}
