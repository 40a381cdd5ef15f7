package room

import (
	"github.com/folletto/vault/internal/protocol"
)

// Snapshot renders the full authoritative state for broadcast. Everything
// is copied; the caller may hold the result across the lock boundary.
func (r *Room) Snapshot() protocol.RoomSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.state
	snap := protocol.RoomSnapshot{
		RoomCode:    r.Code,
		PlayerCount: s.PlayerCount,
		Phase:       s.Phase.String(),
		Paused:      s.Paused,
		CurrentTurn: s.CurrentTurn,
		Coins:       append([]int(nil), s.Coins...),
		Eliminated:  append([]bool(nil), s.Eliminated...),
		RollsTaken:  append([]int(nil), s.RollsTaken...),
		Grace:       make([]string, len(s.Grace)),
		CenterPool:  s.CenterPool,
		Borders:     make(map[int]bool, len(s.Borders)),
		Seats:       make([]protocol.SeatInfo, len(s.Seats)),
		EventLog:    append([]string(nil), s.EventLog...),
		HostID:      s.HostConnID,
	}

	for i, g := range s.Grace {
		snap.Grace[i] = g.String()
	}
	for slot, occupied := range s.Borders {
		snap.Borders[slot] = occupied
	}
	for i, seat := range s.Seats {
		snap.Seats[i] = protocol.SeatInfo{
			Index:    i,
			Occupied: seat.Occupied(),
			Nickname: seat.Name,
			Avatar:   seat.Avatar,
		}
	}

	if s.LastRoll != nil {
		snap.LastRoll = []int{s.LastRoll[0], s.LastRoll[1]}
	}
	if s.Required != nil {
		snap.RequiredMove = &protocol.RequiredMoveInfo{
			Kind: s.Required.Kind.String(),
			Slot: s.Required.Slot,
		}
	}
	return snap
}
