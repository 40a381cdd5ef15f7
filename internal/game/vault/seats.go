package vault

import (
	"github.com/folletto/vault/internal/apperrors"
)

// ClaimSeat binds a connection to a vacant seat. Claiming a seat the same
// connection already holds is a no-op; a seat held by anyone else is
// refused. The nickname is capped at MaxNickLen runes and falls back to
// fallbackName when empty.
func (s *State) ClaimSeat(connID string, seat int, nick, avatar, fallbackName string) error {
	if seat < 0 || seat >= s.PlayerCount {
		return apperrors.ErrSeatInvalid
	}

	current := &s.Seats[seat]
	if current.Occupied() {
		if current.ConnID == connID {
			return nil
		}
		return apperrors.ErrSeatTaken
	}

	if nick == "" {
		nick = fallbackName
	}
	nick = capNick(nick)

	s.Seats[seat] = Seat{Name: nick, Avatar: avatar, ConnID: connID}
	s.logf("%s sat down at seat %d", nick, seat)
	return nil
}

// Rename changes the nickname on a seat the connection already holds.
func (s *State) Rename(connID string, seat int, nick string) error {
	if seat < 0 || seat >= s.PlayerCount {
		return apperrors.ErrSeatInvalid
	}

	current := &s.Seats[seat]
	if !current.Occupied() || current.ConnID != connID {
		return apperrors.ErrSeatTaken
	}

	nick = capNick(nick)
	if nick == "" {
		return nil
	}

	s.logf("%s is now known as %s", current.Name, nick)
	current.Name = nick
	return nil
}

// VacateConn clears every seat held by a connection and reports whether
// anything changed. Host identity is kept so the host can re-claim.
func (s *State) VacateConn(connID string) bool {
	changed := false
	for i := range s.Seats {
		if s.Seats[i].ConnID == connID {
			s.logf("%s left seat %d", s.Seats[i].Name, i)
			s.Seats[i] = Seat{}
			changed = true
		}
	}
	return changed
}

// OccupiedSeats reports how many seats are currently claimed.
func (s *State) OccupiedSeats() int {
	n := 0
	for _, seat := range s.Seats {
		if seat.Occupied() {
			n++
		}
	}
	return n
}

func capNick(nick string) string {
	runes := []rune(nick)
	if len(runes) > MaxNickLen {
		return string(runes[:MaxNickLen])
	}
	return nick
}
