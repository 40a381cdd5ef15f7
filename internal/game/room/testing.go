//go:build !production

package room

import (
	"time"

	"github.com/folletto/vault/internal/game/dice"
	"github.com/folletto/vault/internal/game/vault"
)

// NewRoomForTest builds a room around an existing state, bypassing the
// store and the random room code.
func NewRoomForTest(code string, state *vault.State, roller *dice.Roller) *Room {
	return &Room{
		Code:       code,
		CreatedAt:  time.Now(),
		lastActive: time.Now(),
		state:      state,
		roller:     roller,
	}
}

// AddRoomForTest injects a room into the store under its own code.
func (m *Manager) AddRoomForTest(r *Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[r.Code] = r
}

// StateForTest exposes the underlying state for assertions.
func (r *Room) StateForTest() *vault.State {
	return r.state
}
