package room

import (
	"log"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/folletto/vault/internal/apperrors"
	"github.com/folletto/vault/internal/game/dice"
	"github.com/folletto/vault/internal/game/vault"
)

const (
	roomCodeLength = 6
	// No 0/O/1/I: codes are read aloud and typed by hand.
	roomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Manager is the process-wide room store: an explicit object mapping room
// codes to rooms, injected into whoever needs it.
type Manager struct {
	rooms  map[string]*Room
	mu     sync.RWMutex
	roller *dice.Roller
}

// NewManager creates an empty room store.
func NewManager() *Manager {
	return &Manager{
		rooms:  make(map[string]*Room),
		roller: dice.NewRoller(),
	}
}

// NewManagerWithRoller creates a store whose rooms roll with the supplied
// roller. Tests use a seeded one.
func NewManagerWithRoller(roller *dice.Roller) *Manager {
	return &Manager{
		rooms:  make(map[string]*Room),
		roller: roller,
	}
}

// Create allocates a fresh room. The player count is clamped to the legal
// range and the creator becomes host.
func (m *Manager) Create(connID string, playerCount int) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	code := m.generateRoomCode()
	now := time.Now()
	r := &Room{
		Code:       code,
		CreatedAt:  now,
		lastActive: now,
		state:      vault.NewState(playerCount, connID),
		roller:     m.roller,
	}
	m.rooms[code] = r

	log.Printf("🏠 room %s created for %d players", code, r.state.PlayerCount)
	return r
}

// Get looks a room up by code, case-normalized. Unknown codes yield
// ErrRoomNotFound, never partial state.
func (m *Manager) Get(code string) (*Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.rooms[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	return r, nil
}

// Remove forgets a room.
func (m *Manager) Remove(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, code)
}

// Count reports how many rooms exist.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// DisconnectCleanup vacates every seat bound to the connection, scanning
// all rooms. Rooms left empty are forgotten. Returns the rooms that
// changed and still exist, for re-broadcast.
func (m *Manager) DisconnectCleanup(connID string) []*Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	var changed []*Room
	for code, r := range m.rooms {
		if !r.Vacate(connID) {
			continue
		}
		if r.Occupants() == 0 {
			log.Printf("🧹 room %s is empty, forgetting it", code)
			delete(m.rooms, code)
			continue
		}
		changed = append(changed, r)
	}
	return changed
}

// ReapIdle forgets rooms without activity past the threshold and returns
// how many were dropped.
func (m *Manager) ReapIdle(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	reaped := 0
	for code, r := range m.rooms {
		if r.IdleSince() > maxIdle {
			log.Printf("🧹 room %s idle for over %v, forgetting it", code, maxIdle)
			delete(m.rooms, code)
			reaped++
		}
	}
	return reaped
}

// CleanupLoop reaps idle rooms periodically until the stop channel closes.
func (m *Manager) CleanupLoop(maxIdle time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(maxIdle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.ReapIdle(maxIdle)
		case <-stop:
			return
		}
	}
}

// generateRoomCode returns a code not currently in use. Callers hold m.mu.
func (m *Manager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.IntN(len(roomCodeChars))]
		}
		if _, exists := m.rooms[string(code)]; !exists {
			return string(code)
		}
	}
}
