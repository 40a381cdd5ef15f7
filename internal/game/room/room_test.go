package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folletto/vault/internal/apperrors"
	"github.com/folletto/vault/internal/game/dice"
	"github.com/folletto/vault/internal/game/vault"
	"github.com/folletto/vault/internal/protocol"
)

func seatedRoom(t *testing.T) *Room {
	t.Helper()
	r := NewRoomForTest("TEST42", vault.NewState(3, "host"), dice.NewSeededRoller(1))
	require.NoError(t, r.ClaimSeat("host", 0, "Host", "", ""))
	require.NoError(t, r.ClaimSeat("conn-1", 1, "One", "", ""))
	require.NoError(t, r.ClaimSeat("conn-2", 2, "Two", "", ""))
	return r
}

func TestStartRequiresHost(t *testing.T) {
	r := seatedRoom(t)

	assert.ErrorIs(t, r.Start("conn-1"), apperrors.ErrNotHost)
	assert.True(t, r.StateForTest().Paused)

	require.NoError(t, r.Start("host"))
	assert.False(t, r.StateForTest().Paused)
}

func TestHostControl(t *testing.T) {
	r := seatedRoom(t)
	require.NoError(t, r.Start("host"))

	assert.ErrorIs(t, r.HostControl("conn-1", protocol.HostPause), apperrors.ErrNotHost)

	require.NoError(t, r.HostControl("host", protocol.HostPause))
	assert.True(t, r.StateForTest().Paused)

	require.NoError(t, r.HostControl("host", protocol.HostResume))
	assert.False(t, r.StateForTest().Paused)

	require.NoError(t, r.HostControl("host", protocol.HostReset))
	assert.True(t, r.StateForTest().Paused)
	assert.Equal(t, "Host", r.StateForTest().Seats[0].Name)

	assert.Error(t, r.HostControl("host", protocol.HostAction("explode")))
}

func TestTurnOwnership(t *testing.T) {
	r := seatedRoom(t)
	require.NoError(t, r.Start("host"))

	// Seat 0 holds the first turn.
	_, err := r.Roll("conn-1")
	assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)

	_, err = r.Roll("stranger")
	assert.ErrorIs(t, err, apperrors.ErrNotInRoom)

	_, err = r.Roll("host")
	require.NoError(t, err)

	_, err = r.ConfirmSum("conn-2", 7)
	assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)
	_, err = r.DoAction("conn-2")
	assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)
}

func TestFullTurnThroughRoom(t *testing.T) {
	r := seatedRoom(t)
	require.NoError(t, r.Start("host"))

	_, err := r.Roll("host")
	require.NoError(t, err)

	s := r.StateForTest()
	total := s.LastRoll[0] + s.LastRoll[1]
	_, err = r.ConfirmSum("host", total)
	require.NoError(t, err)

	if s.Phase == vault.PhaseAwaitingAction {
		_, err = r.DoAction("host")
		require.NoError(t, err)
	}

	assert.Equal(t, vault.PhaseAwaitingRoll, s.Phase)
	assert.NotEqual(t, 0, s.CurrentTurn)
}

func TestSnapshot(t *testing.T) {
	r := seatedRoom(t)
	require.NoError(t, r.Start("host"))
	_, err := r.Roll("host")
	require.NoError(t, err)

	snap := r.Snapshot()
	assert.Equal(t, "TEST42", snap.RoomCode)
	assert.Equal(t, 3, snap.PlayerCount)
	assert.Equal(t, "awaiting_confirm", snap.Phase)
	assert.Equal(t, []int{4, 4, 4}, snap.Coins)
	assert.Len(t, snap.LastRoll, 2)
	assert.Len(t, snap.Seats, 3)
	assert.True(t, snap.Seats[1].Occupied)
	assert.Equal(t, "One", snap.Seats[1].Nickname)
	assert.Equal(t, "host", snap.HostID)
	assert.Len(t, snap.Borders, 8)
	assert.NotEmpty(t, snap.EventLog)

	// The snapshot is a copy: mutating it never touches the room.
	snap.Coins[0] = 99
	assert.Equal(t, 4, r.StateForTest().Coins[0])
}

func TestSeatNames(t *testing.T) {
	r := seatedRoom(t)
	all, winning := r.SeatNames([]int{2})
	assert.Equal(t, []string{"Host", "One", "Two"}, all)
	assert.Equal(t, []string{"Two"}, winning)

	_, winning = r.SeatNames(nil)
	assert.Empty(t, winning)
}
