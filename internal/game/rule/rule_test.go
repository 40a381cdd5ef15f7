package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyBorders() map[int]bool {
	borders := make(map[int]bool)
	for _, slot := range BorderSlots {
		borders[slot] = false
	}
	return borders
}

func TestDeriveBorderTotals(t *testing.T) {
	for _, total := range BorderSlots {
		borders := emptyBorders()

		mv := Derive(total, borders)
		require.NotNil(t, mv, "total %d", total)
		assert.Equal(t, Deposit, mv.Kind)
		assert.Equal(t, total, mv.Slot)

		borders[total] = true
		mv = Derive(total, borders)
		require.NotNil(t, mv)
		assert.Equal(t, Withdraw, mv.Kind)
		assert.Equal(t, total, mv.Slot)
	}
}

// Repeated visits to the same total must alternate deposit/withdraw as the
// slot toggles.
func TestDeriveAlternates(t *testing.T) {
	borders := emptyBorders()
	for visit := range 6 {
		mv := Derive(9, borders)
		require.NotNil(t, mv)
		if visit%2 == 0 {
			assert.Equal(t, Deposit, mv.Kind)
			borders[9] = true
		} else {
			assert.Equal(t, Withdraw, mv.Kind)
			borders[9] = false
		}
	}
}

func TestDeriveSpecialTotals(t *testing.T) {
	borders := emptyBorders()

	assert.Equal(t, DepositCenter, Derive(7, borders).Kind)
	assert.Equal(t, CollectBorders, Derive(2, borders).Kind)
	assert.Equal(t, CollectAll, Derive(12, borders).Kind)

	// Occupancy is irrelevant for the special totals.
	borders[3] = true
	borders[11] = true
	assert.Equal(t, DepositCenter, Derive(7, borders).Kind)
	assert.Equal(t, CollectBorders, Derive(2, borders).Kind)
	assert.Equal(t, CollectAll, Derive(12, borders).Kind)
}

// Derive must be total: unreachable values map to nil, not a panic.
func TestDeriveUnreachableTotals(t *testing.T) {
	borders := emptyBorders()
	for _, total := range []int{-1, 0, 1, 13, 100} {
		assert.Nil(t, Derive(total, borders), "total %d", total)
	}
}

func TestIsBorderTotal(t *testing.T) {
	for _, total := range BorderSlots {
		assert.True(t, IsBorderTotal(total))
	}
	for _, total := range []int{2, 7, 12, 0, 13} {
		assert.False(t, IsBorderTotal(total))
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "place a coin on slot 4", (&RequiredMove{Kind: Deposit, Slot: 4}).Describe())
	assert.Equal(t, "take the coin from slot 10", (&RequiredMove{Kind: Withdraw, Slot: 10}).Describe())
	assert.Contains(t, (&RequiredMove{Kind: CollectAll}).Describe(), "center pool")
}
