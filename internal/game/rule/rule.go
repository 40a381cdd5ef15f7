package rule

import "fmt"

// MoveKind classifies the mandatory action implied by a dice total.
type MoveKind int

const (
	Deposit        MoveKind = iota // place one coin on an empty border slot
	DepositCenter                  // place one coin into the center pool
	Withdraw                       // take the coin off an occupied border slot
	CollectBorders                 // take every coin on the border
	CollectAll                     // take the border coins plus the whole center pool
)

// moveKindNames maps move kinds to their wire names.
var moveKindNames = map[MoveKind]string{
	Deposit:        "deposit",
	DepositCenter:  "deposit_center",
	Withdraw:       "withdraw",
	CollectBorders: "collect_borders",
	CollectAll:     "collect_all",
}

func (k MoveKind) String() string {
	if name, ok := moveKindNames[k]; ok {
		return name
	}
	return "invalid"
}

// BorderSlots are the eight numbered deposit targets. Totals 2, 7 and 12
// have their own rules; every other reachable total owns one slot.
var BorderSlots = []int{3, 4, 5, 6, 8, 9, 10, 11}

// IsBorderTotal reports whether a total maps to a numbered slot.
func IsBorderTotal(total int) bool {
	switch total {
	case 3, 4, 5, 6, 8, 9, 10, 11:
		return true
	}
	return false
}

// RequiredMove is the mandatory action pending execution. Slot is only
// meaningful for Deposit and Withdraw.
type RequiredMove struct {
	Kind MoveKind
	Slot int
}

// Describe renders the move as a human-readable event line fragment.
func (m *RequiredMove) Describe() string {
	switch m.Kind {
	case Deposit:
		return fmt.Sprintf("place a coin on slot %d", m.Slot)
	case DepositCenter:
		return "feed a coin to the center pool"
	case Withdraw:
		return fmt.Sprintf("take the coin from slot %d", m.Slot)
	case CollectBorders:
		return "sweep every coin off the border"
	case CollectAll:
		return "sweep the border and drain the center pool"
	}
	return "do nothing"
}

// Derive maps a confirmed dice total and the current border occupancy to
// the required move. It is total over all inputs: a value no rule covers
// (impossible with two dice) yields nil, meaning no move is required.
func Derive(total int, occupied map[int]bool) *RequiredMove {
	switch total {
	case 7:
		return &RequiredMove{Kind: DepositCenter}
	case 2:
		return &RequiredMove{Kind: CollectBorders}
	case 12:
		return &RequiredMove{Kind: CollectAll}
	}

	if !IsBorderTotal(total) {
		return nil
	}

	if occupied[total] {
		return &RequiredMove{Kind: Withdraw, Slot: total}
	}
	return &RequiredMove{Kind: Deposit, Slot: total}
}
