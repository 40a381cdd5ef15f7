package dice

import "math/rand/v2"

// Roller produces two-die rolls.
type Roller struct {
	intN func(n int) int
}

// NewRoller returns a roller backed by the shared math/rand generator.
func NewRoller() *Roller {
	return &Roller{intN: rand.IntN}
}

// NewSeededRoller returns a deterministic roller for tests.
func NewSeededRoller(seed uint64) *Roller {
	r := rand.New(rand.NewPCG(seed, seed))
	return &Roller{intN: r.IntN}
}

// Roll returns two independent uniform die faces in [1,6].
func (r *Roller) Roll() (int, int) {
	return r.intN(6) + 1, r.intN(6) + 1
}
