package feed

// Rand is a mulberry32 pseudo-random generator: a pure function from a
// 32-bit seed to a deterministic stream of floats in [0,1). Output is
// byte-for-byte stable across versions; feed ordering for a given seed
// must never change under migration, so do not touch the constants.
type Rand struct {
	state uint32
}

func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Float64 returns the next value in [0,1).
func (r *Rand) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	t ^= t >> 14
	return float64(t) / 4294967296.0
}
