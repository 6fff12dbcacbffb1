// Package rng implements the deterministic pseudo-random stream used by the
// simulation engine. Every draw is a pure function of (seed, call index):
// two generators built from the same seed always produce the same sequence,
// and independently-seeded generators share no state. Components that need
// independent streams (graph generation, per-step weight updates) construct
// a fresh generator from a derived seed instead of sharing one.
package rng

// Generator produces a reproducible stream of floats in [0, 1).
//
// The construction is a counter-plus-avalanche hash: the state advances by a
// fixed odd increment each draw, then two multiply/xor-shift rounds mix the
// counter into a well-distributed 32-bit word. There are no short cycles at
// the draw counts the engine performs (at most a few thousand per run).
type Generator struct {
	state uint32
}

// Mixing constants. The increment is the 32-bit golden-ratio constant; the
// multipliers are the murmur3 finalizer constants.
const (
	increment = 0x9E3779B9
	mixA      = 0x85EBCA6B
	mixB      = 0xC2B2AE35
)

// New creates a generator seeded with the given 32-bit seed.
func New(seed uint32) *Generator {
	return &Generator{state: seed}
}

// Next returns the next value in [0, 1).
func (g *Generator) Next() float64 {
	g.state += increment
	z := g.state
	z ^= z >> 16
	z *= mixA
	z ^= z >> 13
	z *= mixB
	z ^= z >> 16
	return float64(z) / (1 << 32)
}

// IntBelow returns an integer in [0, n). Panics if n <= 0, matching the
// contract of the standard library's rand.Intn.
func (g *Generator) IntBelow(n int) int {
	if n <= 0 {
		panic("rng: IntBelow called with non-positive n")
	}
	return int(g.Next() * float64(n))
}

// Pick returns an element of the non-empty slice items, chosen uniformly.
func Pick[T any](g *Generator, items []T) T {
	return items[g.IntBelow(len(items))]
}
