package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Uint8n returns a random uint8 in [0, n).
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(r.r.IntN(int(n)))
}

// FillWeighted fills the buffer with values 0..len(weights)-1, picking each
// value with probability proportional to its weight. Zero or negative total
// weight leaves the buffer all zeros.
func FillWeighted(r *rand.Rand, buf []uint8, weights []float64) {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}
	for i := range buf {
		roll := r.Float64() * total
		acc := 0.0
		buf[i] = 0
		for v, w := range weights {
			if w <= 0 {
				continue
			}
			acc += w
			if roll < acc {
				buf[i] = uint8(v)
				break
			}
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
