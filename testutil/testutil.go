package testutil

import (
	"math/big"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Width returns a bit width in [1, maxBits].
func (r *RNG) Width(maxBits int) uint32 {
	return uint32(r.Intn(maxBits)) + 1 //nolint:gosec // maxBits is small
}

// Raw returns a uniform value in [0, 2^bits-1].
func (r *RNG) Raw(bits uint32) *big.Int {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	r.mu.Lock()
	defer r.mu.Unlock()
	return new(big.Int).Rand(r.rand, limit)
}

// Signed returns a uniform value in [-2^(bits-1), 2^(bits-1)-1].
func (r *RNG) Signed(bits uint32) *big.Int {
	v := r.Raw(bits)
	half := new(big.Int).Lsh(big.NewInt(1), uint(bits)-1)
	return v.Sub(v, half)
}

// EdgeRaws returns the raw values where two's-complement bugs tend to hide:
// 0, 1, the largest positive, the most negative, -1 (all ones), and their
// neighbours, deduplicated and in range.
func EdgeRaws(bits uint32) []*big.Int {
	one := big.NewInt(1)
	modulus := new(big.Int).Lsh(one, uint(bits))
	half := new(big.Int).Lsh(one, uint(bits)-1)
	maxRaw := new(big.Int).Sub(modulus, one)

	candidates := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(2),
		new(big.Int).Sub(half, one),
		new(big.Int).Set(half),
		new(big.Int).Add(half, one),
		new(big.Int).Sub(maxRaw, one),
		maxRaw,
	}

	seen := make(map[string]bool, len(candidates))
	out := make([]*big.Int, 0, len(candidates))
	for _, c := range candidates {
		if c.Sign() < 0 || c.Cmp(maxRaw) > 0 || seen[c.String()] {
			continue
		}
		seen[c.String()] = true
		out = append(out, c)
	}
	return out
}
