// Package testutil provides testing utilities for bitconv.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for property tests over bit widths
// and raw values.
//
// # Random Values
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Width(64)     // width in [1, 64]
//	raw := rng.Raw(bits)      // uniform in [0, 2^bits-1]
//	v := rng.Signed(bits)     // uniform in [-2^(bits-1), 2^(bits-1)-1]
//
// # Edge Values
//
//	for _, raw := range testutil.EdgeRaws(bits) { ... }
package testutil
