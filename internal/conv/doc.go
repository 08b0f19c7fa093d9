// Package conv provides checked integer conversions.
//
// Used wherever a platform int crosses into a fixed-width field: bit widths,
// bit positions, and length prefixes in history snapshots.
package conv
