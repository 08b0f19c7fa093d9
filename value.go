package bitconv

import (
	"math/big"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitconv/internal/conv"
)

// EncodedValue is a two's-complement field: a raw unsigned integer in
// [0, 2^bits-1] together with its width. Every notation is a projection of raw.
//
// EncodedValue is immutable; accessors return copies.
type EncodedValue struct {
	raw  *big.Int
	bits BitWidth
}

// Raw returns a copy of the canonical unsigned integer.
func (v EncodedValue) Raw() *big.Int {
	if v.raw == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v.raw)
}

// Bits returns the width the value was encoded at.
func (v EncodedValue) Bits() BitWidth { return v.bits }

// IsZero reports whether v is the zero EncodedValue (not an encoded 0).
func (v EncodedValue) IsZero() bool { return v.raw == nil }

// Negative reports whether the sign bit is set.
func (v EncodedValue) Negative() bool {
	return v.raw != nil && v.bits > 0 && v.raw.Bit(int(v.bits)-1) == 1
}

// Project renders v in every notation.
func (v EncodedValue) Project() Projections {
	if v.raw == nil {
		return Projections{}
	}
	return project(v.raw, v.bits)
}

// SetBits returns the positions of the set bits, least significant bit at 0.
func (v EncodedValue) SetBits() *roaring.Bitmap {
	rb := roaring.New()
	if v.raw == nil {
		return rb
	}
	for i := 0; i < v.raw.BitLen(); i++ {
		if v.raw.Bit(i) == 0 {
			continue
		}
		pos, err := conv.IntToUint32(i)
		if err != nil {
			break
		}
		rb.Add(pos)
	}
	return rb
}

// OnesCount returns the number of set bits.
func (v EncodedValue) OnesCount() int {
	n, err := conv.Uint64ToInt(v.SetBits().GetCardinality())
	if err != nil {
		return 0
	}
	return n
}
