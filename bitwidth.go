package bitconv

import (
	"math/big"

	"github.com/hupe1980/bitconv/internal/conv"
)

// BitWidth is the number of bits of a two's-complement field.
type BitWidth uint32

// Standard widths offered by the calculator UI.
const (
	Bits4  BitWidth = 4
	Bits8  BitWidth = 8
	Bits16 BitWidth = 16
	Bits32 BitWidth = 32
)

// MaxBitWidth bounds the accepted width. Any width in [1, MaxBitWidth] is valid.
const MaxBitWidth BitWidth = 4096

// StandardWidths lists the widths a UI typically offers, narrowest first.
var StandardWidths = []BitWidth{Bits4, Bits8, Bits16, Bits32}

// BitWidthFromInt converts n to a BitWidth and validates it.
func BitWidthFromInt(n int) (BitWidth, error) {
	v, err := conv.IntToUint32(n)
	if err != nil {
		return 0, &ConversionError{
			Kind:    KindInvalidBitWidth,
			Message: "invalid bit width: " + err.Error(),
		}
	}
	bits := BitWidth(v)
	if err := bits.Validate(); err != nil {
		return 0, err
	}
	return bits, nil
}

// Validate reports whether the width is in [1, MaxBitWidth].
func (b BitWidth) Validate() error {
	if b < 1 || b > MaxBitWidth {
		return newError(KindInvalidBitWidth, 0, b, "",
			"invalid bit width %d: must be between 1 and %d", uint32(b), uint32(MaxBitWidth))
	}
	return nil
}

// Int returns the width as an int.
func (b BitWidth) Int() int { return int(b) }

// modulus returns 2^bits.
func (b BitWidth) modulus() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(b))
}

// MaxUnsigned returns 2^bits - 1.
func (b BitWidth) MaxUnsigned() *big.Int {
	m := b.modulus()
	return m.Sub(m, big.NewInt(1))
}

// MaxSigned returns 2^(bits-1) - 1.
func (b BitWidth) MaxSigned() *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(b)-1)
	return m.Sub(m, big.NewInt(1))
}

// MinSigned returns -2^(bits-1).
func (b BitWidth) MinSigned() *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(b)-1)
	return m.Neg(m)
}

// HexDigits returns ceil(bits/4), the width of the hex projection.
func (b BitWidth) HexDigits() int {
	return (int(b) + 3) / 4
}
