package bitconv

import (
	"math/big"
	"strings"
)

// Projections holds the four textual renderings of one encoded value and the
// bit pattern for visualization.
type Projections struct {
	// Binary is base-2, zero-padded to exactly Bits digits.
	Binary string
	// Hex is uppercase base-16, zero-padded to ceil(Bits/4) digits.
	Hex string
	// Signed is the two's-complement interpretation in decimal.
	Signed string
	// Unsigned is the raw value in decimal.
	Unsigned string
	// BitPattern has one entry per bit, most significant bit first.
	BitPattern []bool
	// Bits is the width the projections were rendered at.
	Bits BitWidth
}

// Project renders raw at the given width.
//
// raw must lie in [0, 2^bits-1]; anything else is reported as KindOutOfRange
// rather than rendered truncated.
func Project(raw *big.Int, bits BitWidth) (Projections, error) {
	if err := bits.Validate(); err != nil {
		return Projections{}, err
	}
	if raw == nil {
		return Projections{}, newError(KindEmptyInput, 0, bits, "", "nil raw value")
	}
	if raw.Sign() < 0 || raw.Cmp(bits.MaxUnsigned()) > 0 {
		return Projections{}, newError(KindOutOfRange, 0, bits, raw.String(),
			"raw value %s out of range for %d bits", raw, uint32(bits))
	}
	return project(raw, bits), nil
}

func project(raw *big.Int, bits BitWidth) Projections {
	width := int(bits)

	signed := new(big.Int).Set(raw)
	if raw.Bit(width-1) == 1 {
		signed.Sub(signed, bits.modulus())
	}

	binary := padLeft(raw.Text(2), width)

	pattern := make([]bool, width)
	for i := range pattern {
		pattern[i] = raw.Bit(width-1-i) == 1
	}

	return Projections{
		Binary:     binary,
		Hex:        padLeft(strings.ToUpper(raw.Text(16)), bits.HexDigits()),
		Signed:     signed.String(),
		Unsigned:   raw.String(),
		BitPattern: pattern,
		Bits:       bits,
	}
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Text returns the projection for notation n.
func (p Projections) Text(n Notation) string {
	switch n {
	case Signed:
		return p.Signed
	case Unsigned:
		return p.Unsigned
	case Binary:
		return p.Binary
	case Hex:
		return p.Hex
	default:
		return ""
	}
}

// GroupedBinary returns the binary projection split into nibbles separated by
// a space, aligned to the least significant bit, e.g. "101 1010".
func (p Projections) GroupedBinary() string {
	s := p.Binary
	if len(s) <= 4 {
		return s
	}
	var sb strings.Builder
	head := len(s) % 4
	if head > 0 {
		sb.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 4 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s[i : i+4])
	}
	return sb.String()
}
