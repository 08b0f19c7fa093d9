package bitconv

import (
	"math/big"
	"strings"
	"unicode"
)

// Encode parses value written in notation n and encodes it as a two's-complement
// field of the given width.
//
// Failures are returned as *ConversionError:
//   - KindEmptyInput when value holds no digits
//   - KindInvalidFormat when a character is outside the notation's alphabet
//   - KindOutOfRange when the value does not fit in bits
//
// Binary input is range-checked by digit count rather than by magnitude, so
// "010000000" is rejected at 8 bits even though its value fits.
func Encode(value string, bits BitWidth, n Notation) (EncodedValue, error) {
	if err := bits.Validate(); err != nil {
		return EncodedValue{}, err
	}

	var (
		raw *big.Int
		err *ConversionError
	)

	switch n {
	case Signed:
		raw, err = encodeSigned(value, bits)
	case Unsigned:
		raw, err = encodeUnsigned(value, bits)
	case Binary:
		raw, err = encodeBinary(value, bits)
	case Hex:
		raw, err = encodeHex(value, bits)
	default:
		return EncodedValue{}, newError(KindInvalidNotation, n, bits, value, "invalid notation %d", uint8(n))
	}
	if err != nil {
		return EncodedValue{}, err
	}

	return EncodedValue{raw: raw, bits: bits}, nil
}

// MustEncode is like Encode but panics on failure. Intended for constants in
// tests and examples.
func MustEncode(value string, bits BitWidth, n Notation) EncodedValue {
	v, err := Encode(value, bits, n)
	if err != nil {
		panic(err)
	}
	return v
}

func encodeSigned(value string, bits BitWidth) (*big.Int, *ConversionError) {
	s := strings.TrimSpace(value)
	if s == "" {
		return nil, newError(KindEmptyInput, Signed, bits, value, "empty input")
	}

	v, ok := parseDecimal(s)
	if !ok {
		return nil, newError(KindInvalidFormat, Signed, bits, value, "invalid signed decimal %q", value)
	}

	lo, hi := bits.MinSigned(), bits.MaxSigned()
	if v.Cmp(hi) > 0 || v.Cmp(lo) < 0 {
		return nil, newError(KindOutOfRange, Signed, bits, value,
			"value %s out of range for %d-bit signed [%s, %s]", v, uint32(bits), lo, hi)
	}

	if v.Sign() < 0 {
		v.Add(v, bits.modulus())
	}
	return v, nil
}

func encodeUnsigned(value string, bits BitWidth) (*big.Int, *ConversionError) {
	s := strings.TrimSpace(value)
	if s == "" {
		return nil, newError(KindEmptyInput, Unsigned, bits, value, "empty input")
	}

	v, ok := parseDecimal(s)
	if !ok {
		return nil, newError(KindInvalidFormat, Unsigned, bits, value, "invalid unsigned decimal %q", value)
	}

	hi := bits.MaxUnsigned()
	if v.Sign() < 0 || v.Cmp(hi) > 0 {
		return nil, newError(KindOutOfRange, Unsigned, bits, value,
			"value %s out of range for %d-bit unsigned [0, %s]", v, uint32(bits), hi)
	}
	return v, nil
}

func encodeBinary(value string, bits BitWidth) (*big.Int, *ConversionError) {
	digits, prefixed := stripPrefix(value, 'b')
	if digits == "" {
		if prefixed {
			return nil, newError(KindInvalidFormat, Binary, bits, value, "invalid binary %q: no digits after prefix", value)
		}
		return nil, newError(KindEmptyInput, Binary, bits, value, "empty input")
	}

	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c != '0' && c != '1' {
			return nil, newError(KindInvalidFormat, Binary, bits, value,
				"invalid binary %q: unexpected character %q", value, rune(c))
		}
	}

	if len(digits) > int(bits) {
		return nil, newError(KindOutOfRange, Binary, bits, value,
			"binary value has %d digits, exceeds %d bits", len(digits), uint32(bits))
	}

	v, _ := new(big.Int).SetString(digits, 2)
	return v, nil
}

func encodeHex(value string, bits BitWidth) (*big.Int, *ConversionError) {
	digits, prefixed := stripPrefix(value, 'x')
	if digits == "" {
		if prefixed {
			return nil, newError(KindInvalidFormat, Hex, bits, value, "invalid hex %q: no digits after prefix", value)
		}
		return nil, newError(KindEmptyInput, Hex, bits, value, "empty input")
	}

	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return nil, newError(KindInvalidFormat, Hex, bits, value,
				"invalid hex %q: unexpected character %q", value, rune(digits[i]))
		}
	}

	v, _ := new(big.Int).SetString(digits, 16)
	hi := bits.MaxUnsigned()
	if v.Cmp(hi) > 0 {
		return nil, newError(KindOutOfRange, Hex, bits, value,
			"hex value 0x%s exceeds %d-bit maximum 0x%s", strings.ToUpper(v.Text(16)), uint32(bits), strings.ToUpper(hi.Text(16)))
	}
	return v, nil
}

// parseDecimal accepts an optional sign followed by base-10 digits.
func parseDecimal(s string) (*big.Int, bool) {
	return new(big.Int).SetString(s, 10)
}

// stripPrefix removes all whitespace and then a leading "0<marker>" in either
// case. It reports whether a prefix was removed.
func stripPrefix(value string, marker byte) (string, bool) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)

	if len(s) >= 2 && s[0] == '0' && (s[1] == marker || s[1] == marker-'a'+'A') {
		return s[2:], true
	}
	return s, false
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
