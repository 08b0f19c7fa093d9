package bitconv

import (
	"fmt"
	"strings"
)

// Notation is the textual form an input value is written in.
type Notation uint8

const (
	// Signed is a two's-complement signed decimal, e.g. "-128".
	Signed Notation = iota + 1
	// Unsigned is a non-negative decimal, e.g. "255".
	Unsigned
	// Binary is a base-2 string with optional "0b" prefix, e.g. "0b1010".
	Binary
	// Hex is a base-16 string with optional "0x" prefix, e.g. "0x7F".
	Hex
)

// Notations lists every notation in display order.
var Notations = []Notation{Signed, Unsigned, Binary, Hex}

var notationNames = [...]string{
	Signed:   "signed",
	Unsigned: "unsigned",
	Binary:   "binary",
	Hex:      "hex",
}

// Valid reports whether n is a known notation.
func (n Notation) Valid() bool {
	return n >= Signed && n <= Hex
}

func (n Notation) String() string {
	if n.Valid() {
		return notationNames[n]
	}
	return fmt.Sprintf("Notation(%d)", uint8(n))
}

// ParseNotation resolves a notation from its name. Matching is case-insensitive
// and accepts "hexadecimal" as an alias for "hex".
func ParseNotation(s string) (Notation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "hexadecimal" {
		return Hex, nil
	}
	for _, n := range Notations {
		if notationNames[n] == name {
			return n, nil
		}
	}
	return 0, newError(KindInvalidNotation, 0, 0, s, "invalid notation %q: expected one of signed, unsigned, binary, hex", s)
}

// MarshalText implements encoding.TextMarshaler.
func (n Notation) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, newError(KindInvalidNotation, n, 0, "", "invalid notation %d", uint8(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Notation) UnmarshalText(text []byte) error {
	v, err := ParseNotation(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
