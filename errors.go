package bitconv

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed conversion.
type ErrorKind uint8

const (
	// KindEmptyInput means no digits were supplied.
	KindEmptyInput ErrorKind = iota + 1
	// KindInvalidFormat means the input contains characters outside the
	// alphabet of the chosen notation.
	KindInvalidFormat
	// KindOutOfRange means the value does not fit in the requested bit width
	// for the requested notation.
	KindOutOfRange
	// KindInvalidBitWidth means the bit width is zero or larger than MaxBitWidth.
	KindInvalidBitWidth
	// KindInvalidNotation means the input notation is unknown.
	KindInvalidNotation
)

var (
	// ErrEmptyInput is matched by errors.Is for KindEmptyInput failures.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidFormat is matched by errors.Is for KindInvalidFormat failures.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrOutOfRange is matched by errors.Is for KindOutOfRange failures.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidBitWidth is matched by errors.Is for KindInvalidBitWidth failures.
	ErrInvalidBitWidth = errors.New("invalid bit width")
	// ErrInvalidNotation is matched by errors.Is for KindInvalidNotation failures.
	ErrInvalidNotation = errors.New("invalid notation")
)

var kindNames = map[ErrorKind]string{
	KindEmptyInput:      "EmptyInput",
	KindInvalidFormat:   "InvalidFormat",
	KindOutOfRange:      "OutOfRange",
	KindInvalidBitWidth: "InvalidBitWidth",
	KindInvalidNotation: "InvalidNotation",
}

// String returns the stable name of the kind, e.g. "OutOfRange".
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k ErrorKind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown error kind: %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ErrorKind) UnmarshalText(text []byte) error {
	kind, ok := ParseErrorKind(string(text))
	if !ok {
		return fmt.Errorf("unknown error kind: %q", text)
	}
	*k = kind
	return nil
}

// ParseErrorKind resolves a kind from its stable name.
func ParseErrorKind(name string) (ErrorKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindEmptyInput:
		return ErrEmptyInput
	case KindInvalidFormat:
		return ErrInvalidFormat
	case KindOutOfRange:
		return ErrOutOfRange
	case KindInvalidBitWidth:
		return ErrInvalidBitWidth
	case KindInvalidNotation:
		return ErrInvalidNotation
	default:
		return nil
	}
}

// ConversionError describes why a value could not be encoded.
//
// The sentinel for its Kind can be matched via errors.Is, e.g.
// errors.Is(err, bitconv.ErrOutOfRange).
type ConversionError struct {
	Kind     ErrorKind
	Notation Notation
	Bits     BitWidth
	Input    string
	Message  string
}

func (e *ConversionError) Error() string {
	return e.Message
}

func (e *ConversionError) Unwrap() error { return e.Kind.sentinel() }

func newError(kind ErrorKind, n Notation, bits BitWidth, input string, format string, args ...any) *ConversionError {
	return &ConversionError{
		Kind:     kind,
		Notation: n,
		Bits:     bits,
		Input:    input,
		Message:  fmt.Sprintf(format, args...),
	}
}

// AsConversionError extracts a *ConversionError from err.
func AsConversionError(err error) (*ConversionError, bool) {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
