package codec

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrValueKind is returned when an input is not bytes, a string or an integer.
	ErrValueKind = errors.New("codec: unsupported value kind")

	// ErrHexFormat is returned when a string is not well-formed hex.
	ErrHexFormat = errors.New("codec: invalid hex string")

	// ErrSize is returned when a value cannot be coerced to its declared size
	// without dropping non-zero data.
	ErrSize = errors.New("codec: size mismatch")

	// ErrRange is returned when an integer falls outside its declared bounds.
	ErrRange = errors.New("codec: integer out of range")

	// ErrWidth is returned for integer widths outside 1..MaxBits.
	ErrWidth = errors.New("codec: invalid integer width")
)

// ValueKindError reports an input of a kind no codec accepts.
type ValueKindError struct {
	Value any
}

func (e *ValueKindError) Error() string {
	return fmt.Sprintf("codec: unsupported value kind %T", e.Value)
}

func (e *ValueKindError) Unwrap() error { return ErrValueKind }

// HexFormatError reports a malformed hex string.
type HexFormatError struct {
	Input  string
	Reason string
}

func (e *HexFormatError) Error() string {
	return fmt.Sprintf("codec: invalid hex string %q: %s", e.Input, e.Reason)
}

func (e *HexFormatError) Unwrap() error { return ErrHexFormat }

// SizeError reports a value that does not fit Size units. Unit is "bytes"
// for byte sequences and "digits" for hex strings.
type SizeError struct {
	Size  int
	Unit  string
	Value string
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("codec: value %s does not fit in %d %s", e.Value, e.Size, e.Unit)
}

func (e *SizeError) Unwrap() error { return ErrSize }

// RangeError reports an integer outside the bounds of a Bits-wide integer.
// Bits is zero when the value has no representation at all, e.g. a negative
// integer given to a hex codec.
type RangeError struct {
	Value  *big.Int
	Bits   int
	Signed bool
}

func (e *RangeError) Error() string {
	if e.Bits == 0 {
		return fmt.Sprintf("codec: integer %s has no unsigned hex encoding", e.Value)
	}
	kind := "uint"
	if e.Signed {
		kind = "int"
	}
	return fmt.Sprintf("codec: integer %s out of range for %s%d", e.Value, kind, e.Bits)
}

func (e *RangeError) Unwrap() error { return ErrRange }
