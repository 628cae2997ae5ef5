// Package types defines the fixed-size, hex-representable scalar types used
// to model Ethereum primitives: byte-backed and string-backed hex containers
// of a declared byte width, and bounded signed or unsigned integers.
//
// Each concrete type is a *Variant produced once by MakeVariant and collected
// into a read-only Catalog. Values are validated through their variant and
// keep a pointer back to it.
package types

import "errors"

const (
	HashLength    = 32
	AddressLength = 20
)

// Shape selects the normalizer and serializer pair of a variant.
type Shape uint8

const (
	// ShapeBytes values are stored as raw bytes and serialized as bare hex.
	ShapeBytes Shape = iota + 1
	// ShapeString values are stored and serialized as 0x-prefixed hex.
	ShapeString
	// ShapeInt values are bounded integers serialized in decimal.
	ShapeInt
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case ShapeBytes:
		return "bytes"
	case ShapeString:
		return "string"
	case ShapeInt:
		return "int"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownShape is returned by MakeVariant for an unrecognised Shape.
	ErrUnknownShape = errors.New("types: unknown shape")

	// ErrInvalidWidth is returned by MakeVariant for non-positive byte widths
	// and integer widths that are not a multiple of 8 in 8..256.
	ErrInvalidWidth = errors.New("types: invalid width")

	// ErrShapeMismatch is returned when a value is validated or serialized
	// through a variant of another shape.
	ErrShapeMismatch = errors.New("types: shape mismatch")

	// ErrVariantMismatch is returned when serializing a value through a
	// variant other than the one that validated it.
	ErrVariantMismatch = errors.New("types: variant mismatch")

	// ErrUnknownVariant is returned by catalog lookups.
	ErrUnknownVariant = errors.New("types: unknown variant")

	// ErrDuplicateVariant is returned when two catalog entries share a name.
	ErrDuplicateVariant = errors.New("types: duplicate variant")

	// ErrChecksum is returned for mixed-case addresses with a bad EIP-55 checksum.
	ErrChecksum = errors.New("types: invalid address checksum")
)
