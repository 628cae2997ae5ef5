package types

import (
	"fmt"

	"github.com/eth2030/hextypes/codec"
)

// Variant is a named, fixed-width specialization of a Shape. Variants are
// immutable once built and safe to share between goroutines.
type Variant struct {
	name     string
	shape    Shape
	size     int // bytes; zero when unbound
	bound    bool
	checksum bool
	bounds   codec.Bounds
	schema   Schema
}

// MakeVariant builds the variant of the given shape and width. Width is in
// bytes for ShapeBytes and ShapeString and in bits for ShapeInt, where it
// must be a multiple of 8 no larger than 256. Signed only applies to
// ShapeInt.
func MakeVariant(width int, shape Shape, signed bool) (*Variant, error) {
	switch shape {
	case ShapeBytes, ShapeString:
		if width <= 0 {
			return nil, fmt.Errorf("%w: %d bytes", ErrInvalidWidth, width)
		}
		digits := width * 2
		v := &Variant{
			shape: shape,
			size:  width,
			bound: true,
			schema: Schema{
				Type:     "string",
				Format:   "binary",
				Pattern:  hashPattern(digits),
				Examples: hashExamples(digits),
			},
		}
		if shape == ShapeBytes {
			v.name = fmt.Sprintf("Bytes%d", width)
			v.schema.MinLength, v.schema.MaxLength = width, width
		} else {
			v.name = fmt.Sprintf("String%d", width)
			v.schema.MinLength, v.schema.MaxLength = digits+2, digits+2
		}
		return v, nil

	case ShapeInt:
		if width%8 != 0 {
			return nil, fmt.Errorf("%w: %d bits", ErrInvalidWidth, width)
		}
		b, err := codec.NewBounds(width, signed)
		if err != nil {
			return nil, fmt.Errorf("%w: %d bits", ErrInvalidWidth, width)
		}
		name := fmt.Sprintf("Int%d", width)
		if !signed {
			name = "U" + name
		}
		return &Variant{
			name:   name,
			shape:  ShapeInt,
			size:   width / 8,
			bound:  true,
			bounds: b,
			schema: Schema{Type: "integer", Minimum: b.Min, Maximum: b.Max},
		}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownShape, shape)
}

// MustMakeVariant is like MakeVariant but panics on error. It is intended
// for package-level catalog construction.
func MustMakeVariant(width int, shape Shape, signed bool) *Variant {
	v, err := MakeVariant(width, shape, signed)
	if err != nil {
		panic(err)
	}
	return v
}

// newUnbound builds a hex variant without a size phase.
func newUnbound(name string, shape Shape) *Variant {
	return &Variant{
		name:  name,
		shape: shape,
		schema: Schema{
			Type:     "string",
			Format:   "binary",
			Pattern:  unboundPattern,
			Examples: unboundExamples,
		},
	}
}

// Name returns the variant's type name, e.g. "Bytes20" or "UInt256".
func (v *Variant) Name() string { return v.name }

// String implements fmt.Stringer.
func (v *Variant) String() string { return v.name }

// Shape returns the variant's shape.
func (v *Variant) Shape() Shape { return v.shape }

// Size returns the width in bytes, or zero for unbound variants.
func (v *Variant) Size() int { return v.size }

// Bits returns the width in bits.
func (v *Variant) Bits() int { return v.size * 8 }

// Bound reports whether values are coerced to a fixed size.
func (v *Variant) Bound() bool { return v.bound }

// Signed reports whether an integer variant admits negative values.
func (v *Variant) Signed() bool { return v.bounds.Signed }

// Checksum reports whether the variant serializes EIP-55 checksummed text.
func (v *Variant) Checksum() bool { return v.checksum }

// Bounds returns a copy of the integer range of a ShapeInt variant.
func (v *Variant) Bounds() codec.Bounds { return v.bounds.Clone() }

// Schema returns a copy of the variant's documentation metadata.
func (v *Variant) Schema() Schema { return v.schema.clone() }

// Validate classifies value with codec.From and validates it.
func (v *Variant) Validate(value any) (Value, error) {
	return v.ValidateInput(codec.From(value))
}

// ValidateInput normalizes in and checks it against the variant's size or
// range. The result is either a fully canonical value or an error; there is
// no partial success.
func (v *Variant) ValidateInput(in codec.Input) (Value, error) {
	var (
		val Value
		err error
	)
	switch v.shape {
	case ShapeBytes:
		val, err = v.ValidateBytes(in)
	case ShapeString:
		val, err = v.ValidateString(in)
	case ShapeInt:
		val, err = v.ValidateInt(in)
	default:
		err = fmt.Errorf("%s: %w", v.name, ErrUnknownShape)
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// ValidateBytes decodes in to raw bytes and coerces them to the variant's
// size.
func (v *Variant) ValidateBytes(in codec.Input) (CanonicalBytes, error) {
	if v.shape != ShapeBytes {
		return CanonicalBytes{}, v.shapeError(ShapeBytes)
	}
	raw, err := codec.DecodeHex(in)
	if err != nil {
		return CanonicalBytes{}, v.wrap(err)
	}
	if v.bound {
		if raw, err = codec.CoerceBytes(raw, v.size); err != nil {
			return CanonicalBytes{}, v.wrap(err)
		}
	}
	return CanonicalBytes{variant: v, data: raw}, nil
}

// ValidateString normalizes in to 0x-prefixed lowercase hex and coerces the
// digits to twice the variant's size.
func (v *Variant) ValidateString(in codec.Input) (CanonicalHexString, error) {
	if v.shape != ShapeString {
		return CanonicalHexString{}, v.shapeError(ShapeString)
	}
	s, err := codec.NormalizeHex(in)
	if err != nil {
		return CanonicalHexString{}, v.wrap(err)
	}
	digits := s[2:]
	if v.bound {
		if digits, err = codec.CoerceHex(digits, v.size*2); err != nil {
			return CanonicalHexString{}, v.wrap(err)
		}
	}
	if v.checksum {
		if err := verifyChecksum(in, digits); err != nil {
			return CanonicalHexString{}, v.wrap(err)
		}
	}
	return CanonicalHexString{variant: v, value: "0x" + digits}, nil
}

// ValidateInt casts in to an integer and checks it against the variant's
// bounds. Out-of-range values are never coerced.
func (v *Variant) ValidateInt(in codec.Input) (BoundedInteger, error) {
	if v.shape != ShapeInt {
		return BoundedInteger{}, v.shapeError(ShapeInt)
	}
	n, err := codec.ParseInt(in)
	if err != nil {
		return BoundedInteger{}, v.wrap(err)
	}
	if _, err := v.bounds.Check(n); err != nil {
		return BoundedInteger{}, v.wrap(err)
	}
	return BoundedInteger{variant: v, value: n}, nil
}

func (v *Variant) wrap(err error) error {
	return fmt.Errorf("%s: %w", v.name, err)
}

func (v *Variant) shapeError(want Shape) error {
	return fmt.Errorf("%s: %w: variant is %s, not %s", v.name, ErrShapeMismatch, v.shape, want)
}
