package codec

import (
	"fmt"
	"math/big"
)

// MaxBits is the widest integer any codec accepts.
const MaxBits = 256

var bigOne = big.NewInt(1)

// Bounds is the inclusive range of a Bits-wide integer.
type Bounds struct {
	Bits   int
	Signed bool
	Min    *big.Int
	Max    *big.Int
}

// NewBounds computes the range of a bits-wide integer: [-2^(bits-1),
// 2^(bits-1)-1] when signed, [0, 2^bits-1] otherwise.
func NewBounds(bits int, signed bool) (Bounds, error) {
	if bits <= 0 || bits > MaxBits {
		return Bounds{}, fmt.Errorf("%w: %d bits", ErrWidth, bits)
	}
	b := Bounds{Bits: bits, Signed: signed}
	if signed {
		half := new(big.Int).Lsh(bigOne, uint(bits-1))
		b.Min = new(big.Int).Neg(half)
		b.Max = half.Sub(half, bigOne)
	} else {
		b.Min = new(big.Int)
		b.Max = new(big.Int).Lsh(bigOne, uint(bits))
		b.Max.Sub(b.Max, bigOne)
	}
	return b, nil
}

// Clone returns a copy of b that shares no big.Int with it.
func (b Bounds) Clone() Bounds {
	if b.Min != nil {
		b.Min = new(big.Int).Set(b.Min)
	}
	if b.Max != nil {
		b.Max = new(big.Int).Set(b.Max)
	}
	return b
}

// Contains reports whether v lies within the bounds.
func (b Bounds) Contains(v *big.Int) bool {
	return v.Cmp(b.Min) >= 0 && v.Cmp(b.Max) <= 0
}

// Check returns v unchanged if it is within bounds and a *RangeError
// otherwise. Integers are never truncated or sign-adjusted.
func (b Bounds) Check(v *big.Int) (*big.Int, error) {
	if !b.Contains(v) {
		return nil, &RangeError{Value: new(big.Int).Set(v), Bits: b.Bits, Signed: b.Signed}
	}
	return v, nil
}

// ValidateIntSize checks v against the bounds of a bits-wide integer.
func ValidateIntSize(v *big.Int, bits int, signed bool) (*big.Int, error) {
	b, err := NewBounds(bits, signed)
	if err != nil {
		return nil, err
	}
	return b.Check(v)
}
