package types

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/eth2030/hextypes/codec"
)

// Value is a validated instance of a variant.
type Value interface {
	// Variant returns the variant that validated the value.
	Variant() *Variant
	// Serialize returns the canonical wire form.
	Serialize() string
	fmt.Stringer
}

// CanonicalBytes is a bytes-backed value of exactly its variant's size.
type CanonicalBytes struct {
	variant *Variant
	data    []byte
}

// BytesFromHex validates a hex string, with or without 0x prefix, through
// the bytes-backed variant v.
func BytesFromHex(v *Variant, s string) (CanonicalBytes, error) {
	return v.ValidateBytes(codec.String(s))
}

func (b CanonicalBytes) Variant() *Variant { return b.variant }

// Bytes returns a copy of the underlying bytes.
func (b CanonicalBytes) Bytes() []byte { return bytes.Clone(b.data) }

// Len returns the number of bytes held.
func (b CanonicalBytes) Len() int { return len(b.data) }

// Hex returns the 0x-prefixed lowercase hex form.
func (b CanonicalBytes) Hex() string { return hexutil.Encode(b.data) }

// Serialize returns lowercase hex without the 0x prefix.
func (b CanonicalBytes) Serialize() string { return hex.EncodeToString(b.data) }

func (b CanonicalBytes) String() string { return b.Hex() }

// Equal reports whether b and o hold the same bytes under the same variant.
func (b CanonicalBytes) Equal(o CanonicalBytes) bool {
	return b.variant == o.variant && bytes.Equal(b.data, o.data)
}

// MarshalText implements encoding.TextMarshaler using Serialize.
func (b CanonicalBytes) MarshalText() ([]byte, error) {
	return []byte(b.Serialize()), nil
}

// CanonicalHexString is a string-backed value: "0x" followed by lowercase
// hex digits, exactly twice its variant's size when bound.
type CanonicalHexString struct {
	variant *Variant
	value   string
}

func (s CanonicalHexString) Variant() *Variant { return s.variant }

// Serialize returns the 0x-prefixed form, EIP-55 checksummed for address
// variants.
func (s CanonicalHexString) Serialize() string {
	if s.variant != nil && s.variant.checksum {
		return ChecksumHex(s.value)
	}
	return s.value
}

// String returns the lowercase canonical form.
func (s CanonicalHexString) String() string { return s.value }

// Bytes decodes the digits.
func (s CanonicalHexString) Bytes() []byte {
	if s.value == "" {
		return nil
	}
	b, _ := hexutil.Decode(s.value)
	return b
}

// Big interprets the digits as a big-endian unsigned integer.
func (s CanonicalHexString) Big() *big.Int {
	return new(big.Int).SetBytes(s.Bytes())
}

// MarshalText implements encoding.TextMarshaler using Serialize.
func (s CanonicalHexString) MarshalText() ([]byte, error) {
	return []byte(s.Serialize()), nil
}

// BoundedInteger is an integer-backed value within its variant's bounds.
type BoundedInteger struct {
	variant *Variant
	value   *big.Int
}

func (i BoundedInteger) Variant() *Variant { return i.variant }

// Big returns a copy of the integer.
func (i BoundedInteger) Big() *big.Int {
	if i.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i.value)
}

// Int64 returns the integer and whether it fits in an int64.
func (i BoundedInteger) Int64() (int64, bool) {
	n := i.Big()
	return n.Int64(), n.IsInt64()
}

// Uint256 returns the integer as a 256-bit word, two's complement for
// negative values.
func (i BoundedInteger) Uint256() *uint256.Int {
	u, _ := uint256.FromBig(i.Big())
	return u
}

// Serialize returns the plain decimal form.
func (i BoundedInteger) Serialize() string { return i.Big().String() }

func (i BoundedInteger) String() string { return i.Serialize() }

// MarshalText implements encoding.TextMarshaler using Serialize.
func (i BoundedInteger) MarshalText() ([]byte, error) {
	return []byte(i.Serialize()), nil
}

// MarshalJSON emits the integer as a bare JSON number.
func (i BoundedInteger) MarshalJSON() ([]byte, error) {
	return []byte(i.Serialize()), nil
}
