// Package geth provides an adapter layer between hextypes values and
// go-ethereum's common types. This is the only package that imports
// go-ethereum's common package directly.
package geth

import (
	"fmt"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/eth2030/hextypes/codec"
	"github.com/eth2030/hextypes/core/types"
)

// --- Address and Hash conversion ---

// ToGethAddress converts a 20-byte bytes- or string-backed value to a
// go-ethereum Address.
func ToGethAddress(v types.Value) (gethcommon.Address, error) {
	b, err := fixedBytes(v, gethcommon.AddressLength)
	if err != nil {
		return gethcommon.Address{}, err
	}
	return gethcommon.BytesToAddress(b), nil
}

// FromGethAddress converts a go-ethereum Address to a value of the
// checksummed Address variant.
func FromGethAddress(a gethcommon.Address) types.CanonicalHexString {
	v, err := types.Address.ValidateString(codec.Bytes(a[:]))
	if err != nil {
		// A 20-byte input always fits the 20-byte variant.
		panic(err)
	}
	return v
}

// ToGethHash converts a 32-byte bytes- or string-backed value to a
// go-ethereum Hash.
func ToGethHash(v types.Value) (gethcommon.Hash, error) {
	b, err := fixedBytes(v, gethcommon.HashLength)
	if err != nil {
		return gethcommon.Hash{}, err
	}
	return gethcommon.BytesToHash(b), nil
}

// FromGethHash converts a go-ethereum Hash to a Bytes32 value.
func FromGethHash(h gethcommon.Hash) types.CanonicalBytes {
	v, err := types.Bytes32.ValidateBytes(codec.Bytes(h[:]))
	if err != nil {
		panic(err)
	}
	return v
}

// --- Integer conversion ---

// ToUint256 converts an integer value to a 256-bit word, two's complement
// for negative values.
func ToUint256(v types.BoundedInteger) *uint256.Int {
	return v.Uint256()
}

// FromUint256 validates u against the integer variant. The word is read as
// unsigned, so signed variants only accept non-negative values below their
// maximum.
func FromUint256(variant *types.Variant, u *uint256.Int) (types.BoundedInteger, error) {
	return variant.ValidateInt(codec.Uint256(u))
}

func fixedBytes(v types.Value, size int) ([]byte, error) {
	var b []byte
	switch x := v.(type) {
	case types.CanonicalBytes:
		b = x.Bytes()
	case types.CanonicalHexString:
		b = x.Bytes()
	default:
		return nil, fmt.Errorf("geth: %w: %T is not hex-backed", types.ErrShapeMismatch, v)
	}
	if len(b) != size {
		return nil, &codec.SizeError{Size: size, Unit: "bytes", Value: v.String()}
	}
	return b, nil
}
