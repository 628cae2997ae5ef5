package codec

import (
	"bytes"
	"encoding/json"
	"math/big"

	"github.com/holiman/uint256"
)

// Kind tags the variant held by an Input.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBytes
	KindString
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	default:
		return "invalid"
	}
}

// Input is a loosely typed value awaiting normalization: a byte sequence, a
// string or an integer. The zero Input is invalid.
type Input struct {
	kind Kind
	b    []byte
	s    string
	n    *big.Int
	raw  any
}

// Bytes wraps a byte sequence. The slice is copied.
func Bytes(b []byte) Input {
	if b == nil {
		b = []byte{}
	}
	return Input{kind: KindBytes, b: bytes.Clone(b), raw: b}
}

// String wraps a string.
func String(s string) Input { return Input{kind: KindString, s: s, raw: s} }

// Int64 wraps a signed machine integer.
func Int64(v int64) Input { return Input{kind: KindInt, n: big.NewInt(v), raw: v} }

// Uint64 wraps an unsigned machine integer.
func Uint64(v uint64) Input { return Input{kind: KindInt, n: new(big.Int).SetUint64(v), raw: v} }

// BigInt wraps an arbitrary-precision integer. A nil pointer yields an
// invalid Input.
func BigInt(v *big.Int) Input {
	if v == nil {
		return Input{raw: v}
	}
	return Input{kind: KindInt, n: new(big.Int).Set(v), raw: v}
}

// Uint256 wraps a 256-bit unsigned word.
func Uint256(v *uint256.Int) Input {
	if v == nil {
		return Input{raw: v}
	}
	return Input{kind: KindInt, n: v.ToBig(), raw: v}
}

// From classifies an untyped value. Values of any other kind, including
// floats and nil, produce an invalid Input that every codec rejects with a
// *ValueKindError.
func From(v any) Input {
	switch x := v.(type) {
	case Input:
		return x
	case []byte:
		return Bytes(x)
	case string:
		return String(x)
	case int:
		return Int64(int64(x))
	case int8:
		return Int64(int64(x))
	case int16:
		return Int64(int64(x))
	case int32:
		return Int64(int64(x))
	case int64:
		return Int64(x)
	case uint:
		return Uint64(uint64(x))
	case uint8:
		return Uint64(uint64(x))
	case uint16:
		return Uint64(uint64(x))
	case uint32:
		return Uint64(uint64(x))
	case uint64:
		return Uint64(x)
	case *big.Int:
		return BigInt(x)
	case *uint256.Int:
		return Uint256(x)
	case json.Number:
		// Only integral numbers; "1.5" and "1e3" stay invalid.
		if n, ok := new(big.Int).SetString(x.String(), 10); ok {
			return Input{kind: KindInt, n: n, raw: x}
		}
	}
	return Input{raw: v}
}

// Kind returns the tag of the held value.
func (in Input) Kind() Kind { return in.kind }

// Value returns the value the Input was built from.
func (in Input) Value() any { return in.raw }

func (in Input) kindError() error { return &ValueKindError{Value: in.raw} }
