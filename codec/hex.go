package codec

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Has0xPrefix reports whether s starts with "0x" or "0X".
func Has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// NormalizeHex converts in to the canonical unconstrained form: "0x"
// followed by an even number of lowercase hex digits. Bytes are encoded
// directly, strings are validated and lower-cased (the prefix is optional on
// input), and integers use their minimal big-endian encoding with zero
// encoded as "0x00".
func NormalizeHex(in Input) (string, error) {
	switch in.kind {
	case KindBytes:
		return hexutil.Encode(in.b), nil
	case KindString:
		digits, err := hexDigits(in.s)
		if err != nil {
			return "", err
		}
		return "0x" + digits, nil
	case KindInt:
		b, err := intBytes(in.n)
		if err != nil {
			return "", err
		}
		return hexutil.Encode(b), nil
	}
	return "", in.kindError()
}

// DecodeHex converts in to the raw bytes it denotes, using the same rules as
// NormalizeHex.
func DecodeHex(in Input) ([]byte, error) {
	switch in.kind {
	case KindBytes:
		return bytes.Clone(in.b), nil
	case KindInt:
		return intBytes(in.n)
	}
	s, err := NormalizeHex(in)
	if err != nil {
		return nil, err
	}
	return hexutil.Decode(s)
}

// ParseInt converts in to an integer. Strings may be decimal (optionally
// signed) or 0x-prefixed hex; byte sequences are read as big-endian
// unsigned integers.
func ParseInt(in Input) (*big.Int, error) {
	switch in.kind {
	case KindInt:
		return new(big.Int).Set(in.n), nil
	case KindBytes:
		return new(big.Int).SetBytes(in.b), nil
	case KindString:
		s := in.s
		if Has0xPrefix(s) {
			digits := s[2:]
			if digits == "" {
				return nil, &HexFormatError{Input: s, Reason: "no digits"}
			}
			if i := invalidHexChar(digits); i >= 0 {
				return nil, &HexFormatError{Input: s, Reason: fmt.Sprintf("invalid character %q at position %d", digits[i], i+2)}
			}
			n, _ := new(big.Int).SetString(digits, 16)
			return n, nil
		}
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, &HexFormatError{Input: s, Reason: "not a decimal or 0x-prefixed integer"}
		}
		return n, nil
	}
	return nil, in.kindError()
}

// hexDigits validates s and returns its lowercase digits without prefix.
func hexDigits(s string) (string, error) {
	digits := s
	if Has0xPrefix(digits) {
		digits = digits[2:]
	}
	if len(digits)%2 != 0 {
		return "", &HexFormatError{Input: s, Reason: "odd number of digits"}
	}
	if i := invalidHexChar(digits); i >= 0 {
		return "", &HexFormatError{Input: s, Reason: fmt.Sprintf("invalid character %q at position %d", digits[i], i+len(s)-len(digits))}
	}
	return strings.ToLower(digits), nil
}

func invalidHexChar(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return i
		}
	}
	return -1
}

func intBytes(n *big.Int) ([]byte, error) {
	switch n.Sign() {
	case -1:
		return nil, &RangeError{Value: new(big.Int).Set(n)}
	case 0:
		return []byte{0}, nil
	}
	return n.Bytes(), nil
}
