package codec

import (
	"bytes"
	"encoding/hex"
	"strings"
)

// CoerceBytes adjusts b to exactly size bytes. Leading zero bytes are
// stripped and the remainder is left-padded with zeros; if the stripped value
// is still longer than size a *SizeError is returned. The result never
// aliases b.
func CoerceBytes(b []byte, size int) ([]byte, error) {
	if len(b) == size {
		return bytes.Clone(b), nil
	}
	stripped := bytes.TrimLeft(b, "\x00")
	if len(stripped) > size {
		return nil, &SizeError{Size: size, Unit: "bytes", Value: "0x" + hex.EncodeToString(b)}
	}
	out := make([]byte, size)
	copy(out[size-len(stripped):], stripped)
	return out, nil
}

// CoerceHex is the nibble-level counterpart of CoerceBytes: it adjusts a hex
// digit string (no 0x prefix) to exactly digits characters by stripping and
// re-padding leading '0' characters.
func CoerceHex(s string, digits int) (string, error) {
	if len(s) == digits {
		return s, nil
	}
	stripped := strings.TrimLeft(s, "0")
	if len(stripped) > digits {
		return "", &SizeError{Size: digits, Unit: "digits", Value: "0x" + s}
	}
	return strings.Repeat("0", digits-len(stripped)) + stripped, nil
}
