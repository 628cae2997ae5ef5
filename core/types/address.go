package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/eth2030/hextypes/codec"
)

// newAddress builds the 20-byte string-backed variant whose serialized form
// carries an EIP-55 checksum.
func newAddress() *Variant {
	v := MustMakeVariant(AddressLength, ShapeString, false)
	v.name = "Address"
	v.checksum = true
	return v
}

// ChecksumHex returns the EIP-55 mixed-case form of a 0x-prefixed hex
// address. Letters are upper-cased where the matching nibble of the
// Keccak-256 digest of the lowercase digits is 8 or more.
func ChecksumHex(s string) string {
	digits := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	d := sha3.NewLegacyKeccak256()
	d.Write([]byte(digits))
	sum := hex.EncodeToString(d.Sum(nil))

	out := []byte(digits)
	for i, c := range out {
		if c >= 'a' && c <= 'f' && sum[i] >= '8' {
			out[i] = c - 'a' + 'A'
		}
	}
	return "0x" + string(out)
}

// IsChecksumHex reports whether s is a correctly checksummed address.
func IsChecksumHex(s string) bool {
	return codec.Has0xPrefix(s) && ChecksumHex(s) == "0x"+s[2:]
}

// verifyChecksum rejects mixed-case string input whose case does not match
// the EIP-55 checksum of digits. All-lowercase and all-uppercase input
// carries no checksum and is accepted.
func verifyChecksum(in codec.Input, digits string) error {
	if in.Kind() != codec.KindString {
		return nil
	}
	raw, _ := in.Value().(string)
	if codec.Has0xPrefix(raw) {
		raw = raw[2:]
	}
	if raw == strings.ToLower(raw) || raw == strings.ToUpper(raw) {
		return nil
	}
	// Leading zeros carry no case, so coercion does not disturb the letters.
	sized, err := codec.CoerceHex(raw, len(digits))
	if err != nil {
		return err
	}
	if want := ChecksumHex(digits); want[2:] != sized {
		return fmt.Errorf("%w: %w", ErrChecksum, &codec.HexFormatError{
			Input:  "0x" + sized,
			Reason: "checksum mismatch, want " + want,
		})
	}
	return nil
}
