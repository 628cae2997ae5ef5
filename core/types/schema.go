package types

import (
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// Schema is the static documentation metadata of a variant. It is computed
// once by MakeVariant and never changes afterwards.
type Schema struct {
	Type      string // "string" or "integer"
	Format    string // "binary" for hex shapes
	Pattern   string
	Examples  []string
	MinLength int // zero when unconstrained
	MaxLength int
	Minimum   *big.Int // integer shapes only
	Maximum   *big.Int
}

const unboundPattern = "^0x([0-9a-f][0-9a-f])*$"

var unboundExamples = []string{
	"0x",
	"0xd4",
	"0xd4e5",
	"0xd4e56740",
	"0xd4e56740f876aef8",
	"0xd4e56740f876aef8c010b86a40d5f567",
	"0xd4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3",
}

// hashPattern is the regex matching a 0x-prefixed string of exactly digits
// hex characters.
func hashPattern(digits int) string {
	return fmt.Sprintf("^0x[a-fA-F0-9]{%d}$", digits)
}

// hashExamples returns four example values of digits hex characters: all
// zero, a leading zero nibble, a trailing zero nibble and no zero nibbles.
func hashExamples(digits int) []string {
	pairs := (digits - 1) / 2
	return []string{
		"0x" + strings.Repeat("0", digits),
		"0x01" + strings.Repeat("1e", pairs),
		"0x" + strings.Repeat("1e", pairs) + "10",
		"0x" + strings.Repeat("1e", digits/2),
	}
}

func (s Schema) clone() Schema {
	s.Examples = slices.Clone(s.Examples)
	if s.Minimum != nil {
		s.Minimum = new(big.Int).Set(s.Minimum)
	}
	if s.Maximum != nil {
		s.Maximum = new(big.Int).Set(s.Maximum)
	}
	return s
}

// JSON renders the schema as a JSON-schema fragment. Integer bounds are
// emitted as bare decimal literals so 256-bit limits survive encoding.
func (s Schema) JSON() map[string]any {
	out := map[string]any{"type": s.Type}
	if s.Format != "" {
		out["format"] = s.Format
	}
	if s.Pattern != "" {
		out["pattern"] = s.Pattern
	}
	if len(s.Examples) > 0 {
		out["examples"] = slices.Clone(s.Examples)
	}
	if s.MaxLength > 0 {
		out["minLength"] = s.MinLength
		out["maxLength"] = s.MaxLength
	}
	if s.Minimum != nil {
		out["minimum"] = RawNumber(s.Minimum.String())
	}
	if s.Maximum != nil {
		out["maximum"] = RawNumber(s.Maximum.String())
	}
	return out
}

// RawNumber is a decimal literal emitted verbatim by encoding/json.
type RawNumber string

// MarshalJSON implements json.Marshaler.
func (n RawNumber) MarshalJSON() ([]byte, error) { return []byte(n), nil }
