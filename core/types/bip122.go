package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eth2030/hextypes/codec"
)

// Bip122Prefix is the scheme of a BIP-122 blockchain URI.
const Bip122Prefix = "blockchain://"

// Bip122Kind is the resource a BIP-122 URI points at.
type Bip122Kind string

const (
	Bip122Block       Bip122Kind = "block"
	Bip122Transaction Bip122Kind = "transaction"
)

// ErrBip122Format is returned for strings that are not
// blockchain://<genesis>/(block|transaction)/<hash>.
var ErrBip122Format = errors.New("types: invalid BIP-122 URI")

// Bip122URI identifies a block or transaction on the chain whose genesis
// block hash is Genesis.
type Bip122URI struct {
	Genesis CanonicalHexString
	Kind    Bip122Kind
	Hash    CanonicalHexString
}

// ParseBip122URI validates s. Both hashes go through String32, so they may
// carry a 0x prefix, mixed case or fewer than 64 digits; the result holds
// them in canonical form.
func ParseBip122URI(s string) (Bip122URI, error) {
	rest, ok := strings.CutPrefix(s, Bip122Prefix)
	if !ok {
		return Bip122URI{}, fmt.Errorf("%w: %q: missing %s prefix", ErrBip122Format, s, Bip122Prefix)
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 3 {
		return Bip122URI{}, fmt.Errorf("%w: %q: want 3 path segments, got %d", ErrBip122Format, s, len(parts))
	}
	kind := Bip122Kind(parts[1])
	if kind != Bip122Block && kind != Bip122Transaction {
		return Bip122URI{}, fmt.Errorf("%w: %q: unknown resource %q", ErrBip122Format, s, parts[1])
	}
	genesis, err := String32.ValidateString(codec.String(parts[0]))
	if err != nil {
		return Bip122URI{}, fmt.Errorf("%w: genesis hash: %w", ErrBip122Format, err)
	}
	hash, err := String32.ValidateString(codec.String(parts[2]))
	if err != nil {
		return Bip122URI{}, fmt.Errorf("%w: %s hash: %w", ErrBip122Format, kind, err)
	}
	return Bip122URI{Genesis: genesis, Kind: kind, Hash: hash}, nil
}

// String returns the canonical URI, hashes as bare lowercase hex.
func (u Bip122URI) String() string {
	return Bip122Prefix + strings.TrimPrefix(u.Genesis.String(), "0x") + "/" +
		string(u.Kind) + "/" + strings.TrimPrefix(u.Hash.String(), "0x")
}

// MarshalText implements encoding.TextMarshaler.
func (u Bip122URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Bip122URI) UnmarshalText(text []byte) error {
	v, err := ParseBip122URI(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Bip122Schema describes the canonical URI form.
func Bip122Schema() Schema {
	return Schema{
		Type:    "string",
		Format:  "uri",
		Pattern: "^" + Bip122Prefix + "[0-9a-f]{64}/(block|transaction)/[0-9a-f]{64}$",
		Examples: []string{
			Bip122Prefix + strings.Repeat("0", 64) + "/block/" + strings.Repeat("1e", 32),
		},
	}
}
