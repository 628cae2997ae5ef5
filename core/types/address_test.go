package types

import (
	"errors"
	"strings"
	"testing"

	gethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/eth2030/hextypes/codec"
)

// EIP-55 reference vectors.
var checksumVectors = []string{
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
}

func TestChecksumHex(t *testing.T) {
	for _, want := range checksumVectors {
		if got := ChecksumHex(strings.ToLower(want)); got != want {
			t.Errorf("ChecksumHex = %s, want %s", got, want)
		}
		if !IsChecksumHex(want) {
			t.Errorf("IsChecksumHex(%s) = false", want)
		}
	}
}

func TestChecksumMatchesGeth(t *testing.T) {
	for _, in := range []string{
		"0xcafac3dd18ac6c6e92c921884f9e4176737c052c",
		"0x0000000000000000000000000000000000000001",
		"0xffffffffffffffffffffffffffffffffffffffff",
	} {
		want := gethcommon.HexToAddress(in).Hex()
		if got := ChecksumHex(in); got != want {
			t.Errorf("ChecksumHex(%s) = %s, geth says %s", in, got, want)
		}
	}
}

func TestAddressSerializesChecksum(t *testing.T) {
	for _, vec := range checksumVectors {
		for _, in := range []string{vec, strings.ToLower(vec), "0x" + strings.ToUpper(vec[2:])} {
			v, err := Address.Validate(in)
			if err != nil {
				t.Fatalf("Validate(%s): %v", in, err)
			}
			if v.String() != strings.ToLower(vec) {
				t.Errorf("String = %s, want lowercase", v.String())
			}
			if v.Serialize() != vec {
				t.Errorf("Serialize = %s, want %s", v.Serialize(), vec)
			}
		}
	}
}

func TestAddressRejectsBadChecksum(t *testing.T) {
	bad := "0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	_, err := Address.Validate(bad)
	if !errors.Is(err, ErrChecksum) {
		t.Fatalf("got %v, want ErrChecksum", err)
	}
	if !errors.Is(err, codec.ErrHexFormat) {
		t.Fatalf("got %v, want ErrHexFormat", err)
	}
}

func TestAddressStripsLeadingZeros(t *testing.T) {
	in := "0x000000000000000000000000" + checksumVectors[0][2:]
	v, err := Address.Validate(in)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if v.Serialize() != checksumVectors[0] {
		t.Fatalf("got %s, want %s", v.Serialize(), checksumVectors[0])
	}
}

func TestAddressFromBytes(t *testing.T) {
	v, err := Address.Validate([]byte{0x01})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if want := "0x" + strings.Repeat("0", 39) + "1"; v.Serialize() != want {
		t.Fatalf("got %s, want %s", v.Serialize(), want)
	}
}
