package types

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/eth2030/hextypes/codec"
)

const mainnetGenesis = "d4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3"

func TestParseBip122URI(t *testing.T) {
	block := strings.Repeat("ab", 32)
	tests := []struct {
		in   string
		kind Bip122Kind
		want string
	}{
		{"blockchain://" + mainnetGenesis + "/block/" + block, Bip122Block,
			"blockchain://" + mainnetGenesis + "/block/" + block},
		{"blockchain://0x" + strings.ToUpper(mainnetGenesis) + "/transaction/0X" + block, Bip122Transaction,
			"blockchain://" + mainnetGenesis + "/transaction/" + block},
		{"blockchain://" + mainnetGenesis + "/block/0x01", Bip122Block,
			"blockchain://" + mainnetGenesis + "/block/" + strings.Repeat("0", 62) + "01"},
	}
	for _, tt := range tests {
		u, err := ParseBip122URI(tt.in)
		if err != nil {
			t.Errorf("ParseBip122URI(%q): %v", tt.in, err)
			continue
		}
		if u.Kind != tt.kind {
			t.Errorf("kind = %q, want %q", u.Kind, tt.kind)
		}
		if u.String() != tt.want {
			t.Errorf("got %q, want %q", u.String(), tt.want)
		}
		if u.Genesis.String() != "0x"+mainnetGenesis || u.Genesis.Variant() != String32 {
			t.Errorf("genesis = %s (%v)", u.Genesis, u.Genesis.Variant())
		}
		again, err := ParseBip122URI(u.String())
		if err != nil || again != u {
			t.Errorf("reparse %q: %+v, %v", u.String(), again, err)
		}
	}
}

func TestParseBip122URIErrors(t *testing.T) {
	hash := strings.Repeat("ab", 32)
	tests := []struct {
		in  string
		hex bool
	}{
		{"ethereum://" + mainnetGenesis + "/block/" + hash, false},
		{"blockchain://" + mainnetGenesis + "/block", false},
		{"blockchain://" + mainnetGenesis + "/block/" + hash + "/extra", false},
		{"blockchain://" + mainnetGenesis + "/receipt/" + hash, false},
		{"blockchain://" + mainnetGenesis + "/Block/" + hash, false},
		{"blockchain://zz/block/" + hash, true},
		{"blockchain://" + mainnetGenesis + "/transaction/abc", true},
		{"blockchain://" + mainnetGenesis + "/block/" + hash + "00", false},
	}
	for _, tt := range tests {
		_, err := ParseBip122URI(tt.in)
		if !errors.Is(err, ErrBip122Format) {
			t.Errorf("ParseBip122URI(%q): got %v, want ErrBip122Format", tt.in, err)
		}
		if tt.hex && !errors.Is(err, codec.ErrHexFormat) {
			t.Errorf("ParseBip122URI(%q): got %v, want ErrHexFormat", tt.in, err)
		}
	}
	// Overlong hash is a size error from the 32-byte coercion.
	_, err := ParseBip122URI("blockchain://" + mainnetGenesis + "/block/" + hash + "00")
	if !errors.Is(err, codec.ErrSize) {
		t.Errorf("got %v, want ErrSize", err)
	}
}

func TestBip122URIText(t *testing.T) {
	in := `{"uri":"blockchain://0x` + mainnetGenesis + `/transaction/0x01"}`
	var doc struct {
		URI Bip122URI `json:"uri"`
	}
	if err := json.Unmarshal([]byte(in), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"uri":"blockchain://` + mainnetGenesis + `/transaction/` + strings.Repeat("0", 62) + `01"}`
	if string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
	if err := json.Unmarshal([]byte(`{"uri":"blockchain://x"}`), &doc); !errors.Is(err, ErrBip122Format) {
		t.Fatalf("got %v, want ErrBip122Format", err)
	}
}

func TestBip122SchemaPattern(t *testing.T) {
	s := Bip122Schema()
	re := regexp.MustCompile(s.Pattern)
	for _, ex := range s.Examples {
		if !re.MatchString(ex) {
			t.Errorf("example %q does not match %s", ex, s.Pattern)
		}
		if _, err := ParseBip122URI(ex); err != nil {
			t.Errorf("example %q: %v", ex, err)
		}
	}
}
