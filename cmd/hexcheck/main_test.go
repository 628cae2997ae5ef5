package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eth2030/hextypes/core/types"
	"github.com/eth2030/hextypes/log"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestRun_Version(t *testing.T) {
	out, _, code := runCLI(t, "", "-version")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.HasPrefix(out, "hexcheck "+version) {
		t.Fatalf("got %q", out)
	}
}

func TestRun_List(t *testing.T) {
	out, _, code := runCLI(t, "", "-list")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if want := len(types.Default().Names()); len(lines) != want {
		t.Fatalf("listed %d names, want %d", len(lines), want)
	}
	for _, name := range []string{"Address", "Bytes32", "String20", "UInt256", "Int8", "HashBytes32"} {
		if !strings.Contains(out, name+"\n") {
			t.Errorf("missing %s", name)
		}
	}
}

func TestRun_Values(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"0xAB"}, "0xab\n"},
		{[]string{"-type", "String4", "0x12"}, "0x00000012\n"},
		{[]string{"-type", "Bytes4", "0x1234"}, "00001234\n"},
		{[]string{"-type", "bytes4", "1234"}, "00001234\n"},
		{[]string{"-type", "UInt8", "-kind", "int", "255"}, "255\n"},
		{[]string{"-type", "Int8", "-kind", "int", "--", "-128"}, "-128\n"},
		{[]string{"-type", "uint256", "-kind", "int", "0xff"}, "255\n"},
		{[]string{"-type", "HexBytes", "-kind", "bytes", "ab"}, "6162\n"},
		{[]string{"0x01", "0x0203"}, "0x01\n0x0203\n"},
	}
	for _, tt := range tests {
		out, stderr, code := runCLI(t, "", tt.args...)
		if code != 0 {
			t.Errorf("%v: exit code = %d, stderr %q", tt.args, code, stderr)
			continue
		}
		if out != tt.want {
			t.Errorf("%v: got %q, want %q", tt.args, out, tt.want)
		}
	}
}

func TestRun_Address(t *testing.T) {
	lower := "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	out, _, code := runCLI(t, "", "-type", "address", lower)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if want := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed\n"; out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRun_Rejected(t *testing.T) {
	tests := [][]string{
		{"-type", "UInt8", "-kind", "int", "256"},
		{"-type", "Bytes4", "0x0102030405"},
		{"0xzz"},
		{"0x123"},
	}
	for _, args := range tests {
		out, _, code := runCLI(t, "", args...)
		if code != 1 {
			t.Errorf("%v: exit code = %d, want 1", args, code)
		}
		if !strings.HasPrefix(out, "! ") {
			t.Errorf("%v: got %q, want rejection line", args, out)
		}
	}
}

func TestRun_Stdin(t *testing.T) {
	out, _, code := runCLI(t, "0x01\n\n  0xzz  \n0xFF\n", "-type", "String1")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), out)
	}
	if lines[0] != "0x01" || lines[2] != "0xff" {
		t.Fatalf("got %q", lines)
	}
	if !strings.HasPrefix(lines[1], "! 0xzz:") {
		t.Fatalf("got %q", lines[1])
	}
}

func TestRun_JSON(t *testing.T) {
	out, _, code := runCLI(t, "", "-json", "-type", "Bytes2", "0x01", "0x010203")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	var ok, bad result
	if err := json.Unmarshal([]byte(lines[0]), &ok); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &bad); err != nil {
		t.Fatal(err)
	}
	if ok.Variant != "Bytes2" || ok.Value != "0001" || ok.Error != "" {
		t.Errorf("accepted = %+v", ok)
	}
	if bad.Input != "0x010203" || bad.Value != "" || bad.Error == "" {
		t.Errorf("rejected = %+v", bad)
	}
}

func TestRun_Schema(t *testing.T) {
	out, _, code := runCLI(t, "", "-schema", "-type", "Bytes20")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	var s map[string]any
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("decode schema: %v", err)
	}
	if s["pattern"] != "^0x[a-fA-F0-9]{40}$" {
		t.Errorf("pattern = %v", s["pattern"])
	}
	if s["maxLength"] != float64(20) {
		t.Errorf("maxLength = %v, want 20", s["maxLength"])
	}
}

func TestRun_Metrics(t *testing.T) {
	out, _, _ := runCLI(t, "", "-metrics", "-type", "UInt8", "-kind", "int", "1", "300")
	for _, want := range []string{
		"hexcheck_validate_total 2\n",
		"hexcheck_validate_accepted 1\n",
		"hexcheck_validate_rejected 1\n",
		"hexcheck_reject_range 1\n",
		"hexcheck_variant_UInt8_accepted 1\n",
		"# TYPE hexcheck_catalog_variants gauge\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := [][]string{
		{"-nope"},
		{"-kind", "float", "1"},
		{"-type", "Bytes33", "0x01"},
		{"-type", "uint7", "1"},
	}
	for _, args := range tests {
		if _, _, code := runCLI(t, "", args...); code != 2 {
			t.Errorf("%v: exit code = %d, want 2", args, code)
		}
	}
}

func TestRun_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexcheck.toml")
	data := "[log]\nlevel = \"debug\"\nformat = \"json\"\n\n[variants]\nbytes = [48]\nuint = [512]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	// 512 bits is past the integer limit.
	if _, _, code := runCLI(t, "", "-config", path, "-list"); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	data = "[log]\nlevel = \"debug\"\nformat = \"json\"\n\n[variants]\nbytes = [48]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	out, stderr, code := runCLI(t, "", "-config", path, "-type", "Bytes48", "0x01")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	if want := strings.Repeat("00", 47) + "01\n"; out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
	if !strings.Contains(stderr, `"module":"catalog"`) {
		t.Errorf("expected json debug logs on stderr, got %q", stderr)
	}
}

func TestRun_MissingConfig(t *testing.T) {
	_, stderr, code := runCLI(t, "", "-config", filepath.Join(t.TempDir(), "none.toml"), "0x01")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, ErrConfigFileNotFound.Error()) {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestRun_Verbosity(t *testing.T) {
	_, stderr, _ := runCLI(t, "", "-verbosity", "0", "0xzz")
	if stderr != "" {
		t.Fatalf("expected no warnings at verbosity 0, got %q", stderr)
	}
	_, stderr, _ = runCLI(t, "", "-verbosity", "3", "0xzz")
	if !strings.Contains(stderr, "value rejected") {
		t.Fatalf("expected rejection warning, got %q", stderr)
	}
}

func TestRun_VerbosityUsage(t *testing.T) {
	_, stderr, code := runCLI(t, "", "-h")
	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr, "0-1=error") || strings.Contains(stderr, "silent") {
		t.Fatalf("verbosity usage = %q", stderr)
	}
	// Verbosity 0 still reports errors.
	if got := log.VerbosityToLevel(0); got != slog.LevelError {
		t.Fatalf("VerbosityToLevel(0) = %v, want %v", got, slog.LevelError)
	}
}

func TestRun_Bip122(t *testing.T) {
	genesis := "d4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3"
	uri := "blockchain://0x" + strings.ToUpper(genesis) + "/block/0x01"
	out, stderr, code := runCLI(t, "", "-type", "Bip122Uri", uri)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	if want := "blockchain://" + genesis + "/block/" + strings.Repeat("0", 62) + "01\n"; out != want {
		t.Fatalf("got %q, want %q", out, want)
	}

	out, _, code = runCLI(t, "", "-type", "Bip122Uri", "-metrics", "blockchain://"+genesis+"/receipt/01")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out, "hexcheck_variant_Bip122Uri_rejected 1\n") {
		t.Fatalf("got %q", out)
	}

	out, _, code = runCLI(t, "", "-type", "Bip122Uri", "-schema")
	if code != 0 || !strings.Contains(out, "blockchain://") {
		t.Fatalf("schema: code %d, %q", code, out)
	}
}
