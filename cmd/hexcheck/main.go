// Command hexcheck validates values against hextypes variants and prints
// their canonical form.
//
// Usage:
//
//	hexcheck [flags] [value ...]
//
// Values are read one per line from stdin when none are given on the
// command line.
//
// Flags:
//
//	--type       variant, ABI type name or Bip122Uri (default: HexStr)
//	--kind       input kind: string, int or bytes (default: string)
//	--config     path to a TOML-like config file
//	--schema     print the JSON schema of --type and exit
//	--list       list every catalog name and exit
//	--json       emit one JSON object per value
//	--metrics    print validation counters after processing
//	--verbosity  log level 0-5, overrides the config file (default: 3)
//	--version    print version and exit
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eth2030/hextypes/codec"
	"github.com/eth2030/hextypes/core/types"
	"github.com/eth2030/hextypes/log"
	"github.com/eth2030/hextypes/metrics"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=abc1234"
var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

// options holds the parsed command line.
type options struct {
	typeName     string
	kind         string
	configPath   string
	schema       bool
	list         bool
	jsonOut      bool
	metrics      bool
	verbosity    int
	verbositySet bool
	version      bool
	values       []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the actual entry point, returning an exit code: 0 when every value
// is valid, 1 when any value is rejected or setup fails, 2 on usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, exit, code := parseFlags(args, stderr)
	if exit {
		return code
	}
	if opts.version {
		fmt.Fprintf(stdout, "hexcheck %s (commit %s)\n", version, commit)
		return 0
	}

	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	level, _ := log.ParseLevel(cfg.Log.Level)
	if opts.verbositySet {
		level = log.VerbosityToLevel(opts.verbosity)
	}
	root, err := log.NewWithFormat(stderr, level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger := root.Module("hexcheck")

	catalog, err := BuildCatalog(cfg, root.Module("catalog"))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger.Debug("catalog ready", "variants", catalog.Len(), "config", cfg.ConfigFile)

	if opts.list {
		for _, name := range catalog.Names() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	target, err := resolveTarget(catalog, opts.typeName, opts.kind)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.schema {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(target.schema.JSON()); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	values := opts.values
	if len(values) == 0 {
		if values, err = readLines(stdin); err != nil {
			fmt.Fprintf(stderr, "Error: reading stdin: %v\n", err)
			return 1
		}
	}

	reg := metrics.NewRegistry()
	reg.Gauge("catalog.variants").Set(int64(catalog.Len()))
	failed := false
	for i, raw := range values {
		out, err := target.check(raw)
		metrics.RecordValidation(reg, target.name, err)
		if err != nil {
			failed = true
			logger.Warn("value rejected", "index", i, "input", raw, "err", err)
		}
		writeResult(stdout, opts.jsonOut, target.name, raw, out, err)
	}

	if opts.metrics {
		if err := metrics.WriteText(stdout, reg, "hexcheck"); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	if failed {
		return 1
	}
	return 0
}

// parseFlags parses CLI arguments. Returns the options, whether the caller
// should exit immediately, and the exit code.
func parseFlags(args []string, stderr io.Writer) (options, bool, int) {
	opts := options{verbosity: 3}
	fs := newCustomFlagSet("hexcheck", stderr)
	fs.StringVar(&opts.typeName, "type", "HexStr", "variant, ABI type name or Bip122Uri")
	fs.ChoiceVar(&opts.kind, "kind", "string", []string{"string", "int", "bytes"}, "input kind")
	fs.StringVar(&opts.configPath, "config", "", "path to a TOML-like config file")
	fs.BoolVar(&opts.schema, "schema", false, "print the JSON schema of --type and exit")
	fs.BoolVar(&opts.list, "list", false, "list every catalog name and exit")
	fs.BoolVar(&opts.jsonOut, "json", false, "emit one JSON object per value")
	fs.BoolVar(&opts.metrics, "metrics", false, "print validation counters after processing")
	fs.IntVar(&opts.verbosity, "verbosity", opts.verbosity, "log level 0-5 (0-1=error, 2=warn, 3=info, 4-5=debug)")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return opts, true, 2
	}
	opts.verbositySet = fs.isSet("verbosity")
	opts.values = fs.Args()
	return opts, false, 0
}

// bip122Type is the --type name selecting BIP-122 URI validation.
const bip122Type = "Bip122Uri"

// typeTarget is what --type resolved to.
type typeTarget struct {
	name   string
	schema types.Schema
	check  func(raw string) (string, error)
}

func resolveTarget(catalog *types.Catalog, name, kind string) (typeTarget, error) {
	if name == bip122Type {
		return typeTarget{
			name:   bip122Type,
			schema: types.Bip122Schema(),
			check: func(raw string) (string, error) {
				u, err := types.ParseBip122URI(raw)
				if err != nil {
					return "", err
				}
				return u.String(), nil
			},
		}, nil
	}
	variant, err := catalog.Resolve(name)
	if err != nil {
		return typeTarget{}, err
	}
	hook := variant.Hook()
	return typeTarget{
		name:   variant.Name(),
		schema: hook.Schema,
		check:  func(raw string) (string, error) { return check(hook, raw, kind) },
	}, nil
}

// check validates one raw command-line value through hook.
func check(hook types.Hook, raw, kind string) (string, error) {
	var in codec.Input
	switch kind {
	case "int":
		n, err := codec.ParseInt(codec.String(raw))
		if err != nil {
			return "", err
		}
		in = codec.BigInt(n)
	case "bytes":
		in = codec.Bytes([]byte(raw))
	default:
		in = codec.String(raw)
	}
	v, err := hook.Coerce(in)
	if err != nil {
		return "", err
	}
	return hook.Serialize(v)
}

type result struct {
	Input   string `json:"input"`
	Variant string `json:"variant"`
	Value   string `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeResult(w io.Writer, asJSON bool, variant, raw, out string, err error) {
	if asJSON {
		r := result{Input: raw, Variant: variant, Value: out}
		if err != nil {
			r.Error = err.Error()
		}
		b, _ := json.Marshal(r)
		fmt.Fprintf(w, "%s\n", b)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "! %s: %v\n", raw, err)
		return
	}
	fmt.Fprintln(w, out)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
