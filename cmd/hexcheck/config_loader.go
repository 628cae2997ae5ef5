package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eth2030/hextypes/core/types"
	"github.com/eth2030/hextypes/log"
)

// Configuration errors.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// Config holds the settings read from a hexcheck configuration file.
type Config struct {
	Log      LogConfig
	Variants VariantsConfig

	// ConfigFile is the path the config was loaded from, if any.
	ConfigFile string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// VariantsConfig lists extra widths to register on top of the standard
// catalog. Bytes and String widths are in bytes, Int and UInt in bits.
type VariantsConfig struct {
	Bytes  []int
	String []int
	Int    []int
	UInt   []int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "text", "logfmt", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// LoadConfig reads configuration from a TOML-like file. If path is empty,
// the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigFileNotFound
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.ConfigFile = path
	return cfg, nil
}

// ParseConfig parses key = value pairs grouped under [section] headers.
// Values may be quoted or unquoted strings and integer arrays; '#' starts a
// comment.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	section := ""

	for lineNum, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}

		if line[0] == '[' {
			end := strings.Index(line, "]")
			if end < 0 {
				return nil, fmt.Errorf("line %d: unclosed section header", lineNum+1)
			}
			section = strings.TrimSpace(line[1:end])
			continue
		}

		eqIdx := strings.Index(line, "=")
		if eqIdx < 0 {
			return nil, fmt.Errorf("line %d: expected key = value", lineNum+1)
		}
		key := strings.TrimSpace(line[:eqIdx])
		val := strings.TrimSpace(line[eqIdx+1:])

		if err := applyConfigValue(cfg, section, key, val, lineNum+1); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func applyConfigValue(cfg *Config, section, key, val string, lineNum int) error {
	switch section {
	case "log":
		switch key {
		case "level":
			cfg.Log.Level = unquote(val)
		case "format":
			cfg.Log.Format = unquote(val)
		default:
			return fmt.Errorf("line %d: unknown key %q in [log]", lineNum, key)
		}
	case "variants":
		widths, err := parseIntArray(val)
		if err != nil {
			return fmt.Errorf("line %d: %v", lineNum, err)
		}
		switch key {
		case "bytes":
			cfg.Variants.Bytes = widths
		case "string":
			cfg.Variants.String = widths
		case "int":
			cfg.Variants.Int = widths
		case "uint":
			cfg.Variants.UInt = widths
		default:
			return fmt.Errorf("line %d: unknown key %q in [variants]", lineNum, key)
		}
	default:
		return fmt.Errorf("line %d: unknown section [%s]", lineNum, section)
	}
	return nil
}

// BuildCatalog extends the standard catalog with the configured widths.
// Widths already present in the standard catalog are skipped.
func BuildCatalog(cfg *Config, logger *log.Logger) (*types.Catalog, error) {
	base := types.Default()
	groups := []struct {
		widths []int
		shape  types.Shape
		signed bool
	}{
		{cfg.Variants.Bytes, types.ShapeBytes, false},
		{cfg.Variants.String, types.ShapeString, false},
		{cfg.Variants.Int, types.ShapeInt, true},
		{cfg.Variants.UInt, types.ShapeInt, false},
	}

	var extra []*types.Variant
	seen := make(map[string]bool)
	for _, g := range groups {
		for _, w := range g.widths {
			v, err := types.MakeVariant(w, g.shape, g.signed)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
			}
			if _, ok := base.Lookup(v.Name()); ok || seen[v.Name()] {
				logger.Debug("variant already registered", "name", v.Name())
				continue
			}
			seen[v.Name()] = true
			extra = append(extra, v)
			logger.Debug("variant registered", "name", v.Name(), "shape", v.Shape(), "bits", v.Bits())
		}
	}
	if len(extra) == 0 {
		return base, nil
	}
	return base.Extend(extra...)
}

func stripComment(s string) string {
	inQuote := false
	for i, c := range s {
		switch c {
		case '"':
			inQuote = !inQuote
		case '#':
			if !inQuote {
				return s[:i]
			}
		}
	}
	return s
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// parseIntArray parses a TOML-like array of integers: [48, 96].
func parseIntArray(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("expected [int, ...], got %q", s)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return nil, nil
	}
	parts := strings.Split(inner, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", p)
		}
		out = append(out, n)
	}
	return out, nil
}
