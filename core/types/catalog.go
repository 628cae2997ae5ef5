package types

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog maps type names to variants. A Catalog is never modified after
// NewCatalog returns, so lookups need no locking.
type Catalog struct {
	variants []*Variant
	byName   map[string]*Variant
	abi      map[string]*Variant
}

// NewCatalog indexes variants by name. The bytes-backed, integer and address
// variants are also indexed under their Solidity ABI names (bytes20, uint8,
// address, ...). Duplicate names are rejected.
func NewCatalog(variants ...*Variant) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]*Variant, len(variants)),
		abi:    make(map[string]*Variant),
	}
	for _, v := range variants {
		if _, ok := c.byName[v.name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVariant, v.name)
		}
		c.byName[v.name] = v
		c.variants = append(c.variants, v)
		if name := abiName(v); name != "" {
			c.abi[name] = v
		}
	}
	return c, nil
}

// Extend returns a new catalog holding c's variants followed by variants.
// Aliases of c are carried over; c itself is unchanged.
func (c *Catalog) Extend(variants ...*Variant) (*Catalog, error) {
	next, err := NewCatalog(append(append([]*Variant(nil), c.variants...), variants...)...)
	if err != nil {
		return nil, err
	}
	for name, v := range c.byName {
		if _, ok := next.byName[name]; !ok {
			next.byName[name] = v
		}
	}
	return next, nil
}

// withAliases indexes existing variants under additional names.
func (c *Catalog) withAliases(aliases map[string]string) (*Catalog, error) {
	for alias, target := range aliases {
		v, ok := c.byName[target]
		if !ok {
			return nil, fmt.Errorf("%w: alias %s -> %s", ErrUnknownVariant, alias, target)
		}
		if _, ok := c.byName[alias]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVariant, alias)
		}
		c.byName[alias] = v
	}
	return c, nil
}

// Lookup returns the variant registered under name.
func (c *Catalog) Lookup(name string) (*Variant, bool) {
	v, ok := c.byName[name]
	return v, ok
}

// MustLookup is like Lookup but panics if name is unknown.
func (c *Catalog) MustLookup(name string) *Variant {
	v, ok := c.byName[name]
	if !ok {
		panic(fmt.Sprintf("types: unknown variant %q", name))
	}
	return v
}

// ABI resolves a Solidity ABI type name such as "uint24" or "bytes32".
func (c *Catalog) ABI(typ string) (*Variant, error) {
	if v, ok := c.abi[strings.TrimSpace(typ)]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: abi type %q", ErrUnknownVariant, typ)
}

// Resolve looks name up first as a catalog name and then as an ABI type.
func (c *Catalog) Resolve(name string) (*Variant, error) {
	if v, ok := c.byName[name]; ok {
		return v, nil
	}
	return c.ABI(name)
}

// Variants returns the registered variants in registration order.
func (c *Catalog) Variants() []*Variant {
	return append([]*Variant(nil), c.variants...)
}

// Names returns every registered name, aliases included, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of distinct variants.
func (c *Catalog) Len() int { return len(c.variants) }

func abiName(v *Variant) string {
	switch {
	case v.checksum:
		return "address"
	case v.shape == ShapeBytes && !v.bound:
		return "bytes"
	case v.shape == ShapeBytes && v.size <= HashLength:
		return fmt.Sprintf("bytes%d", v.size)
	case v.shape == ShapeInt && v.bounds.Signed:
		return fmt.Sprintf("int%d", v.bounds.Bits)
	case v.shape == ShapeInt:
		return fmt.Sprintf("uint%d", v.bounds.Bits)
	}
	return ""
}
