package types

import "fmt"

// Widths of the standard catalog.
var (
	hashWidths = []int{4, 8, 16, 20, 32, 64}
	intWidths  = []int{8, 16, 32, 64, 128, 256}
)

var defaultCatalog = mustDefaultCatalog()

// Default returns the process-wide catalog of standard variants. It is built
// once at package initialization.
func Default() *Catalog { return defaultCatalog }

// Standard variants.
var (
	HexBytes = defaultCatalog.MustLookup("HexBytes")
	HexStr   = defaultCatalog.MustLookup("HexStr")
	Address  = defaultCatalog.MustLookup("Address")

	Bytes4  = defaultCatalog.MustLookup("Bytes4")
	Bytes8  = defaultCatalog.MustLookup("Bytes8")
	Bytes16 = defaultCatalog.MustLookup("Bytes16")
	Bytes20 = defaultCatalog.MustLookup("Bytes20")
	Bytes32 = defaultCatalog.MustLookup("Bytes32")
	Bytes64 = defaultCatalog.MustLookup("Bytes64")

	String4  = defaultCatalog.MustLookup("String4")
	String8  = defaultCatalog.MustLookup("String8")
	String16 = defaultCatalog.MustLookup("String16")
	String20 = defaultCatalog.MustLookup("String20")
	String32 = defaultCatalog.MustLookup("String32")
	String64 = defaultCatalog.MustLookup("String64")

	Int8   = defaultCatalog.MustLookup("Int8")
	Int16  = defaultCatalog.MustLookup("Int16")
	Int32  = defaultCatalog.MustLookup("Int32")
	Int64  = defaultCatalog.MustLookup("Int64")
	Int128 = defaultCatalog.MustLookup("Int128")
	Int256 = defaultCatalog.MustLookup("Int256")

	UInt8   = defaultCatalog.MustLookup("UInt8")
	UInt16  = defaultCatalog.MustLookup("UInt16")
	UInt32  = defaultCatalog.MustLookup("UInt32")
	UInt64  = defaultCatalog.MustLookup("UInt64")
	UInt128 = defaultCatalog.MustLookup("UInt128")
	UInt256 = defaultCatalog.MustLookup("UInt256")
)

// mustDefaultCatalog registers HexBytes, HexStr and Address, Bytes1 through
// Bytes32 plus Bytes64, String variants of the hash widths, and signed and
// unsigned integers of every multiple of 8 bits up to 256.
func mustDefaultCatalog() *Catalog {
	variants := []*Variant{
		newUnbound("HexBytes", ShapeBytes),
		newUnbound("HexStr", ShapeString),
		newAddress(),
	}
	for size := 1; size <= HashLength; size++ {
		variants = append(variants, MustMakeVariant(size, ShapeBytes, false))
	}
	variants = append(variants, MustMakeVariant(64, ShapeBytes, false))
	for _, size := range hashWidths {
		variants = append(variants, MustMakeVariant(size, ShapeString, false))
	}
	for bits := 8; bits <= 256; bits += 8 {
		variants = append(variants,
			MustMakeVariant(bits, ShapeInt, true),
			MustMakeVariant(bits, ShapeInt, false),
		)
	}

	c, err := NewCatalog(variants...)
	if err != nil {
		panic(err)
	}
	if c, err = c.withAliases(legacyAliases()); err != nil {
		panic(err)
	}
	return c
}

// legacyAliases maps the historical HexBytesN, HexStrN, HashXxxN and
// AddressType names to their current variants.
func legacyAliases() map[string]string {
	aliases := map[string]string{
		"HexBytes20":  "Bytes20",
		"HexBytes32":  "Bytes32",
		"HexStr20":    "String20",
		"HexStr32":    "String32",
		"AddressType": "Address",
	}
	for _, size := range hashWidths {
		aliases[fmt.Sprintf("HashBytes%d", size)] = fmt.Sprintf("Bytes%d", size)
		aliases[fmt.Sprintf("HashStr%d", size)] = fmt.Sprintf("String%d", size)
	}
	for _, bits := range intWidths {
		aliases[fmt.Sprintf("HashInt%d", bits)] = fmt.Sprintf("Int%d", bits)
		aliases[fmt.Sprintf("HashUInt%d", bits)] = fmt.Sprintf("UInt%d", bits)
	}
	return aliases
}
