// Package internal holds the low-level byte-buffer primitives shared
// by the parser and generator: little-endian field access, the
// sheet-name/pool-entry padding rule, and string decoding. Nothing
// here is specific to parsing or generating; both sides of the codec
// import it for the same reason a CPU's ALU is shared by every
// instruction that needs arithmetic.
package internal

// Container magic bytes (§6.1).
var (
	// ContainerMagic opens every MBE file.
	ContainerMagic = []byte{'E', 'X', 'P', 'A'}

	// PoolMagic opens the optional trailing string pool.
	PoolMagic = []byte{'C', 'H', 'N', 'K'}
)

// Column type tags as they appear on the wire (§3).
const (
	ColumnTagInt   = 2
	ColumnTagStr   = 7
	ColumnTagStrID = 8
)

// Field widths, in bytes.
const (
	U32Size = 4
	I32Size = 4

	// IntCellWidth is the on-wire size of an INT cell.
	IntCellWidth = 4
	// StringCellWidth is the on-wire size of a STR/STRID placeholder cell.
	StringCellWidth = 8

	// PoolEntryHeaderSize is the size of a pool entry's two u32 fields,
	// not counting its padded string body.
	PoolEntryHeaderSize = U32Size + U32Size
)

// Padding bounds for the §4.2 alignment rule.
const (
	MinPadding = 2
	MaxPadding = 5
)
