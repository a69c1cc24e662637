package mbe

import (
	"fmt"
	"strings"

	"github.com/ahtheerr/mbego/internal"
)

// ColumnType is the tagged enumeration of wire-level cell kinds (§3).
// STRID is preserved only to round-trip the tag byte; it decodes and
// encodes identically to STR.
type ColumnType uint8

const (
	ColumnInt   ColumnType = internal.ColumnTagInt
	ColumnStr   ColumnType = internal.ColumnTagStr
	ColumnStrID ColumnType = internal.ColumnTagStrID
)

// TypeName returns the human-readable label for the type: "int",
// "str", or "strID".
func (t ColumnType) TypeName() string {
	switch t {
	case ColumnInt:
		return "int"
	case ColumnStr:
		return "str"
	case ColumnStrID:
		return "strID"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Width returns the on-wire byte width of a single cell of this
// type: 4 for INT, 8 for STR/STRID.
func (t ColumnType) Width() int {
	if t == ColumnInt {
		return internal.IntCellWidth
	}
	return internal.StringCellWidth
}

// IsString reports whether the type participates in the string pool.
func (t ColumnType) IsString() bool {
	return t == ColumnStr || t == ColumnStrID
}

// Column is a single sheet column: its wire type and the derived
// human-readable name.
type Column struct {
	Type     ColumnType
	TypeName string
}

// NewColumn builds a Column from a wire type tag.
func NewColumn(t ColumnType) Column {
	return Column{Type: t, TypeName: t.TypeName()}
}

// Cell holds exactly one of an integer or a string value; which one
// is valid is determined by the containing column's type (§3).
type Cell struct {
	Int int32
	Str string
}

// IntCell builds an INT cell.
func IntCell(v int32) Cell { return Cell{Int: v} }

// StrCell builds a STR/STRID cell.
func StrCell(v string) Cell { return Cell{Str: v} }

// Row is an ordered sequence of cells, one per column of the
// containing sheet. RowID is a stable identity token for UI
// purposes only; it has no wire representation and MUST NOT affect
// Generate's output (§3).
type Row struct {
	RowID string
	Cells []Cell
}

// Sheet bundles a name, its column schema, and its rows (§3).
//
// SourceRowStride records the parsed expaAreaSizePerRow of a sheet
// that came from Parse, for diagnostic/advisory use only; Generate
// never consults it (§9 Open Questions).
type Sheet struct {
	Name    string
	Columns []Column
	Rows    []Row

	SourceRowStride int
}

// NaturalRowStride is the sum of column widths: the stride Generate
// always emits, regardless of SourceRowStride (§4.4 Phase A, §9
// "canonicalisation, not a loss").
func (s *Sheet) NaturalRowStride() int {
	total := 0
	for _, c := range s.Columns {
		total += c.Type.Width()
	}
	return total
}

// Validate checks that every row's cell count matches the column
// count. It does not check cell kinds: a Cell carries both an Int and
// a Str field, and which one is used depends only on the column type.
// Generate assumes a valid Sheet; callers mutating a File before
// Generate should call this first.
func (s *Sheet) Validate() error {
	for ri, row := range s.Rows {
		if len(row.Cells) != len(s.Columns) {
			return fmt.Errorf("mbe: sheet %q row %d: have %d cells, want %d columns", s.Name, ri, len(row.Cells), len(s.Columns))
		}
	}
	return nil
}

// String renders a one-line human-readable summary of the sheet:
// name, column types, row count. Not part of the wire format.
func (s *Sheet) String() string {
	types := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		types[i] = c.TypeName
	}
	return fmt.Sprintf("%s(%s) rows=%d", s.Name, strings.Join(types, ","), len(s.Rows))
}

// File is an ordered sequence of Sheets. Order is significant: it is
// part of the identity, since each sheet's structural block sits at
// a position-dependent offset determined by the sheets before it
// (§3).
type File struct {
	Sheets []Sheet
}

// Validate runs Sheet.Validate over every sheet.
func (f *File) Validate() error {
	for i := range f.Sheets {
		if err := f.Sheets[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// String renders a one-line-per-sheet summary of the whole file.
func (f *File) String() string {
	var b strings.Builder
	for i := range f.Sheets {
		b.WriteString(f.Sheets[i].String())
		if i != len(f.Sheets)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
