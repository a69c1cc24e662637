package mbe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixtures exercises a representative spread of column shapes,
// including empty strings, multi-sheet files, and STRID columns —
// the §8 invariant 1 round-trip equivalence property.
func fixtures() []*File {
	return []*File{
		{},
		{Sheets: []Sheet{{Name: "a", Columns: nil, Rows: nil}}},
		{Sheets: []Sheet{
			{
				Name:    "ints",
				Columns: []Column{NewColumn(ColumnInt), NewColumn(ColumnInt)},
				Rows: []Row{
					{Cells: []Cell{IntCell(0), IntCell(1)}},
					{Cells: []Cell{IntCell(-1), IntCell(2147483647)}},
					{Cells: []Cell{IntCell(-2147483648), IntCell(-42)}},
				},
			},
		}},
		{Sheets: []Sheet{
			{
				Name:    "strs",
				Columns: []Column{NewColumn(ColumnStr), NewColumn(ColumnStrID)},
				Rows: []Row{
					{Cells: []Cell{StrCell(""), StrCell("")}},
					{Cells: []Cell{StrCell("hello"), StrCell("world")}},
					{Cells: []Cell{StrCell("héllo"), StrCell("")}},
				},
			},
		}},
		{Sheets: []Sheet{
			{Name: "a", Columns: []Column{NewColumn(ColumnInt)}, Rows: []Row{{Cells: []Cell{IntCell(1)}}}},
			{Name: "bb", Columns: []Column{NewColumn(ColumnStr)}, Rows: []Row{{Cells: []Cell{StrCell("x")}}}},
			{Name: "ccc", Columns: []Column{NewColumn(ColumnInt), NewColumn(ColumnStrID)}, Rows: []Row{
				{Cells: []Cell{IntCell(9), StrCell("y")}},
				{Cells: []Cell{IntCell(10), StrCell("")}},
			}},
		}},
	}
}

func TestRoundTripEquivalence(t *testing.T) {
	for i, f := range fixtures() {
		out := Generate(f)
		got, err := Parse(out)
		require.NoError(t, err, "fixture %d", i)
		requireFileEquivalent(t, f, got, i)
	}
}

func TestRoundTripIgnoresRowIdentityToken(t *testing.T) {
	f := &File{Sheets: []Sheet{
		{Name: "t", Columns: []Column{NewColumn(ColumnInt)}, Rows: []Row{
			{RowID: "some-ui-token", Cells: []Cell{IntCell(5)}},
		}},
	}}
	out := Generate(f)
	got, err := Parse(out)
	require.NoError(t, err)
	require.Equal(t, "", got.Sheets[0].Rows[0].RowID)
	require.EqualValues(t, 5, got.Sheets[0].Rows[0].Cells[0].Int)
}

func TestRoundTripSTRIDSymmetricWithSTR(t *testing.T) {
	f := &File{Sheets: []Sheet{
		{Name: "t", Columns: []Column{NewColumn(ColumnStrID)}, Rows: []Row{
			{Cells: []Cell{StrCell("same")}},
		}},
	}}
	out := Generate(f)
	got, err := Parse(out)
	require.NoError(t, err)
	require.Equal(t, ColumnStrID, got.Sheets[0].Columns[0].Type)
	require.Equal(t, "same", got.Sheets[0].Rows[0].Cells[0].Str)
}

func TestRoundTripCanonicalizesBloatedRowStride(t *testing.T) {
	// A sheet parsed from a file whose rows carry trailing padding
	// bytes (expaAreaSizePerRow > natural stride) round-trips to a
	// tight encoding on the next Generate (§9 "canonicalisation, not
	// a loss").
	buf := encodeHeaderOnly(t, "p", []uint32{2}, 8, 1) // natural stride is 4, declared 8
	buf = append(buf, []byte{0x05, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff}...)

	f, err := Parse(buf)
	require.NoError(t, err)
	require.Equal(t, 8, f.Sheets[0].SourceRowStride)
	require.EqualValues(t, 5, f.Sheets[0].Rows[0].Cells[0].Int)

	out := Generate(f)
	got, err := Parse(out)
	require.NoError(t, err)
	require.Equal(t, 4, got.Sheets[0].SourceRowStride)
	require.EqualValues(t, 5, got.Sheets[0].Rows[0].Cells[0].Int)
}

func requireFileEquivalent(t *testing.T, want, got *File, fixtureIndex int) {
	t.Helper()
	require.Len(t, got.Sheets, len(want.Sheets), "fixture %d", fixtureIndex)
	for si := range want.Sheets {
		ws, gs := want.Sheets[si], got.Sheets[si]
		require.Equal(t, ws.Name, gs.Name, "fixture %d sheet %d", fixtureIndex, si)
		require.Len(t, gs.Columns, len(ws.Columns), "fixture %d sheet %d", fixtureIndex, si)
		require.Len(t, gs.Rows, len(ws.Rows), "fixture %d sheet %d", fixtureIndex, si)
		for ci := range ws.Columns {
			require.Equal(t, ws.Columns[ci].Type.IsString(), gs.Columns[ci].Type.IsString(), "fixture %d sheet %d col %d", fixtureIndex, si, ci)
		}
		for ri := range ws.Rows {
			for ci, col := range ws.Columns {
				wantCell, gotCell := ws.Rows[ri].Cells[ci], gs.Rows[ri].Cells[ci]
				if col.Type == ColumnInt {
					require.Equal(t, wantCell.Int, gotCell.Int, "fixture %d sheet %d row %d col %d", fixtureIndex, si, ri, ci)
				} else {
					require.Equal(t, wantCell.Str, gotCell.Str, "fixture %d sheet %d row %d col %d", fixtureIndex, si, ri, ci)
				}
			}
		}
	}
}
