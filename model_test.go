package mbe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnTypeNameAndWidth(t *testing.T) {
	require.Equal(t, "int", ColumnInt.TypeName())
	require.Equal(t, "str", ColumnStr.TypeName())
	require.Equal(t, "strID", ColumnStrID.TypeName())
	require.Equal(t, 4, ColumnInt.Width())
	require.Equal(t, 8, ColumnStr.Width())
	require.Equal(t, 8, ColumnStrID.Width())
	require.True(t, ColumnStr.IsString())
	require.True(t, ColumnStrID.IsString())
	require.False(t, ColumnInt.IsString())
}

func TestSheetValidateCatchesCellCountMismatch(t *testing.T) {
	sheet := Sheet{
		Name:    "bad",
		Columns: []Column{NewColumn(ColumnInt), NewColumn(ColumnStr)},
		Rows: []Row{
			{Cells: []Cell{IntCell(1)}},
		},
	}
	require.Error(t, sheet.Validate())
}

func TestSheetNaturalRowStride(t *testing.T) {
	sheet := Sheet{Columns: []Column{NewColumn(ColumnInt), NewColumn(ColumnStrID)}}
	require.Equal(t, 12, sheet.NaturalRowStride())
}

func TestFileStringSummary(t *testing.T) {
	f := &File{Sheets: []Sheet{
		{Name: "a", Columns: []Column{NewColumn(ColumnInt)}, Rows: []Row{{Cells: []Cell{IntCell(1)}}}},
	}}
	require.Contains(t, f.String(), "a(int) rows=1")
}
