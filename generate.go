package mbe

import (
	"sort"

	"github.com/ahtheerr/mbego/internal"
)

// sheetPlan is Phase A's precomputed metadata for one sheet.
type sheetPlan struct {
	nameBytes          []byte
	columnTags         []uint32
	rowCount           int
	expaAreaSizePerRow int64
}

// poolEntry is a collected (offset, string) pair awaiting Phase E.
type poolEntry struct {
	offset int64
	text   []byte
}

// Generate encodes file into a contiguous byte buffer (§4.4). It is
// pure and total for any File satisfying §3's invariants: it never
// fails, and calling it twice on the same File produces identical
// bytes (§5 determinism).
func Generate(file *File) []byte {
	plans := planSheets(file)

	// Phase B — dry run to discover H before any real bytes are written.
	headerSize := headerDryRun(plans)

	// Phase C — write magic, sheet count, and every sheet header for real.
	out := make([]byte, 0, headerSize)
	out = writeContainerMagicAndCount(out, len(plans))
	for _, plan := range plans {
		out = writeSheetHeader(out, plan)
	}

	// Structural block layout (§4.3 Pass 2's generator-side mirror):
	// sheets are packed back-to-back starting at H = len(out) right now.
	dataStarts := make([]int64, len(plans))
	cursor := int64(len(out))
	for i, plan := range plans {
		dataStarts[i] = cursor
		cursor += plan.expaAreaSizePerRow * int64(plan.rowCount)
	}

	// Phase D — emit structural block, collecting pool entries as we go.
	var entries []poolEntry
	for i := range file.Sheets {
		sheet := &file.Sheets[i]
		plan := plans[i]
		rowStart := dataStarts[i]
		for _, row := range sheet.Rows {
			cellOffset := rowStart
			for ci, col := range sheet.Columns {
				switch col.Type {
				case ColumnInt:
					out = growTo(out, cellOffset+int64(internal.IntCellWidth))
					internal.WriteI32LE(out, cellOffset, row.Cells[ci].Int)
					cellOffset += int64(internal.IntCellWidth)
				default:
					out = growTo(out, cellOffset+int64(internal.StringCellWidth))
					if s := row.Cells[ci].Str; s != "" {
						entries = append(entries, poolEntry{offset: cellOffset, text: internal.EncodeString(s)})
					}
					cellOffset += int64(internal.StringCellWidth)
				}
			}
			rowStart += plan.expaAreaSizePerRow
		}
	}

	if len(entries) == 0 {
		return out
	}

	// Phase E — emit the string pool, sorted by target offset (§4.4,
	// §8 invariant 3). Ties cannot occur: offsets strictly increase as
	// Phase D walks rows and columns in order.
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].offset < entries[j].offset })

	out = append(out, internal.PoolMagic...)
	countField := int64(len(out))
	out = growTo(out, countField+internal.U32Size)
	internal.WriteU32LE(out, countField, uint32(len(entries)))

	for _, e := range entries {
		entryHeaderStart := int64(len(out))
		dataStart := entryHeaderStart + int64(internal.PoolEntryHeaderSize)
		total, _ := internal.PadLength(len(e.text), dataStart)

		out = growTo(out, entryHeaderStart+int64(internal.PoolEntryHeaderSize))
		internal.WriteU32LE(out, entryHeaderStart, uint32(e.offset))
		internal.WriteU32LE(out, entryHeaderStart+internal.U32Size, uint32(total))

		out = growTo(out, dataStart+int64(total))
		copy(out[dataStart:dataStart+int64(len(e.text))], e.text)
		// trailing total-len(e.text) bytes are already zero from growTo.
	}

	return out
}

func planSheets(file *File) []sheetPlan {
	plans := make([]sheetPlan, len(file.Sheets))
	for i, sheet := range file.Sheets {
		tags := make([]uint32, len(sheet.Columns))
		for ci, col := range sheet.Columns {
			tags[ci] = uint32(col.Type)
		}
		plans[i] = sheetPlan{
			nameBytes:          internal.EncodeString(sheet.Name),
			columnTags:         tags,
			rowCount:           len(sheet.Rows),
			expaAreaSizePerRow: int64(sheet.NaturalRowStride()),
		}
	}
	return plans
}

// headerDryRun implements §4.4 Phase B: simulate writing the magic,
// sheet count, and every sheet header to discover H, the offset of
// the structural block's base, before any real bytes are written.
func headerDryRun(plans []sheetPlan) int64 {
	offset := int64(len(internal.ContainerMagic)) + internal.U32Size
	for _, plan := range plans {
		dataStart := offset + internal.U32Size
		total, _ := internal.PadLength(len(plan.nameBytes), dataStart)
		offset = dataStart + int64(total)
		offset += internal.U32Size                               // columnCount
		offset += int64(len(plan.columnTags)) * internal.U32Size // column tags
		offset += internal.U32Size                               // expaAreaSizePerRow
		offset += internal.U32Size                               // expaRowCount
	}
	return offset
}

func writeContainerMagicAndCount(out []byte, sheetCount int) []byte {
	out = append(out, internal.ContainerMagic...)
	lenField := int64(len(out))
	out = growTo(out, lenField+internal.U32Size)
	internal.WriteU32LE(out, lenField, uint32(sheetCount))
	return out
}

// writeSheetHeader appends one SheetHeader (§6.1) to out, recomputing
// its name padding against the live offset (§4.4 Phase C; §9 "padding
// is recomputed at encode, not preserved from parse").
func writeSheetHeader(out []byte, plan sheetPlan) []byte {
	nameFieldStart := int64(len(out))
	dataStart := nameFieldStart + internal.U32Size
	total, _ := internal.PadLength(len(plan.nameBytes), dataStart)

	out = growTo(out, nameFieldStart+internal.U32Size)
	internal.WriteU32LE(out, nameFieldStart, uint32(total))

	out = growTo(out, dataStart+int64(total))
	copy(out[dataStart:dataStart+int64(len(plan.nameBytes))], plan.nameBytes)
	// trailing total-len(nameBytes) bytes are already zero from growTo.

	cursor := dataStart + int64(total)

	out = growTo(out, cursor+internal.U32Size)
	internal.WriteU32LE(out, cursor, uint32(len(plan.columnTags)))
	cursor += internal.U32Size

	for _, tag := range plan.columnTags {
		out = growTo(out, cursor+internal.U32Size)
		internal.WriteU32LE(out, cursor, tag)
		cursor += internal.U32Size
	}

	out = growTo(out, cursor+internal.U32Size)
	internal.WriteU32LE(out, cursor, uint32(plan.expaAreaSizePerRow))
	cursor += internal.U32Size

	out = growTo(out, cursor+internal.U32Size)
	internal.WriteU32LE(out, cursor, uint32(plan.rowCount))
	cursor += internal.U32Size

	return out
}

// growTo extends out with zero bytes so it has length n, leaving
// existing content untouched. All structural placeholder bytes
// (STR/STRID cells, name/pool padding) rely on this zero-fill.
func growTo(out []byte, n int64) []byte {
	if int64(len(out)) >= n {
		return out
	}
	return append(out, make([]byte, n-int64(len(out)))...)
}
