package mbe

import (
	"bytes"

	"github.com/ahtheerr/mbego/internal"
	"github.com/ahtheerr/mbego/internal/warn"
)

// sheetDescriptor is Pass 1's output for one sheet: everything read
// from its header, before the structural block's absolute position
// is known.
type sheetDescriptor struct {
	name               string
	columns            []Column
	expaAreaSizePerRow uint32
	expaRowCount       uint32

	// dataStart is filled in by Pass 2.
	dataStart int64
}

// Parse decodes buffer into a File (§4.3). It returns a *ParseError
// for the two fatal conditions (InvalidMagic, UnknownColumnType);
// every other anomaly is tolerated per §7 and reported through
// internal/warn, yielding a best-effort result.
func Parse(buffer []byte, opts ...ParseOption) (*File, error) {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if len(buffer) < 4 || !bytes.Equal(buffer[:4], internal.ContainerMagic) {
		got := buffer
		if len(got) > 4 {
			got = got[:4]
		}
		return nil, newInvalidMagic(got)
	}

	cursor := int64(4)
	sheetCount := internal.ReadU32LE(buffer, cursor)
	cursor += internal.U32Size

	descriptors := make([]*sheetDescriptor, 0, sheetCount)
	for si := 0; si < int(sheetCount); si++ {
		desc, next, err := parseSheetHeader(buffer, cursor, si, cfg)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, desc)
		cursor = next
	}

	// Pass 2 — structural block layout.
	dataCursor := cursor
	for _, desc := range descriptors {
		desc.dataStart = dataCursor
		dataCursor += int64(desc.expaAreaSizePerRow) * int64(desc.expaRowCount)
	}
	poolStart := dataCursor

	// Pass 3 — string pool.
	pool := parseStringPool(buffer, poolStart, cfg)

	// Pass 4 — materialise rows.
	file := &File{Sheets: make([]Sheet, len(descriptors))}
	for si, desc := range descriptors {
		file.Sheets[si] = materialiseSheet(buffer, desc, pool)
	}

	return file, nil
}

func parseSheetHeader(buf []byte, cursor int64, sheetIndex int, cfg *parseConfig) (*sheetDescriptor, int64, error) {
	nameLenWithPadding := internal.ReadU32LE(buf, cursor)
	cursor += internal.U32Size

	name := internal.DecodeString(buf, cursor, int(nameLenWithPadding), cfg.decoder)
	cursor += int64(nameLenWithPadding)

	columnCount := internal.ReadU32LE(buf, cursor)
	cursor += internal.U32Size

	columns := make([]Column, 0, columnCount)
	for ci := 0; ci < int(columnCount); ci++ {
		tag := internal.ReadU32LE(buf, cursor)
		cursor += internal.U32Size
		switch tag {
		case internal.ColumnTagInt:
			columns = append(columns, NewColumn(ColumnInt))
		case internal.ColumnTagStr:
			columns = append(columns, NewColumn(ColumnStr))
		case internal.ColumnTagStrID:
			columns = append(columns, NewColumn(ColumnStrID))
		default:
			return nil, 0, newUnknownColumnType(tag, sheetIndex, ci)
		}
	}

	expaAreaSizePerRow := internal.ReadU32LE(buf, cursor)
	cursor += internal.U32Size
	expaRowCount := internal.ReadU32LE(buf, cursor)
	cursor += internal.U32Size

	return &sheetDescriptor{
		name:               name,
		columns:            columns,
		expaAreaSizePerRow: expaAreaSizePerRow,
		expaRowCount:       expaRowCount,
	}, cursor, nil
}

// parseStringPool implements §4.3 Pass 3. A missing "CHNK" magic is
// MissingPool (§7): a warning, not a fatal error, and every string
// cell resolves to "".
func parseStringPool(buf []byte, searchFrom int64, cfg *parseConfig) map[uint32]string {
	pool := make(map[uint32]string)

	idx := internal.FindMagic(buf, internal.PoolMagic, searchFrom)
	if idx < 0 {
		warn.Warnf("no CHNK magic found from offset %d: string cells will decode to empty strings", searchFrom)
		return pool
	}

	cursor := idx + int64(len(internal.PoolMagic))
	entryCount := internal.ReadU32LE(buf, cursor)
	cursor += internal.U32Size

	for i := 0; i < int(entryCount); i++ {
		if cursor+int64(internal.PoolEntryHeaderSize) > int64(len(buf)) {
			warn.Warnf("pool entry %d: header extends past end of buffer, stopping", i)
			break
		}
		target := internal.ReadU32LE(buf, cursor)
		textLenWithPadding := internal.ReadU32LE(buf, cursor+internal.U32Size)
		cursor += int64(internal.PoolEntryHeaderSize)

		bodyEnd := cursor + int64(textLenWithPadding)
		if bodyEnd > int64(len(buf)) {
			warn.Warnf("pool entry %d (target %d): body of length %d extends past end of buffer, skipping", i, target, textLenWithPadding)
			cursor = int64(len(buf))
			continue
		}

		pool[target] = internal.DecodeString(buf, cursor, int(textLenWithPadding), cfg.decoder)
		cursor = bodyEnd
	}

	return pool
}

// materialiseSheet implements §4.3 Pass 4 for a single sheet: the
// per-row cursor resets to desc.dataStart + r*expaAreaSizePerRow at
// every row, so a row stride wider than the natural sum of column
// widths simply leaves trailing bytes unread.
func materialiseSheet(buf []byte, desc *sheetDescriptor, pool map[uint32]string) Sheet {
	rowStride := int64(desc.expaAreaSizePerRow)
	rows := make([]Row, desc.expaRowCount)

	for r := 0; r < int(desc.expaRowCount); r++ {
		cellOffset := desc.dataStart + int64(r)*rowStride
		cells := make([]Cell, len(desc.columns))
		for ci, col := range desc.columns {
			switch {
			case col.Type == ColumnInt:
				cells[ci] = IntCell(internal.ReadI32LE(buf, cellOffset))
				cellOffset += int64(internal.IntCellWidth)
			default:
				if cellOffset >= 0 && cellOffset <= int64(^uint32(0)) {
					if s, ok := pool[uint32(cellOffset)]; ok {
						cells[ci] = StrCell(s)
					} else {
						cells[ci] = StrCell("")
					}
				} else {
					cells[ci] = StrCell("")
				}
				cellOffset += int64(internal.StringCellWidth)
			}
		}
		rows[r] = Row{Cells: cells}
	}

	return Sheet{
		Name:            desc.name,
		Columns:         desc.columns,
		Rows:            rows,
		SourceRowStride: int(desc.expaAreaSizePerRow),
	}
}
