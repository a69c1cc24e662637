package internal

// PadLength implements the §4.2 alignment rule shared by the
// sheet-name field and every string-pool entry: given the raw
// encoded byte length l of a string and the absolute offset
// dataStart at which its data bytes would begin, choose the
// smallest padding n in [MinPadding, MaxPadding] such that the
// offset right after the l+n data bytes is a multiple of 4. If no
// value in range satisfies the constraint, default to MinPadding
// (unreachable when dataStart is itself 4-byte aligned, which it
// always is here since both call sites place it after one or two
// preceding u32 fields).
func PadLength(l int, dataStart int64) (total int, pad int) {
	for n := MinPadding; n <= MaxPadding; n++ {
		if (dataStart+int64(l+n))%4 == 0 {
			return l + n, n
		}
	}
	return l + MinPadding, MinPadding
}
