package unsaferow

import (
	"github.com/ajitpratap0/rowforge/pkg/bits"
	"github.com/ajitpratap0/rowforge/pkg/types"
)

// fieldSource feeds row fields to the row writer; the same layout code
// serves column-backed and value-backed rows.
type fieldSource struct {
	null  func(f int) bool
	value func(f int) any                // fixed-width fields
	write func(f int, out []byte) Result // variable-width fields
}

// writeRow emits the top-level row layout at out[0]:
//
//	[ null bitmap | n fixed-width slots | variable-length region ]
//
// Null fields set their bitmap bit and leave an all-zero slot. Fixed-width
// values occupy the low bytes of their slot. Variable-width fields reserve
// the slot for an offset/length header: the payload is serialized at the
// variable cursor, the header packs (offset from the row base << 32) |
// length, and the cursor advances by the padded payload size. The returned
// total is always a multiple of 8.
func writeRow(t *types.Type, src fieldSource, out []byte) Result {
	n := t.NumFields()
	fixedBase := bits.BitmapBytes(n)
	cursor := fixedBase + n*8
	bits.Zero(out[:cursor])

	for f := 0; f < n; f++ {
		if src.null(f) {
			bits.SetNull(out, f)
			continue
		}
		ft := t.Field(f)
		slot := out[fixedBase+f*8:]
		if ft.FixedWidth() {
			putFixed(ft.Kind(), src.value(f), slot)
			continue
		}
		r := src.write(f, out[cursor:])
		if r.Null {
			bits.SetNull(out, f)
			continue
		}
		bits.PutWord(slot, bits.PackHeader(cursor, r.Size))
		cursor += bits.RoundUp8(r.Size)
	}
	return written(cursor)
}
