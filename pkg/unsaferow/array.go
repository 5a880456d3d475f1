package unsaferow

import (
	"github.com/ajitpratap0/rowforge/pkg/bits"
	"github.com/ajitpratap0/rowforge/pkg/types"
)

// elemSource feeds elements to the array writer without committing to a
// backing representation: both columnar runs and plain Go slices serialize
// through the same layout code.
type elemSource struct {
	n     int
	null  func(i int) bool
	value func(i int) any                // fixed-width elements
	write func(i int, out []byte) Result // variable-width elements
}

// writeArray emits the array sub-format at out[0]:
//
//	[ count word | null bitmap | element region ]
//
// Fixed-width elements pack back-to-back and pad to a word; variable-width
// elements go through an offset table of per-element header words followed
// by concatenated payloads, each padded to a word. Offsets in headers are
// relative to the array base (the count word). The returned size is the
// padded total.
func writeArray(elem *types.Type, src elemSource, out []byte) Result {
	header := 8 + bits.BitmapBytes(src.n)
	bits.PutWord(out, uint64(src.n))
	bits.Zero(out[8:header])
	bitmap := out[8:header]

	if elem.FixedWidth() {
		w := elem.Kind().Width()
		payload := bits.RoundUp8(src.n * w)
		bits.Zero(out[header : header+payload])
		for i := 0; i < src.n; i++ {
			if src.null(i) {
				bits.SetNull(bitmap, i)
				continue
			}
			putFixed(elem.Kind(), src.value(i), out[header+i*w:])
		}
		return written(header + payload)
	}

	cursor := header + src.n*8
	bits.Zero(out[header:cursor])
	for i := 0; i < src.n; i++ {
		if src.null(i) {
			bits.SetNull(bitmap, i)
			continue
		}
		r := src.write(i, out[cursor:])
		if r.Null {
			bits.SetNull(bitmap, i)
			continue
		}
		bits.PutWord(out[header+i*8:], bits.PackHeader(cursor, r.Size))
		cursor += bits.RoundUp8(r.Size)
	}
	return written(cursor)
}
