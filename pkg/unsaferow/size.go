package unsaferow

import (
	"github.com/ajitpratap0/rowforge/pkg/bits"
	"github.com/ajitpratap0/rowforge/pkg/columnar"
	"github.com/ajitpratap0/rowforge/pkg/errors"
	"github.com/ajitpratap0/rowforge/pkg/types"
)

// SerializedSize computes the exact byte footprint a SerializeColumn call
// will occupy at the cursor, without writing: containers report their
// padded total, strings and bytes their padded payload, and fixed-width
// scalars one word. null reports a null top-level value (footprint 0).
// Callers use it to size caller-owned output buffers.
func SerializedSize(t *types.Type, col columnar.Column, row int) (size int, null bool) {
	return sizeColumn(t, col, row)
}

func sizeColumn(t *types.Type, col columnar.Column, row int) (int, bool) {
	col = unwrap(col)
	if col.IsNull(row) {
		return 0, true
	}

	switch t.Kind() {
	case types.Bool, types.Int8, types.Int16, types.Int32, types.Int64,
		types.Float32, types.Float64, types.Timestamp:
		return bits.WordSize, false

	case types.String, types.Bytes:
		return bits.RoundUp8(len(bytesValue(t.Kind(), scalarAt(col, row)))), false

	case types.Array:
		arr := asArray(t, col)
		return sizeArrayBody(t.Elem(), arr.Elements(), arr.Offset(row), arr.Length(row)), false

	case types.Map:
		m := asMap(t, col)
		off, n := m.Offset(row), m.Length(row)
		keys := sizeArrayBody(t.Key(), m.Keys(), off, n)
		values := sizeArrayBody(t.Value(), m.Values(), off, n)
		return 8 + keys + values, false

	case types.Row:
		r := asRow(t, col)
		n := t.NumFields()
		total := bits.BitmapBytes(n) + n*8
		for f := 0; f < n; f++ {
			ft := t.Field(f)
			if ft.FixedWidth() {
				continue
			}
			s, isNull := sizeColumn(ft, r.Child(f), row)
			if !isNull {
				total += bits.RoundUp8(s)
			}
		}
		return total, false

	default:
		panic(errors.Newf(errors.ErrorTypeValidation, "unsaferow: unsupported kind %s", t.Kind()))
	}
}

func sizeArrayBody(elem *types.Type, elems columnar.Column, off, n int) int {
	total := 8 + bits.BitmapBytes(n)
	if elem.FixedWidth() {
		return total + bits.RoundUp8(n*elem.Kind().Width())
	}
	total += n * 8
	for i := 0; i < n; i++ {
		if colIsNull(elems, off+i) {
			continue
		}
		s, isNull := sizeColumn(elem, elems, off+i)
		if !isNull {
			total += bits.RoundUp8(s)
		}
	}
	return total
}
