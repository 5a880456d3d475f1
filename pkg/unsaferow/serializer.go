package unsaferow

import (
	"github.com/ajitpratap0/rowforge/pkg/columnar"
	"github.com/ajitpratap0/rowforge/pkg/errors"
	"github.com/ajitpratap0/rowforge/pkg/types"
)

// Serialize is the runtime-typed entry point. src is either a
// columnar.Column (row selects the element) or a plain Go value (row is
// ignored; see SerializeValue for accepted shapes). The type descriptor
// drives dispatch at every nesting level, so arbitrarily nested
// array/map/row compositions serialize without the caller knowing the
// shape statically.
func Serialize(t *types.Type, src any, row int, out []byte) Result {
	if col, ok := src.(columnar.Column); ok {
		return serializeColumn(t, col, row, out)
	}
	return serializeValue(t, src, out)
}

// SerializeColumn serializes the value of a column at the given row.
// The top-level type may itself be a row, array or map.
func SerializeColumn(t *types.Type, col columnar.Column, row int, out []byte) Result {
	return serializeColumn(t, col, row, out)
}

// SerializeArray is the statically-shaped array entry point; t must be an
// array type.
func SerializeArray(t *types.Type, col columnar.Column, row int, out []byte) Result {
	t.Elem()
	return serializeColumn(t, col, row, out)
}

// SerializeMap is the statically-shaped map entry point; t must be a map
// type.
func SerializeMap(t *types.Type, col columnar.Column, row int, out []byte) Result {
	t.Key()
	return serializeColumn(t, col, row, out)
}

// SerializeRow is the statically-shaped row entry point; t must be a row
// type.
func SerializeRow(t *types.Type, col columnar.Column, row int, out []byte) Result {
	t.NumFields()
	return serializeColumn(t, col, row, out)
}

func serializeColumn(t *types.Type, col columnar.Column, row int, out []byte) Result {
	col = unwrap(col)
	if col.IsNull(row) {
		return nullValue
	}

	switch t.Kind() {
	case types.Bool, types.Int8, types.Int16, types.Int32, types.Int64,
		types.Float32, types.Float64, types.Timestamp:
		putFixed(t.Kind(), scalarAt(col, row), out)
		return written(0)

	case types.String, types.Bytes:
		return written(putBytes(bytesValue(t.Kind(), scalarAt(col, row)), out))

	case types.Array:
		arr := asArray(t, col)
		src := columnElems(t.Elem(), arr.Elements(), arr.Offset(row), arr.Length(row))
		return writeArray(t.Elem(), src, out)

	case types.Map:
		m := asMap(t, col)
		off, n := m.Offset(row), m.Length(row)
		keys := columnElems(t.Key(), m.Keys(), off, n)
		values := columnElems(t.Value(), m.Values(), off, n)
		return writeMap(t.Key(), t.Value(), keys, values, out)

	case types.Row:
		r := asRow(t, col)
		return writeRow(t, fieldSource{
			null:  func(f int) bool { return colIsNull(r.Child(f), row) },
			value: func(f int) any { return scalarAt(r.Child(f), row) },
			write: func(f int, out []byte) Result {
				return serializeColumn(t.Field(f), r.Child(f), row, out)
			},
		}, out)

	default:
		panic(errors.Newf(errors.ErrorTypeValidation, "unsaferow: unsupported kind %s", t.Kind()))
	}
}
