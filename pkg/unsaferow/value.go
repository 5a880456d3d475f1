package unsaferow

import (
	"github.com/ajitpratap0/rowforge/pkg/columnar"
	"github.com/ajitpratap0/rowforge/pkg/errors"
	"github.com/ajitpratap0/rowforge/pkg/types"
)

// SerializeScalar serializes a single primitive, string or bytes value.
// Container kinds go through SerializeValue or the column entry points.
func SerializeScalar(t *types.Type, v any, out []byte) Result {
	switch t.Kind() {
	case types.Array, types.Map, types.Row:
		panic(errors.Newf(errors.ErrorTypeValidation,
			"unsaferow: SerializeScalar called with container kind %s", t.Kind()))
	}
	return serializeValue(t, v, out)
}

// SerializeValue serializes a plain Go value of the given type. Accepted
// shapes: the kind's Go representation for scalars (bool, int8..int64,
// float32/64, time.Time, string, []byte), []any for arrays and rows, and
// columnar.Entries for maps. nil — at any level — means null.
func SerializeValue(t *types.Type, v any, out []byte) Result {
	return serializeValue(t, v, out)
}

func serializeValue(t *types.Type, v any, out []byte) Result {
	if v == nil {
		return nullValue
	}

	switch t.Kind() {
	case types.Bool, types.Int8, types.Int16, types.Int32, types.Int64,
		types.Float32, types.Float64, types.Timestamp:
		putFixed(t.Kind(), v, out)
		return written(0)

	case types.String, types.Bytes:
		return written(putBytes(bytesValue(t.Kind(), v), out))

	case types.Array:
		elems, ok := v.([]any)
		if !ok {
			badValue(t.Kind(), v)
		}
		return writeArray(t.Elem(), valueElems(t.Elem(), elems), out)

	case types.Map:
		entries, ok := v.(columnar.Entries)
		if !ok {
			badValue(t.Kind(), v)
		}
		if len(entries.Keys) != len(entries.Values) {
			panic(errors.Newf(errors.ErrorTypeValidation,
				"unsaferow: %d map keys for %d values", len(entries.Keys), len(entries.Values)))
		}
		keys := valueElems(t.Key(), entries.Keys)
		values := valueElems(t.Value(), entries.Values)
		return writeMap(t.Key(), t.Value(), keys, values, out)

	case types.Row:
		fields, ok := v.([]any)
		if !ok {
			badValue(t.Kind(), v)
		}
		if len(fields) != t.NumFields() {
			panic(errors.Newf(errors.ErrorTypeValidation,
				"unsaferow: %d values for %d row fields", len(fields), t.NumFields()))
		}
		return writeRow(t, fieldSource{
			null:  func(f int) bool { return fields[f] == nil },
			value: func(f int) any { return fields[f] },
			write: func(f int, out []byte) Result {
				return serializeValue(t.Field(f), fields[f], out)
			},
		}, out)

	default:
		panic(errors.Newf(errors.ErrorTypeValidation, "unsaferow: unsupported kind %s", t.Kind()))
	}
}

func valueElems(elem *types.Type, elems []any) elemSource {
	return elemSource{
		n:     len(elems),
		null:  func(i int) bool { return elems[i] == nil },
		value: func(i int) any { return elems[i] },
		write: func(i int, out []byte) Result {
			return serializeValue(elem, elems[i], out)
		},
	}
}
