package columnar

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/ajitpratap0/rowforge/pkg/types"
)

// Entries is an ordered set of map entries. Builders and the value-driven
// serializer take Entries instead of a Go map so entry order (and therefore
// the emitted bytes) is deterministic.
type Entries struct {
	Keys   []any
	Values []any
}

// Builder assembles a Column from loosely typed values, coercing each
// appended value to the column's logical type. It accepts the value shapes
// produced by JSON decoding: float64 for numbers, string for timestamps,
// []any for arrays, map[string]any for maps and rows. A nil value appends
// a null.
type Builder struct {
	typ      *types.Type
	values   []any
	nulls    []bool
	hasNulls bool

	offsets []int
	lengths []int
	elem    *Builder
	keys    *Builder
	vals    *Builder
	fields  []*Builder
	length  int
}

// NewBuilder creates a builder for the given type.
func NewBuilder(typ *types.Type) *Builder {
	b := &Builder{typ: typ}
	switch typ.Kind() {
	case types.Array:
		b.elem = NewBuilder(typ.Elem())
	case types.Map:
		b.keys = NewBuilder(typ.Key())
		b.vals = NewBuilder(typ.Value())
	case types.Row:
		b.fields = make([]*Builder, typ.NumFields())
		for i := range b.fields {
			b.fields[i] = NewBuilder(typ.Field(i))
		}
	}
	return b
}

// Len returns the number of rows appended so far.
func (b *Builder) Len() int {
	if b.typ.FixedWidth() || b.typ.Kind() == types.String || b.typ.Kind() == types.Bytes {
		return len(b.values)
	}
	return b.length
}

// AppendNull appends a null row.
func (b *Builder) AppendNull() {
	_ = b.Append(nil)
}

// Append coerces v to the column type and appends it. A nil v appends null.
func (b *Builder) Append(v any) error {
	switch b.typ.Kind() {
	case types.Array:
		return b.appendArray(v)
	case types.Map:
		return b.appendMap(v)
	case types.Row:
		return b.appendRow(v)
	default:
		if v == nil {
			b.values = append(b.values, nil)
			b.nulls = append(b.nulls, true)
			b.hasNulls = true
			return nil
		}
		cv, err := coerce(b.typ.Kind(), v)
		if err != nil {
			return err
		}
		b.values = append(b.values, cv)
		b.nulls = append(b.nulls, false)
		return nil
	}
}

func (b *Builder) appendNested(n int, null bool) {
	b.lengths = append(b.lengths, n)
	b.nulls = append(b.nulls, null)
	b.hasNulls = b.hasNulls || null
	b.length++
}

func (b *Builder) appendArray(v any) error {
	b.offsets = append(b.offsets, b.elem.Len())
	if v == nil {
		b.appendNested(0, true)
		return nil
	}
	elems, ok := v.([]any)
	if !ok {
		return fmt.Errorf("columnar: expected []any for %s, got %T", b.typ, v)
	}
	for _, e := range elems {
		if err := b.elem.Append(e); err != nil {
			return err
		}
	}
	b.appendNested(len(elems), false)
	return nil
}

func (b *Builder) appendMap(v any) error {
	b.offsets = append(b.offsets, b.keys.Len())
	if v == nil {
		b.appendNested(0, true)
		return nil
	}
	var entries Entries
	switch m := v.(type) {
	case Entries:
		entries = m
	case map[string]any:
		// Sort keys so repeated encodes of the same JSON are byte-identical.
		names := make([]string, 0, len(m))
		for k := range m {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			entries.Keys = append(entries.Keys, k)
			entries.Values = append(entries.Values, m[k])
		}
	default:
		return fmt.Errorf("columnar: expected map for %s, got %T", b.typ, v)
	}
	if len(entries.Keys) != len(entries.Values) {
		return fmt.Errorf("columnar: %d keys for %d values", len(entries.Keys), len(entries.Values))
	}
	for i := range entries.Keys {
		if err := b.keys.Append(entries.Keys[i]); err != nil {
			return err
		}
		if err := b.vals.Append(entries.Values[i]); err != nil {
			return err
		}
	}
	b.appendNested(len(entries.Keys), false)
	return nil
}

func (b *Builder) appendRow(v any) error {
	if v == nil {
		for _, f := range b.fields {
			if err := f.Append(nil); err != nil {
				return err
			}
		}
		b.nulls = append(b.nulls, true)
		b.hasNulls = true
		b.length++
		return nil
	}
	switch r := v.(type) {
	case []any:
		if len(r) != len(b.fields) {
			return fmt.Errorf("columnar: %d values for %d row fields", len(r), len(b.fields))
		}
		for i, f := range b.fields {
			if err := f.Append(r[i]); err != nil {
				return err
			}
		}
	case map[string]any:
		for i, f := range b.fields {
			if err := f.Append(r[b.typ.FieldName(i)]); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("columnar: expected row value for %s, got %T", b.typ, v)
	}
	b.nulls = append(b.nulls, false)
	b.length++
	return nil
}

// Build finalizes the builder into an immutable Column. The builder must
// not be used afterwards.
func (b *Builder) Build() Column {
	nulls := b.nulls
	if !b.hasNulls {
		nulls = nil
	}
	switch b.typ.Kind() {
	case types.Array:
		return NewArray(b.typ, b.offsets, b.lengths, nulls, b.elem.Build())
	case types.Map:
		return NewMap(b.typ, b.offsets, b.lengths, nulls, b.keys.Build(), b.vals.Build())
	case types.Row:
		children := make([]Column, len(b.fields))
		for i, f := range b.fields {
			children[i] = f.Build()
		}
		return NewRow(b.typ, b.length, nulls, children)
	case types.Bool:
		return NewFlat(b.typ, buildSlice[bool](b.values), nulls)
	case types.Int8:
		return NewFlat(b.typ, buildSlice[int8](b.values), nulls)
	case types.Int16:
		return NewFlat(b.typ, buildSlice[int16](b.values), nulls)
	case types.Int32:
		return NewFlat(b.typ, buildSlice[int32](b.values), nulls)
	case types.Int64:
		return NewFlat(b.typ, buildSlice[int64](b.values), nulls)
	case types.Float32:
		return NewFlat(b.typ, buildSlice[float32](b.values), nulls)
	case types.Float64:
		return NewFlat(b.typ, buildSlice[float64](b.values), nulls)
	case types.Timestamp:
		return NewFlat(b.typ, buildSlice[time.Time](b.values), nulls)
	case types.String:
		return NewFlat(b.typ, buildSlice[string](b.values), nulls)
	case types.Bytes:
		return NewFlat(b.typ, buildSlice[[]byte](b.values), nulls)
	default:
		panic(fmt.Sprintf("columnar: unbuildable type %s", b.typ))
	}
}

func buildSlice[T any](values []any) []T {
	out := make([]T, len(values))
	for i, v := range values {
		if v != nil {
			out[i] = v.(T)
		}
	}
	return out
}

// coerce converts v to the canonical Go representation of kind.
func coerce(k types.Kind, v any) (any, error) {
	switch k {
	case types.Bool:
		switch x := v.(type) {
		case bool:
			return x, nil
		case string:
			return x == "true" || x == "1" || x == "yes", nil
		}
	case types.Int8, types.Int16, types.Int32, types.Int64:
		n, err := coerceInt(v)
		if err != nil {
			return nil, err
		}
		switch k {
		case types.Int8:
			return int8(n), nil
		case types.Int16:
			return int16(n), nil
		case types.Int32:
			return int32(n), nil
		default:
			return n, nil
		}
	case types.Float32, types.Float64:
		f, err := coerceFloat(v)
		if err != nil {
			return nil, err
		}
		if k == types.Float32 {
			return float32(f), nil
		}
		return f, nil
	case types.Timestamp:
		switch x := v.(type) {
		case time.Time:
			return x, nil
		case string:
			t, err := time.Parse(time.RFC3339Nano, x)
			if err != nil {
				return nil, fmt.Errorf("columnar: cannot parse %q as timestamp: %w", x, err)
			}
			return t, nil
		case int64:
			return time.UnixMicro(x), nil
		case float64:
			return time.UnixMicro(int64(x)), nil
		}
	case types.String:
		switch x := v.(type) {
		case string:
			return x, nil
		case []byte:
			return string(x), nil
		}
	case types.Bytes:
		switch x := v.(type) {
		case []byte:
			return x, nil
		case string:
			return []byte(x), nil
		}
	}
	return nil, fmt.Errorf("columnar: cannot coerce %T to %s", v, k)
}

func coerceInt(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case float64:
		return int64(x), nil
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("columnar: cannot parse %q as int: %w", x, err)
		}
		return n, nil
	}
	return 0, fmt.Errorf("columnar: cannot coerce %T to int", v)
}

func coerceFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("columnar: cannot parse %q as float: %w", x, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("columnar: cannot coerce %T to float", v)
}
