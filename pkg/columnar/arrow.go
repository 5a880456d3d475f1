package columnar

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/ajitpratap0/rowforge/pkg/types"
)

// FromArrow converts an Arrow array into the equivalent Column, so Arrow
// record batches can be fed to the encoder directly. Values are copied out
// of the Arrow buffers; the input array may be released afterwards.
// Nested lists, maps and structs convert recursively.
func FromArrow(arr arrow.Array) (Column, error) {
	switch a := arr.(type) {
	case *array.Boolean:
		return flatFromArrow(a, types.Bool, a.Value), nil
	case *array.Int8:
		return flatFromArrow(a, types.Int8, a.Value), nil
	case *array.Int16:
		return flatFromArrow(a, types.Int16, a.Value), nil
	case *array.Int32:
		return flatFromArrow(a, types.Int32, a.Value), nil
	case *array.Int64:
		return flatFromArrow(a, types.Int64, a.Value), nil
	case *array.Float32:
		return flatFromArrow(a, types.Float32, a.Value), nil
	case *array.Float64:
		return flatFromArrow(a, types.Float64, a.Value), nil
	case *array.String:
		return flatFromArrow(a, types.String, func(i int) string {
			return strings.Clone(a.Value(i))
		}), nil
	case *array.Binary:
		return flatFromArrow(a, types.Bytes, func(i int) []byte {
			return bytes.Clone(a.Value(i))
		}), nil
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return flatFromArrow(a, types.Timestamp, func(i int) time.Time {
			return a.Value(i).ToTime(unit)
		}), nil
	case *array.List:
		elements, err := FromArrow(a.ListValues())
		if err != nil {
			return nil, err
		}
		offsets, lengths, nulls := runFromArrow(a, a.ValueOffsets)
		return NewArray(types.ArrayOf(elements.DataType()), offsets, lengths, nulls, elements), nil
	case *array.Map:
		keys, err := FromArrow(a.Keys())
		if err != nil {
			return nil, err
		}
		values, err := FromArrow(a.Items())
		if err != nil {
			return nil, err
		}
		offsets, lengths, nulls := runFromArrow(a, a.ValueOffsets)
		typ := types.MapOf(keys.DataType(), values.DataType())
		return NewMap(typ, offsets, lengths, nulls, keys, values), nil
	case *array.Struct:
		st := a.DataType().(*arrow.StructType)
		names := make([]string, a.NumField())
		fields := make([]*types.Type, a.NumField())
		children := make([]Column, a.NumField())
		for i := 0; i < a.NumField(); i++ {
			child, err := FromArrow(a.Field(i))
			if err != nil {
				return nil, err
			}
			children[i] = child
			fields[i] = child.DataType()
			names[i] = st.Field(i).Name
		}
		typ := types.NamedRow(names, fields)
		return NewRow(typ, a.Len(), nullsFromArrow(a), children), nil
	default:
		return nil, fmt.Errorf("columnar: unsupported arrow array %T", arr)
	}
}

func flatFromArrow[T any](arr arrow.Array, kind types.Kind, value func(int) T) Column {
	values := make([]T, arr.Len())
	for i := 0; i < arr.Len(); i++ {
		if !arr.IsNull(i) {
			values[i] = value(i)
		}
	}
	return NewFlat(types.Primitive(kind), values, nullsFromArrow(arr))
}

func runFromArrow(arr arrow.Array, valueOffsets func(int) (int64, int64)) (offsets, lengths []int, nulls []bool) {
	offsets = make([]int, arr.Len())
	lengths = make([]int, arr.Len())
	for i := 0; i < arr.Len(); i++ {
		start, end := valueOffsets(i)
		offsets[i] = int(start)
		lengths[i] = int(end - start)
	}
	return offsets, lengths, nullsFromArrow(arr)
}

func nullsFromArrow(arr arrow.Array) []bool {
	if arr.NullN() == 0 {
		return nil
	}
	nulls := make([]bool, arr.Len())
	for i := range nulls {
		nulls[i] = arr.IsNull(i)
	}
	return nulls
}
