package unsaferow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/rowforge/pkg/bits"
	"github.com/ajitpratap0/rowforge/pkg/columnar"
	"github.com/ajitpratap0/rowforge/pkg/types"
)

func TestArrayFromValues(t *testing.T) {
	// [0x1666, 0x0777, null, 0x0999]
	typ := types.ArrayOf(i16)
	buf := testBuffer()
	r := SerializeValue(typ, []any{int16(0x1666), int16(0x0777), nil, int16(0x0999)}, buf)
	assertSerialized(t, r, buf, 3*8, [][]byte{
		{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x66, 0x16, 0x77, 0x07, 0x00, 0x00, 0x99, 0x09},
	})
	// The third element (idx 2) is null.
	assert.True(t, bits.IsNull(buf[8:], 2))

	// [ [5, 6, 7], null, [8] ]
	nested := types.ArrayOf(types.ArrayOf(i8))
	buf = testBuffer()
	r = SerializeValue(nested, []any{
		[]any{int8(5), int8(6), int8(7)},
		nil,
		[]any{int8(8)},
	}, buf)
	assertSerialized(t, r, buf, 11*8, [][]byte{
		{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x18, 0x00, 0x00, 0x00, 0x28, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x18, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00},
		{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x05, 0x06, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	})
}

// smallintArrayColumn builds the shared fixture:
// [ null, [0x0333, 0x1444, 0x0555], [0x1666, 0x0777, null, 0x0999] ]
func smallintArrayColumn() *columnar.ArrayData {
	elems := columnar.NewFlat(i16,
		[]int16{0x0333, 0x1444, 0x0555, 0x1666, 0x0777, 0x0000, 0x0999},
		[]bool{false, false, false, false, false, true, false})
	return columnar.NewArray(types.ArrayOf(i16),
		[]int{0, 0, 3}, []int{0, 3, 4}, []bool{true, false, false}, elems)
}

func TestArrayPrimitives(t *testing.T) {
	typ := types.ArrayOf(i16)
	arr := smallintArrayColumn()

	// null
	r := SerializeArray(typ, arr, 0, testBuffer())
	assert.True(t, r.Null)
	r = Serialize(typ, arr, 0, testBuffer())
	assert.True(t, r.Null)

	// [0x0333, 0x1444, 0x0555]
	expected1 := [][]byte{
		{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x33, 0x03, 0x44, 0x14, 0x55, 0x05, 0x00, 0x00},
	}
	buf := testBuffer()
	assertSerialized(t, SerializeArray(typ, arr, 1, buf), buf, 3*8, expected1)

	buf = testBuffer()
	assertSerialized(t, Serialize(typ, arr, 1, buf), buf, 3*8, expected1)

	// [0x1666, 0x0777, null, 0x0999]
	expected2 := [][]byte{
		{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x66, 0x16, 0x77, 0x07, 0x00, 0x00, 0x99, 0x09},
	}
	buf = testBuffer()
	assertSerialized(t, SerializeArray(typ, arr, 2, buf), buf, 3*8, expected2)
	assert.True(t, bits.IsNull(buf[8:], 2))

	buf = testBuffer()
	assertSerialized(t, Serialize(typ, arr, 2, buf), buf, 3*8, expected2)
	assert.True(t, bits.IsNull(buf[8:], 2))
}

func TestArrayStrings(t *testing.T) {
	// [ [hello, longString, emptyString, null], [null, world], null ]
	long := "This is a rather long string.  Quite long indeed."
	elems := columnar.NewFlat(str,
		[]string{"Hello", long, "", "", "", "World"},
		[]bool{false, false, false, true, true, false})
	typ := types.ArrayOf(str)
	arr := columnar.NewArray(typ,
		[]int{0, 4, 6}, []int{4, 2, 0}, []bool{false, false, true}, elems)

	expected0 := [][]byte{
		{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x05, 0x00, 0x00, 0x00, 0x30, 0x00, 0x00, 0x00},
		{0x31, 0x00, 0x00, 0x00, 0x38, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x70, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x48, 0x65, 0x6c, 0x6c, 0x6f, 0x00, 0x00, 0x00},
		{0x54, 0x68, 0x69, 0x73, 0x20, 0x69, 0x73, 0x20},
		{0x61, 0x20, 0x72, 0x61, 0x74, 0x68, 0x65, 0x72},
		{0x20, 0x6c, 0x6f, 0x6e, 0x67, 0x20, 0x73, 0x74},
		{0x72, 0x69, 0x6e, 0x67, 0x2e, 0x20, 0x20, 0x51},
		{0x75, 0x69, 0x74, 0x65, 0x20, 0x6c, 0x6f, 0x6e},
		{0x67, 0x20, 0x69, 0x6e, 0x64, 0x65, 0x65, 0x64},
		{0x2e, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	}
	buf := testBuffer()
	assertSerialized(t, SerializeArray(typ, arr, 0, buf), buf, 14*8, expected0)
	// fourth element (idx 3) is null
	assert.True(t, bits.IsNull(buf[8:], 3))

	buf = testBuffer()
	assertSerialized(t, Serialize(typ, arr, 0, buf), buf, 14*8, expected0)

	expected1 := [][]byte{
		{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x05, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00},
		{0x57, 0x6f, 0x72, 0x6c, 0x64, 0x00, 0x00, 0x00},
	}
	buf = testBuffer()
	assertSerialized(t, SerializeArray(typ, arr, 1, buf), buf, 5*8, expected1)
	// first element (idx 0) is null
	assert.True(t, bits.IsNull(buf[8:], 0))

	buf = testBuffer()
	assertSerialized(t, Serialize(typ, arr, 1, buf), buf, 5*8, expected1)

	r := SerializeArray(typ, arr, 2, testBuffer())
	assert.True(t, r.Null)
	r = Serialize(typ, arr, 2, testBuffer())
	assert.True(t, r.Null)
}

func TestNestedArrayColumn(t *testing.T) {
	// [ [[1,2],[3,4]], [[5,6,7],null,[8]], [[9,0x10]] ]
	elems := columnar.NewFlat(i8,
		[]int8{0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7, 0x8, 0x9, 0x10}, nil)
	inner := columnar.NewArray(types.ArrayOf(i8),
		[]int{0, 2, 4, 7, 7, 8}, []int{2, 2, 3, 0, 1, 2},
		[]bool{false, false, false, true, false, false}, elems)
	typ := types.ArrayOf(types.ArrayOf(i8))
	outer := columnar.NewArray(typ,
		[]int{0, 2, 5}, []int{2, 3, 1}, nil, inner)

	expected0 := [][]byte{
		{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x18, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00},
		{0x18, 0x00, 0x00, 0x00, 0x38, 0x00, 0x00, 0x00},
		{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x01, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x03, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	}
	buf := testBuffer()
	assertSerialized(t, SerializeArray(typ, outer, 0, buf), buf, 10*8, expected0)
	buf = testBuffer()
	assertSerialized(t, Serialize(typ, outer, 0, buf), buf, 10*8, expected0)

	expected1 := [][]byte{
		{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x18, 0x00, 0x00, 0x00, 0x28, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x18, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00},
		{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x05, 0x06, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	}
	buf = testBuffer()
	assertSerialized(t, SerializeArray(typ, outer, 1, buf), buf, 11*8, expected1)
	buf = testBuffer()
	assertSerialized(t, Serialize(typ, outer, 1, buf), buf, 11*8, expected1)

	expected2 := [][]byte{
		{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x18, 0x00, 0x00, 0x00, 0x18, 0x00, 0x00, 0x00},
		{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x09, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	}
	buf = testBuffer()
	assertSerialized(t, SerializeArray(typ, outer, 2, buf), buf, 6*8, expected2)
	buf = testBuffer()
	assertSerialized(t, Serialize(typ, outer, 2, buf), buf, 6*8, expected2)
}

func TestEmptyArray(t *testing.T) {
	typ := types.ArrayOf(i32)
	buf := testBuffer()
	r := SerializeValue(typ, []any{}, buf)
	require.False(t, r.Null)
	assert.Equal(t, 8, r.Size)
	assert.Equal(t, flatten(t, [][]byte{{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}}), buf[:8])
}

func TestAllNullVariableArray(t *testing.T) {
	typ := types.ArrayOf(str)
	buf := testBuffer()
	r := SerializeValue(typ, []any{nil, nil}, buf)
	require.False(t, r.Null)
	// count, bitmap, two zero headers, no payload
	assertSerialized(t, r, buf, 4*8, [][]byte{
		{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	})
}
