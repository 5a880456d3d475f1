package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindWidths(t *testing.T) {
	cases := []struct {
		kind  Kind
		width int
	}{
		{Bool, 1}, {Int8, 1}, {Int16, 2}, {Int32, 4}, {Int64, 8},
		{Float32, 4}, {Float64, 8}, {Timestamp, 8},
		{String, 0}, {Bytes, 0}, {Array, 0}, {Map, 0}, {Row, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.width, tc.kind.Width(), "%s", tc.kind)
		assert.Equal(t, tc.width > 0, tc.kind.FixedWidth(), "%s", tc.kind)
	}
}

func TestPrimitiveIsShared(t *testing.T) {
	assert.Same(t, Primitive(Int64), Primitive(Int64))
	assert.Panics(t, func() { Primitive(Array) })
}

func TestContainerAccessors(t *testing.T) {
	m := MapOf(Primitive(Int16), ArrayOf(Primitive(Int8)))
	assert.Equal(t, Int16, m.Key().Kind())
	assert.Equal(t, Array, m.Value().Kind())
	assert.Equal(t, Int8, m.Value().Elem().Kind())

	r := NamedRow([]string{"id", "tags"}, []*Type{Primitive(Int64), ArrayOf(Primitive(String))})
	assert.Equal(t, 2, r.NumFields())
	assert.Equal(t, "tags", r.FieldName(1))
	assert.Equal(t, String, r.Field(1).Elem().Kind())

	assert.Panics(t, func() { Primitive(Int64).Elem() })
}

func TestTypeString(t *testing.T) {
	m := MapOf(Primitive(String), ArrayOf(Primitive(Int8)))
	assert.Equal(t, "map<string,array<int8>>", m.String())

	r := NamedRow([]string{"id", "name"}, []*Type{Primitive(Int64), Primitive(String)})
	assert.Equal(t, "row<id:int64,name:string>", r.String())
}

func TestEqual(t *testing.T) {
	a := MapOf(Primitive(Int16), ArrayOf(Primitive(Int8)))
	b := MapOf(Primitive(Int16), ArrayOf(Primitive(Int8)))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(ArrayOf(Primitive(Int8))))

	// Field names do not participate in equality.
	named := NamedRow([]string{"x"}, []*Type{Primitive(Int32)})
	unnamed := RowOf(Primitive(Int32))
	assert.True(t, named.Equal(unnamed))
}

func TestParse(t *testing.T) {
	cases := []string{
		"int64",
		"timestamp",
		"array<int32>",
		"map<string,array<int8>>",
		"row<id:int64,tags:array<string>>",
		"map<int16,map<int16,int16>>",
	}
	for _, s := range cases {
		typ, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, typ.String(), s)
	}

	roundTrip, err := Parse("row<int64,string>")
	require.NoError(t, err)
	assert.Equal(t, 2, roundTrip.NumFields())

	// Whitespace is ignored.
	typ, err := Parse("map<string, array<int8>>")
	require.NoError(t, err)
	assert.Equal(t, "map<string,array<int8>>", typ.String())

	for _, bad := range []string{"", "int17", "array<", "array<int8", "map<int8>", "int64>"} {
		_, err := Parse(bad)
		assert.Error(t, err, "%q", bad)
	}
}
