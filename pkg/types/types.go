// Package types defines the logical type system consumed by the UnsafeRow
// encoder. A Type is an immutable descriptor: a kind plus, for containers,
// the child types. Descriptors are cheap to share and safe for concurrent
// use once constructed.
package types

import (
	"fmt"
	"strings"
)

// Kind identifies a logical type.
type Kind uint8

const (
	// Bool is a boolean stored in one byte.
	Bool Kind = iota
	// Int8 is a signed 8-bit integer.
	Int8
	// Int16 is a signed 16-bit integer.
	Int16
	// Int32 is a signed 32-bit integer.
	Int32
	// Int64 is a signed 64-bit integer.
	Int64
	// Float32 is an IEEE-754 single-precision float.
	Float32
	// Float64 is an IEEE-754 double-precision float.
	Float64
	// Timestamp is a point in time encoded as signed microseconds since epoch.
	Timestamp
	// String is a variable-length UTF-8 byte sequence.
	String
	// Bytes is a variable-length raw byte sequence.
	Bytes
	// Array is a variable-length sequence of a single element type.
	Array
	// Map is a keyed collection of a key type and a value type.
	Map
	// Row is a fixed sequence of named, independently typed fields.
	Row
)

var kindNames = [...]string{
	Bool:      "bool",
	Int8:      "int8",
	Int16:     "int16",
	Int32:     "int32",
	Int64:     "int64",
	Float32:   "float32",
	Float64:   "float64",
	Timestamp: "timestamp",
	String:    "string",
	Bytes:     "bytes",
	Array:     "array",
	Map:       "map",
	Row:       "row",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// FixedWidth reports whether values of this kind occupy a fixed-width slot.
func (k Kind) FixedWidth() bool {
	return k <= Timestamp
}

// Width returns the byte width of a fixed-width kind, or 0 for
// variable-width and container kinds.
func (k Kind) Width() int {
	switch k {
	case Bool, Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64, Timestamp:
		return 8
	default:
		return 0
	}
}

// Type is an immutable logical type descriptor.
type Type struct {
	kind     Kind
	children []*Type
	names    []string
}

var primitives = func() map[Kind]*Type {
	m := make(map[Kind]*Type)
	for k := Bool; k <= Bytes; k++ {
		m[k] = &Type{kind: k}
	}
	return m
}()

// Primitive returns the shared descriptor for a non-container kind.
// It panics when given Array, Map or Row.
func Primitive(k Kind) *Type {
	t, ok := primitives[k]
	if !ok {
		panic(fmt.Sprintf("types: %s is not a primitive kind", k))
	}
	return t
}

// ArrayOf returns an array type with the given element type.
func ArrayOf(elem *Type) *Type {
	return &Type{kind: Array, children: []*Type{elem}}
}

// MapOf returns a map type with the given key and value types.
func MapOf(key, value *Type) *Type {
	return &Type{kind: Map, children: []*Type{key, value}}
}

// RowOf returns a row type over the given field types. Fields are unnamed;
// use NamedRow when field names matter (e.g. schema files).
func RowOf(fields ...*Type) *Type {
	return &Type{kind: Row, children: fields}
}

// NamedRow returns a row type with one name per field.
// It panics when the slice lengths disagree.
func NamedRow(names []string, fields []*Type) *Type {
	if len(names) != len(fields) {
		panic(fmt.Sprintf("types: %d names for %d fields", len(names), len(fields)))
	}
	return &Type{kind: Row, children: fields, names: names}
}

// Kind returns the kind tag of the type.
func (t *Type) Kind() Kind { return t.kind }

// FixedWidth reports whether the type occupies a fixed-width slot.
func (t *Type) FixedWidth() bool { return t.kind.FixedWidth() }

// Elem returns the element type of an array.
func (t *Type) Elem() *Type {
	t.mustBe(Array)
	return t.children[0]
}

// Key returns the key type of a map.
func (t *Type) Key() *Type {
	t.mustBe(Map)
	return t.children[0]
}

// Value returns the value type of a map.
func (t *Type) Value() *Type {
	t.mustBe(Map)
	return t.children[1]
}

// NumFields returns the field count of a row type.
func (t *Type) NumFields() int {
	t.mustBe(Row)
	return len(t.children)
}

// Field returns the type of field i of a row.
func (t *Type) Field(i int) *Type {
	t.mustBe(Row)
	return t.children[i]
}

// FieldName returns the name of field i, or "" for unnamed rows.
func (t *Type) FieldName(i int) string {
	t.mustBe(Row)
	if t.names == nil {
		return ""
	}
	return t.names[i]
}

func (t *Type) mustBe(k Kind) {
	if t.kind != k {
		panic(fmt.Sprintf("types: %s accessed as %s", t.kind, k))
	}
}

// Equal reports whether two descriptors denote the same logical type.
// Row field names do not participate in equality.
func (t *Type) Equal(o *Type) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil || t.kind != o.kind || len(t.children) != len(o.children) {
		return false
	}
	for i, c := range t.children {
		if !c.Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// String renders the type, e.g. "map<int16,array<int8>>".
func (t *Type) String() string {
	switch t.kind {
	case Array:
		return "array<" + t.children[0].String() + ">"
	case Map:
		return "map<" + t.children[0].String() + "," + t.children[1].String() + ">"
	case Row:
		parts := make([]string, len(t.children))
		for i, c := range t.children {
			if name := t.FieldName(i); name != "" {
				parts[i] = name + ":" + c.String()
			} else {
				parts[i] = c.String()
			}
		}
		return "row<" + strings.Join(parts, ",") + ">"
	default:
		return t.kind.String()
	}
}
