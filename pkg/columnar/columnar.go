package columnar

import (
	"github.com/ajitpratap0/rowforge/pkg/types"
)

// Column is the base interface for all column encodings. Implementations
// are read-only; indexes are valid in [0, Len()).
type Column interface {
	// DataType returns the logical type of the column's values.
	DataType() *types.Type
	// Len returns the number of rows in the column.
	Len() int
	// IsNull reports whether row i holds a null.
	IsNull(i int) bool
}

// Scalar is a column whose rows are primitive, string or bytes values.
// Value returns the Go representation for the column's kind: bool, int8,
// int16, int32, int64, float32, float64, time.Time, string or []byte.
// The result for a null row is unspecified; check IsNull first.
type Scalar interface {
	Column
	Value(i int) any
}

// Array is a column of variable-length element runs over a shared child
// column. Row i spans Elements()[Offset(i) : Offset(i)+Length(i)].
type Array interface {
	Column
	Offset(i int) int
	Length(i int) int
	Elements() Column
}

// Map is a column of key/value runs over two shared child columns indexed
// the same way as Array runs.
type Map interface {
	Column
	Offset(i int) int
	Length(i int) int
	Keys() Column
	Values() Column
}

// Row is a column of structs; every child column is indexed by the outer
// row index.
type Row interface {
	Column
	NumChildren() int
	Child(i int) Column
}
