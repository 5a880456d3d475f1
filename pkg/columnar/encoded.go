package columnar

import (
	"fmt"

	"github.com/ajitpratap0/rowforge/pkg/types"
)

// Constant repeats a single value (or null) for every row.
type Constant struct {
	typ    *types.Type
	value  any
	length int
}

// NewConstant creates a constant column of the given length. A nil value
// makes every row null.
func NewConstant(typ *types.Type, value any, length int) *Constant {
	return &Constant{typ: typ, value: value, length: length}
}

// DataType returns the column's logical type.
func (c *Constant) DataType() *types.Type { return c.typ }

// Len returns the row count.
func (c *Constant) Len() int { return c.length }

// IsNull reports whether the column is the all-null constant.
func (c *Constant) IsNull(int) bool { return c.value == nil }

// Value returns the stored value regardless of row index.
func (c *Constant) Value(int) any { return c.value }

// Dictionary resolves an index vector through a shared values column.
// A row is null when its own mask says so or when the referenced
// dictionary entry is null.
type Dictionary struct {
	typ     *types.Type
	indices []int
	nulls   []bool
	values  Scalar
}

// NewDictionary creates a dictionary column. nulls may be nil.
func NewDictionary(indices []int, nulls []bool, values Scalar) *Dictionary {
	if nulls != nil && len(nulls) != len(indices) {
		panic(fmt.Sprintf("columnar: %d nulls for %d indices", len(nulls), len(indices)))
	}
	return &Dictionary{typ: values.DataType(), indices: indices, nulls: nulls, values: values}
}

// DataType returns the logical type of the dictionary values.
func (c *Dictionary) DataType() *types.Type { return c.typ }

// Len returns the row count.
func (c *Dictionary) Len() int { return len(c.indices) }

// IsNull reports whether row i resolves to a null.
func (c *Dictionary) IsNull(i int) bool {
	if c.nulls != nil && c.nulls[i] {
		return true
	}
	return c.values.IsNull(c.indices[i])
}

// Value resolves the index at row i and loads the dictionary value.
func (c *Dictionary) Value(i int) any { return c.values.Value(c.indices[i]) }

// Lazy defers materialization of a column until it is first touched.
// The loader runs at most once; the encoder's adapter forces lazy columns
// before reading them.
type Lazy struct {
	typ    *types.Type
	length int
	load   func() Column
	inner  Column
}

// NewLazy creates a lazy column. The loader must produce a column of the
// given type and length.
func NewLazy(typ *types.Type, length int, load func() Column) *Lazy {
	return &Lazy{typ: typ, length: length, load: load}
}

// Force materializes and returns the underlying column.
func (c *Lazy) Force() Column {
	if c.inner == nil {
		c.inner = c.load()
		if c.inner.Len() != c.length || !c.inner.DataType().Equal(c.typ) {
			panic(fmt.Sprintf("columnar: lazy loader produced %s[%d], want %s[%d]",
				c.inner.DataType(), c.inner.Len(), c.typ, c.length))
		}
	}
	return c.inner
}

// DataType returns the column's logical type without forcing it.
func (c *Lazy) DataType() *types.Type { return c.typ }

// Len returns the row count without forcing the column.
func (c *Lazy) Len() int { return c.length }

// IsNull forces the column and reports nullness of row i.
func (c *Lazy) IsNull(i int) bool { return c.Force().IsNull(i) }
