package columnar

import (
	"fmt"

	"github.com/ajitpratap0/rowforge/pkg/types"
)

// run holds the offsets/lengths/nulls triple shared by array and map
// columns. Row i spans the child range [offsets[i], offsets[i]+lengths[i]).
type run struct {
	offsets []int
	lengths []int
	nulls   []bool
}

func newRun(offsets, lengths []int, nulls []bool) run {
	if len(offsets) != len(lengths) {
		panic(fmt.Sprintf("columnar: %d offsets for %d lengths", len(offsets), len(lengths)))
	}
	if nulls != nil && len(nulls) != len(offsets) {
		panic(fmt.Sprintf("columnar: %d nulls for %d rows", len(nulls), len(offsets)))
	}
	return run{offsets: offsets, lengths: lengths, nulls: nulls}
}

func (r *run) len() int          { return len(r.offsets) }
func (r *run) isNull(i int) bool { return r.nulls != nil && r.nulls[i] }

// ArrayData is an array column: per-row element runs over a shared child
// column.
type ArrayData struct {
	typ *types.Type
	run
	elements Column
}

// NewArray creates an array column of the given element column. The slices
// are retained, not copied.
func NewArray(typ *types.Type, offsets, lengths []int, nulls []bool, elements Column) *ArrayData {
	if typ.Kind() != types.Array {
		panic(fmt.Sprintf("columnar: NewArray with %s type", typ))
	}
	return &ArrayData{typ: typ, run: newRun(offsets, lengths, nulls), elements: elements}
}

// DataType returns the column's logical type.
func (c *ArrayData) DataType() *types.Type { return c.typ }

// Len returns the row count.
func (c *ArrayData) Len() int { return c.run.len() }

// IsNull reports whether row i is null.
func (c *ArrayData) IsNull(i int) bool { return c.run.isNull(i) }

// Offset returns the first child index of row i.
func (c *ArrayData) Offset(i int) int { return c.offsets[i] }

// Length returns the element count of row i.
func (c *ArrayData) Length(i int) int { return c.lengths[i] }

// Elements returns the shared child column.
func (c *ArrayData) Elements() Column { return c.elements }

// MapData is a map column: per-row key/value runs over two shared child
// columns indexed identically.
type MapData struct {
	typ *types.Type
	run
	keys   Column
	values Column
}

// NewMap creates a map column. Keys and values must cover the same child
// index space.
func NewMap(typ *types.Type, offsets, lengths []int, nulls []bool, keys, values Column) *MapData {
	if typ.Kind() != types.Map {
		panic(fmt.Sprintf("columnar: NewMap with %s type", typ))
	}
	return &MapData{typ: typ, run: newRun(offsets, lengths, nulls), keys: keys, values: values}
}

// DataType returns the column's logical type.
func (c *MapData) DataType() *types.Type { return c.typ }

// Len returns the row count.
func (c *MapData) Len() int { return c.run.len() }

// IsNull reports whether row i is null.
func (c *MapData) IsNull(i int) bool { return c.run.isNull(i) }

// Offset returns the first child index of row i.
func (c *MapData) Offset(i int) int { return c.offsets[i] }

// Length returns the entry count of row i.
func (c *MapData) Length(i int) int { return c.lengths[i] }

// Keys returns the shared keys column.
func (c *MapData) Keys() Column { return c.keys }

// Values returns the shared values column.
func (c *MapData) Values() Column { return c.values }

// RowData is a struct column; children are indexed by the outer row index.
type RowData struct {
	typ      *types.Type
	length   int
	nulls    []bool
	children []Column
}

// NewRow creates a row column over per-field child columns. Every child
// must be at least length rows long.
func NewRow(typ *types.Type, length int, nulls []bool, children []Column) *RowData {
	if typ.Kind() != types.Row {
		panic(fmt.Sprintf("columnar: NewRow with %s type", typ))
	}
	if typ.NumFields() != len(children) {
		panic(fmt.Sprintf("columnar: %d children for %d row fields", len(children), typ.NumFields()))
	}
	if nulls != nil && len(nulls) != length {
		panic(fmt.Sprintf("columnar: %d nulls for %d rows", len(nulls), length))
	}
	return &RowData{typ: typ, length: length, nulls: nulls, children: children}
}

// DataType returns the column's logical type.
func (c *RowData) DataType() *types.Type { return c.typ }

// Len returns the row count.
func (c *RowData) Len() int { return c.length }

// IsNull reports whether row i is null.
func (c *RowData) IsNull(i int) bool { return c.nulls != nil && c.nulls[i] }

// NumChildren returns the field count.
func (c *RowData) NumChildren() int { return len(c.children) }

// Child returns the column of field i.
func (c *RowData) Child(i int) Column { return c.children[i] }
