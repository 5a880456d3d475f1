package columnar

import (
	"fmt"

	"github.com/ajitpratap0/rowforge/pkg/types"
)

// Flat is a plain value vector with an optional null mask. The type
// parameter is the Go representation of the column's logical kind.
type Flat[T any] struct {
	typ    *types.Type
	values []T
	nulls  []bool
}

// NewFlat creates a flat column over the given values. nulls may be nil
// when no row is null; otherwise it must have one entry per value. The
// slices are retained, not copied.
func NewFlat[T any](typ *types.Type, values []T, nulls []bool) *Flat[T] {
	if nulls != nil && len(nulls) != len(values) {
		panic(fmt.Sprintf("columnar: %d nulls for %d values", len(nulls), len(values)))
	}
	return &Flat[T]{typ: typ, values: values, nulls: nulls}
}

// DataType returns the column's logical type.
func (c *Flat[T]) DataType() *types.Type { return c.typ }

// Len returns the row count.
func (c *Flat[T]) Len() int { return len(c.values) }

// IsNull reports whether row i is null.
func (c *Flat[T]) IsNull(i int) bool { return c.nulls != nil && c.nulls[i] }

// Value returns the value at row i.
func (c *Flat[T]) Value(i int) any { return c.values[i] }

// At returns the typed value at row i, avoiding the interface boxing of
// Value for callers that know T.
func (c *Flat[T]) At(i int) T { return c.values[i] }
