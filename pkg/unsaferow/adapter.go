package unsaferow

import (
	"github.com/ajitpratap0/rowforge/pkg/columnar"
	"github.com/ajitpratap0/rowforge/pkg/errors"
	"github.com/ajitpratap0/rowforge/pkg/types"
)

// unwrap forces lazy columns so the writers always see a materialized
// encoding. Constant and dictionary columns resolve values through their
// own Value methods and need no unwrapping here.
func unwrap(col columnar.Column) columnar.Column {
	for {
		l, ok := col.(*columnar.Lazy)
		if !ok {
			return col
		}
		col = l.Force()
	}
}

// colIsNull reports nullness of row i, forcing lazy columns first.
// Nullness is always checked before value extraction.
func colIsNull(col columnar.Column, i int) bool {
	return unwrap(col).IsNull(i)
}

// scalarAt loads the scalar value of row i, resolving constant and
// dictionary encodings through the column's Value method.
func scalarAt(col columnar.Column, i int) any {
	sc, ok := unwrap(col).(columnar.Scalar)
	if !ok {
		panic(errors.Newf(errors.ErrorTypeValidation,
			"unsaferow: %s column %T has no scalar access", col.DataType(), col))
	}
	return sc.Value(i)
}

func asArray(t *types.Type, col columnar.Column) columnar.Array {
	arr, ok := unwrap(col).(columnar.Array)
	if !ok {
		badColumn(t, col)
	}
	return arr
}

func asMap(t *types.Type, col columnar.Column) columnar.Map {
	m, ok := unwrap(col).(columnar.Map)
	if !ok {
		badColumn(t, col)
	}
	return m
}

func asRow(t *types.Type, col columnar.Column) columnar.Row {
	r, ok := unwrap(col).(columnar.Row)
	if !ok {
		badColumn(t, col)
	}
	if r.NumChildren() != t.NumFields() {
		panic(errors.Newf(errors.ErrorTypeValidation,
			"unsaferow: row column has %d children for %d fields", r.NumChildren(), t.NumFields()))
	}
	return r
}

func badColumn(t *types.Type, col columnar.Column) {
	panic(errors.Newf(errors.ErrorTypeValidation,
		"unsaferow: column %T does not match type %s", col, t))
}

// columnElems builds an element source over a child-column run
// [off, off+n), the shared shape of array element and map key/value runs.
func columnElems(elem *types.Type, elems columnar.Column, off, n int) elemSource {
	return elemSource{
		n:    n,
		null: func(i int) bool { return colIsNull(elems, off+i) },
		value: func(i int) any {
			return scalarAt(elems, off+i)
		},
		write: func(i int, out []byte) Result {
			return serializeColumn(elem, elems, off+i, out)
		},
	}
}
