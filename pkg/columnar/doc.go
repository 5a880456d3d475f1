// Package columnar provides the read-only columnar inputs consumed by the
// UnsafeRow encoder.
//
// # Overview
//
// A Column is a typed, positionally indexed, read-only view of one column of
// data. The package implements the encodings a query engine hands to a
// row serializer:
//
//   - Flat: a plain typed value vector with an optional null mask
//   - Constant: a single value (or null) repeated for every row
//   - Dictionary: an index vector resolved through a values column
//   - Lazy: a column materialized on first access
//   - ArrayData, MapData, RowData: nested containers built from offsets,
//     lengths and child columns
//
// The encoder reaches scalars through the Scalar interface and nested data
// through the Array, Map and Row interfaces; it never depends on a concrete
// encoding. Lazy columns are forced transparently by the encoder's adapter.
//
// # Building columns
//
// Columns are built either directly from typed slices:
//
//	col := columnar.NewFlat(types.Primitive(types.Int64), []int64{1, 2, 3}, nil)
//
// or incrementally from loosely typed values (e.g. decoded JSON) through a
// Builder, which coerces values to the column's logical type:
//
//	b := columnar.NewBuilder(types.ArrayOf(types.Primitive(types.Int32)))
//	_ = b.Append([]any{1, 2, 3})
//	col := b.Build()
//
// Arrow record batches are bridged with FromArrow, which converts an
// arrow.Array (including nested lists, maps and structs) into the
// equivalent Column.
//
// # Concurrency
//
// Columns are immutable after construction and safe for concurrent reads,
// with one exception: forcing a Lazy column is not synchronized and must
// happen-before concurrent reads.
package columnar
