// Package rowforge converts columnar query-engine data into the UnsafeRow
// binary row format: a compact, word-aligned, self-contained encoding a
// consumer can parse without external metadata, byte-compatible with the
// on-wire layout large-scale SQL engines use for shuffle and broadcast.
//
// The repository is organized as focused packages:
//
//   - pkg/types: logical type descriptors (primitives, array, map, row)
//   - pkg/columnar: read-only columnar inputs (flat, constant, dictionary,
//     lazy, nested) plus an Apache Arrow bridge
//   - pkg/unsaferow: the encoder core — scalar, string, array, map and row
//     writers, the runtime-typed dispatcher, exact size computation, and a
//     batch Encoder with pooled buffers and metrics
//   - pkg/bits: null-bitmap, little-endian word and padding helpers
//   - pkg/compression: output compression for encoded batches
//
// The rowforge CLI (cmd/rowforge) encodes NDJSON records against a YAML
// schema into framed UnsafeRow output.
//
// # Quick Start
//
// Encode one row of a columnar batch:
//
//	rowType := types.MustParse("row<id:int64,name:string>")
//	ids := columnar.NewFlat(types.Primitive(types.Int64), []int64{7}, nil)
//	names := columnar.NewFlat(types.Primitive(types.String), []string{"seven"}, nil)
//	batch := columnar.NewRow(rowType, 1, nil, []columnar.Column{ids, names})
//
//	size, _ := unsaferow.SerializedSize(rowType, batch, 0)
//	buf := make([]byte, size)
//	result := unsaferow.Serialize(rowType, batch, 0, buf)
//	// buf[:result.Size] holds one self-contained UnsafeRow.
package rowforge
