// Package unsaferow serializes columnar data into the UnsafeRow binary
// format: the compact, word-aligned, self-contained row encoding used by
// large-scale SQL engines for shuffle and broadcast.
//
// # Format
//
// A row serializes to a null bitmap, one 8-byte slot per field, and a
// variable-length region. Fixed-width values live in the low bytes of
// their slot; variable-width values live in the variable region behind an
// offset/length header word (32-bit offset relative to the row base in the
// high half, 32-bit length in the low half). Arrays emit an element count,
// a null bitmap, and either packed fixed-width elements or an offset table
// plus concatenated payloads. Maps emit a keys-block-size word followed by
// the keys array and the values array. Every container region is padded to
// a multiple of 8 bytes; scalars are little-endian; a set bitmap bit means
// null.
//
// # Entry points
//
//   - Serialize: the runtime-typed dispatcher; takes a type descriptor and
//     either a columnar.Column plus row index or a plain Go value.
//   - SerializeColumn (and the shape-specific SerializeArray, SerializeMap,
//     SerializeRow): column-driven encoding when the caller knows the shape.
//   - SerializeScalar / SerializeValue: value-driven encoding.
//   - SerializedSize: the exact byte footprint of a serialize call, for
//     sizing caller-owned buffers.
//   - Encoder: a batch driver that encodes whole row columns into pooled
//     buffers with metrics and logging.
//
// All serialize calls return a Result: either the byte count consumed at
// the cursor or a null indicator. Container-level counts are multiples of
// 8; the string/bytes leaf returns its logical length and the caller
// advances by the padded amount. Fixed-width leaves return 0.
//
// # Ownership and errors
//
// Output buffers are caller-owned; writers mutate a contiguous region and
// never allocate or grow. A buffer too small for the value, a type/column
// mismatch, or an unsupported kind is a programmer error and panics. A
// type/column mismatch, an unsupported kind, and a string or bytes payload
// that overruns the buffer panic with a structured *errors.Error; any other
// overrun panics with the runtime's index-out-of-range error. After such a
// panic the buffer contents are undefined. Null values are not errors and
// flow through Result.
//
// A single serialize call is strictly sequential and runs to completion;
// independent calls on disjoint buffers may run concurrently without
// synchronization.
package unsaferow
