package unsaferow

import (
	"github.com/ajitpratap0/rowforge/pkg/bits"
	"github.com/ajitpratap0/rowforge/pkg/errors"
	"github.com/ajitpratap0/rowforge/pkg/types"
)

// putBytes writes b at the cursor and zeroes the padding up to the next
// word boundary. The returned length is the logical length len(b), not the
// padded footprint: readers decode the offset/length header with the
// logical length, and the enclosing container advances its cursor by the
// padded amount.
func putBytes(b, out []byte) int {
	padded := bits.RoundUp8(len(b))
	if len(out) < padded {
		panic(errors.Newf(errors.ErrorTypeValidation,
			"unsaferow: output buffer too small: need %d bytes, have %d", padded, len(out)))
	}
	copy(out, b)
	bits.Zero(out[len(b):padded])
	return len(b)
}

// bytesValue extracts the raw byte sequence of a String or Bytes value.
// The length always comes from the slice header, never from the payload.
func bytesValue(k types.Kind, v any) []byte {
	switch x := v.(type) {
	case string:
		return []byte(x)
	case []byte:
		return x
	default:
		badValue(k, v)
		return nil
	}
}
