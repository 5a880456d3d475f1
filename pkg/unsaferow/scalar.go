package unsaferow

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/ajitpratap0/rowforge/pkg/errors"
	"github.com/ajitpratap0/rowforge/pkg/types"
)

// putFixed writes the little-endian representation of a fixed-width value
// into out. Exactly Kind.Width() bytes are written; slot zeroing is the
// caller's concern.
func putFixed(k types.Kind, v any, out []byte) {
	switch k {
	case types.Bool:
		b, ok := v.(bool)
		if !ok {
			badValue(k, v)
		}
		if b {
			out[0] = 1
		} else {
			out[0] = 0
		}
	case types.Int8:
		n, ok := v.(int8)
		if !ok {
			badValue(k, v)
		}
		out[0] = byte(n)
	case types.Int16:
		n, ok := v.(int16)
		if !ok {
			badValue(k, v)
		}
		binary.LittleEndian.PutUint16(out, uint16(n))
	case types.Int32:
		n, ok := v.(int32)
		if !ok {
			badValue(k, v)
		}
		binary.LittleEndian.PutUint32(out, uint32(n))
	case types.Int64:
		n, ok := v.(int64)
		if !ok {
			badValue(k, v)
		}
		binary.LittleEndian.PutUint64(out, uint64(n))
	case types.Float32:
		f, ok := v.(float32)
		if !ok {
			badValue(k, v)
		}
		binary.LittleEndian.PutUint32(out, math.Float32bits(f))
	case types.Float64:
		f, ok := v.(float64)
		if !ok {
			badValue(k, v)
		}
		binary.LittleEndian.PutUint64(out, math.Float64bits(f))
	case types.Timestamp:
		t, ok := v.(time.Time)
		if !ok {
			badValue(k, v)
		}
		binary.LittleEndian.PutUint64(out, uint64(timestampMicros(t)))
	default:
		panic(errors.Newf(errors.ErrorTypeValidation, "unsaferow: %s is not fixed-width", k))
	}
}

// timestampMicros normalizes a timestamp to signed microseconds since the
// epoch: seconds*1e6 + nanos/1e3 as signed arithmetic, so negative seconds
// compose with positive sub-second nanos.
func timestampMicros(t time.Time) int64 {
	return t.Unix()*1_000_000 + int64(t.Nanosecond())/1_000
}

func badValue(k types.Kind, v any) {
	panic(errors.Newf(errors.ErrorTypeValidation, "unsaferow: %T value for %s field", v, k))
}
