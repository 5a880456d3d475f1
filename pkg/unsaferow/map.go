package unsaferow

import (
	"github.com/ajitpratap0/rowforge/pkg/bits"
	"github.com/ajitpratap0/rowforge/pkg/types"
)

// writeMap emits the map sub-format at out[0]:
//
//	[ keys-block-size word | keys array | values array ]
//
// Keys and values are two array bodies of the same length and entry order;
// the writer does not reorder, deduplicate or validate key uniqueness, and
// key nullness is passed through to the keys-array bitmap as the source
// reports it. Offsets inside each block are relative to that block's own
// base.
func writeMap(keyType, valueType *types.Type, keys, values elemSource, out []byte) Result {
	kr := writeArray(keyType, keys, out[8:])
	vr := writeArray(valueType, values, out[8+kr.Size:])
	bits.PutWord(out, uint64(kr.Size))
	return written(8 + kr.Size + vr.Size)
}
