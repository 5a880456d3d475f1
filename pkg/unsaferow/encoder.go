package unsaferow

import (
	"time"

	"go.uber.org/zap"

	"github.com/ajitpratap0/rowforge/pkg/columnar"
	"github.com/ajitpratap0/rowforge/pkg/errors"
	"github.com/ajitpratap0/rowforge/pkg/metrics"
	"github.com/ajitpratap0/rowforge/pkg/pool"
	"github.com/ajitpratap0/rowforge/pkg/types"
)

// EncoderConfig configures a batch Encoder. Zero values fall back to a
// no-op logger, no metrics, and the global buffer pool.
type EncoderConfig struct {
	Logger  *zap.Logger
	Metrics *metrics.Collector
	Buffers *pool.BufferPool
}

// Encoder drives row-at-a-time serialization of whole row columns into
// pooled buffers. The encoder itself is stateless between rows and safe
// for concurrent use; each encoded row owns its buffer until released.
type Encoder struct {
	typ     *types.Type
	logger  *zap.Logger
	metrics *metrics.Collector
	buffers *pool.BufferPool
}

// NewEncoder creates an encoder for the given row type.
func NewEncoder(typ *types.Type, cfg *EncoderConfig) (*Encoder, error) {
	if typ.Kind() != types.Row {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"unsaferow: encoder requires a row type, got %s", typ)
	}
	e := &Encoder{typ: typ}
	if cfg != nil {
		e.logger = cfg.Logger
		e.metrics = cfg.Metrics
		e.buffers = cfg.Buffers
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.buffers == nil {
		e.buffers = pool.GlobalBufferPool
	}
	return e, nil
}

// EncodeRow serializes one row of the column into a pooled buffer and
// returns it, or nil for a top-level null row. Release the buffer when the
// bytes have been consumed.
func (e *Encoder) EncodeRow(col columnar.Column, row int) ([]byte, error) {
	size, null := SerializedSize(e.typ, col, row)
	if null {
		e.metrics.ObserveNull()
		return nil, nil
	}

	start := time.Now()
	buf := e.buffers.Get(size)
	r := serializeColumn(e.typ, col, row, buf)
	if r.Null {
		e.buffers.Put(buf)
		e.metrics.ObserveNull()
		return nil, nil
	}
	if r.Size != size {
		e.buffers.Put(buf)
		return nil, errors.Newf(errors.ErrorTypeInternal,
			"unsaferow: row %d serialized to %d bytes, sized %d", row, r.Size, size)
	}
	e.metrics.ObserveRow(r.Size, time.Since(start))
	return buf[:r.Size], nil
}

// EncodeBatch serializes every row of the column. Null rows yield nil
// entries, preserving row positions.
func (e *Encoder) EncodeBatch(col columnar.Column) ([][]byte, error) {
	n := unwrap(col).Len()
	rows := make([][]byte, n)
	for i := 0; i < n; i++ {
		buf, err := e.EncodeRow(col, i)
		if err != nil {
			return nil, err
		}
		rows[i] = buf
	}
	e.logger.Debug("encoded batch",
		zap.Int("rows", n),
		zap.String("type", e.typ.String()))
	return rows, nil
}

// Release returns a buffer obtained from EncodeRow to the pool.
func (e *Encoder) Release(buf []byte) {
	if buf != nil {
		e.buffers.Put(buf)
	}
}
