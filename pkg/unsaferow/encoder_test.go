package unsaferow

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/rowforge/pkg/columnar"
	"github.com/ajitpratap0/rowforge/pkg/metrics"
	"github.com/ajitpratap0/rowforge/pkg/testutil"
	"github.com/ajitpratap0/rowforge/pkg/types"
)

func TestEncoderRejectsNonRowType(t *testing.T) {
	_, err := NewEncoder(types.ArrayOf(i32), nil)
	assert.Error(t, err)
}

func TestEncoderBatch(t *testing.T) {
	typ, row := fixedRowColumn()
	enc, err := NewEncoder(typ, &EncoderConfig{
		Logger:  testutil.TestLogger(t),
		Metrics: metrics.NewCollector("test", prometheus.NewRegistry()),
	})
	require.NoError(t, err)

	encoded, err := enc.EncodeBatch(row)
	require.NoError(t, err)
	require.Len(t, encoded, 5)

	for i, got := range encoded {
		require.NotNil(t, got, "row %d", i)
		want := testBuffer()
		r := SerializeColumn(typ, row, i, want)
		require.False(t, r.Null)
		assert.Equal(t, want[:r.Size], got, "row %d", i)
		enc.Release(got)
	}
}

func TestEncoderNullRow(t *testing.T) {
	typ := types.RowOf(i64)
	child := columnar.NewFlat(i64, []int64{7, 8}, nil)
	row := columnar.NewRow(typ, 2, []bool{false, true}, []columnar.Column{child})

	enc, err := NewEncoder(typ, &EncoderConfig{
		Metrics: metrics.NewCollector("nulls", prometheus.NewRegistry()),
	})
	require.NoError(t, err)

	encoded, err := enc.EncodeBatch(row)
	require.NoError(t, err)
	require.Len(t, encoded, 2)
	assert.NotNil(t, encoded[0])
	assert.Nil(t, encoded[1])
	enc.Release(encoded[0])
}

func TestEncoderVarLengthRows(t *testing.T) {
	typ := types.RowOf(i64, str)
	ids := columnar.NewFlat(i64, []int64{1, 2, 3}, nil)
	names := columnar.NewFlat(str, []string{"a", "somewhat longer value", ""}, []bool{false, false, true})
	row := columnar.NewRow(typ, 3, nil, []columnar.Column{ids, names})

	enc, err := NewEncoder(typ, nil)
	require.NoError(t, err)

	encoded, err := enc.EncodeBatch(row)
	require.NoError(t, err)
	for i, got := range encoded {
		require.NotNil(t, got, "row %d", i)
		assert.Zero(t, len(got)%8, "row %d not word aligned", i)
		enc.Release(got)
	}
}
