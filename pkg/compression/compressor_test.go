package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() []byte {
	// UnsafeRow-like payload: words with heavy zero padding.
	var buf bytes.Buffer
	for i := 0; i < 200; i++ {
		buf.Write([]byte{byte(i), 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
		buf.WriteString("Hello, World!\x00\x00\x00")
	}
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	data := testPayload()

	for _, algo := range Algorithms() {
		t.Run(string(algo), func(t *testing.T) {
			comp, err := NewCompressor(algo)
			require.NoError(t, err)
			assert.Equal(t, algo, comp.Algorithm())

			compressed, err := comp.Compress(data)
			require.NoError(t, err)
			decompressed, err := comp.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, data, decompressed)

			if algo != None {
				assert.Less(t, len(compressed), len(data))
			}
		})
	}
}

func TestStreamRoundTrip(t *testing.T) {
	data := testPayload()

	for _, algo := range Algorithms() {
		t.Run(string(algo), func(t *testing.T) {
			comp, err := NewCompressor(algo)
			require.NoError(t, err)

			var compressed bytes.Buffer
			require.NoError(t, comp.CompressStream(&compressed, bytes.NewReader(data)))

			var decompressed bytes.Buffer
			require.NoError(t, comp.DecompressStream(&decompressed, bytes.NewReader(compressed.Bytes())))
			assert.Equal(t, data, decompressed.Bytes())
		})
	}
}

func TestUnsupportedAlgorithm(t *testing.T) {
	_, err := NewCompressor("brotli")
	assert.Error(t, err)
}
