package snapshot

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/hupe1980/linkedvec/internal/hash"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressDecompress(t *testing.T) {
	data := bytes.Repeat([]byte("linkedvec snapshot payload "), 200)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			out, used, err := compress(data, c)
			require.NoError(t, err)
			assert.Equal(t, c, used)
			if c != CompressionNone {
				assert.Less(t, len(out), len(data))
			}

			back, err := decompress(out, used, len(data))
			require.NoError(t, err)
			assert.Equal(t, data, back)
		})
	}
}

func TestCompress_Empty(t *testing.T) {
	out, used, err := compress(nil, CompressionZSTD)
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, used)
	assert.Empty(t, out)
}

func TestDecompress_SizeMismatch(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4}, 512)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			out, used, err := compress(data, c)
			require.NoError(t, err)

			_, err = decompress(out, used, len(data)-1)
			require.Error(t, err)
		})
	}
}

func TestDecompress_Unknown(t *testing.T) {
	_, err := decompress([]byte{1}, Compression(5), 1)
	require.ErrorIs(t, err, ErrUnknownCompression)
}

func TestCompression_String(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "zstd", CompressionZSTD.String())
	assert.Equal(t, "Compression(9)", Compression(9).String())
}

func TestZstdPoolReuse(t *testing.T) {
	data := bytes.Repeat([]byte("abc"), 1000)
	for range 4 {
		out, err := compressZSTD(data)
		require.NoError(t, err)
		back, err := decompress(out, CompressionZSTD, len(data))
		require.NoError(t, err)
		assert.Equal(t, data, back)
	}
}

// inflating returns zstd frames that expand to n zero bytes, with and
// without the content size recorded in the frame header.
func inflating(t *testing.T, n int) map[string][]byte {
	t.Helper()
	zeros := make([]byte, n)

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	withSize := enc.EncodeAll(zeros, nil)

	var buf bytes.Buffer
	enc.Reset(&buf)
	_, err = enc.Write(zeros)
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	return map[string][]byte{"content size": withSize, "streamed": buf.Bytes()}
}

func TestDecompress_ZstdBoundedByRawSize(t *testing.T) {
	for name, frame := range inflating(t, 8<<20) {
		t.Run(name, func(t *testing.T) {
			require.Less(t, len(frame), 1<<20)

			_, err := decompress(frame, CompressionZSTD, 2)
			require.ErrorIs(t, err, ErrTooLarge)
		})
	}
}

func TestRead_ZstdInflationRejected(t *testing.T) {
	frame := inflating(t, 8<<20)["content size"]
	name := GoJSON{}.Name()

	var buf bytes.Buffer
	hdr := header{
		Magic:       magic,
		Version:     Version,
		Compression: CompressionZSTD,
		CodecLen:    uint16(len(name)),
		Count:       0,
		RawSize:     2,
		StoredSize:  uint64(len(frame)),
		Checksum:    hash.CRC32C(frame),
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, &hdr))
	buf.WriteString(name)
	buf.Write(frame)

	_, err := Read[int](&buf, func(o *Options) { o.MaxPayloadSize = 1 << 20 })
	require.ErrorIs(t, err, ErrTooLarge)
}
