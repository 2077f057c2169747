package binary

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bytesReaderAt wraps a byte slice to implement io.ReaderAt.
type bytesReaderAt []byte

func (b bytesReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(b)) {
		return 0, io.EOF
	}
	n := copy(p, b[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func TestReaderByteOrder(t *testing.T) {
	data := bytesReaderAt{0x02, 0x01, 0x78, 0x56, 0x34, 0x12}

	le := NewReader(data, DefaultConfig())
	assert.Equal(t, uint16(0x0102), le.ReadUint16())
	assert.Equal(t, uint32(0x12345678), le.ReadUint32())
	require.NoError(t, le.Err())

	be := NewReader(data, Config{ByteOrder: binary.BigEndian})
	assert.Equal(t, uint16(0x0201), be.ReadUint16())
	assert.Equal(t, uint32(0x78563412), be.ReadUint32())
	require.NoError(t, be.Err())
}

func TestReaderSigned(t *testing.T) {
	buf := make([]byte, 6)
	binary.LittleEndian.PutUint16(buf[0:], uint16(0xC0A0))
	binary.LittleEndian.PutUint32(buf[2:], uint32(0xFFFFFFFE))

	r := NewReader(bytesReaderAt(buf), DefaultConfig())
	assert.Equal(t, int16(-16224), r.ReadInt16())
	assert.Equal(t, int32(-2), r.ReadInt32())
	require.NoError(t, r.Err())
}

func TestReaderFloat32(t *testing.T) {
	tests := []struct {
		name  string
		order binary.ByteOrder
	}{
		{"little", binary.LittleEndian},
		{"big", binary.BigEndian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 4)
			tt.order.PutUint32(buf, math.Float32bits(-3.25))

			r := NewReader(bytesReaderAt(buf), Config{ByteOrder: tt.order})
			assert.Equal(t, float32(-3.25), r.ReadFloat32())
			require.NoError(t, r.Err())
		})
	}
}

func TestReaderStickyError(t *testing.T) {
	r := NewReader(bytesReaderAt{0x01, 0x02, 0x03}, DefaultConfig())

	assert.Equal(t, uint16(0x0201), r.ReadUint16())
	assert.Zero(t, r.ReadUint32())
	require.ErrorIs(t, r.Err(), io.EOF)

	// Once failed, everything after is a no-op.
	assert.Zero(t, r.ReadUint16())
	_, err := r.ReadBytes(1)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderDefaultOrder(t *testing.T) {
	r := NewReader(bytesReaderAt{0x02, 0x01}, Config{})
	assert.Equal(t, uint16(0x0102), r.ReadUint16())
}

func TestReaderReadInto(t *testing.T) {
	data := bytesReaderAt{0x00, 0x01, 0x02, 0x03, 0x04}
	r := NewReader(data, DefaultConfig())

	head := make([]byte, 2)
	require.NoError(t, r.ReadInto(head))
	assert.Equal(t, []byte{0x00, 0x01}, head)

	dst := make([]byte, 3)
	require.NoError(t, r.ReadInto(dst))
	assert.Equal(t, []byte{0x02, 0x03, 0x04}, dst)

	assert.ErrorIs(t, r.ReadInto(make([]byte, 1)), io.EOF)
}
