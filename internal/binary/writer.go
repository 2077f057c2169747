package binary

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer encodes fixed-width fields to an io.WriterAt in a fixed byte order.
// Like Reader, the first failure is sticky.
type Writer struct {
	w     io.WriterAt
	order binary.ByteOrder
	pos   int64
	err   error
}

// NewWriter creates a writer positioned at offset 0.
func NewWriter(w io.WriterAt, cfg Config) *Writer {
	if cfg.ByteOrder == nil {
		cfg = DefaultConfig()
	}
	return &Writer{w: w, order: cfg.ByteOrder}
}

// Err returns the first error encountered by the writer.
func (w *Writer) Err() error {
	return w.err
}

// WriteBytes writes the given bytes at the current position.
func (w *Writer) WriteBytes(data []byte) error {
	if w.err != nil {
		return w.err
	}
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.WriteAt(data, w.pos)
	w.pos += int64(n)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	w.err = err
	return err
}

// WriteUint16 writes an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) error {
	buf := make([]byte, 2)
	w.order.PutUint16(buf, v)
	return w.WriteBytes(buf)
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) error {
	buf := make([]byte, 4)
	w.order.PutUint32(buf, v)
	return w.WriteBytes(buf)
}

// WriteInt16 writes a signed 16-bit integer.
func (w *Writer) WriteInt16(v int16) error {
	return w.WriteUint16(uint16(v))
}

// WriteInt32 writes a signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v))
}

// WriteFloat32 writes an IEEE-754 single-precision value.
func (w *Writer) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

// Buffer is a growable in-memory io.WriterAt, used to assemble a record
// before it is written to the file in one call.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a buffer with the given initial length.
func NewBuffer(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// WriteAt implements io.WriterAt.
func (b *Buffer) WriteAt(p []byte, off int64) (n int, err error) {
	if int(off)+len(p) > len(b.buf) {
		newBuf := make([]byte, int(off)+len(p))
		copy(newBuf, b.buf)
		b.buf = newBuf
	}
	copy(b.buf[off:], p)
	return len(p), nil
}

// Bytes returns the buffer contents.
func (b *Buffer) Bytes() []byte {
	return b.buf
}
