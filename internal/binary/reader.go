// Package binary provides byte-order aware field I/O for fixed-layout records.
package binary

import (
	"encoding/binary"
	"io"
	"math"
)

// Reader decodes fixed-width fields from an io.ReaderAt in a fixed byte
// order. The first failed read is sticky: later reads return zero values and
// Err reports the original failure.
type Reader struct {
	r     io.ReaderAt
	order binary.ByteOrder
	pos   int64
	err   error
}

// Config holds the byte order shared by readers and writers of one file.
type Config struct {
	ByteOrder binary.ByteOrder
}

// DefaultConfig returns a little-endian configuration.
func DefaultConfig() Config {
	return Config{ByteOrder: binary.LittleEndian}
}

// NewReader creates a reader positioned at offset 0.
func NewReader(r io.ReaderAt, cfg Config) *Reader {
	if cfg.ByteOrder == nil {
		cfg = DefaultConfig()
	}
	return &Reader{r: r, order: cfg.ByteOrder}
}

// Err returns the first error encountered by the reader.
func (r *Reader) Err() error {
	return r.err
}

// ReadBytes reads exactly n bytes from the current position.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := r.r.ReadAt(buf, r.pos); err != nil {
		r.err = err
		return nil, err
	}
	r.pos += int64(n)
	return buf, nil
}

// ReadInto fills dst from the current position.
func (r *Reader) ReadInto(dst []byte) error {
	buf, err := r.ReadBytes(len(dst))
	if err != nil {
		return err
	}
	copy(dst, buf)
	return nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() uint16 {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0
	}
	return r.order.Uint16(buf)
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() uint32 {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0
	}
	return r.order.Uint32(buf)
}

// ReadInt16 reads a signed 16-bit integer.
func (r *Reader) ReadInt16() int16 {
	return int16(r.ReadUint16())
}

// ReadInt32 reads a signed 32-bit integer.
func (r *Reader) ReadInt32() int32 {
	return int32(r.ReadUint32())
}

// ReadFloat32 reads an IEEE-754 single-precision value.
func (r *Reader) ReadFloat32() float32 {
	return math.Float32frombits(r.ReadUint32())
}
