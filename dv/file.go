package dv

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	binpkg "github.com/robert-malhotra/go-dv/internal/binary"
	"github.com/robert-malhotra/go-dv/internal/byteorder"
)

// File is a volume file bound to one on-disk path. It owns its descriptor
// exclusively; two Files must not be open on the same path at once.
//
// A File is not safe for concurrent use.
type File struct {
	path      string
	file      *os.File
	order     binary.ByteOrder
	header    Header
	hasHeader bool
	closed    bool
	log       *zap.Logger
}

// Open opens an existing volume file for reading and writing, detects its
// byte order and loads its header.
func Open(path string, opts ...FileOption) (*File, error) {
	options := defaultFileOptions()
	for _, opt := range opts {
		opt(options)
	}

	osFile, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: opening file: %w", ErrIO, err)
	}

	order, err := byteorder.Detect(osFile)
	if err != nil {
		osFile.Close()
		if errors.Is(err, byteorder.ErrUnrecognized) {
			return nil, fmt.Errorf("%w: %s", ErrUnrecognizedFormat, path)
		}
		return nil, fmt.Errorf("%w: reading byte-order marker: %w", ErrIO, err)
	}

	hdr, err := readHeader(binpkg.NewReader(osFile, binpkg.Config{ByteOrder: order}))
	if err != nil {
		osFile.Close()
		return nil, err
	}

	options.logger.Debug("opened volume",
		zap.String("path", path),
		zap.Stringer("byte_order", order),
		zap.Int32("nx", hdr.NX), zap.Int32("ny", hdr.NY), zap.Int32("nz", hdr.NZ),
		zap.Stringer("mode", hdr.Mode))

	return &File{
		path:      path,
		file:      osFile,
		order:     order,
		header:    hdr,
		hasHeader: true,
		log:       options.logger,
	}, nil
}

// Close releases the descriptor. Closing a closed file is a no-op.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.log.Debug("closing volume", zap.String("path", f.path))
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("%w: closing file: %w", ErrIO, err)
	}
	return nil
}

// Reopen opens the file's path again after Close, without truncating it.
// The in-memory header is kept. Reopening an open file is a no-op.
func (f *File) Reopen() error {
	if !f.closed {
		return nil
	}
	osFile, err := os.OpenFile(f.path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("%w: reopening file: %w", ErrIO, err)
	}
	f.file = osFile
	f.closed = false
	f.log.Debug("reopened volume", zap.String("path", f.path))
	return nil
}

// IsClosed reports whether the file is closed.
func (f *File) IsClosed() bool {
	return f.closed
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// ByteOrder returns the byte order of the file.
func (f *File) ByteOrder() binary.ByteOrder {
	return f.order
}

// Header returns a copy of the last header loaded or written. It never
// touches the underlying file, so it works on a closed file too.
func (f *File) Header() Header {
	return f.header
}

// HasHeader reports whether a header has been loaded or written.
func (f *File) HasHeader() bool {
	return f.hasHeader
}

// AxisSizes returns the size of each axis in AxisOrder, keyed by the axis
// letter: C (wavelengths), T (time points), Z (planes), Y and X.
func (f *File) AxisSizes() map[string]int {
	all := f.axisTable()
	order := f.header.AxisOrder()
	sizes := make(map[string]int, len(order))
	for _, axis := range order {
		sizes[string(axis)] = all[axis]
	}
	return sizes
}

// Shape returns the axis sizes as a slice ordered by AxisOrder.
func (f *File) Shape() []int {
	all := f.axisTable()
	order := f.header.AxisOrder()
	shape := make([]int, 0, len(order))
	for _, axis := range order {
		shape = append(shape, all[axis])
	}
	return shape
}

func (f *File) axisTable() map[rune]int {
	h := &f.header
	return map[rune]int{
		'C': int(h.NumWaves),
		'T': int(h.NumTimes),
		'Z': h.PlaneCount(),
		'Y': int(h.NY),
		'X': int(h.NX),
	}
}
