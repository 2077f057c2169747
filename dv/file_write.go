package dv

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-dv/internal/byteorder"
)

// Create creates (or truncates) a volume file for reading and writing. No
// header is present until PutHeader is called; section addressing fails with
// ErrNoHeader until then.
func Create(path string, opts ...FileOption) (*File, error) {
	options := defaultFileOptions()
	for _, opt := range opts {
		opt(options)
	}

	osFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: creating file: %w", ErrIO, err)
	}

	marker := byteorder.Marker(options.order)
	options.logger.Debug("created volume",
		zap.String("path", path),
		zap.Stringer("byte_order", options.order),
		zap.Binary("marker", marker[:]))

	return &File{
		path:  path,
		file:  osFile,
		order: options.order,
		log:   options.logger,
	}, nil
}

// PutHeader writes h verbatim at offset 0 in the file's byte order and makes
// it the in-memory header. The record goes out in a single write, but the
// write is not atomic: an interrupted write can leave a corrupt header.
func (f *File) PutHeader(h Header) error {
	if f.closed {
		return ErrClosed
	}

	data := EncodeHeader(&h, f.order)
	n, err := f.file.WriteAt(data, 0)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("%w: writing header: %w", ErrIO, err)
	}
	// Leave the stream just past the header, as a sequential write would.
	if _, err := f.file.Seek(HeaderSize, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seeking past header: %w", ErrIO, err)
	}

	f.header = h
	f.hasHeader = true
	f.log.Debug("wrote header",
		zap.String("path", f.path),
		zap.Int32("nz", h.NZ),
		zap.Int16("num_waves", h.NumWaves),
		zap.Int16("num_times", h.NumTimes))
	return nil
}

// WriteSection writes one frame from buf at the current position. buf must
// hold at least one frame; only the first frame's worth of bytes is written.
func (f *File) WriteSection(buf []byte) error {
	if f.closed {
		return ErrClosed
	}
	size, err := f.frameSize()
	if err != nil {
		return err
	}
	if int64(len(buf)) < size {
		return fmt.Errorf("%w: buffer holds %d bytes, frame needs %d", ErrInvalidArgument, len(buf), size)
	}
	if _, err := f.file.Write(buf[:size]); err != nil {
		return fmt.Errorf("%w: writing section: %w", ErrIO, err)
	}
	return nil
}

// WriteSectionAt positions the file at section (z, w, t) and writes one frame.
func (f *File) WriteSectionAt(buf []byte, z, w, t int) error {
	if err := f.SeekToSection(z, w, t); err != nil {
		return err
	}
	return f.WriteSection(buf)
}
