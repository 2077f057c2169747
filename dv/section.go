package dv

import (
	"fmt"
	"io"
)

// ComputeSectionOffset returns the byte offset of section (z, w, t).
//
// Sections are always addressed as if stored with z fastest, then
// wavelength, then time, whatever Interleaved declares. Files written by the
// legacy tools follow this layout. AxisSizes and the offset arithmetic
// disagree for non-default interleave codes.
func (f *File) ComputeSectionOffset(z, w, t int) (int64, error) {
	if !f.hasHeader {
		return 0, ErrNoHeader
	}
	h := &f.header
	planes := h.PlaneCount()

	if t < 0 || t >= int(h.NumTimes) {
		return 0, fmt.Errorf("%w: t=%d, num_times=%d", ErrTimeIndexOutOfRange, t, h.NumTimes)
	}
	if w < 0 || w >= int(h.NumWaves) {
		return 0, fmt.Errorf("%w: w=%d, num_waves=%d", ErrWavelengthIndexOutOfRange, w, h.NumWaves)
	}
	if z < 0 || z >= planes {
		return 0, fmt.Errorf("%w: z=%d, planes=%d", ErrSectionIndexOutOfRange, z, planes)
	}

	frame, err := h.FrameSize()
	if err != nil {
		return 0, err
	}
	if h.InBSym < 0 {
		return 0, fmt.Errorf("%w: extended header length %d", ErrInvalidArgument, h.InBSym)
	}
	index := int64(t)*int64(h.NumWaves)*int64(planes) + int64(w)*int64(planes) + int64(z)
	return f.dataOffset() + index*frame, nil
}

// SeekToSection validates (z, w, t) and positions the file at that section.
func (f *File) SeekToSection(z, w, t int) error {
	if f.closed {
		return ErrClosed
	}
	off, err := f.ComputeSectionOffset(z, w, t)
	if err != nil {
		return err
	}
	if _, err := f.file.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seeking to section: %w", ErrIO, err)
	}
	return nil
}

// ReadSection reads one frame at the current position into buf and leaves
// the position at the start of the next frame. buf must hold at least one
// frame.
func (f *File) ReadSection(buf []byte) error {
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
	if _, err := io.ReadFull(f.file, buf[:size]); err != nil {
		return fmt.Errorf("%w: reading section: %w", ErrIO, err)
	}
	return nil
}

// ReadSectionAt positions the file at section (z, w, t) and reads one frame.
func (f *File) ReadSectionAt(buf []byte, z, w, t int) error {
	if err := f.SeekToSection(z, w, t); err != nil {
		return err
	}
	return f.ReadSection(buf)
}

// FrameSize returns the byte size of one section.
func (f *File) FrameSize() (int64, error) {
	return f.frameSize()
}

func (f *File) frameSize() (int64, error) {
	if !f.hasHeader {
		return 0, ErrNoHeader
	}
	return f.header.FrameSize()
}

// dataOffset is where the first frame starts: after the fixed header and the
// extended header.
func (f *File) dataOffset() int64 {
	return HeaderSize + int64(f.header.InBSym)
}
