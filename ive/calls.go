package ive

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-dv/dv"
)

// Summary is the subset of header fields returned by ReadHeaderSummary.
type Summary struct {
	IXYZ [3]int32 // nx, ny, nz
	MXYZ [3]int32 // mx, my, mz
	Mode dv.PixelType
	Min  float32
	Max  float32
	Mean float32
}

// Header returns the stream's current header (IMGetHdr).
func (t *Table) Header(istream int) (dv.Header, error) {
	f, err := t.File(istream)
	if err != nil {
		return dv.Header{}, err
	}
	return f.Header(), nil
}

// ReadHeaderSummary returns dimensions, sampling, mode and statistics
// (IMRdHdr).
func (t *Table) ReadHeaderSummary(istream int) (Summary, error) {
	h, err := t.Header(istream)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		IXYZ: [3]int32{h.NX, h.NY, h.NZ},
		MXYZ: [3]int32{h.MX, h.MY, h.MZ},
		Mode: h.Mode,
		Min:  h.AMin,
		Max:  h.AMax,
		Mean: h.AMean,
	}, nil
}

// SetConversion would toggle conversion of samples to float on read and
// write (IMAlCon). Samples are never converted; asking for conversion logs
// a warning.
func (t *Table) SetConversion(istream int, flag int) {
	if flag == 1 {
		t.log.Warn("IMAlCon is not implemented: conversion is not supported", zap.Int("stream", istream))
	}
}

// SetLabels would replace the image titles (IMAlLab). Not implemented; logs
// a warning. Use WriteHeader to set a title.
func (t *Table) SetLabels(istream int, labels string, n int) {
	t.log.Warn("IMAlLab is not implemented", zap.Int("stream", istream), zap.Int("titles", n))
}

// SetPrint would enable printing to stdout (IMAlPrt). Not implemented;
// enabling it logs a warning.
func (t *Table) SetPrint(flag int) {
	if flag == 1 {
		t.log.Warn("IMAlPrt is not implemented")
	}
}

// Position moves the stream to section (z, w, t) (IMPosnZWT). Returns 0 on
// success, 1 on failure.
func (t *Table) Position(istream, z, w, tp int) int {
	f, err := t.File(istream)
	if err == nil {
		err = f.SeekToSection(z, w, tp)
	}
	if err != nil {
		t.log.Error("position failed",
			zap.Int("stream", istream), zap.Int("z", z), zap.Int("w", w), zap.Int("t", tp), zap.Error(err))
		return 1
	}
	return 0
}

// ReadSection reads the next section into buf (IMRdSec). buf must hold at
// least nx*ny samples of the stored type.
func (t *Table) ReadSection(istream int, buf []byte) error {
	f, err := t.File(istream)
	if err == nil {
		err = f.ReadSection(buf)
	}
	if err != nil {
		t.log.Error("error reading section", zap.Int("stream", istream), zap.Error(err))
		return err
	}
	return nil
}

// WriteSection writes buf as the next section (IMWrSec).
func (t *Table) WriteSection(istream int, buf []byte) error {
	f, err := t.File(istream)
	if err == nil {
		err = f.WriteSection(buf)
	}
	if err != nil {
		t.log.Error("error writing section", zap.Int("stream", istream), zap.Error(err))
		return err
	}
	return nil
}

// PutHeader writes a complete header to the stream (IMPutHdr).
func (t *Table) PutHeader(istream int, h dv.Header) error {
	f, err := t.File(istream)
	if err != nil {
		return err
	}
	return f.PutHeader(h)
}

// WriteHeader stores the wavelength-0 statistics and a title, then writes
// the header (IMWrHdr).
//
// With TitleReplace the title becomes the first TitleWidth bytes of the
// label, NUL padded; the rest of the label is untouched. With TitleAppend
// the result is title + " " + the existing label, cut to TitleWidth. That is
// not a real append to the title list, but existing files depend on it.
func (t *Table) WriteHeader(istream int, title string, ntflag int, dmin, dmax, dmean float32) error {
	f, err := t.File(istream)
	if err != nil {
		return err
	}

	h := f.Header()
	h.AMin, h.AMax, h.AMean = dmin, dmax, dmean

	switch ntflag {
	case TitleReplace:
		setTitle(&h, title)
	case TitleAppend:
		// TODO: keep a real title list (bump NLab, write into the next free
		// slot) once no caller depends on this concatenation.
		setTitle(&h, title+" "+h.Title())
	default:
		return fmt.Errorf("%w: ntflag %d", dv.ErrInvalidArgument, ntflag)
	}

	return f.PutHeader(h)
}

// setTitle copies at most TitleWidth bytes of s into the label, stopping at
// a NUL and padding the rest of the first title slot with NULs.
func setTitle(h *dv.Header, s string) {
	slot := h.Label[:dv.TitleWidth]
	n := 0
	for n < len(slot) && n < len(s) && s[n] != 0 {
		slot[n] = s[n]
		n++
	}
	clear(slot[n:])
}

// ExtendedHeaderValues would return the extended-header integers and floats
// for section (z, w, t) (IMRtExHdrZWT). Not implemented; logs a warning and
// leaves ival and rval untouched.
func (t *Table) ExtendedHeaderValues(istream, z, w, tp int, ival []int32, rval []float32) {
	t.log.Warn("IMRtExHdrZWT is not implemented",
		zap.Int("stream", istream), zap.Int("z", z), zap.Int("w", w), zap.Int("t", tp))
}
