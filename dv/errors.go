// Package dv provides random-access reading and writing of DV/MRC-style
// image volumes: a fixed 1024-byte header followed by an optional extended
// header and a run of equally sized 2D sections addressed by (z, w, t).
package dv

import (
	"errors"

	"github.com/robert-malhotra/go-dv/internal/pixel"
)

// Common errors
var (
	ErrIO                        = errors.New("i/o failure")
	ErrUnrecognizedFormat        = errors.New("not a recognized DV file")
	ErrClosed                    = errors.New("file is closed")
	ErrUnknownPixelType          = pixel.ErrUnknownPixelType
	ErrTimeIndexOutOfRange       = errors.New("time index out of range")
	ErrWavelengthIndexOutOfRange = errors.New("wavelength index out of range")
	ErrSectionIndexOutOfRange    = errors.New("section index out of range")
	ErrInvalidArgument           = errors.New("invalid argument")
	ErrNoHeader                  = errors.New("no header loaded or written")
)
