// Package ive provides the legacy stream-number surface over dv files.
//
// Older image-processing code addresses open images by a small integer
// stream number rather than by handle. A [Table] maps those numbers to open
// [dv.File] values. Methods that return an int follow the legacy convention
// of 0 for success and 1 for failure and report the cause on the table's
// logger; every other method returns the error to the caller.
//
// Several legacy entry points are accepted but do nothing except log a
// warning, because existing callers invoke them without relying on their
// effect.
//
// A Table is not safe for concurrent use.
package ive

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-dv/dv"
	"github.com/robert-malhotra/go-dv/internal/logger"
)

// Open modes.
const (
	ModeReadOnly = "ro"
	ModeNew      = "new"
)

// Title write modes for WriteHeader.
const (
	TitleReplace = 0
	TitleAppend  = 1
)

// ErrStreamNotFound is returned when no file is registered under a stream
// number.
var ErrStreamNotFound = errors.New("stream not found")

// Table maps stream numbers to open files.
type Table struct {
	files map[int]*dv.File
	log   *zap.Logger
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithLogger sets the logger that receives warnings and absorbed errors.
func WithLogger(l *zap.Logger) TableOption {
	return func(t *Table) {
		if l != nil {
			t.log = l
		}
	}
}

// NewTable returns an empty table.
func NewTable(opts ...TableOption) *Table {
	t := &Table{files: make(map[int]*dv.File)}
	for _, opt := range opts {
		opt(t)
	}
	if t.log == nil {
		t.log = logger.Default()
	}
	return t
}

// Default is the process-wide table used by callers that only have a
// stream number.
var Default = NewTable()

type tableKey struct{}

// NewContext returns a copy of ctx carrying t.
func NewContext(ctx context.Context, t *Table) context.Context {
	return context.WithValue(ctx, tableKey{}, t)
}

// FromContext returns the table carried by ctx, or Default.
func FromContext(ctx context.Context) *Table {
	if t, ok := ctx.Value(tableKey{}).(*Table); ok && t != nil {
		return t
	}
	return Default
}

// Len returns the number of open streams.
func (t *Table) Len() int {
	return len(t.files)
}

// File returns the file registered under istream.
func (t *Table) File(istream int) (*dv.File, error) {
	f, ok := t.files[istream]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrStreamNotFound, istream)
	}
	return f, nil
}

// Open opens name and attaches it to istream (IMOpen). mode is ModeReadOnly
// to open an existing file or ModeNew to create one. A stream number already
// in use is closed first, with a warning. Returns 0 on success, 1 on failure.
func (t *Table) Open(istream int, name, mode string, opts ...dv.FileOption) int {
	if prev, ok := t.files[istream]; ok {
		if err := prev.Close(); err != nil {
			t.log.Warn("closing reused stream failed", zap.Int("stream", istream), zap.Error(err))
		}
		delete(t.files, istream)
		t.log.Warn("reusing stream identifier; previous stream closed", zap.Int("stream", istream))
	}

	var (
		f   *dv.File
		err error
	)
	switch mode {
	case ModeReadOnly:
		f, err = dv.Open(name, opts...)
	case ModeNew:
		f, err = dv.Create(name, opts...)
	default:
		err = fmt.Errorf("%w: unknown file mode %q", dv.ErrInvalidArgument, mode)
	}
	if err != nil {
		t.log.Error("open failed",
			zap.Int("stream", istream), zap.String("name", name), zap.String("mode", mode), zap.Error(err))
		return 1
	}

	t.files[istream] = f
	return 0
}

// Close detaches istream and closes its file (IMClose).
func (t *Table) Close(istream int) error {
	f, err := t.File(istream)
	if err != nil {
		return err
	}
	delete(t.files, istream)
	return f.Close()
}

// CloseAll closes every open stream and empties the table.
func (t *Table) CloseAll() error {
	var errs []error
	for id, f := range t.files {
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("stream %d: %w", id, err))
		}
		delete(t.files, id)
	}
	return errors.Join(errs...)
}
