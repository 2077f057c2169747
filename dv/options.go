package dv

import (
	"encoding/binary"

	"go.uber.org/zap"
)

// FileOption configures how a file is opened or created.
type FileOption func(*fileOptions)

type fileOptions struct {
	order  binary.ByteOrder
	logger *zap.Logger
}

func defaultFileOptions() *fileOptions {
	return &fileOptions{
		order:  binary.LittleEndian,
		logger: zap.NewNop(),
	}
}

// WithByteOrder sets the byte order used by Create. Open always uses the
// order recorded in the file and ignores this option.
func WithByteOrder(order binary.ByteOrder) FileOption {
	return func(o *fileOptions) {
		if order != nil {
			o.order = order
		}
	}
}

// WithLogger attaches a logger for debug events.
func WithLogger(l *zap.Logger) FileOption {
	return func(o *fileOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
