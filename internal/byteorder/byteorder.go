// Package byteorder classifies the byte order of a volume file from the
// two-byte ID marker stored at a fixed header offset.
//
// The marker is the 16-bit value 0xC0A0. A little-endian writer stores it as
// A0 C0 and a big-endian writer as C0 A0; any other pair means the file is
// not in this format.
package byteorder

import (
	"encoding/binary"
	"errors"
	"io"
)

// MarkerOffset is the byte offset of the ID marker within the header.
const MarkerOffset = 96

// ID is the marker value as a native 16-bit integer.
const ID uint16 = 0xC0A0

// SignedID is ID as the signed header field stores it.
const SignedID int16 = -0x3F60

// ErrUnrecognized is returned when the marker matches neither byte order.
var ErrUnrecognized = errors.New("unrecognized byte-order marker")

var (
	littleMarker = [2]byte{0xA0, 0xC0}
	bigMarker    = [2]byte{0xC0, 0xA0}
)

// Detect reads the marker from r and returns the byte order it encodes.
// A file too short to contain the marker is unrecognized.
func Detect(r io.ReaderAt) (binary.ByteOrder, error) {
	var buf [2]byte
	if _, err := r.ReadAt(buf[:], MarkerOffset); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrUnrecognized
		}
		return nil, err
	}
	return Classify(buf)
}

// Classify maps a marker pair to its byte order.
func Classify(marker [2]byte) (binary.ByteOrder, error) {
	switch marker {
	case littleMarker:
		return binary.LittleEndian, nil
	case bigMarker:
		return binary.BigEndian, nil
	default:
		return nil, ErrUnrecognized
	}
}

// Marker returns the bytes a file of the given order carries at MarkerOffset.
func Marker(order binary.ByteOrder) [2]byte {
	var buf [2]byte
	order.PutUint16(buf[:], ID)
	return buf
}
