package pixel

import (
	"errors"
	"fmt"
)

// ErrUnknownPixelType is returned when a code has no registered width.
var ErrUnknownPixelType = errors.New("unknown pixel type")

// Type is a pixel-type code as stored in the header mode field.
type Type int32

// Pixel-type codes.
const (
	AsIs         Type = -1
	Byte         Type = 0
	Short        Type = 1
	Float        Type = 2
	ComplexShort Type = 3
	Complex      Type = 4
	EMTOM        Type = 5
	UShort       Type = 6
	Long         Type = 7
)

var sizes = map[Type]int{
	Byte:         1,
	Short:        2,
	Float:        4,
	ComplexShort: 4, // two int16
	Complex:      8, // two float32
	EMTOM:        2,
	UShort:       2,
	Long:         4,
}

var names = map[Type]string{
	AsIs:         "AS_IS",
	Byte:         "BYTE",
	Short:        "SHORT",
	Float:        "FLOAT",
	ComplexShort: "COMPLEX_SHORT",
	Complex:      "COMPLEX",
	EMTOM:        "EMTOM",
	UShort:       "USHORT",
	Long:         "LONG",
}

// Size returns the byte width of one sample of the given type.
func Size(t Type) (int, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownPixelType, int32(t))
	}
	return sizes[t], nil
}

// Valid reports whether t has a registered width.
func (t Type) Valid() bool {
	_, ok := sizes[t]
	return ok
}

func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int32(t))
}
