package dv

import "github.com/robert-malhotra/go-dv/internal/pixel"

// PixelType is the sample representation stored in Header.Mode.
type PixelType = pixel.Type

// Pixel types.
const (
	AsIs         = pixel.AsIs
	Byte         = pixel.Byte
	Short        = pixel.Short
	Float        = pixel.Float
	ComplexShort = pixel.ComplexShort
	Complex      = pixel.Complex
	EMTOM        = pixel.EMTOM
	UShort       = pixel.UShort
	Long         = pixel.Long
)

// PixelSize returns the byte width of one sample of type t.
func PixelSize(t PixelType) (int, error) {
	return pixel.Size(t)
}
