package dv

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/robert-malhotra/go-dv/internal/byteorder"
	"github.com/robert-malhotra/go-dv/internal/pixel"
)

// Header layout constants.
const (
	HeaderSize  = 1024
	LabelSize   = 800
	TitleWidth  = 80
	MaxTitles   = LabelSize / TitleWidth
	MaxWaves    = 5
	ReservedLen = 24
)

// Values for Header.Interleaved.
const (
	ZTWSequence = 0 // non-interleaved
	WZTSequence = 1 // interleaved
	ZWTSequence = 2
)

// Header is the fixed 1024-byte record at the start of every volume file.
// Fields are listed in on-disk order. NZ counts every stored section, that
// is real z-planes × wavelengths × time points.
type Header struct {
	NX, NY, NZ int32
	Mode       PixelType

	NXStart, NYStart, NZStart int32
	MX, MY, MZ                int32
	XLen, YLen, ZLen          float32
	Alpha, Beta, Gamma        float32
	MapC, MapR, MapS          int32
	AMin, AMax, AMean         float32

	ISpg int32
	// InBSym is the length in bytes of the extended header.
	InBSym int32

	NDVID  int16
	NBlank int16
	NTst   int32

	Reserved [ReservedLen]byte

	NInt, NReal, NRes, NZFact int16

	Min2, Max2, Min3, Max3, Min4, Max4 float32

	FileType, Lens, N1, N2, V1, V2 int16

	Min5, Max5 float32

	NumTimes    int16
	Interleaved int16

	TiltX, TiltY, TiltZ float32

	NumWaves int16
	IWav     [MaxWaves]int16

	ZOrig, XOrig, YOrig float32

	NLab  int32
	Label [LabelSize]byte
}

// NewHeader returns an empty header carrying the DV ID marker and the
// conventional column/row/section axis mapping.
func NewHeader() Header {
	return Header{
		NDVID: byteorder.SignedID,
		MapC:  1,
		MapR:  2,
		MapS:  3,
	}
}

// PlaneCount returns the number of real z-planes. A zero wavelength or time
// count is treated as one.
func (h *Header) PlaneCount() int {
	return int(h.NZ) / max(int(h.NumWaves), 1) / max(int(h.NumTimes), 1)
}

// Sequence returns the declared ordering of the channel, time and z axes.
// Unknown interleave codes fall back to CTZ.
func (h *Header) Sequence() string {
	switch h.Interleaved {
	case ZTWSequence:
		return "CTZ"
	case WZTSequence:
		return "TZC"
	case ZWTSequence:
		return "TCZ"
	default:
		return "CTZ"
	}
}

// AxisOrder returns Sequence followed by the in-plane Y and X axes.
func (h *Header) AxisOrder() string {
	return h.Sequence() + "YX"
}

// PixelSize returns the byte width of one sample of the header's mode.
func (h *Header) PixelSize() (int, error) {
	return pixel.Size(h.Mode)
}

// FrameSize returns the byte size of one ny×nx section. Both extents must
// be positive.
func (h *Header) FrameSize() (int64, error) {
	if h.NX <= 0 || h.NY <= 0 {
		return 0, fmt.Errorf("%w: frame extent %dx%d", ErrInvalidArgument, h.NY, h.NX)
	}
	size, err := h.PixelSize()
	if err != nil {
		return 0, err
	}
	return int64(h.NY) * int64(h.NX) * int64(size), nil
}

var imageTypes = map[int16]string{
	0:    "NORMAL",
	100:  "NORMAL",
	1:    "TILT_SERIES",
	2:    "STEREO_TILT_SERIES",
	3:    "AVERAGED_IMAGES",
	4:    "AVERAGED_STEREO_PAIRS",
	5:    "EM_TILT_SERIES",
	20:   "MULTIPOSITION",
	8000: "PUPIL_FUNCTION",
}

// ImageType classifies the acquisition from FileType.
func (h *Header) ImageType() string {
	if name, ok := imageTypes[h.FileType]; ok {
		return name
	}
	return "UNKNOWN"
}

// Title returns the label block as a C string: everything before the first
// NUL byte.
func (h *Header) Title() string {
	if i := bytes.IndexByte(h.Label[:], 0); i >= 0 {
		return string(h.Label[:i])
	}
	return string(h.Label[:])
}

// Titles returns the first NLab fixed-width titles with trailing NULs and
// spaces removed.
func (h *Header) Titles() []string {
	n := min(max(int(h.NLab), 0), MaxTitles)
	titles := make([]string, 0, n)
	for i := 0; i < n; i++ {
		raw := h.Label[i*TitleWidth : (i+1)*TitleWidth]
		titles = append(titles, strings.TrimRight(string(raw), "\x00 "))
	}
	return titles
}

// Wavelengths returns the first NumWaves wavelength values.
func (h *Header) Wavelengths() []int16 {
	n := min(max(int(h.NumWaves), 0), MaxWaves)
	return append([]int16(nil), h.IWav[:n]...)
}

// Dump writes a human-readable summary of h to w.
func (h *Header) Dump(w io.Writer) error {
	_, err := io.WriteString(w, h.String())
	return err
}

func (h *Header) String() string {
	var b strings.Builder
	b.WriteString("Header:\n")
	fmt.Fprintf(&b, "  Dimensions: %dx%dx%d\n", h.NY, h.NX, h.PlaneCount())
	fmt.Fprintf(&b, "  Number of wavelengths: %d\n", h.NumWaves)
	fmt.Fprintf(&b, "  Number of time points: %d\n", h.NumTimes)
	fmt.Fprintf(&b, "  Pixel type: %s\n", h.Mode)
	fmt.Fprintf(&b, "  Pixel spacing: %gx%gx%g\n", h.XLen, h.YLen, h.ZLen)
	fmt.Fprintf(&b, "  mxyz: %dx%dx%d\n", h.MX, h.MY, h.MZ)
	fmt.Fprintf(&b, "  Cell angles: %gx%gx%g\n", h.Alpha, h.Beta, h.Gamma)
	fmt.Fprintf(&b, "  Min/Max/Mean: %g/%g/%g\n", h.AMin, h.AMax, h.AMean)
	fmt.Fprintf(&b, "  Image type: %s\n", h.ImageType())
	fmt.Fprintf(&b, "  Sequence order: %s\n", h.Sequence())
	return b.String()
}
