package dv

import (
	"bytes"
	"encoding/binary"
	"fmt"

	binpkg "github.com/robert-malhotra/go-dv/internal/binary"
)

/*
Header Layout (all offsets in bytes, fields in file byte order):
Offset  Size  Description
0       16    nx, ny, nz, mode                    int32
16      12    nxst, nyst, nzst                    int32
28      12    mx, my, mz                          int32
40      12    xlen, ylen, zlen                    float32
52      12    alpha, beta, gamma                  float32
64      12    mapc, mapr, maps                    int32
76      12    amin, amax, amean                   float32
88      8     ispg, inbsym                        int32
96      4     nDVID, nblank                       int16 (ID marker at 96)
100     4     ntst                                int32
104     24    reserved
128     8     nint, nreal, nres, nzfact           int16
136     24    min2, max2, min3, max3, min4, max4  float32
160     12    file_type, lens, n1, n2, v1, v2     int16
172     8     min5, max5                          float32
180     4     num_times, interleaved              int16
184     12    tilt_x, tilt_y, tilt_z              float32
196     12    num_waves, iwav1..iwav5             int16
208     12    zorig, xorig, yorig                 float32
220     4     nlab                                int32
224     800   label (10 titles of 80 bytes)
*/

// EncodeHeader serializes h into exactly HeaderSize bytes.
func EncodeHeader(h *Header, order binary.ByteOrder) []byte {
	buf := binpkg.NewBuffer(HeaderSize)
	w := binpkg.NewWriter(buf, binpkg.Config{ByteOrder: order})

	int32s := func(vs ...int32) {
		for _, v := range vs {
			w.WriteInt32(v)
		}
	}
	int16s := func(vs ...int16) {
		for _, v := range vs {
			w.WriteInt16(v)
		}
	}
	float32s := func(vs ...float32) {
		for _, v := range vs {
			w.WriteFloat32(v)
		}
	}

	int32s(h.NX, h.NY, h.NZ, int32(h.Mode))
	int32s(h.NXStart, h.NYStart, h.NZStart)
	int32s(h.MX, h.MY, h.MZ)
	float32s(h.XLen, h.YLen, h.ZLen)
	float32s(h.Alpha, h.Beta, h.Gamma)
	int32s(h.MapC, h.MapR, h.MapS)
	float32s(h.AMin, h.AMax, h.AMean)
	int32s(h.ISpg, h.InBSym)
	int16s(h.NDVID, h.NBlank)
	int32s(h.NTst)
	w.WriteBytes(h.Reserved[:])
	int16s(h.NInt, h.NReal, h.NRes, h.NZFact)
	float32s(h.Min2, h.Max2, h.Min3, h.Max3, h.Min4, h.Max4)
	int16s(h.FileType, h.Lens, h.N1, h.N2, h.V1, h.V2)
	float32s(h.Min5, h.Max5)
	int16s(h.NumTimes, h.Interleaved)
	float32s(h.TiltX, h.TiltY, h.TiltZ)
	int16s(h.NumWaves)
	int16s(h.IWav[:]...)
	float32s(h.ZOrig, h.XOrig, h.YOrig)
	int32s(h.NLab)
	w.WriteBytes(h.Label[:])

	// Buffer never fails and the layout above is exactly HeaderSize bytes.
	return buf.Bytes()[:HeaderSize]
}

// DecodeHeader parses a header from the first HeaderSize bytes of buf.
func DecodeHeader(buf []byte, order binary.ByteOrder) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, got %d", ErrIO, HeaderSize, len(buf))
	}
	return readHeader(binpkg.NewReader(bytes.NewReader(buf[:HeaderSize]), binpkg.Config{ByteOrder: order}))
}

// readHeader decodes a header field by field from r's current position.
func readHeader(r *binpkg.Reader) (Header, error) {
	var h Header
	int32s := func(ps ...*int32) {
		for _, p := range ps {
			*p = r.ReadInt32()
		}
	}
	int16s := func(ps ...*int16) {
		for _, p := range ps {
			*p = r.ReadInt16()
		}
	}
	float32s := func(ps ...*float32) {
		for _, p := range ps {
			*p = r.ReadFloat32()
		}
	}

	var mode int32
	int32s(&h.NX, &h.NY, &h.NZ, &mode)
	h.Mode = PixelType(mode)
	int32s(&h.NXStart, &h.NYStart, &h.NZStart)
	int32s(&h.MX, &h.MY, &h.MZ)
	float32s(&h.XLen, &h.YLen, &h.ZLen)
	float32s(&h.Alpha, &h.Beta, &h.Gamma)
	int32s(&h.MapC, &h.MapR, &h.MapS)
	float32s(&h.AMin, &h.AMax, &h.AMean)
	int32s(&h.ISpg, &h.InBSym)
	int16s(&h.NDVID, &h.NBlank)
	int32s(&h.NTst)
	r.ReadInto(h.Reserved[:])
	int16s(&h.NInt, &h.NReal, &h.NRes, &h.NZFact)
	float32s(&h.Min2, &h.Max2, &h.Min3, &h.Max3, &h.Min4, &h.Max4)
	int16s(&h.FileType, &h.Lens, &h.N1, &h.N2, &h.V1, &h.V2)
	float32s(&h.Min5, &h.Max5)
	int16s(&h.NumTimes, &h.Interleaved)
	float32s(&h.TiltX, &h.TiltY, &h.TiltZ)
	int16s(&h.NumWaves)
	for i := range h.IWav {
		h.IWav[i] = r.ReadInt16()
	}
	float32s(&h.ZOrig, &h.XOrig, &h.YOrig)
	int32s(&h.NLab)
	r.ReadInto(h.Label[:])

	if err := r.Err(); err != nil {
		return Header{}, fmt.Errorf("%w: decoding header: %w", ErrIO, err)
	}
	return h, nil
}
