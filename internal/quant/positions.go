// Package quant implements the six SPZ attribute quantization codecs:
// positions, scales, rotations, alphas, colors, and spherical harmonics.
// Every codec is bit-exact: the same dense input must always produce the
// same encoded bytes, and vice versa.
package quant

import (
	"fmt"
	"math"

	"github.com/dhawkins/spz-go/internal/bio"
)

// BytesPerPointPosition is the on-disk size of one point's position: three
// signed 24-bit fixed-point integers, 9 bytes total.
const BytesPerPointPosition = 9

// DecodePositions decodes n points' worth of fixed-point positions from buf
// (must be exactly n*BytesPerPointPosition bytes) given fractionalBits.
//
// Each component is read as a sign-extended 24-bit little-endian integer
// and divided by 2^fractionalBits.
func DecodePositions(buf []byte, n int, fractionalBits uint8) ([]float32, error) {
	want := n * BytesPerPointPosition
	if len(buf) != want {
		return nil, fmt.Errorf("quant: positions expects %d bytes, got %d", want, len(buf))
	}
	scale := 1.0 / float32(uint32(1)<<fractionalBits)

	out := make([]float32, n*3)
	r := bio.NewReader(buf)
	for i := 0; i < n*3; i++ {
		b, err := r.ReadBytes(3)
		if err != nil {
			return nil, err
		}
		out[i] = float32(bio.DecodeI24(b)) * scale
	}
	return out, nil
}

// EncodePositions quantizes n points' worth of dense positions (length
// 3*n) into the fixed-point on-disk layout. Values are rounded half-to-even
// to the nearest representable fixed-point integer, then clamped to the
// signed 24-bit range [-8388608, 8388607]; each clamp increments
// saturated.
func EncodePositions(positions []float32, fractionalBits uint8) (buf []byte, saturated int) {
	n := len(positions) / 3
	scale := float32(uint32(1) << fractionalBits)

	w := bio.NewWriter(n * BytesPerPointPosition)
	var tmp [3]byte
	for _, v := range positions {
		fixed, sat := roundToI24(v * scale)
		if sat {
			saturated++
		}
		bio.EncodeI24(fixed, tmp[:])
		w.WriteBytes(tmp[:])
	}
	return w.Bytes(), saturated
}

const (
	i24Min = -(1 << 23)
	i24Max = (1 << 23) - 1
)

// roundToI24 rounds half-to-even to the nearest integer and clamps to the
// signed 24-bit range, reporting whether clamping occurred.
func roundToI24(v float32) (int32, bool) {
	r := math.RoundToEven(float64(v))
	if r < i24Min {
		return i24Min, true
	}
	if r > i24Max {
		return i24Max, true
	}
	return int32(r), false
}
