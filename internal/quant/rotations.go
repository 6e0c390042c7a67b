package quant

import (
	"fmt"
	"math"
)

// BytesPerPointRotationV3 is the smallest-three on-disk size, the default
// on write.
const BytesPerPointRotationV3 = 4

// BytesPerPointRotationV2 is the legacy first-three on-disk size, kept for
// V2 read/write interoperability.
const BytesPerPointRotationV2 = 3

const tenBitMax = (1 << 9) - 1 // 511, the magnitude mask/scale for smallest-three

// NormalizeQuaternion returns q scaled to unit norm. A near-zero input
// (norm-squared below float32 epsilon) maps to the identity quaternion
// [0,0,0,1], matching the reference implementation's degenerate-input
// fallback.
func NormalizeQuaternion(q [4]float32) [4]float32 {
	normSq := q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
	if normSq < float32EpsilonSq {
		return [4]float32{0, 0, 0, 1}
	}
	inv := 1.0 / float32(math.Sqrt(float64(normSq)))
	return [4]float32{q[0] * inv, q[1] * inv, q[2] * inv, q[3] * inv}
}

// float32EpsilonSq mirrors Rust's f32::EPSILON used as the normalize_quaternion
// degeneracy threshold in the reference implementation.
const float32EpsilonSq = 1.1920929e-7

// PackSmallestThree encodes a unit quaternion using the V3 smallest-three
// scheme: the index of the largest-magnitude component is dropped (and
// recoverable via the unit-norm constraint); the remaining three are
// stored as signed 10-bit integers scaled by sqrt(2). flip holds the
// coordinate-transform sign multipliers for x, y, z (w is never flipped).
// The returned count is how many of the three stored components had to be
// clamped to the 10-bit magnitude range.
func PackSmallestThree(rotation [4]float32, flip [3]float32) ([4]byte, int) {
	q := NormalizeQuaternion(rotation)
	q[0] *= flip[0]
	q[1] *= flip[1]
	q[2] *= flip[2]

	iLargest := 0
	for i := 1; i < 4; i++ {
		if abs32(q[i]) > abs32(q[iLargest]) {
			iLargest = i
		}
	}
	negate := q[iLargest] < 0

	sat := 0
	comp := uint32(iLargest)
	for i := 0; i < 4; i++ {
		if i == iLargest {
			continue
		}
		negBit := uint32(0)
		if (q[i] < 0) != negate {
			negBit = 1
		}
		mag := uint32(math.Floor(float64(tenBitMax)*(float64(abs32(q[i]))*math.Sqrt2) + 0.5))
		if mag > tenBitMax {
			mag = tenBitMax
			sat++
		}
		comp = (comp << 10) | (negBit << 9) | mag
	}

	var out [4]byte
	out[0] = byte(comp)
	out[1] = byte(comp >> 8)
	out[2] = byte(comp >> 16)
	out[3] = byte(comp >> 24)
	return out, sat
}

// UnpackSmallestThree reverses [PackSmallestThree], reinserting the dropped
// largest component as sqrt(max(0, 1 - x^2 - y^2 - z^2)).
func UnpackSmallestThree(b [4]byte, flip [3]float32) [4]float32 {
	comp := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24

	iLargest := int(comp >> 30)
	var rotation [4]float32
	var sumSquares float32

	for i := 3; i >= 0; i-- {
		if i == iLargest {
			continue
		}
		mag := comp & tenBitMax
		negBit := (comp >> 9) & 1
		comp >>= 10

		val := float32(math.Sqrt2/2) * float32(mag) / float32(tenBitMax)
		if negBit == 1 {
			val = -val
		}
		rotation[i] = val
		sumSquares += val * val
	}
	rotation[iLargest] = float32(math.Sqrt(math.Max(0, float64(1-sumSquares))))

	rotation[0] *= flip[0]
	rotation[1] *= flip[1]
	rotation[2] *= flip[2]
	return rotation
}

// PackFirstThree encodes a unit quaternion using the legacy V2 scheme:
// (x, y, z) stored at 8-bit precision; w is recovered on decode. The
// returned count is how many of the three components had to be clamped.
func PackFirstThree(rotation [4]float32, flip [3]float32) ([3]byte, int) {
	q := NormalizeQuaternion(rotation)
	// Decode recovers w as a non-negative root, so store the representative
	// of {q, -q} whose w is non-negative.
	if q[3] < 0 {
		q = [4]float32{-q[0], -q[1], -q[2], -q[3]}
	}
	var out [3]byte
	sat := 0
	for i := 0; i < 3; i++ {
		v := q[i] * flip[i]
		b, clamped := clampToByte(math.RoundToEven(float64(v+1) * 127.5))
		if clamped {
			sat++
		}
		out[i] = b
	}
	return out, sat
}

// UnpackFirstThree reverses [PackFirstThree]; w = sqrt(max(0, 1-x^2-y^2-z^2)).
func UnpackFirstThree(b [3]byte, flip [3]float32) [4]float32 {
	const scale = 1.0 / 127.5
	var xyz [3]float32
	for i := 0; i < 3; i++ {
		xyz[i] = float32(b[i])*scale - 1.0
	}
	var rotation [4]float32
	rotation[0] = xyz[0] * flip[0]
	rotation[1] = xyz[1] * flip[1]
	rotation[2] = xyz[2] * flip[2]

	sq := xyz[0]*xyz[0] + xyz[1]*xyz[1] + xyz[2]*xyz[2]
	rotation[3] = float32(math.Sqrt(math.Max(0, float64(1-sq))))
	return rotation
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

var noFlip = [3]float32{1, 1, 1}

// DecodeRotationsV3 decodes n points' worth of smallest-three packed
// quaternions (length 4*n bytes) into a dense [x,y,z,w]*n array.
func DecodeRotationsV3(buf []byte, n int) ([]float32, error) {
	want := n * BytesPerPointRotationV3
	if len(buf) != want {
		return nil, fmt.Errorf("quant: rotations (v3) expects %d bytes, got %d", want, len(buf))
	}
	out := make([]float32, n*4)
	for i := 0; i < n; i++ {
		var b [4]byte
		copy(b[:], buf[i*4:i*4+4])
		q := UnpackSmallestThree(b, noFlip)
		copy(out[i*4:i*4+4], q[:])
	}
	return out, nil
}

// EncodeRotationsV3 quantizes a dense [x,y,z,w]*n array into the
// smallest-three on-disk layout, along with the number of stored components
// that had to be clamped to the 10-bit magnitude range.
func EncodeRotationsV3(rotations []float32) ([]byte, int) {
	n := len(rotations) / 4
	out := make([]byte, n*BytesPerPointRotationV3)
	sat := 0
	for i := 0; i < n; i++ {
		var q [4]float32
		copy(q[:], rotations[i*4:i*4+4])
		packed, s := PackSmallestThree(q, noFlip)
		sat += s
		copy(out[i*4:i*4+4], packed[:])
	}
	return out, sat
}

// DecodeRotationsV2 decodes n points' worth of first-three packed
// quaternions (length 3*n bytes) into a dense [x,y,z,w]*n array.
func DecodeRotationsV2(buf []byte, n int) ([]float32, error) {
	want := n * BytesPerPointRotationV2
	if len(buf) != want {
		return nil, fmt.Errorf("quant: rotations (v2) expects %d bytes, got %d", want, len(buf))
	}
	out := make([]float32, n*4)
	for i := 0; i < n; i++ {
		var b [3]byte
		copy(b[:], buf[i*3:i*3+3])
		q := UnpackFirstThree(b, noFlip)
		copy(out[i*4:i*4+4], q[:])
	}
	return out, nil
}

// EncodeRotationsV2 quantizes a dense [x,y,z,w]*n array into the legacy
// first-three on-disk layout, along with the number of components that had
// to be clamped to the byte range.
func EncodeRotationsV2(rotations []float32) ([]byte, int) {
	n := len(rotations) / 4
	out := make([]byte, n*BytesPerPointRotationV2)
	sat := 0
	for i := 0; i < n; i++ {
		var q [4]float32
		copy(q[:], rotations[i*4:i*4+4])
		packed, s := PackFirstThree(q, noFlip)
		sat += s
		copy(out[i*3:i*3+3], packed[:])
	}
	return out, sat
}
