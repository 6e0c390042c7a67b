package spz

import (
	"fmt"

	"github.com/dhawkins/spz-go/internal/bio"
)

// HeaderSize is the fixed on-disk size of [Header] in bytes.
const HeaderSize = 16

// magicValue is "NGSP" read as a little-endian uint32: bytes 4E 47 53 50.
const magicValue uint32 = 0x5053474e

// FlagAntialiased is bit 0 of the header's flags byte: the splat was
// trained with antialiasing (mip-splatting).
const FlagAntialiased uint8 = 0x1

// Version identifies the SPZ on-disk format revision.
type Version int32

const (
	// VersionUnsupported (0) is not a valid on-disk version. A header whose
	// version is 1 or above 3 keeps its raw value and is rejected by
	// validation; this constant is never returned from a successful parse.
	VersionUnsupported Version = 0
	// Version2 uses first-three quaternion rotation encoding (3 bytes/point).
	Version2 Version = 2
	// Version3 uses smallest-three quaternion rotation encoding (4 bytes/point)
	// and is the default version emitted on write.
	Version3 Version = 3
)

// String implements fmt.Stringer.
func (v Version) String() string {
	switch v {
	case Version2:
		return "2"
	case Version3:
		return "3"
	default:
		return fmt.Sprintf("unsupported(%d)", int32(v))
	}
}

// Header is the fixed 16-byte structure that prefixes every decompressed
// SPZ byte stream.
type Header struct {
	// Magic must equal "NGSP" (0x5053474e little-endian).
	Magic uint32
	// Version is 2 or 3 for any header that passes decodeHeader's validation.
	Version Version
	// NumPoints is the number of Gaussians described by the following
	// attribute blocks.
	NumPoints int32
	// SHDegree is the spherical-harmonics degree, 0..=3.
	SHDegree uint8
	// FractionalBits is the fixed-point scale used by the position codec.
	FractionalBits uint8
	// Flags holds bit 0 = antialiased; bits 1-7 must be zero.
	Flags uint8
	// Reserved must be zero.
	Reserved uint8
}

// Antialiased reports whether FlagAntialiased is set.
func (h Header) Antialiased() bool {
	return h.Flags&FlagAntialiased != 0
}

// SHCoeffsPerPoint returns the number of per-channel spherical-harmonic
// coefficients implied by SHDegree (0, 3, 8, or 15), or 0 for an
// out-of-range degree.
func (h Header) SHCoeffsPerPoint() int {
	return shCoeffsForDegree(h.SHDegree)
}

func shCoeffsForDegree(degree uint8) int {
	switch degree {
	case 0:
		return 0
	case 1:
		return 3
	case 2:
		return 8
	case 3:
		return 15
	default:
		return 0
	}
}

// shDegreeForCoeffs is the inverse of shCoeffsForDegree, mapping a
// per-channel SH coefficient count back to its degree.
func shDegreeForCoeffs(coeffs int) (uint8, bool) {
	switch coeffs {
	case 0:
		return 0, true
	case 3:
		return 1, true
	case 8:
		return 2, true
	case 15:
		return 3, true
	default:
		return 0, false
	}
}

// decodeHeader parses the first HeaderSize bytes of buf as a [Header] and
// validates it: magic must match, version must be 2 or 3 (version 1 yields
// ErrUnsupportedVersion), sh_degree <= 3, flags high bits zero, reserved
// zero, num_points >= 0.
func decodeHeader(buf []byte) (Header, error) {
	h, err := decodeHeaderUnchecked(buf)
	if err != nil {
		return Header{}, err
	}
	if err := h.validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// decodeHeaderUnchecked parses the header fields without validating them,
// for tooling that wants to inspect a malformed file without rejecting it
// outright.
func decodeHeaderUnchecked(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("spz: header requires %d bytes, got %d: %w", HeaderSize, len(buf), ErrLengthMismatch)
	}
	r := bio.NewReader(buf[:HeaderSize])

	magic, _ := r.ReadUint32()
	version, _ := r.ReadInt32()
	numPoints, _ := r.ReadInt32()
	shDegree, _ := r.ReadUint8()
	fractionalBits, _ := r.ReadUint8()
	flags, _ := r.ReadUint8()
	reserved, _ := r.ReadUint8()

	return Header{
		Magic:          magic,
		Version:        Version(version),
		NumPoints:      numPoints,
		SHDegree:       shDegree,
		FractionalBits: fractionalBits,
		Flags:          flags,
		Reserved:       reserved,
	}, nil
}

// validate checks header field invariants and returns the first violated
// one.
func (h Header) validate() error {
	if h.Magic != magicValue {
		return fmt.Errorf("spz: magic %#08x: %w", h.Magic, ErrBadMagic)
	}
	if h.Version != Version2 && h.Version != Version3 {
		return fmt.Errorf("spz: version %s: %w", h.Version, ErrUnsupportedVersion)
	}
	if h.SHDegree > 3 {
		return fmt.Errorf("spz: sh_degree %d: %w", h.SHDegree, ErrInvalidHeaderField)
	}
	if h.Flags&0xFE != 0 {
		return fmt.Errorf("spz: flags %#02x has reserved bits set: %w", h.Flags, ErrInvalidHeaderField)
	}
	if h.Reserved != 0 {
		return fmt.Errorf("spz: reserved byte %#02x: %w", h.Reserved, ErrInvalidHeaderField)
	}
	if h.NumPoints < 0 {
		return fmt.Errorf("spz: negative num_points %d: %w", h.NumPoints, ErrInvalidHeaderField)
	}
	return nil
}

// encode serializes h in fixed field order, little-endian, with no padding.
func (h Header) encode() []byte {
	w := bio.NewWriter(HeaderSize)
	w.WriteUint32(h.Magic)
	w.WriteInt32(int32(h.Version))
	w.WriteInt32(h.NumPoints)
	w.WriteUint8(h.SHDegree)
	w.WriteUint8(h.FractionalBits)
	w.WriteUint8(h.Flags)
	w.WriteUint8(h.Reserved)
	return w.Bytes()
}

// newHeader builds a valid header for a splat about to be encoded.
func newHeader(numPoints int32, shDegree, fractionalBits uint8, antialiased bool) Header {
	var flags uint8
	if antialiased {
		flags = FlagAntialiased
	}
	return Header{
		Magic:          magicValue,
		Version:        Version3,
		NumPoints:      numPoints,
		SHDegree:       shDegree,
		FractionalBits: fractionalBits,
		Flags:          flags,
		Reserved:       0,
	}
}
