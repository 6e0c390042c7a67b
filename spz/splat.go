package spz

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhawkins/spz-go/internal/bio"
	"github.com/dhawkins/spz-go/internal/coordxform"
	"github.com/dhawkins/spz-go/internal/envelope"
	"github.com/dhawkins/spz-go/internal/quant"
)

// Splat is the decoded, in-memory representation of an SPZ point cloud: the
// header metadata plus the six dense per-point attribute arrays. A zero
// Splat is not valid; obtain one via [Load], [FromBytes], or [NewSplat].
type Splat struct {
	numPoints      int32
	shDegree       uint8
	antialiased    bool
	fractionalBits uint8
	version        Version

	positions []float32
	scales    []float32
	rotations []float32
	alphas    []float32
	colors    []float32
	sh        []float32
}

// NumPoints returns the number of Gaussians in s.
func (s *Splat) NumPoints() int { return int(s.numPoints) }

// SHDegree returns the spherical-harmonics degree (0..=3).
func (s *Splat) SHDegree() uint8 { return s.shDegree }

// Antialiased reports whether s was trained with antialiasing.
func (s *Splat) Antialiased() bool { return s.antialiased }

// FractionalBits returns the fixed-point scale used by the position codec.
func (s *Splat) FractionalBits() uint8 { return s.fractionalBits }

// Positions returns the flattened [x0,y0,z0,x1,...] position array.
func (s *Splat) Positions() []float32 { return s.positions }

// Scales returns the flattened log-scale array.
func (s *Splat) Scales() []float32 { return s.scales }

// Rotations returns the flattened [x,y,z,w]*n quaternion array.
func (s *Splat) Rotations() []float32 { return s.rotations }

// Alphas returns the per-point inverse-sigmoid opacity array.
func (s *Splat) Alphas() []float32 { return s.alphas }

// Colors returns the flattened DC-term RGB array.
func (s *Splat) Colors() []float32 { return s.colors }

// SphericalHarmonics returns the flattened, RGB-interleaved SH coefficient
// array, length NumPoints()*SHCoeffsPerPoint()*3.
func (s *Splat) SphericalHarmonics() []float32 { return s.sh }

// SHCoeffsPerPoint returns the per-channel SH coefficient count implied by
// SHDegree.
func (s *Splat) SHCoeffsPerPoint() int { return shCoeffsForDegree(s.shDegree) }

// Clone returns a deep copy of s. ConvertCoordinates and Rotate180AboutX
// mutate their receiver in place, so callers that want to retain the
// pre-transform values should Clone first.
func (s *Splat) Clone() *Splat {
	c := *s
	c.positions = append([]float32(nil), s.positions...)
	c.scales = append([]float32(nil), s.scales...)
	c.rotations = append([]float32(nil), s.rotations...)
	c.alphas = append([]float32(nil), s.alphas...)
	c.colors = append([]float32(nil), s.colors...)
	c.sh = append([]float32(nil), s.sh...)
	return &c
}

// loadOptions and saveOptions are resolved from functional options at the
// start of each public entry point; see options.go.

// HeaderFromFile reads path and decompresses only enough of the gzip stream
// to recover the 16-byte header, without decoding any attribute block.
func HeaderFromFile(path string, opts ...LoadOption) (Header, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Header{}, fmt.Errorf("spz: reading %s: %w", path, err)
	}
	return HeaderFromBytes(raw, opts...)
}

// HeaderFromBytes is HeaderFromFile without file I/O.
func HeaderFromBytes(compressed []byte, opts ...LoadOption) (Header, error) {
	if len(compressed) == 0 {
		return Header{}, ErrEmptyInput
	}
	prefix, err := envelope.DecompressPrefix(compressed, HeaderSize)
	if err != nil {
		return Header{}, fmt.Errorf("spz: %w", errCorrupted(err))
	}
	return decodeHeader(prefix)
}

// Load reads path, decompresses and decodes the full splat, and converts it
// from the on-disk RUB system to targetCoord (a no-op if targetCoord is
// Unspecified).
func Load(path string, targetCoord CoordinateSystem, opts ...LoadOption) (*Splat, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spz: reading %s: %w", path, err)
	}
	return FromBytes(raw, targetCoord, opts...)
}

// FromBytes is Load without file I/O.
func FromBytes(compressed []byte, targetCoord CoordinateSystem, opts ...LoadOption) (*Splat, error) {
	if len(compressed) == 0 {
		return nil, ErrEmptyInput
	}
	o := resolveLoadOptions(opts)

	raw, err := envelope.Decompress(compressed, o.maxDecompressedBytes)
	if err != nil {
		return nil, fmt.Errorf("spz: %w", errCorrupted(err))
	}

	s, err := decodeSplat(raw)
	if err != nil {
		return nil, err
	}

	coordxform.Apply(s.positions, s.rotations, s.sh, s.SHCoeffsPerPoint(), coordxform.RUB, targetCoord)
	return s, nil
}

// decodeSplat parses the decompressed payload (header + six attribute
// blocks in stream order) into a populated Splat.
func decodeSplat(buf []byte) (*Splat, error) {
	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("spz: payload shorter than header: %w", ErrLengthMismatch)
	}
	h, err := decodeHeader(buf[:HeaderSize])
	if err != nil {
		return nil, err
	}
	body := buf[HeaderSize:]
	n := int(h.NumPoints)
	k := h.SHCoeffsPerPoint()

	r := bio.NewReader(body)

	positionsBuf, err := r.ReadBytes(n * quant.BytesPerPointPosition)
	if err != nil {
		return nil, fmt.Errorf("spz: reading positions block: %w", ErrLengthMismatch)
	}
	positions, err := quant.DecodePositions(positionsBuf, n, h.FractionalBits)
	if err != nil {
		return nil, fmt.Errorf("spz: decoding positions: %w", err)
	}

	alphasBuf, err := r.ReadBytes(n)
	if err != nil {
		return nil, fmt.Errorf("spz: reading alphas block: %w", ErrLengthMismatch)
	}
	alphas := quant.DecodeAlphas(alphasBuf)

	colorsBuf, err := r.ReadBytes(n * quant.BytesPerPointColor)
	if err != nil {
		return nil, fmt.Errorf("spz: reading colors block: %w", ErrLengthMismatch)
	}
	colors := quant.DecodeColors(colorsBuf)

	scalesBuf, err := r.ReadBytes(n * quant.BytesPerPointScale)
	if err != nil {
		return nil, fmt.Errorf("spz: reading scales block: %w", ErrLengthMismatch)
	}
	scales := quant.DecodeScales(scalesBuf)

	var rotations []float32
	switch h.Version {
	case Version3:
		rotBuf, err := r.ReadBytes(n * quant.BytesPerPointRotationV3)
		if err != nil {
			return nil, fmt.Errorf("spz: reading rotations block: %w", ErrLengthMismatch)
		}
		rotations, err = quant.DecodeRotationsV3(rotBuf, n)
		if err != nil {
			return nil, fmt.Errorf("spz: decoding rotations: %w", err)
		}
	case Version2:
		rotBuf, err := r.ReadBytes(n * quant.BytesPerPointRotationV2)
		if err != nil {
			return nil, fmt.Errorf("spz: reading rotations block: %w", ErrLengthMismatch)
		}
		rotations, err = quant.DecodeRotationsV2(rotBuf, n)
		if err != nil {
			return nil, fmt.Errorf("spz: decoding rotations: %w", err)
		}
	default:
		return nil, fmt.Errorf("spz: version %s: %w", h.Version, ErrUnsupportedVersion)
	}

	shBuf, err := r.ReadBytes(n * k * 3)
	if err != nil {
		return nil, fmt.Errorf("spz: reading spherical harmonics block: %w", ErrLengthMismatch)
	}
	sh := quant.DecodeSH(shBuf, k)

	if r.Len() != 0 {
		return nil, fmt.Errorf("spz: %d trailing bytes after spherical harmonics block: %w", r.Len(), ErrLengthMismatch)
	}

	return &Splat{
		numPoints:      h.NumPoints,
		shDegree:       h.SHDegree,
		antialiased:    h.Antialiased(),
		fractionalBits: h.FractionalBits,
		version:        h.Version,
		positions:      positions,
		scales:         scales,
		rotations:      rotations,
		alphas:         alphas,
		colors:         colors,
		sh:             sh,
	}, nil
}

// Save converts s from fromCoord to the on-disk RUB system (a no-op if
// fromCoord is Unspecified), encodes it, and writes path. s is left
// unmodified: the conversion runs on a clone.
func (s *Splat) Save(path string, fromCoord CoordinateSystem, opts ...SaveOption) error {
	buf, err := s.ToBytes(fromCoord, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("spz: writing %s: %w", path, err)
	}
	return nil
}

// ToBytes is Save without file I/O.
func (s *Splat) ToBytes(fromCoord CoordinateSystem, opts ...SaveOption) ([]byte, error) {
	compressed, _, err := s.toBytesReport(fromCoord, opts)
	return compressed, err
}

// toBytesReport is the shared implementation behind ToBytes and
// ToBytesReport.
func (s *Splat) toBytesReport(fromCoord CoordinateSystem, opts []SaveOption) ([]byte, PackReport, error) {
	o := resolveSaveOptions(opts)

	packed := s
	if fromCoord != Unspecified {
		packed = s.Clone()
		coordxform.Apply(packed.positions, packed.rotations, packed.sh, packed.SHCoeffsPerPoint(), fromCoord, coordxform.RUB)
	}

	raw, report := packed.encodeSplat(o.version)
	compressed, err := envelope.Compress(raw)
	if err != nil {
		return nil, PackReport{}, fmt.Errorf("spz: compressing: %w", err)
	}
	return compressed, report, nil
}

// encodeSplat serializes the header and the six attribute blocks in stream
// order, returning the combined decompressed payload plus a PackReport
// describing any quantization saturation.
func (s *Splat) encodeSplat(version Version) ([]byte, PackReport) {
	h := newHeader(s.numPoints, s.shDegree, s.fractionalBits, s.antialiased)
	h.Version = version

	w := bio.NewWriter(HeaderSize + len(s.positions)*3 + len(s.alphas) + len(s.colors) + len(s.scales) + len(s.rotations) + len(s.sh))
	w.WriteBytes(h.encode())

	var report PackReport

	positionsBuf, sat := quant.EncodePositions(s.positions, s.fractionalBits)
	report.Positions = sat
	w.WriteBytes(positionsBuf)

	alphasBuf, sat := quant.EncodeAlphas(s.alphas)
	report.Alphas = sat
	w.WriteBytes(alphasBuf)

	colorsBuf, sat := quant.EncodeColors(s.colors)
	report.Colors = sat
	w.WriteBytes(colorsBuf)

	scalesBuf, sat := quant.EncodeScales(s.scales)
	report.Scales = sat
	w.WriteBytes(scalesBuf)

	var rotationsBuf []byte
	if version == Version2 {
		rotationsBuf, sat = quant.EncodeRotationsV2(s.rotations)
	} else {
		rotationsBuf, sat = quant.EncodeRotationsV3(s.rotations)
	}
	report.Rotations = sat
	w.WriteBytes(rotationsBuf)

	shBuf, sat := quant.EncodeSH(s.sh, s.SHCoeffsPerPoint())
	report.SphericalHarmonics = sat
	w.WriteBytes(shBuf)

	return w.Bytes(), report
}

// errCorrupted narrows an internal envelope error down to the public
// ErrCorruptedEnvelope / ErrDecompressionTooLarge sentinels.
func errCorrupted(err error) error {
	if errors.Is(err, envelope.ErrTooLarge) {
		return fmt.Errorf("%w: %v", ErrDecompressionTooLarge, err)
	}
	return fmt.Errorf("%w: %v", ErrCorruptedEnvelope, err)
}
