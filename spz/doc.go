// Package spz implements a codec for the SPZ (Splat Zip) binary file
// format used to persist 3D Gaussian splat point clouds.
//
// # File Format
//
// An SPZ file is a single gzip member wrapping a fixed 16-byte header
// followed by six quantized attribute blocks (positions, alphas, colors,
// scales, rotations, spherical harmonics) in that exact order. See
// [Header] for the header layout and [Splat] for the decoded,
// dense floating-point representation.
//
// # Usage
//
// Decode a file into a dense splat, inspect it, and optionally reassign
// its coordinate system:
//
//	s, err := spz.Load("scene.spz", spz.RUB)
//	if err != nil {
//	    // handle error
//	}
//	bbox := s.BBox()
//
// Encode a dense splat back to the canonical on-disk layout:
//
//	buf, report, err := s.ToBytesReport(spz.RUB)
//
// # Coordinate systems
//
// Eight named handedness/up/front systems are supported; see
// [CoordinateSystem]. [Unspecified] denotes "do not transform" on either
// side of a conversion.
//
// # Errors
//
// All decode failures are reported as one of the sentinel errors in this
// package (see errors.go) and never expose a partially decoded [Splat].
// Quantization saturation is reported through [PackReport], never as an
// error.
package spz
