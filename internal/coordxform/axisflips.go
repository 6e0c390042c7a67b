// Package coordxform implements the SPZ coordinate-system transform
// engine: an axis-permutation/sign-flip operator parameterized by a
// (from, to) pair of one of eight named handedness/up/front systems.
package coordxform

import "strings"

// System is one of the eight supported coordinate systems, plus the
// Unspecified sentinel meaning "do not transform". The numeric values and
// ordering mirror the reference implementation's enum exactly so that
// (System - 1) can be treated as a 3-bit (x,y,z) orientation code.
type System uint8

const (
	Unspecified System = 0
	LDB         System = 1 // Left-Down-Back
	RDB         System = 2 // Right-Down-Back
	LUB         System = 3 // Left-Up-Back
	RUB         System = 4 // Right-Up-Back, the on-disk canonical (also Three.js)
	LDF         System = 5 // Left-Down-Front
	RDF         System = 6 // Right-Down-Front (PLY)
	LUF         System = 7 // Left-Up-Front (GLB)
	RUF         System = 8 // Right-Up-Front (Unity)
)

// String implements fmt.Stringer with a human-readable name.
func (s System) String() string {
	switch s {
	case LDB:
		return "Left-Down-Back"
	case RDB:
		return "Right-Down-Back"
	case LUB:
		return "Left-Up-Back"
	case RUB:
		return "Right-Up-Back"
	case LDF:
		return "Left-Down-Front"
	case RDF:
		return "Right-Down-Front"
	case LUF:
		return "Left-Up-Front"
	case RUF:
		return "Right-Up-Front"
	default:
		return "Unspecified"
	}
}

// ShortString returns the three-letter abbreviation (e.g. "RUB"), or
// "UNSPECIFIED".
func (s System) ShortString() string {
	switch s {
	case LDB:
		return "LDB"
	case RDB:
		return "RDB"
	case LUB:
		return "LUB"
	case RUB:
		return "RUB"
	case LDF:
		return "LDF"
	case RDF:
		return "RDF"
	case LUF:
		return "LUF"
	case RUF:
		return "RUF"
	default:
		return "UNSPECIFIED"
	}
}

// Parse interprets a short or long coordinate-system name case-insensitively,
// accepting both "RDF" and "Right-Down-Front"/"Right_Down_Front" spellings.
// An unrecognized name returns Unspecified, matching the reference
// implementation's lenient FromStr behavior.
func Parse(s string) System {
	switch strings.ToUpper(s) {
	case "LDB", "LEFTDOWNBACK", "LEFT-DOWN-BACK", "LEFT_DOWN_BACK":
		return LDB
	case "RDB", "RIGHTDOWNBACK", "RIGHT-DOWN-BACK", "RIGHT_DOWN_BACK":
		return RDB
	case "LUB", "LEFTUPBACK", "LEFT-UP-BACK", "LEFT_UP_BACK":
		return LUB
	case "RUB", "RIGHTUPBACK", "RIGHT-UP-BACK", "RIGHT_UP_BACK":
		return RUB
	case "LDF", "LEFTDOWNFRONT", "LEFT-DOWN-FRONT", "LEFT_DOWN_FRONT":
		return LDF
	case "RDF", "RIGHTDOWNFRONT", "RIGHT-DOWN-FRONT", "RIGHT_DOWN_FRONT":
		return RDF
	case "LUF", "LEFTUPFRONT", "LEFT-UP-FRONT", "LEFT_UP_FRONT":
		return LUF
	case "RUF", "RIGHTUPFRONT", "RIGHT-UP-FRONT", "RIGHT_UP_FRONT":
		return RUF
	default:
		return Unspecified
	}
}

// All returns every named system (including Unspecified) in enum order.
func All() []System {
	return []System{Unspecified, LDB, RDB, LUB, RUB, LDF, RDF, LUF, RUF}
}

// AxisFlips holds the +1/-1 sign multipliers needed to convert data between
// two coordinate systems.
type AxisFlips struct {
	// Position holds sign multipliers for the XYZ position triple.
	Position [3]float32
	// Rotation holds sign multipliers for the quaternion's x, y, z
	// components (w is never flipped).
	Rotation [3]float32
	// SH holds sign multipliers for the 15 real-SH coefficients of degrees
	// 1-3, indexed in the same increasing-degree/order layout as the
	// on-disk spherical harmonic block.
	SH [15]float32
}

// IdentityFlips is the no-op transform (all signs +1), returned whenever
// either side of a conversion is Unspecified.
func IdentityFlips() AxisFlips {
	return AxisFlips{
		Position: [3]float32{1, 1, 1},
		Rotation: [3]float32{1, 1, 1},
		SH:       [15]float32{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
}

// AxesAlign compares axis orientations between from and to, returning
// (xMatch, yMatch, zMatch). Unspecified on either side means every axis
// matches (no flip).
func AxesAlign(from, to System) (bool, bool, bool) {
	fromNum := int8(from) - 1
	toNum := int8(to) - 1
	if fromNum < 0 || toNum < 0 {
		return true, true, true
	}
	xMatch := (fromNum>>0)&1 == (toNum>>0)&1
	yMatch := (fromNum>>1)&1 == (toNum>>1)&1
	zMatch := (fromNum>>2)&1 == (toNum>>2)&1
	return xMatch, yMatch, zMatch
}

// FlipsTo computes the sign vector that converts data from the `from`
// system to the `to` system, and derives the rotation and SH sign tables
// from it per the real-SH parity rules. This 15-entry table mirrors the
// reference implementation's axis_flips_to exactly.
func FlipsTo(from, to System) AxisFlips {
	xMatch, yMatch, zMatch := AxesAlign(from, to)

	x := signFor(xMatch)
	y := signFor(yMatch)
	z := signFor(zMatch)

	return AxisFlips{
		Position: [3]float32{x, y, z},
		Rotation: [3]float32{y * z, x * z, x * y},
		SH: [15]float32{
			y,         // 0
			z,         // 1
			x,         // 2
			x * y,     // 3
			y * z,     // 4
			1.0,       // 5
			x * z,     // 6
			1.0,       // 7
			y,         // 8
			x * y * z, // 9
			y,         // 10
			z,         // 11
			x,         // 12
			z,         // 13
			x,         // 14
		},
	}
}

func signFor(match bool) float32 {
	if match {
		return 1.0
	}
	return -1.0
}
