package spz

import "github.com/dhawkins/spz-go/internal/coordxform"

// CoordinateSystem names one of the eight handedness/up/front axis
// conventions a splat's positions, rotations, and spherical harmonics can be
// expressed in, or Unspecified to opt out of any transform.
type CoordinateSystem = coordxform.System

// The eight named coordinate systems plus Unspecified. RUB is the on-disk
// canonical system used by the SPZ envelope.
const (
	Unspecified CoordinateSystem = coordxform.Unspecified
	LDB         CoordinateSystem = coordxform.LDB
	RDB         CoordinateSystem = coordxform.RDB
	LUB         CoordinateSystem = coordxform.LUB
	RUB         CoordinateSystem = coordxform.RUB
	LDF         CoordinateSystem = coordxform.LDF
	RDF         CoordinateSystem = coordxform.RDF
	LUF         CoordinateSystem = coordxform.LUF
	RUF         CoordinateSystem = coordxform.RUF
)

// ParseCoordinateSystem interprets a short ("RUB") or long
// ("Right-Up-Back") coordinate-system name case-insensitively. An
// unrecognized name returns Unspecified.
func ParseCoordinateSystem(s string) CoordinateSystem {
	return coordxform.Parse(s)
}
