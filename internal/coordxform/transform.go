package coordxform

// ApplyPositions multiplies each point's (x,y,z) position triple in place
// by flips.Position.
func ApplyPositions(positions []float32, flips AxisFlips) {
	for i := 0; i+2 < len(positions); i += 3 {
		positions[i+0] *= flips.Position[0]
		positions[i+1] *= flips.Position[1]
		positions[i+2] *= flips.Position[2]
	}
}

// ApplyRotations multiplies each quaternion's (x,y,z) components in place
// by flips.Rotation; w is left untouched. The product-of-pairs sign
// convention in flips.Rotation (derived in [FlipsTo]) already accounts for
// the even/odd sign-flip parity case, so no renormalization is required.
func ApplyRotations(rotations []float32, flips AxisFlips) {
	for i := 0; i+3 < len(rotations); i += 4 {
		rotations[i+0] *= flips.Rotation[0]
		rotations[i+1] *= flips.Rotation[1]
		rotations[i+2] *= flips.Rotation[2]
	}
}

// ApplySH multiplies each point's spherical-harmonic coefficients in place
// by flips.SH, broadcast across the three RGB channels. sh is laid out
// point-major, then coefficient index (0..k-1), then channel (R,G,B); k is
// the per-channel coefficient count for the splat's SH degree.
func ApplySH(sh []float32, k int, flips AxisFlips) {
	if k == 0 {
		return
	}
	for i := 0; i+2 < len(sh); i += 3 {
		j := (i / 3) % k
		s := flips.SH[j]
		sh[i+0] *= s
		sh[i+1] *= s
		sh[i+2] *= s
	}
}

// Apply runs ApplyPositions, ApplyRotations, and ApplySH together for a
// full from->to coordinate-system conversion. Unspecified on either side
// is a no-op (IdentityFlips).
func Apply(positions, rotations, sh []float32, k int, from, to System) {
	if from == Unspecified || to == Unspecified {
		return
	}
	flips := FlipsTo(from, to)
	ApplyPositions(positions, flips)
	ApplyRotations(rotations, flips)
	ApplySH(sh, k, flips)
}
