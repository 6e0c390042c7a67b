package spz

import "fmt"

// defaultFractionalBits is used by NewSplat when constructing a splat
// directly from dense arrays, matching the value the reference encoder
// uses for freshly-trained scenes.
const defaultFractionalBits = 12

// NewSplat builds a Splat directly from dense per-point arrays, validating
// array-length consistency. positions, scales, and colors must each have
// length 3*n; rotations length 4*n; alphas length n; sh length n*k*3 where
// k is the coefficient count implied by shDegree (0, 3, 8, or 15). Returns
// ErrInconsistentSizes, wrapped with the offending field name and lengths,
// on any mismatch.
func NewSplat(positions, scales, rotations, alphas, colors, sh []float32, shDegree uint8, antialiased bool) (*Splat, error) {
	if shDegree > 3 {
		return nil, fmt.Errorf("spz: sh_degree %d: %w", shDegree, ErrInvalidHeaderField)
	}

	n := len(alphas)
	k := shCoeffsForDegree(shDegree)

	if err := checkArrayLen("positions", len(positions), 3*n); err != nil {
		return nil, err
	}
	if err := checkArrayLen("scales", len(scales), 3*n); err != nil {
		return nil, err
	}
	if err := checkArrayLen("rotations", len(rotations), 4*n); err != nil {
		return nil, err
	}
	if err := checkArrayLen("colors", len(colors), 3*n); err != nil {
		return nil, err
	}
	if err := checkArrayLen("spherical_harmonics", len(sh), n*k*3); err != nil {
		return nil, err
	}

	s := &Splat{
		numPoints:      int32(n),
		shDegree:       shDegree,
		antialiased:    antialiased,
		fractionalBits: defaultFractionalBits,
		version:        Version3,
		positions:      append([]float32(nil), positions...),
		scales:         append([]float32(nil), scales...),
		rotations:      append([]float32(nil), rotations...),
		alphas:         append([]float32(nil), alphas...),
		colors:         append([]float32(nil), colors...),
		sh:             append([]float32(nil), sh...),
	}
	return s, nil
}

func checkArrayLen(field string, got, want int) error {
	if got != want {
		return fmt.Errorf("spz: %s has length %d, want %d: %w", field, got, want, ErrInconsistentSizes)
	}
	return nil
}

// CheckSizes reports whether every attribute array on s still has the
// length implied by s.NumPoints() and s.SHDegree(). A freshly-decoded or
// freshly-constructed Splat always satisfies it; this exists so callers
// that mutate a Splat's slices directly can re-verify consistency.
func (s *Splat) CheckSizes() bool {
	n := int(s.numPoints)
	k := shCoeffsForDegree(s.shDegree)
	return len(s.positions) == 3*n &&
		len(s.scales) == 3*n &&
		len(s.rotations) == 4*n &&
		len(s.alphas) == n &&
		len(s.colors) == 3*n &&
		len(s.sh) == n*k*3
}
