package spz

import (
	"math"

	"github.com/dhawkins/spz-go/internal/coordxform"
)

// ConvertCoordinates applies the axis-permutation/sign-flip transform to
// s's positions, rotations, and spherical harmonics in place, from the
// `from` coordinate system to `to`. Unspecified on either side is a no-op.
// Applying the same (from, to) pair twice is identity; the inverse
// conversion (to, from) exactly restores the original values, modulo float
// equality.
func (s *Splat) ConvertCoordinates(from, to CoordinateSystem) {
	coordxform.Apply(s.positions, s.rotations, s.sh, s.SHCoeffsPerPoint(), from, to)
}

// Rotate180AboutX is a shortcut for ConvertCoordinates(RUB, RDF): the
// 180-degree rotation about the X axis that several real-time engines use
// to reconcile a Y-up/Z-back convention with a Y-down/Z-front one.
func (s *Splat) Rotate180AboutX() {
	s.ConvertCoordinates(RUB, RDF)
}

// BoundingBox holds the per-axis minimum and maximum over a splat's
// positions.
type BoundingBox struct {
	Min [3]float32
	Max [3]float32
}

// BBox scans s's positions for the per-axis min/max. For an empty splat,
// Min and Max are both the zero vector.
func (s *Splat) BBox() BoundingBox {
	var bbox BoundingBox
	if len(s.positions) == 0 {
		return bbox
	}
	bbox.Min = [3]float32{s.positions[0], s.positions[1], s.positions[2]}
	bbox.Max = bbox.Min
	for i := 0; i+2 < len(s.positions); i += 3 {
		for axis := 0; axis < 3; axis++ {
			v := s.positions[i+axis]
			if v < bbox.Min[axis] {
				bbox.Min[axis] = v
			}
			if v > bbox.Max[axis] {
				bbox.Max[axis] = v
			}
		}
	}
	return bbox
}

// MedianVolume returns the median, over all points, of the ellipsoid
// volume (4/3)*pi*exp(sx)*exp(sy)*exp(sz) implied by each point's
// log-scale triple. Returns 0 for an empty splat.
func (s *Splat) MedianVolume() float32 {
	n := s.NumPoints()
	if n == 0 {
		return 0
	}
	volumes := make([]float32, n)
	for i := 0; i < n; i++ {
		sx := s.scales[i*3+0]
		sy := s.scales[i*3+1]
		sz := s.scales[i*3+2]
		volumes[i] = float32((4.0 / 3.0) * math.Pi * math.Exp(float64(sx)) * math.Exp(float64(sy)) * math.Exp(float64(sz)))
	}
	return quickselectMedian(volumes)
}

// quickselectMedian returns the median of vs via an O(n) expected-time
// quickselect rather than an O(n log n) full sort. vs is partitioned in
// place.
func quickselectMedian(vs []float32) float32 {
	n := len(vs)
	mid := n / 2
	upper := quickselect(vs, 0, n-1, mid)
	if n%2 == 1 {
		return upper
	}
	// Even count: the median is the average of the two central order
	// statistics. quickselect's partitioning guarantees every element in
	// vs[:mid] is <= vs[mid], so its maximum is the (mid-1)-th order
	// statistic without a further sort.
	lower := vs[0]
	for _, v := range vs[1:mid] {
		if v > lower {
			lower = v
		}
	}
	return (lower + upper) / 2
}

// quickselect returns the k-th smallest (0-indexed) element of vs[lo:hi+1],
// partitioning vs in place (Lomuto partition scheme, pivot = last element).
func quickselect(vs []float32, lo, hi, k int) float32 {
	for {
		if lo == hi {
			return vs[lo]
		}
		p := partition(vs, lo, hi)
		if k == p {
			return vs[k]
		} else if k < p {
			hi = p - 1
		} else {
			lo = p + 1
		}
	}
}

func partition(vs []float32, lo, hi int) int {
	pivot := vs[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if vs[j] < pivot {
			vs[i], vs[j] = vs[j], vs[i]
			i++
		}
	}
	vs[i], vs[hi] = vs[hi], vs[i]
	return i
}
