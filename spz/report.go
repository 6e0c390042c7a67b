package spz

// PackReport counts, per attribute, how many quantized values were clamped
// to their on-disk range during a Save/ToBytes call. Saturation is never an
// error; callers that care about lossy encodes can inspect this alongside a
// successful ToBytesReport call.
type PackReport struct {
	Positions          int
	Scales             int
	Rotations          int
	Alphas             int
	Colors             int
	SphericalHarmonics int
}

// Total returns the sum of all per-attribute saturation counts.
func (r PackReport) Total() int {
	return r.Positions + r.Scales + r.Rotations + r.Alphas + r.Colors + r.SphericalHarmonics
}

// ToBytesReport is ToBytes but also returns the PackReport describing any
// quantization saturation that occurred while encoding.
func (s *Splat) ToBytesReport(fromCoord CoordinateSystem, opts ...SaveOption) ([]byte, PackReport, error) {
	return s.toBytesReport(fromCoord, opts)
}
