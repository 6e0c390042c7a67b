package spz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhawkins/spz-go/internal/envelope"
	"github.com/dhawkins/spz-go/internal/quant"
)

func TestLoadEmptySplat(t *testing.T) {
	// S1: num_points=0, empty payload, loads to an all-empty splat.
	h := newHeader(0, 0, 12, false)
	compressed, err := envelope.Compress(h.encode())
	require.NoError(t, err)

	s, err := FromBytes(compressed, Unspecified)
	require.NoError(t, err)
	assert.Equal(t, 0, s.NumPoints())
	assert.Empty(t, s.Positions())
	assert.Empty(t, s.Scales())
	assert.Empty(t, s.Rotations())
	assert.Empty(t, s.Alphas())
	assert.Empty(t, s.Colors())
	assert.Empty(t, s.SphericalHarmonics())
	assert.True(t, s.CheckSizes())
}

func TestFromBytesBadMagicSwapped(t *testing.T) {
	// S6: magic "GNSP" (swapped) fails load with BadMagic and no partial splat.
	buf := []byte{'G', 'N', 'S', 'P', 3, 0, 0, 0, 0, 0, 0, 0, 0, 12, 0, 0}
	compressed, err := envelope.Compress(buf)
	require.NoError(t, err)

	s, err := FromBytes(compressed, Unspecified)
	assert.ErrorIs(t, err, ErrBadMagic)
	assert.Nil(t, s)
}

func TestFromBytesEmptyInput(t *testing.T) {
	_, err := FromBytes(nil, Unspecified)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func randomSplat(t *testing.T, n int, shDegree uint8) *Splat {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	k := map[uint8]int{0: 0, 1: 3, 2: 8, 3: 15}[shDegree]

	mk := func(length int, scale float32) []float32 {
		out := make([]float32, length)
		for i := range out {
			out[i] = (rng.Float32()*2 - 1) * scale
		}
		return out
	}

	rotations := make([]float32, n*4)
	for i := 0; i < n; i++ {
		q := [4]float32{rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1}
		var norm float32
		for _, c := range q {
			norm += c * c
		}
		inv := float32(1)
		if norm > 0 {
			inv = 1 / float32Sqrt(norm)
		}
		for j := range q {
			rotations[i*4+j] = q[j] * inv
		}
	}

	s, err := NewSplat(
		mk(3*n, 10),
		mk(3*n, 5),
		rotations,
		mk(n, 3),
		mk(3*n, 2),
		mk(n*k*3, 0.5),
		shDegree,
		true,
	)
	require.NoError(t, err)
	s.fractionalBits = 12
	return s
}

func float32Sqrt(v float32) float32 {
	lo, hi := float32(0), v+1
	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		if mid*mid < v {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func TestToBytesFromBytesRoundTrip(t *testing.T) {
	// S5: a v3 splat with sh_degree 3 round-trips through ToBytes/FromBytes
	// with positions within 2^-12 and the other checked attributes within
	// their quantization tolerances.
	s := randomSplat(t, 16, 3)

	compressed, err := s.ToBytes(Unspecified)
	require.NoError(t, err)

	got, err := FromBytes(compressed, Unspecified)
	require.NoError(t, err)

	assert.Equal(t, s.NumPoints(), got.NumPoints())
	assert.Equal(t, s.SHDegree(), got.SHDegree())
	assert.Equal(t, s.Antialiased(), got.Antialiased())

	for i, want := range s.Positions() {
		assert.InDelta(t, want, got.Positions()[i], 1.0/4096.0)
	}
	for i, want := range s.Scales() {
		assert.InDelta(t, want, got.Scales()[i], 1.0/32.0)
	}
	// Alphas are stored as a quantized sigmoid, so they are compared in
	// opacity space at half a byte step.
	for i, want := range s.Alphas() {
		assert.InDelta(t, quant.Sigmoid(want), quant.Sigmoid(got.Alphas()[i]), 1.0/510.0)
	}
	for i, want := range s.Colors() {
		assert.InDelta(t, want, got.Colors()[i], 1.0/(0.15*510.0))
	}
	assert.True(t, got.CheckSizes())
}

func TestHeaderFromBytesPartial(t *testing.T) {
	s := randomSplat(t, 4, 1)
	compressed, err := s.ToBytes(Unspecified)
	require.NoError(t, err)

	h, err := HeaderFromBytes(compressed)
	require.NoError(t, err)
	assert.Equal(t, int32(4), h.NumPoints)
	assert.Equal(t, uint8(1), h.SHDegree)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/scene.spz"

	s := randomSplat(t, 8, 2)
	require.NoError(t, s.Save(path, Unspecified))

	got, err := Load(path, Unspecified)
	require.NoError(t, err)
	assert.Equal(t, s.NumPoints(), got.NumPoints())
	assert.True(t, got.CheckSizes())
}

func TestPackReportNoSaturationForInRangeValues(t *testing.T) {
	s := randomSplat(t, 8, 0)
	_, report, err := s.ToBytesReport(Unspecified)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total())
}

func TestPackReportCountsSaturation(t *testing.T) {
	s, err := NewSplat(
		[]float32{1e9, 0, 0},
		[]float32{0, 0, 0},
		[]float32{0, 0, 0, 1},
		[]float32{0},
		[]float32{0, 0, 0},
		nil, 0, false,
	)
	require.NoError(t, err)

	_, report, err := s.ToBytesReport(Unspecified)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Positions)
}

func TestCloneIndependence(t *testing.T) {
	s := randomSplat(t, 4, 0)
	c := s.Clone()
	c.Positions()[0] = 12345
	assert.NotEqual(t, s.Positions()[0], c.Positions()[0])
}
