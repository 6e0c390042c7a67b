package spz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	// P1: for all valid Header values, decode(encode(h)) == h.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		h := Header{
			Magic:          magicValue,
			Version:        []Version{Version2, Version3}[rng.Intn(2)],
			NumPoints:      rng.Int31n(1 << 20),
			SHDegree:       uint8(rng.Intn(4)),
			FractionalBits: uint8(rng.Intn(256)),
			Flags:          uint8(rng.Intn(2)),
			Reserved:       0,
		}
		got, err := decodeHeader(h.encode())
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}
}

func TestHeaderEncodeSize(t *testing.T) {
	h := newHeader(0, 0, 12, false)
	assert.Len(t, h.encode(), HeaderSize)
}

func TestHeaderValidateBadMagic(t *testing.T) {
	// S6: magic "GNSP" (swapped) fails with ErrBadMagic.
	buf := []byte{'G', 'N', 'S', 'P', 3, 0, 0, 0, 0, 0, 0, 0, 0, 12, 0, 0}
	_, err := decodeHeader(buf)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestHeaderValidateVersion1Rejected(t *testing.T) {
	h := newHeader(0, 0, 12, false)
	h.Version = 1
	_, err := decodeHeader(h.encode())
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestHeaderValidateReservedNonZero(t *testing.T) {
	h := newHeader(0, 0, 12, false)
	h.Reserved = 1
	_, err := decodeHeader(h.encode())
	assert.ErrorIs(t, err, ErrInvalidHeaderField)
}

func TestHeaderValidateSHDegreeTooLarge(t *testing.T) {
	h := newHeader(0, 0, 12, false)
	h.SHDegree = 4
	_, err := decodeHeader(h.encode())
	assert.ErrorIs(t, err, ErrInvalidHeaderField)
}

func TestHeaderValidateFlagsHighBits(t *testing.T) {
	h := newHeader(0, 0, 12, false)
	h.Flags = 0x02
	_, err := decodeHeader(h.encode())
	assert.ErrorIs(t, err, ErrInvalidHeaderField)
}

func TestHeaderValidateNegativeNumPoints(t *testing.T) {
	h := newHeader(-1, 0, 12, false)
	_, err := decodeHeader(h.encode())
	assert.ErrorIs(t, err, ErrInvalidHeaderField)
}

func TestHeaderDecodeUncheckedAcceptsMalformed(t *testing.T) {
	h := newHeader(0, 0, 12, false)
	h.Reserved = 7
	got, err := decodeHeaderUnchecked(h.encode())
	require.NoError(t, err)
	assert.Equal(t, uint8(7), got.Reserved)
}

func TestHeaderDecodeShortBuffer(t *testing.T) {
	_, err := decodeHeader(make([]byte, HeaderSize-1))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSHCoeffsForDegree(t *testing.T) {
	cases := map[uint8]int{0: 0, 1: 3, 2: 8, 3: 15}
	for degree, want := range cases {
		h := Header{SHDegree: degree}
		assert.Equal(t, want, h.SHCoeffsPerPoint())
	}
}

func TestAntialiasedFlag(t *testing.T) {
	h := newHeader(0, 0, 12, true)
	assert.True(t, h.Antialiased())
	h2 := newHeader(0, 0, 12, false)
	assert.False(t, h2.Antialiased())
}
