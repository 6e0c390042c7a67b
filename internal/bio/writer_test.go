package bio

import "testing"

func TestWriterRoundTripUint32(t *testing.T) {
	w := NewWriter(4)
	w.WriteUint32(0x12345678)
	r := NewReader(w.Bytes())
	got, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x12345678 {
		t.Errorf("got %#x, want %#x", got, 0x12345678)
	}
}

func TestEncodeDecodeI24RoundTrip(t *testing.T) {
	cases := []int32{0, 1, -1, 0x1000, -(1 << 23), (1 << 23) - 1}
	for _, v := range cases {
		var b [3]byte
		EncodeI24(v, b[:])
		if got := DecodeI24(b[:]); got != v {
			t.Errorf("EncodeI24/DecodeI24(%d): got %d", v, got)
		}
	}
}

func TestWriterLen(t *testing.T) {
	w := NewWriter(0)
	w.WriteUint8(1)
	w.WriteUint8(2)
	if w.Len() != 2 {
		t.Errorf("got %d, want 2", w.Len())
	}
}
