package bio

import "testing"

func TestReaderReadUint32LittleEndian(t *testing.T) {
	r := NewReader([]byte{0x78, 0x56, 0x34, 0x12})
	got, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := uint32(0x12345678); got != want {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestReaderReadInt32Negative(t *testing.T) {
	r := NewReader([]byte{0xff, 0xff, 0xff, 0xff})
	got, err := r.ReadInt32()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -1 {
		t.Errorf("got %d, want -1", got)
	}
}

func TestReaderShortBuffer(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	if _, err := r.ReadUint32(); err != ErrShortBuffer {
		t.Errorf("got %v, want ErrShortBuffer", err)
	}
}

func TestReaderSkipAndPos(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	if err := r.Skip(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Pos() != 2 {
		t.Errorf("got pos %d, want 2", r.Pos())
	}
	if r.Len() != 3 {
		t.Errorf("got len %d, want 3", r.Len())
	}
}

func TestDecodeI24SignExtension(t *testing.T) {
	cases := []struct {
		name string
		b    []byte
		want int32
	}{
		{"zero", []byte{0x00, 0x00, 0x00}, 0},
		{"positive", []byte{0x00, 0x10, 0x00}, 0x1000},
		{"negative one", []byte{0xff, 0xff, 0xff}, -1},
		{"min", []byte{0x00, 0x00, 0x80}, -(1 << 23)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DecodeI24(c.b); got != c.want {
				t.Errorf("got %d, want %d", got, c.want)
			}
		})
	}
}
