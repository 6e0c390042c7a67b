package spz

import "testing"

// FuzzFromBytes exercises the entire decode path (gzip envelope + header +
// all six attribute blocks) against arbitrary byte sequences. P6: no input
// of any length may panic (an out-of-bounds read panics in Go), and
// decompression is capped at 1 MiB. The returned error is not inspected.
func FuzzFromBytes(f *testing.F) {
	h := newHeader(0, 0, 12, false)
	f.Add(h.encode())
	f.Add([]byte{})
	f.Add([]byte{0x1f, 0x8b}) // gzip magic only, truncated
	f.Add(make([]byte, HeaderSize))

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("FromBytes panicked on input of length %d: %v", len(data), r)
			}
		}()
		_, _ = FromBytes(data, Unspecified, WithMaxDecompressedBytes(1<<20))
	})
}

// FuzzHeaderFromBytes exercises the header-only partial-gunzip path.
func FuzzHeaderFromBytes(f *testing.F) {
	h := newHeader(1000, 3, 12, true)
	f.Add(h.encode())
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("HeaderFromBytes panicked on input of length %d: %v", len(data), r)
			}
		}()
		_, _ = HeaderFromBytes(data)
	})
}
