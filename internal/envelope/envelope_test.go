package envelope

import (
	"bytes"
	"testing"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	want := []byte("the quick brown fox jumps over the lazy dog")

	compressed, err := Compress(want)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	got, err := Decompress(compressed, DefaultMaxDecompressedBytes)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("round trip mismatch: got %q, want %q", got, want)
	}
}

func TestDecompressCorrupted(t *testing.T) {
	if _, err := Decompress([]byte{0x1f, 0x8b, 0x00, 0x00}, DefaultMaxDecompressedBytes); err == nil {
		t.Error("expected error for truncated gzip stream")
	}
}

func TestDecompressTooLarge(t *testing.T) {
	compressed, err := Compress(bytes.Repeat([]byte{'a'}, 1024))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if _, err := Decompress(compressed, 10); err == nil {
		t.Error("expected ErrTooLarge for an over-budget decompression")
	}
}

func TestDecompressPrefix(t *testing.T) {
	want := []byte("0123456789abcdef-rest-of-payload-not-needed")

	compressed, err := Compress(want)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	got, err := DecompressPrefix(compressed, 16)
	if err != nil {
		t.Fatalf("DecompressPrefix failed: %v", err)
	}
	if !bytes.Equal(got, want[:16]) {
		t.Errorf("prefix mismatch: got %q, want %q", got, want[:16])
	}
}
