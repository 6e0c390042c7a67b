// Package envelope implements the gzip compression wrapper around the SPZ
// payload (header + attribute blocks).
package envelope

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// ErrCorrupted is returned when the gzip CRC or length check fails, or the
// stream is truncated before a full member is read.
var ErrCorrupted = errors.New("envelope: corrupted gzip stream")

// ErrTooLarge is returned when the decompressed stream would exceed the
// caller-supplied byte budget.
var ErrTooLarge = errors.New("envelope: decompressed size exceeds budget")

// DefaultMaxDecompressedBytes bounds decompression in the absence of an
// explicit caller-supplied budget.
const DefaultMaxDecompressedBytes = 2 << 30

// Decompress gunzips compressed into a freshly allocated buffer, refusing to
// grow past maxBytes. A crafted small gzip member with a huge declared
// output can't exhaust memory: growth is bounded by copying through a
// capped io.LimitReader with an extra-byte sentinel read to detect overflow.
func Decompress(compressed []byte, maxBytes int64) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("envelope: opening gzip member: %w", errors.Join(err, ErrCorrupted))
	}
	defer zr.Close()

	limited := io.LimitReader(zr, maxBytes+1)
	out, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("envelope: reading gzip member: %w", errors.Join(err, ErrCorrupted))
	}
	if int64(len(out)) > maxBytes {
		return nil, fmt.Errorf("envelope: decompressed past %d bytes: %w", maxBytes, ErrTooLarge)
	}
	// Draining the rest of the member (if any) surfaces CRC/length errors
	// that only appear at the gzip trailer.
	if _, err := io.Copy(io.Discard, zr); err != nil {
		return nil, fmt.Errorf("envelope: verifying gzip trailer: %w", errors.Join(err, ErrCorrupted))
	}
	return out, nil
}

// DecompressPrefix reads only the first n decompressed bytes of compressed
// and stops, without validating the gzip trailer (CRC/length) or reading
// the rest of the member. Used by header-only inspection so that metadata
// reads don't pay for decompressing an entire file.
func DecompressPrefix(compressed []byte, n int) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("envelope: opening gzip member: %w", errors.Join(err, ErrCorrupted))
	}
	defer zr.Close()

	out := make([]byte, n)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, fmt.Errorf("envelope: reading gzip prefix: %w", errors.Join(err, ErrCorrupted))
	}
	return out, nil
}

// Compress gzips decompressed using the default compression level, for
// reproducible, single-member output across runs and platforms.
func Compress(decompressed []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("envelope: creating gzip writer: %w", err)
	}
	if _, err := zw.Write(decompressed); err != nil {
		zw.Close()
		return nil, fmt.Errorf("envelope: writing gzip payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("envelope: closing gzip writer: %w", err)
	}
	return buf.Bytes(), nil
}
