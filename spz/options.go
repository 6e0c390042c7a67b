package spz

import "github.com/dhawkins/spz-go/internal/envelope"

// LoadOption configures Load and FromBytes. HeaderFromFile and
// HeaderFromBytes accept LoadOptions but ignore them: they decompress only
// the 16-byte header.
type LoadOption func(*loadOptions)

type loadOptions struct {
	maxDecompressedBytes int64
}

func defaultLoadOptions() *loadOptions {
	return &loadOptions{
		maxDecompressedBytes: envelope.DefaultMaxDecompressedBytes,
	}
}

func resolveLoadOptions(opts []LoadOption) *loadOptions {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithMaxDecompressedBytes overrides the gzip decompression budget
// (default [envelope.DefaultMaxDecompressedBytes]); a crafted small gzip
// member claiming a much larger output fails with ErrDecompressionTooLarge
// once more than this many bytes have been produced.
func WithMaxDecompressedBytes(n int64) LoadOption {
	return func(o *loadOptions) {
		if n > 0 {
			o.maxDecompressedBytes = n
		}
	}
}

// SaveOption configures Save and ToBytes.
type SaveOption func(*saveOptions)

type saveOptions struct {
	version Version
}

func defaultSaveOptions() *saveOptions {
	return &saveOptions{
		version: Version3,
	}
}

func resolveSaveOptions(opts []SaveOption) *saveOptions {
	o := defaultSaveOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithVersion selects the on-disk rotation encoding: Version3
// (smallest-three, 4 bytes/point, the default) or Version2 (first-three,
// 3 bytes/point, written directly without round-tripping through V3).
func WithVersion(v Version) SaveOption {
	return func(o *saveOptions) {
		if v == Version2 || v == Version3 {
			o.version = v
		}
	}
}
