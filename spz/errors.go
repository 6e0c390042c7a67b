package spz

import "errors"

// Sentinel errors for the SPZ decode/encode error taxonomy. Callers should
// use errors.Is against these values; wrapped context is added with
// fmt.Errorf("...: %w", Err...) at call sites.
var (
	// ErrBadMagic is returned when the first four header bytes are not "NGSP".
	ErrBadMagic = errors.New("spz: bad magic number")

	// ErrUnsupportedVersion is returned for header version 1 or any version
	// greater than 3. Version 1 (float16 positions) is a permanent,
	// intentional non-goal.
	ErrUnsupportedVersion = errors.New("spz: unsupported version")

	// ErrInvalidHeaderField is returned when reserved is non-zero, the high
	// flag bits are non-zero, or sh_degree > 3.
	ErrInvalidHeaderField = errors.New("spz: invalid header field")

	// ErrLengthMismatch is returned when the decompressed payload length does
	// not match what the header fields imply.
	ErrLengthMismatch = errors.New("spz: attribute block length mismatch")

	// ErrCorruptedEnvelope is returned on a gzip CRC/length mismatch or a
	// truncated gzip stream.
	ErrCorruptedEnvelope = errors.New("spz: corrupted gzip envelope")

	// ErrDecompressionTooLarge is returned when the decompressed stream would
	// exceed the configured byte budget.
	ErrDecompressionTooLarge = errors.New("spz: decompressed size exceeds budget")

	// ErrInconsistentSizes is returned by NewSplat when array lengths don't
	// agree with the point count and SH degree.
	ErrInconsistentSizes = errors.New("spz: inconsistent array sizes")

	// ErrEmptyInput is returned when a zero-length buffer is given to a
	// decode entry point; there is no header to read.
	ErrEmptyInput = errors.New("spz: input is empty")

	// ErrIndexOutOfRange reports an index outside [0, NumPoints). No
	// function in this package returns it.
	ErrIndexOutOfRange = errors.New("spz: index out of range")
)
