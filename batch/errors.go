package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeaderLength is returned when the input is shorter than the container header.
	ErrInvalidHeaderLength = errors.New("batch: invalid header length")
	// ErrInvalidMagic is returned when the container's magic prefix does not match.
	ErrInvalidMagic = errors.New("batch: invalid magic number")
	// ErrUnsupportedCompression is returned when the header names a compression type this build cannot decode.
	ErrUnsupportedCompression = errors.New("batch: unsupported compression type")
	// ErrDigestMismatch is returned when the stored digest does not match the compressed payload.
	ErrDigestMismatch = errors.New("batch: digest mismatch")
	// ErrTruncatedRecord is returned when a record's length prefix runs past the end of the payload.
	ErrTruncatedRecord = errors.New("batch: truncated record")
)

// InvalidHeaderLength reports an input shorter than the container header.
func InvalidHeaderLength(n int) error {
	return fmt.Errorf("%w: got %d bytes, need at least %d", ErrInvalidHeaderLength, n, HeaderSize)
}

// UnsupportedCompression reports a compression type byte this build cannot decode.
func UnsupportedCompression(c uint8) error {
	return fmt.Errorf("%w: 0x%02x", ErrUnsupportedCompression, c)
}

// DigestMismatch reports a computed digest that does not match the stored one.
func DigestMismatch(found, computed uint64) error {
	return fmt.Errorf("%w: found 0x%016x, computed 0x%016x", ErrDigestMismatch, found, computed)
}
