package wire

import "github.com/cockroachdb/errors"

// Sentinel errors for every way a codec operation can fail. Callers match
// with errors.Is; the wrapped message carries the offending values.
var (
	// ErrInsufficientData indicates a read requested more bytes than remain
	// unread in the buffer.
	ErrInsufficientData = errors.New("insufficient data in buffer")

	// ErrOverflow indicates a decoded VarInt magnitude does not fit the
	// requested target integer width.
	ErrOverflow = errors.New("varint overflows target type")

	// ErrNonCanonical indicates a CompactSize was encoded in a longer form
	// than the shortest one representing its value.
	ErrNonCanonical = errors.New("non-canonical compact size encoding")

	// ErrSizeTooLarge indicates a CompactSize value, on encode or decode,
	// exceeds the buffer's configured maximum.
	ErrSizeTooLarge = errors.New("compact size exceeds maximum")

	// ErrTypeMismatch indicates a composite decode met a byte sequence
	// inconsistent with the expected shape, such as a presence byte outside
	// {0, 1}.
	ErrTypeMismatch = errors.New("wire shape mismatch")

	// ErrBadOffset indicates an Insert or Erase offset outside the buffer.
	ErrBadOffset = errors.New("offset outside buffer")
)
