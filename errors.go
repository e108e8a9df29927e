package bytebuf

import "errors"

var (
	// ErrOutOfRange indicates an index or length outside the buffer's
	// addressable range. It is never silently clamped or truncated.
	ErrOutOfRange = errors.New("bytebuf: index out of range")

	// ErrUnderflow indicates a read request that exceeds the readable
	// bytes between readerIndex and limit.
	ErrUnderflow = errors.New("bytebuf: buffer underflow")

	// ErrOverflow indicates a write request that exceeds the writable
	// region and cannot be satisfied by growing the buffer.
	ErrOverflow = errors.New("bytebuf: buffer overflow")

	// ErrShrink indicates an attempt to reduce a buffer's capacity.
	// Capacity growth is monotonic; shrinking is a programmer error.
	ErrShrink = errors.New("bytebuf: capacity cannot shrink")

	// ErrReadOnly indicates a write was attempted on a read-only view.
	ErrReadOnly = errors.New("bytebuf: buffer is read-only")

	// ErrBitOffset indicates a bit-field access with an offset outside
	// the valid range for its width.
	ErrBitOffset = errors.New("bytebuf: invalid bit offset")

	// ErrInvalidUTF8 indicates a malformed UTF-8 lead byte.
	ErrInvalidUTF8 = errors.New("bytebuf: invalid UTF-8 lead byte")

	// ErrMarkUnset indicates a cursor reset without a prior mark.
	ErrMarkUnset = errors.New("bytebuf: mark has not been set")

	// ErrNonContiguous indicates an operation that requires a single
	// backing array was attempted on a composite buffer.
	ErrNonContiguous = errors.New("bytebuf: buffer is not contiguous")

	// ErrValueTooLong indicates a TLV value longer than the one-byte
	// length field can describe.
	ErrValueTooLong = errors.New("bytebuf: TLV value exceeds 255 bytes")
)
