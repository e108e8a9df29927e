package bytebuf

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding"
)

// ByteArray is a mutable byte buffer with independent reader and writer
// cursors. The invariant 0 <= readerIndex <= writerIndex <= limit <=
// capacity holds after every call. Multi-byte codecs honor the buffer's
// byte order; string codecs honor its charset.
//
// A ByteArray is not safe for concurrent use.
type ByteArray struct {
	s store

	reader int
	writer int
	limit  int

	markR    int
	markRSet bool
	markW    int
	markWSet bool

	order    binary.ByteOrder
	charset  encoding.Encoding
	readOnly bool
	lowerHex bool

	// parent is set for child buffers only: raising the child's limit
	// pushes the high-water mark into the parent's bookkeeping.
	parent    *ByteArray
	parentOff int
}

// New allocates a buffer with the given capacity and unbounded growth.
// The limit starts at the capacity; later growth raises the limit only
// as the writer index moves into the grown region.
func New(capacity int) *ByteArray {
	return &ByteArray{s: newCell(capacity), limit: capacity, order: Order}
}

// NewBounded allocates a buffer whose capacity may never grow past max.
func NewBounded(capacity, max int) (*ByteArray, error) {
	if capacity < 0 || max < capacity {
		return nil, fmt.Errorf("%w: capacity %d with max %d", ErrOutOfRange, capacity, max)
	}
	c := newCell(capacity)
	c.max = max
	c.capped = true
	return &ByteArray{s: c, limit: capacity, order: Order}, nil
}

// Wrap adopts an existing slice as the backing storage. The wrapped
// bytes count as already written: writerIndex and limit start at
// len(data).
func Wrap(data []byte) *ByteArray {
	return &ByteArray{
		s:      &cell{arena: &storage{data: data}, size: len(data)},
		writer: len(data),
		limit:  len(data),
		order:  Order,
	}
}

// WithOrder sets the byte order for multi-byte codecs and returns the
// buffer for chaining.
func (b *ByteArray) WithOrder(order binary.ByteOrder) *ByteArray {
	b.order = order
	return b
}

// WithCharset sets the character encoding used by the string codecs.
// A nil charset means raw UTF-8 passthrough.
func (b *ByteArray) WithCharset(enc encoding.Encoding) *ByteArray {
	b.charset = enc
	return b
}

// WithLowerHex selects lowercase digits for hex dumps.
func (b *ByteArray) WithLowerHex(lower bool) *ByteArray {
	b.lowerHex = lower
	return b
}

func (b *ByteArray) Order() binary.ByteOrder { return b.order }

func (b *ByteArray) Charset() encoding.Encoding { return b.charset }

func (b *ByteArray) IsReadOnly() bool { return b.readOnly }

func (b *ByteArray) Capacity() int { return b.s.capacity() }

func (b *ByteArray) MaxCapacity() (int, bool) { return b.s.maxCapacity() }

func (b *ByteArray) ReaderIndex() int { return b.reader }

func (b *ByteArray) WriterIndex() int { return b.writer }

func (b *ByteArray) Limit() int { return b.limit }

// Readable returns the bytes remaining between readerIndex and limit.
func (b *ByteArray) Readable() int { return b.limit - b.reader }

// Writable returns the bytes remaining between writerIndex and capacity.
func (b *ByteArray) Writable() int { return b.s.capacity() - b.writer }

// SetReaderIndex moves the read cursor to n, which must lie in
// [0, writerIndex].
func (b *ByteArray) SetReaderIndex(n int) error {
	if n < 0 || n > b.writer {
		return fmt.Errorf("%w: readerIndex %d outside [0,%d]", ErrOutOfRange, n, b.writer)
	}
	b.reader = n
	return nil
}

// SetWriterIndex moves the write cursor to n, which must lie in
// [readerIndex, capacity]. Setting it above the current limit raises
// the limit to match.
func (b *ByteArray) SetWriterIndex(n int) error {
	if n < b.reader || n > b.s.capacity() {
		return fmt.Errorf("%w: writerIndex %d outside [%d,%d]", ErrOutOfRange, n, b.reader, b.s.capacity())
	}
	b.writer = n
	b.extend(n)
	return nil
}

// SetLimit moves the limit to n, which must lie in [writerIndex,
// capacity]. Lowering the limit is permitted; raising it propagates
// the new high-water mark into the parent chain.
func (b *ByteArray) SetLimit(n int) error {
	if n < b.writer || n > b.s.capacity() {
		return fmt.Errorf("%w: limit %d outside [%d,%d]", ErrOutOfRange, n, b.writer, b.s.capacity())
	}
	if n > b.limit {
		b.extend(n)
	} else {
		b.limit = n
	}
	return nil
}

// EnsureCapacity grows the buffer so that at least n bytes are
// addressable. Capacity rises to the next multiple of the growth step
// and never shrinks; previously written bytes are preserved.
func (b *ByteArray) EnsureCapacity(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: capacity %d", ErrOutOfRange, n)
	}
	return b.s.grow(n)
}

// Resize grows the buffer to exactly accommodate n bytes. Requesting
// less than the current capacity is a misuse and fails with ErrShrink.
func (b *ByteArray) Resize(n int) error {
	if n < b.s.capacity() {
		return fmt.Errorf("%w: %d below current capacity %d", ErrShrink, n, b.s.capacity())
	}
	return b.s.grow(n)
}

// Skip advances the read cursor by n bytes.
func (b *ByteArray) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: skip %d", ErrOutOfRange, n)
	}
	if b.Readable() < n {
		return fmt.Errorf("%w: skip %d with %d readable", ErrUnderflow, n, b.Readable())
	}
	b.reader += n
	return nil
}

// Clear rewinds both cursors to zero. The limit and contents are left
// untouched, so the written region can be re-read or overwritten.
func (b *ByteArray) Clear() {
	b.reader = 0
	b.writer = 0
}

func (b *ByteArray) MarkReader() {
	b.markR = b.reader
	b.markRSet = true
}

func (b *ByteArray) ResetReader() error {
	if !b.markRSet {
		return ErrMarkUnset
	}
	return b.SetReaderIndex(b.markR)
}

func (b *ByteArray) MarkWriter() {
	b.markW = b.writer
	b.markWSet = true
}

func (b *ByteArray) ResetWriter() error {
	if !b.markWSet {
		return ErrMarkUnset
	}
	return b.SetWriterIndex(b.markW)
}

// Bytes returns the written region [0, writerIndex). For a contiguous
// buffer this is a view of the backing array; for a composite buffer
// it is a copy.
func (b *ByteArray) Bytes() []byte {
	if c, ok := b.s.(*cell); ok {
		return c.arena.data[c.off : c.off+b.writer]
	}
	out := make([]byte, b.writer)
	b.s.copyOut(0, out)
	return out
}

// --- Internal access helpers ---
//
// Every codec funnels through these four: they own the bounds checks,
// growth, cursor advancement, and limit propagation.

func (b *ByteArray) readAt(index int, dst []byte) error {
	if index < 0 || index+len(dst) > b.limit {
		return fmt.Errorf("%w: read [%d,%d) with limit %d", ErrOutOfRange, index, index+len(dst), b.limit)
	}
	b.s.copyOut(index, dst)
	return nil
}

func (b *ByteArray) read(dst []byte) error {
	if b.Readable() < len(dst) {
		return fmt.Errorf("%w: need %d bytes, %d readable", ErrUnderflow, len(dst), b.Readable())
	}
	b.s.copyOut(b.reader, dst)
	b.reader += len(dst)
	return nil
}

func (b *ByteArray) writeAt(index int, src []byte) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if index < 0 {
		return fmt.Errorf("%w: index %d", ErrOutOfRange, index)
	}
	if err := b.s.grow(index + len(src)); err != nil {
		return err
	}
	b.s.copyIn(index, src)
	b.extend(index + len(src))
	return nil
}

func (b *ByteArray) write(src []byte) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if err := b.s.grow(b.writer + len(src)); err != nil {
		return err
	}
	b.s.copyIn(b.writer, src)
	b.writer += len(src)
	b.extend(b.writer)
	return nil
}

// extend raises the limit to cover hi and pushes the new high-water
// mark into the parent chain. Recursion terminates at the root.
func (b *ByteArray) extend(hi int) {
	if hi <= b.limit {
		return
	}
	b.limit = hi
	if b.parent != nil {
		b.parent.cover(b.parentOff + hi)
	}
}

// cover raises the writer index (hence limit) to at least hi, in
// response to a descendant's growth.
func (b *ByteArray) cover(hi int) {
	if hi > b.writer {
		b.writer = hi
	}
	b.extend(hi)
}

// --- Byte and bulk accessors ---

func (b *ByteArray) GetByte() (byte, error) {
	var v [1]byte
	if err := b.read(v[:]); err != nil {
		return 0, err
	}
	return v[0], nil
}

func (b *ByteArray) GetByteAt(index int) (byte, error) {
	var v [1]byte
	if err := b.readAt(index, v[:]); err != nil {
		return 0, err
	}
	return v[0], nil
}

func (b *ByteArray) PutByte(v byte) error {
	return b.write([]byte{v})
}

func (b *ByteArray) PutByteAt(index int, v byte) error {
	return b.writeAt(index, []byte{v})
}

// GetBytes reads n bytes into a new slice, advancing the read cursor.
func (b *ByteArray) GetBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: length %d", ErrOutOfRange, n)
	}
	dst := make([]byte, n)
	if err := b.read(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// GetBytesAt fills dst from the given absolute index without moving
// the read cursor.
func (b *ByteArray) GetBytesAt(index int, dst []byte) error {
	return b.readAt(index, dst)
}

func (b *ByteArray) PutBytes(src []byte) error {
	return b.write(src)
}

func (b *ByteArray) PutBytesAt(index int, src []byte) error {
	return b.writeAt(index, src)
}

// --- Views ---

func (b *ByteArray) contiguous() (*cell, error) {
	c, ok := b.s.(*cell)
	if !ok {
		return nil, ErrNonContiguous
	}
	return c, nil
}

// Slice returns a view of [index, index+length) sharing the backing
// storage with independent cursors. The sliced range counts as fully
// written in the view. The view is a fixed window: a write reaching
// past it fails with ErrOverflow rather than growing shared storage.
func (b *ByteArray) Slice(index, length int) (*ByteArray, error) {
	c, err := b.contiguous()
	if err != nil {
		return nil, err
	}
	if index < 0 || length < 0 || index+length > c.size {
		return nil, fmt.Errorf("%w: slice [%d,%d) with capacity %d", ErrOutOfRange, index, index+length, c.size)
	}
	return &ByteArray{
		s:        &cell{arena: c.arena, off: c.off + index, size: length, max: length, capped: true},
		writer:   length,
		limit:    length,
		order:    b.order,
		charset:  b.charset,
		readOnly: b.readOnly,
		lowerHex: b.lowerHex,
	}, nil
}

// Duplicate returns a view of the whole buffer sharing the backing
// storage, with the cursors copied but independent from this point on.
func (b *ByteArray) Duplicate() (*ByteArray, error) {
	c, err := b.contiguous()
	if err != nil {
		return nil, err
	}
	dup := *b
	dup.s = &cell{arena: c.arena, off: c.off, size: c.size, max: c.max, capped: c.capped}
	dup.parent = nil
	dup.parentOff = 0
	return &dup, nil
}

// AsReadOnly returns a read-only view sharing the backing storage.
func (b *ByteArray) AsReadOnly() (*ByteArray, error) {
	dup, err := b.Duplicate()
	if err != nil {
		return nil, err
	}
	dup.readOnly = true
	return dup, nil
}

// Child returns a fresh sub-buffer over [index, index+length) that
// back-references this buffer as its parent: writes that raise the
// child's limit raise the parent's writer index to cover them. Used
// for nested-record layouts where children are sub-fields of a packet.
// The child is capped at its window, so the propagated high-water mark
// can never push the parent's limit past the parent's capacity.
func (b *ByteArray) Child(index, length int) (*ByteArray, error) {
	c, err := b.contiguous()
	if err != nil {
		return nil, err
	}
	if index < 0 || length < 0 || index+length > c.size {
		return nil, fmt.Errorf("%w: child [%d,%d) with capacity %d", ErrOutOfRange, index, index+length, c.size)
	}
	return &ByteArray{
		s:         &cell{arena: c.arena, off: c.off + index, size: length, max: length, capped: true},
		order:     b.order,
		charset:   b.charset,
		lowerHex:  b.lowerHex,
		parent:    b,
		parentOff: index,
	}, nil
}

// Root walks the parent chain to the outermost owner.
func (b *ByteArray) Root() *ByteArray {
	r := b
	for r.parent != nil {
		r = r.parent
	}
	return r
}
