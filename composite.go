package bytebuf

import "fmt"

// CompositeByteArray presents an ordered sequence of contiguous
// segments as one logical buffer. The embedded cursor/codec engine is
// unchanged; only the storage access differs, so every codec behaves
// identically to a single contiguous buffer even when a value spans a
// segment boundary.
//
// The logical limit is the sum of the segment limits; the logical
// capacity adds the writable tail of the last segment. Growth expands
// the last segment in place and never inserts a segment mid-sequence.
type CompositeByteArray struct {
	ByteArray
	segs []*ByteArray
}

// NewComposite builds a composite from the given segments, appending
// each in order. Segments must be contiguous buffers.
func NewComposite(segs ...*ByteArray) (*CompositeByteArray, error) {
	c := &CompositeByteArray{ByteArray: ByteArray{order: Order}}
	c.s = &segmented{c: c}
	for _, seg := range segs {
		if err := c.Append(seg); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Append adds a segment at the end of the sequence. The segment's own
// cursors are reset so its region counts as all-unread, all-unwritten;
// its limit is untouched and extends the composite's addressable
// range. The composite writer index stays where it was: appending adds
// capacity, never data.
func (c *CompositeByteArray) Append(seg *ByteArray) error {
	if _, err := seg.contiguous(); err != nil {
		return err
	}
	seg.reader = 0
	seg.writer = 0
	c.segs = append(c.segs, seg)
	c.recompute()
	return nil
}

// Remove detaches and returns the segment at position i, recomputing
// the logical limit and clamping the cursors to it.
func (c *CompositeByteArray) Remove(i int) (*ByteArray, error) {
	if i < 0 || i >= len(c.segs) {
		return nil, fmt.Errorf("%w: segment %d of %d", ErrOutOfRange, i, len(c.segs))
	}
	seg := c.segs[i]
	c.segs = append(c.segs[:i], c.segs[i+1:]...)
	c.recompute()
	return seg, nil
}

func (c *CompositeByteArray) NumSegments() int { return len(c.segs) }

// Segment returns the segment at position i.
func (c *CompositeByteArray) Segment(i int) (*ByteArray, error) {
	if i < 0 || i >= len(c.segs) {
		return nil, fmt.Errorf("%w: segment %d of %d", ErrOutOfRange, i, len(c.segs))
	}
	return c.segs[i], nil
}

// Locate resolves a logical byte index to its segment position and the
// local offset inside that segment. An index at or beyond the logical
// capacity fails; it is never clamped.
func (c *CompositeByteArray) Locate(index int) (int, int, error) {
	if index < 0 {
		return 0, 0, fmt.Errorf("%w: index %d", ErrOutOfRange, index)
	}
	rem := index
	for k, seg := range c.segs {
		span := c.span(k, seg)
		if rem < span {
			return k, rem, nil
		}
		rem -= span
	}
	return 0, 0, fmt.Errorf("%w: index %d beyond composite capacity %d", ErrOutOfRange, index, c.s.capacity())
}

// span is the extent of segment k in the composite's logical offset
// space: the segment limit, except that the last segment also exposes
// its writable tail.
func (c *CompositeByteArray) span(k int, seg *ByteArray) int {
	if k == len(c.segs)-1 {
		return seg.Capacity()
	}
	return seg.limit
}

// recompute restores the limit invariant after a segment list change.
// The writer index moves only when the new limit no longer covers it,
// so appended capacity does not silently become already-written data.
func (c *CompositeByteArray) recompute() {
	total := 0
	for _, seg := range c.segs {
		total += seg.limit
	}
	c.limit = total
	if c.writer > total {
		c.writer = total
	}
	if c.reader > c.writer {
		c.reader = c.writer
	}
}

// segmented is the multi-segment store. The engine bounds-checks every
// access, so the walk here assumes in-range indices.
type segmented struct {
	c *CompositeByteArray
}

var _ store = (*segmented)(nil)

func (s *segmented) capacity() int {
	total := 0
	for k, seg := range s.c.segs {
		total += s.c.span(k, seg)
	}
	return total
}

func (s *segmented) maxCapacity() (int, bool) { return 0, false }

func (s *segmented) byteAt(index int) byte {
	k, local, err := s.c.Locate(index)
	if err != nil {
		panic(err)
	}
	return s.c.segs[k].s.byteAt(local)
}

func (s *segmented) copyOut(index int, dst []byte) {
	if len(dst) == 0 {
		return
	}
	k, local, err := s.c.Locate(index)
	if err != nil {
		panic(err)
	}
	for off := 0; off < len(dst); k++ {
		seg := s.c.segs[k]
		n := min(len(dst)-off, s.c.span(k, seg)-local)
		seg.s.copyOut(local, dst[off:off+n])
		off += n
		local = 0
	}
}

func (s *segmented) copyIn(index int, src []byte) {
	if len(src) == 0 {
		return
	}
	k, local, err := s.c.Locate(index)
	if err != nil {
		panic(err)
	}
	for off := 0; off < len(src); k++ {
		seg := s.c.segs[k]
		n := min(len(src)-off, s.c.span(k, seg)-local)
		seg.s.copyIn(local, src[off:off+n])
		seg.cover(local + n)
		off += n
		local = 0
	}
}

// grow expands the last segment's capacity in place, or appends a
// fresh segment when the composite is empty.
func (s *segmented) grow(min int) error {
	if min <= s.capacity() {
		return nil
	}
	if len(s.c.segs) == 0 {
		seg := New(Roundup(min, growthStep))
		seg.limit = 0 // fresh capacity, nothing addressable until written
		s.c.segs = append(s.c.segs, seg)
		return nil
	}
	last := s.c.segs[len(s.c.segs)-1]
	base := s.capacity() - last.Capacity()
	return last.EnsureCapacity(min - base)
}
