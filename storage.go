package bytebuf

import "fmt"

// storage is the single canonical owner of a slice family's backing
// bytes. Every view of the same family (slices, duplicates, children)
// holds the same *storage, so a reallocation on growth swaps data in
// one place and no view is left pointing at a stale array.
type storage struct {
	data []byte
}

// store abstracts raw byte access for the cursor/codec engine. The
// engine bounds-checks every access against limit/capacity before
// calling in, so implementations are unchecked fast paths.
type store interface {
	byteAt(index int) byte
	copyOut(index int, dst []byte)
	copyIn(index int, src []byte)
	capacity() int
	maxCapacity() (int, bool)
	// grow raises capacity to at least min bytes, rounded up to the
	// growth step. Growth is monotonic; min below the current capacity
	// is a no-op.
	grow(min int) error
}

// cell is the contiguous store: a window of size bytes starting at off
// inside the shared storage array.
type cell struct {
	arena  *storage
	off    int
	size   int
	max    int
	capped bool
}

var _ store = (*cell)(nil)

func newCell(capacity int) *cell {
	return &cell{arena: &storage{data: make([]byte, capacity)}, size: capacity}
}

func (c *cell) byteAt(index int) byte { return c.arena.data[c.off+index] }

func (c *cell) copyOut(index int, dst []byte) { copy(dst, c.arena.data[c.off+index:]) }

func (c *cell) copyIn(index int, src []byte) { copy(c.arena.data[c.off+index:], src) }

func (c *cell) capacity() int { return c.size }

func (c *cell) maxCapacity() (int, bool) { return c.max, c.capped }

func (c *cell) grow(min int) error {
	if min <= c.size {
		return nil
	}
	target := Roundup(min, growthStep)
	if c.capped {
		if min > c.max {
			return fmt.Errorf("%w: need capacity %d, max is %d", ErrOverflow, min, c.max)
		}
		if target > c.max {
			target = c.max
		}
	}
	if c.off+target > len(c.arena.data) {
		grown := make([]byte, c.off+target)
		copy(grown, c.arena.data)
		c.arena.data = grown
	}
	c.size = target
	return nil
}
