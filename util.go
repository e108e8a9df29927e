package bytebuf

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Order is the default byte order for new buffers.
	Order binary.ByteOrder = BE
)

// growthStep is the allocation granularity: capacity always grows to
// the next multiple of this step.
const growthStep = 32

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

const (
	hexUpper = "0123456789ABCDEF"
	hexLower = "0123456789abcdef"
)
