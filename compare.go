package bytebuf

import (
	"fmt"
	"strings"
)

// Compare lexicographically compares the [offset, offset+length)
// windows of both buffers and returns -1, 0 or +1 like a three-way
// comparator.
func (b *ByteArray) Compare(o *ByteArray, offset, length int) (int, error) {
	for i := 0; i < length; i++ {
		x, err := b.GetByteAt(offset + i)
		if err != nil {
			return 0, err
		}
		y, err := o.GetByteAt(offset + i)
		if err != nil {
			return 0, err
		}
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
	}
	return 0, nil
}

// Mismatch returns the first index within [offset, offset+length)
// where the buffers differ, or -1 when the windows are identical.
func (b *ByteArray) Mismatch(o *ByteArray, offset, length int) (int, error) {
	for i := 0; i < length; i++ {
		x, err := b.GetByteAt(offset + i)
		if err != nil {
			return 0, err
		}
		y, err := o.GetByteAt(offset + i)
		if err != nil {
			return 0, err
		}
		if x != y {
			return offset + i, nil
		}
	}
	return -1, nil
}

// Equal reports whether both buffers hold the same written bytes.
func (b *ByteArray) Equal(o *ByteArray) bool {
	if b.writer != o.writer {
		return false
	}
	m, err := b.Mismatch(o, 0, b.writer)
	return err == nil && m == -1
}

// Hex renders the written region [0, writerIndex) as paired hex
// digits. See HexRange.
func (b *ByteArray) Hex(sep string, width int) (string, error) {
	return b.HexRange(0, b.writer, sep, width)
}

// HexRange renders [offset, offset+length) as two hex digits per byte
// with sep between bytes. A width above zero inserts a line break
// every time the output reaches that many characters. A window that
// reaches past the written region is a hard error, never padded.
func (b *ByteArray) HexRange(offset, length int, sep string, width int) (string, error) {
	if offset < 0 || length < 0 || offset+length > b.limit {
		return "", fmt.Errorf("%w: hex [%d,%d) with limit %d", ErrOutOfRange, offset, offset+length, b.limit)
	}
	digits := hexUpper
	if b.lowerHex {
		digits = hexLower
	}
	raw := make([]byte, length)
	b.s.copyOut(offset, raw)

	var out strings.Builder
	col := 0
	for i, v := range raw {
		if i > 0 {
			if width > 0 && col >= width {
				out.WriteByte('\n')
				col = 0
			} else if sep != "" {
				out.WriteString(sep)
				col += len(sep)
			}
		}
		out.WriteByte(digits[v>>4])
		out.WriteByte(digits[v&0x0F])
		col += 2
	}
	return out.String(), nil
}
