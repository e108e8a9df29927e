package bytebuf

import "fmt"

// Bit-field codecs pack values narrower than a byte without disturbing
// neighboring bits. Bits are numbered 7 (most significant) down to 0;
// a field of width w at offsetBit o occupies bits [o, o-w+1]. An
// access whose field reaches bit 0 completes the byte, and the
// relative forms then advance their cursor; accesses higher up in the
// byte never move the cursor.
//
// Valid offsets per width: 1-bit 0..7, 2-bit 1..7, 4-bit 3 or 7.

func checkBitOffset(width, offsetBit int) error {
	switch width {
	case 1:
		if offsetBit >= 0 && offsetBit <= 7 {
			return nil
		}
		return fmt.Errorf("%w: 1-bit field at offset %d, want 0..7", ErrBitOffset, offsetBit)
	case 2:
		if offsetBit >= 1 && offsetBit <= 7 {
			return nil
		}
		return fmt.Errorf("%w: 2-bit field at offset %d, want 1..7", ErrBitOffset, offsetBit)
	case 4:
		if offsetBit == 3 || offsetBit == 7 {
			return nil
		}
		return fmt.Errorf("%w: 4-bit field at offset %d, want 3 or 7", ErrBitOffset, offsetBit)
	default:
		return fmt.Errorf("%w: unsupported field width %d, want 1, 2 or 4", ErrBitOffset, width)
	}
}

// rmwByte applies a read-modify-write to the byte at index, growing
// the buffer first so partial writes can target the unwritten byte at
// the writer index.
func (b *ByteArray) rmwByte(index int, f func(byte) byte) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if index < 0 {
		return fmt.Errorf("%w: index %d", ErrOutOfRange, index)
	}
	if err := b.s.grow(index + 1); err != nil {
		return err
	}
	var v [1]byte
	v[0] = f(b.s.byteAt(index))
	b.s.copyIn(index, v[:])
	b.extend(index + 1)
	return nil
}

// GetBitsAt reads a width-bit field at offsetBit within the byte at
// the given absolute index.
func (b *ByteArray) GetBitsAt(index, width, offsetBit int) (uint8, error) {
	if err := checkBitOffset(width, offsetBit); err != nil {
		return 0, err
	}
	v, err := b.GetByteAt(index)
	if err != nil {
		return 0, err
	}
	shift := offsetBit - width + 1
	return (v >> shift) & (1<<width - 1), nil
}

// PutBitsAt writes a width-bit field at offsetBit within the byte at
// the given absolute index, preserving the byte's other bits.
func (b *ByteArray) PutBitsAt(index, width, offsetBit int, v uint8) error {
	if err := checkBitOffset(width, offsetBit); err != nil {
		return err
	}
	shift := offsetBit - width + 1
	mask := byte(1<<width-1) << shift
	return b.rmwByte(index, func(old byte) byte {
		return old&^mask | v<<shift&mask
	})
}

// GetBits reads a width-bit field from the byte at the read cursor.
// The cursor advances one byte only when the field reaches bit 0.
func (b *ByteArray) GetBits(width, offsetBit int) (uint8, error) {
	if err := checkBitOffset(width, offsetBit); err != nil {
		return 0, err
	}
	if b.Readable() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte, 0 readable", ErrUnderflow)
	}
	shift := offsetBit - width + 1
	v := (b.s.byteAt(b.reader) >> shift) & (1<<width - 1)
	if shift == 0 {
		b.reader++
	}
	return v, nil
}

// PutBits writes a width-bit field into the byte at the write cursor.
// The cursor advances one byte only when the field reaches bit 0.
func (b *ByteArray) PutBits(width, offsetBit int, v uint8) error {
	if err := checkBitOffset(width, offsetBit); err != nil {
		return err
	}
	if err := b.PutBitsAt(b.writer, width, offsetBit, v); err != nil {
		return err
	}
	if offsetBit-width+1 == 0 {
		b.writer++
		b.extend(b.writer)
	}
	return nil
}

// --- 12-bit fields ---
//
// A 12-bit field spans two adjacent bytes. At offsetBit 3 it occupies
// the low nibble of the first byte and all of the second; at offsetBit
// 7 it occupies all of the first byte and the high nibble of the
// second. Byte order controls which end of the value lands first:
//
//	big-endian, offset 3:    b[i]&0x0F = v>>8,   b[i+1] = v
//	big-endian, offset 7:    b[i] = v>>4,        b[i+1]&0xF0 = v<<4
//	little-endian, offset 3: b[i]&0x0F = v,      b[i+1] = v>>4
//	little-endian, offset 7: b[i] = v,           b[i+1]&0xF0 = v>>8<<4
//
// Values round-trip for 0..4095.

func check12BitOffset(offsetBit int) error {
	if offsetBit == 3 || offsetBit == 7 {
		return nil
	}
	return fmt.Errorf("%w: 12-bit field at offset %d, want 3 or 7", ErrBitOffset, offsetBit)
}

// Get12At reads a 12-bit field spanning the bytes at index and index+1.
func (b *ByteArray) Get12At(index, offsetBit int) (uint16, error) {
	if err := check12BitOffset(offsetBit); err != nil {
		return 0, err
	}
	var p [2]byte
	if err := b.readAt(index, p[:]); err != nil {
		return 0, err
	}
	little := b.order == LE
	if offsetBit == 3 {
		if little {
			return uint16(p[0]&0x0F) | uint16(p[1])<<4, nil
		}
		return uint16(p[0]&0x0F)<<8 | uint16(p[1]), nil
	}
	if little {
		return uint16(p[0]) | uint16(p[1]>>4)<<8, nil
	}
	return uint16(p[0])<<4 | uint16(p[1]>>4), nil
}

// Put12At writes a 12-bit field spanning the bytes at index and
// index+1, preserving the nibble the field does not cover.
func (b *ByteArray) Put12At(index, offsetBit int, v uint16) error {
	if err := check12BitOffset(offsetBit); err != nil {
		return err
	}
	if v > 0x0FFF {
		return fmt.Errorf("%w: 12-bit value %d, want 0..4095", ErrOutOfRange, v)
	}
	if b.readOnly {
		return ErrReadOnly
	}
	if index < 0 {
		return fmt.Errorf("%w: index %d", ErrOutOfRange, index)
	}
	// both bytes must fit before either is touched
	if err := b.s.grow(index + 2); err != nil {
		return err
	}
	little := b.order == LE
	var first, second byte
	if offsetBit == 3 {
		if little {
			first, second = byte(v)&0x0F, byte(v>>4)
		} else {
			first, second = byte(v>>8)&0x0F, byte(v)
		}
		if err := b.rmwByte(index, func(old byte) byte { return old&0xF0 | first }); err != nil {
			return err
		}
		return b.rmwByte(index+1, func(byte) byte { return second })
	}
	if little {
		first, second = byte(v), byte(v>>8)<<4
	} else {
		first, second = byte(v>>4), byte(v)<<4
	}
	if err := b.rmwByte(index, func(byte) byte { return first }); err != nil {
		return err
	}
	return b.rmwByte(index+1, func(old byte) byte { return old&0x0F | second })
}

// Get12 reads a 12-bit field at the read cursor. At offset 3 both
// bytes complete and the cursor advances two; at offset 7 only the
// first byte completes and the cursor advances one, leaving the second
// byte's low nibble unread.
func (b *ByteArray) Get12(offsetBit int) (uint16, error) {
	v, err := b.Get12At(b.reader, offsetBit)
	if err != nil {
		return 0, err
	}
	if offsetBit == 3 {
		b.reader += 2
	} else {
		b.reader++
	}
	return v, nil
}

// Put12 writes a 12-bit field at the write cursor, advancing it past
// every completed byte: two bytes at offset 3, one at offset 7.
func (b *ByteArray) Put12(offsetBit int, v uint16) error {
	if err := b.Put12At(b.writer, offsetBit, v); err != nil {
		return err
	}
	if offsetBit == 3 {
		b.writer += 2
	} else {
		b.writer++
	}
	b.extend(b.writer)
	return nil
}
