package bytebuf

import (
	"fmt"
	"unicode/utf8"
)

// utf8SequenceLen maps a UTF-8 lead byte to its sequence length per
// the standard lead-byte patterns. 0x00 is an explicit end marker
// (length 0), not a code point. Continuation and other invalid lead
// bytes report length -1.
func utf8SequenceLen(lead byte) int {
	switch {
	case lead == 0x00:
		return 0
	case lead < 0x80: // 0xxxxxxx
		return 1
	case lead&0xE0 == 0xC0: // 110xxxxx
		return 2
	case lead&0xF0 == 0xE0: // 1110xxxx
		return 3
	case lead&0xF8 == 0xF0: // 11110xxx
		return 4
	default:
		return -1
	}
}

// GetRune decodes one UTF-8 code point at the read cursor and returns
// it with the number of bytes consumed. A 0x00 lead byte is the end
// marker: the rune is 0, nothing is consumed, and the cursor stays.
func (b *ByteArray) GetRune() (rune, int, error) {
	if b.Readable() < 1 {
		return 0, 0, fmt.Errorf("%w: need 1 byte, 0 readable", ErrUnderflow)
	}
	lead := b.s.byteAt(b.reader)
	n := utf8SequenceLen(lead)
	switch n {
	case -1:
		return 0, 0, fmt.Errorf("%w: 0x%02X", ErrInvalidUTF8, lead)
	case 0:
		return 0, 0, nil
	}
	var p [4]byte
	if err := b.read(p[:n]); err != nil {
		return 0, 0, err
	}
	r, size := utf8.DecodeRune(p[:n])
	if r == utf8.RuneError && size <= 1 {
		return 0, n, fmt.Errorf("%w: malformed %d-byte sequence", ErrInvalidUTF8, n)
	}
	return r, n, nil
}

// PutRune encodes one code point at the write cursor and returns the
// number of bytes written.
func (b *ByteArray) PutRune(r rune) (int, error) {
	var p [4]byte
	n := utf8.EncodeRune(p[:], r)
	if err := b.write(p[:n]); err != nil {
		return 0, err
	}
	return n, nil
}

// GetString reads a NUL-terminated string: it scans forward from the
// read cursor until a 0x00 byte or the writer index, decodes the span
// under the buffer's charset, and advances the cursor past the
// terminator when one was found.
func (b *ByteArray) GetString() (string, error) {
	end := b.reader
	terminated := false
	for end < b.writer {
		if b.s.byteAt(end) == 0x00 {
			terminated = true
			break
		}
		end++
	}
	raw := make([]byte, end-b.reader)
	b.s.copyOut(b.reader, raw)
	s, err := decodeCharset(b.charset, raw)
	if err != nil {
		return "", err
	}
	b.reader = end
	if terminated {
		b.reader++
	}
	return s, nil
}

// PutString writes s under the buffer's charset followed by a single
// 0x00 terminator, and returns the total byte count including the
// terminator.
func (b *ByteArray) PutString(s string) (int, error) {
	raw, err := encodeCharset(b.charset, s)
	if err != nil {
		return 0, err
	}
	if b.readOnly {
		return 0, ErrReadOnly
	}
	// string and terminator must fit before either is written
	if err := b.s.grow(b.writer + len(raw) + 1); err != nil {
		return 0, err
	}
	if err := b.write(raw); err != nil {
		return 0, err
	}
	if err := b.PutByte(0x00); err != nil {
		return len(raw), err
	}
	return len(raw) + 1, nil
}

// GetStringN reads exactly n bytes and decodes them under the buffer's
// charset. No terminator is expected or consumed.
func (b *ByteArray) GetStringN(n int) (string, error) {
	raw, err := b.GetBytes(n)
	if err != nil {
		return "", err
	}
	return decodeCharset(b.charset, raw)
}

// PutStringN writes s under the buffer's charset with no terminator
// and returns the byte count.
func (b *ByteArray) PutStringN(s string) (int, error) {
	raw, err := encodeCharset(b.charset, s)
	if err != nil {
		return 0, err
	}
	if err := b.write(raw); err != nil {
		return 0, err
	}
	return len(raw), nil
}
