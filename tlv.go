package bytebuf

import "fmt"

// TLV is a minimal self-describing binary record: one tag byte, one
// length byte, then length value bytes.
type TLV struct {
	Tag   uint8
	Value []byte
}

// GetTLV reads a TLV record at the read cursor.
func (b *ByteArray) GetTLV() (TLV, error) {
	var hdr [2]byte
	if err := b.read(hdr[:]); err != nil {
		return TLV{}, err
	}
	value, err := b.GetBytes(int(hdr[1]))
	if err != nil {
		return TLV{}, err
	}
	return TLV{Tag: hdr[0], Value: value}, nil
}

// PutTLV writes a TLV record at the write cursor and returns the total
// byte count. A nil value writes a zero length byte and no value bytes.
func (b *ByteArray) PutTLV(tag uint8, value []byte) (int, error) {
	if len(value) > 0xFF {
		return 0, fmt.Errorf("%w: %d bytes", ErrValueTooLong, len(value))
	}
	if b.readOnly {
		return 0, ErrReadOnly
	}
	// the whole record must fit before the header is written
	if err := b.s.grow(b.writer + 2 + len(value)); err != nil {
		return 0, err
	}
	if err := b.write([]byte{tag, byte(len(value))}); err != nil {
		return 0, err
	}
	if err := b.write(value); err != nil {
		return 2, err
	}
	return 2 + len(value), nil
}
