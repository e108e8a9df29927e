package bytebuf

// BufferCodec is the extensibility point for structured binary formats
// built atop the buffer core: a record type serializes itself against
// a ByteArray at a given bit offset and reports the number of bits it
// consumed or produced. An offsetBit of 0 means byte-aligned access.
type BufferCodec interface {
	ReadBuffer(b *ByteArray, offsetBit int) (int, error)
	WriteBuffer(b *ByteArray, offsetBit int) (int, error)
}

// GetObject delegates byte-aligned deserialization to the record and
// returns the bit count it reports.
func (b *ByteArray) GetObject(c BufferCodec) (int, error) {
	return c.ReadBuffer(b, 0)
}

// GetObjectBits delegates deserialization at a bit offset.
func (b *ByteArray) GetObjectBits(c BufferCodec, offsetBit int) (int, error) {
	return c.ReadBuffer(b, offsetBit)
}

// PutObject delegates byte-aligned serialization to the record and
// returns the bit count it reports.
func (b *ByteArray) PutObject(c BufferCodec) (int, error) {
	return c.WriteBuffer(b, 0)
}

// PutObjectBits delegates serialization at a bit offset.
func (b *ByteArray) PutObjectBits(c BufferCodec, offsetBit int) (int, error) {
	return c.WriteBuffer(b, offsetBit)
}

// Marshal serializes a record into a fresh byte slice.
func Marshal(c BufferCodec) ([]byte, error) {
	b := New(growthStep)
	if _, err := b.PutObject(c); err != nil {
		return nil, err
	}
	out := make([]byte, b.WriterIndex())
	copy(out, b.Bytes())
	return out, nil
}

// Unmarshal deserializes a record from data. The record decides how
// many bytes it consumes; trailing bytes are left unread.
func Unmarshal(c BufferCodec, data []byte) error {
	_, err := Wrap(data).GetObject(c)
	return err
}
