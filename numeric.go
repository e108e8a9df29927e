package bytebuf

import "math"

// Multi-byte integer and IEEE 754 codecs. Each width has a relative
// form that advances the matching cursor and an At form that targets an
// absolute index. Byte order follows the buffer's order: big-endian
// places the most significant byte at the lowest index.

func (b *ByteArray) GetUint16() (uint16, error) {
	var v [2]byte
	if err := b.read(v[:]); err != nil {
		return 0, err
	}
	return b.order.Uint16(v[:]), nil
}

func (b *ByteArray) GetUint16At(index int) (uint16, error) {
	var v [2]byte
	if err := b.readAt(index, v[:]); err != nil {
		return 0, err
	}
	return b.order.Uint16(v[:]), nil
}

func (b *ByteArray) GetInt16() (int16, error) {
	v, err := b.GetUint16()
	return int16(v), err
}

func (b *ByteArray) GetInt16At(index int) (int16, error) {
	v, err := b.GetUint16At(index)
	return int16(v), err
}

func (b *ByteArray) GetUint32() (uint32, error) {
	var v [4]byte
	if err := b.read(v[:]); err != nil {
		return 0, err
	}
	return b.order.Uint32(v[:]), nil
}

func (b *ByteArray) GetUint32At(index int) (uint32, error) {
	var v [4]byte
	if err := b.readAt(index, v[:]); err != nil {
		return 0, err
	}
	return b.order.Uint32(v[:]), nil
}

func (b *ByteArray) GetInt32() (int32, error) {
	v, err := b.GetUint32()
	return int32(v), err
}

func (b *ByteArray) GetInt32At(index int) (int32, error) {
	v, err := b.GetUint32At(index)
	return int32(v), err
}

func (b *ByteArray) GetUint64() (uint64, error) {
	var v [8]byte
	if err := b.read(v[:]); err != nil {
		return 0, err
	}
	return b.order.Uint64(v[:]), nil
}

func (b *ByteArray) GetUint64At(index int) (uint64, error) {
	var v [8]byte
	if err := b.readAt(index, v[:]); err != nil {
		return 0, err
	}
	return b.order.Uint64(v[:]), nil
}

func (b *ByteArray) GetInt64() (int64, error) {
	v, err := b.GetUint64()
	return int64(v), err
}

func (b *ByteArray) GetInt64At(index int) (int64, error) {
	v, err := b.GetUint64At(index)
	return int64(v), err
}

func (b *ByteArray) GetFloat32() (float32, error) {
	v, err := b.GetUint32()
	return math.Float32frombits(v), err
}

func (b *ByteArray) GetFloat32At(index int) (float32, error) {
	v, err := b.GetUint32At(index)
	return math.Float32frombits(v), err
}

func (b *ByteArray) GetFloat64() (float64, error) {
	v, err := b.GetUint64()
	return math.Float64frombits(v), err
}

func (b *ByteArray) GetFloat64At(index int) (float64, error) {
	v, err := b.GetUint64At(index)
	return math.Float64frombits(v), err
}

func (b *ByteArray) PutUint16(v uint16) error {
	var buf [2]byte
	b.order.PutUint16(buf[:], v)
	return b.write(buf[:])
}

func (b *ByteArray) PutUint16At(index int, v uint16) error {
	var buf [2]byte
	b.order.PutUint16(buf[:], v)
	return b.writeAt(index, buf[:])
}

func (b *ByteArray) PutInt16(v int16) error { return b.PutUint16(uint16(v)) }

func (b *ByteArray) PutInt16At(index int, v int16) error { return b.PutUint16At(index, uint16(v)) }

func (b *ByteArray) PutUint32(v uint32) error {
	var buf [4]byte
	b.order.PutUint32(buf[:], v)
	return b.write(buf[:])
}

func (b *ByteArray) PutUint32At(index int, v uint32) error {
	var buf [4]byte
	b.order.PutUint32(buf[:], v)
	return b.writeAt(index, buf[:])
}

func (b *ByteArray) PutInt32(v int32) error { return b.PutUint32(uint32(v)) }

func (b *ByteArray) PutInt32At(index int, v int32) error { return b.PutUint32At(index, uint32(v)) }

func (b *ByteArray) PutUint64(v uint64) error {
	var buf [8]byte
	b.order.PutUint64(buf[:], v)
	return b.write(buf[:])
}

func (b *ByteArray) PutUint64At(index int, v uint64) error {
	var buf [8]byte
	b.order.PutUint64(buf[:], v)
	return b.writeAt(index, buf[:])
}

func (b *ByteArray) PutInt64(v int64) error { return b.PutUint64(uint64(v)) }

func (b *ByteArray) PutInt64At(index int, v int64) error { return b.PutUint64At(index, uint64(v)) }

func (b *ByteArray) PutFloat32(v float32) error { return b.PutUint32(math.Float32bits(v)) }

func (b *ByteArray) PutFloat32At(index int, v float32) error {
	return b.PutUint32At(index, math.Float32bits(v))
}

func (b *ByteArray) PutFloat64(v float64) error { return b.PutUint64(math.Float64bits(v)) }

func (b *ByteArray) PutFloat64At(index int, v float64) error {
	return b.PutUint64At(index, math.Float64bits(v))
}
