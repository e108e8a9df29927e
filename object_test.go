package bytebuf

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// frameHeader is a small packed record: a version nibble, a flags
// nibble, a 16-bit length and a terminated name.
type frameHeader struct {
	Version uint8
	Flags   uint8
	Length  uint16
	Name    string
}

func (h *frameHeader) WriteBuffer(b *ByteArray, offsetBit int) (int, error) {
	if err := b.PutBits(4, 7, h.Version); err != nil {
		return 0, err
	}
	if err := b.PutBits(4, 3, h.Flags); err != nil {
		return 4, err
	}
	if err := b.PutUint16(h.Length); err != nil {
		return 8, err
	}
	n, err := b.PutString(h.Name)
	return 24 + n*8, err
}

func (h *frameHeader) ReadBuffer(b *ByteArray, offsetBit int) (int, error) {
	var err error
	if h.Version, err = b.GetBits(4, 7); err != nil {
		return 0, err
	}
	if h.Flags, err = b.GetBits(4, 3); err != nil {
		return 4, err
	}
	if h.Length, err = b.GetUint16(); err != nil {
		return 8, err
	}
	name, err := b.GetString()
	if err != nil {
		return 24, err
	}
	h.Name = name
	return 24 + (len(name)+1)*8, nil
}

// flagBit serializes a single bit at the offset the caller picks.
type flagBit struct {
	Set bool
}

func (f *flagBit) WriteBuffer(b *ByteArray, offsetBit int) (int, error) {
	var v uint8
	if f.Set {
		v = 1
	}
	return 1, b.PutBits(1, offsetBit, v)
}

func (f *flagBit) ReadBuffer(b *ByteArray, offsetBit int) (int, error) {
	v, err := b.GetBits(1, offsetBit)
	f.Set = v == 1
	return 1, err
}

type ObjectSuite struct {
	suite.Suite
}

func (s *ObjectSuite) TestRoundTrip() {
	b := New(0)
	in := frameHeader{Version: 0x2, Flags: 0x5, Length: 512, Name: "ping"}

	bits, err := b.PutObject(&in)
	s.Require().NoError(err)
	s.Assert().Equal(64, bits)
	s.Assert().Equal([]byte{0x25, 0x02, 0x00, 'p', 'i', 'n', 'g', 0x00}, b.Bytes())

	var out frameHeader
	bits, err = b.GetObject(&out)
	s.Require().NoError(err)
	s.Assert().Equal(64, bits)
	s.Assert().Equal(in, out)
}

func (s *ObjectSuite) TestBitOffsetDispatch() {
	b := New(1)

	high := flagBit{Set: true}
	low := flagBit{Set: true}
	_, err := b.PutObjectBits(&high, 7)
	s.Require().NoError(err)
	s.Assert().Zero(b.WriterIndex())
	_, err = b.PutObjectBits(&low, 0)
	s.Require().NoError(err)
	s.Assert().Equal(1, b.WriterIndex())
	s.Assert().Equal([]byte{0x81}, b.Bytes())

	var got flagBit
	_, err = b.GetObjectBits(&got, 7)
	s.Require().NoError(err)
	s.Assert().True(got.Set)
}

func (s *ObjectSuite) TestMarshalUnmarshal() {
	in := frameHeader{Version: 0xF, Flags: 0x0, Length: 7, Name: "a"}

	data, err := Marshal(&in)
	s.Require().NoError(err)
	s.Assert().Equal([]byte{0xF0, 0x00, 0x07, 'a', 0x00}, data)

	var out frameHeader
	s.Require().NoError(Unmarshal(&out, data))
	s.Assert().Equal(in, out)
}

func (s *ObjectSuite) TestUnmarshalTruncated() {
	var out frameHeader
	s.Assert().ErrorIs(Unmarshal(&out, []byte{0x25, 0x02}), ErrUnderflow)
}

func TestObject(t *testing.T) {
	suite.Run(t, new(ObjectSuite))
}
