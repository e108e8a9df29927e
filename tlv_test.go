package bytebuf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"
)

type TLVSuite struct {
	suite.Suite
}

func (s *TLVSuite) TestRoundTrip() {
	b := New(0)

	n, err := b.PutTLV(0x05, []byte{0x0A, 0x0B})
	s.Require().NoError(err)
	s.Assert().Equal(4, n)
	s.Assert().Equal([]byte{0x05, 0x02, 0x0A, 0x0B}, b.Bytes())

	rec, err := b.GetTLV()
	s.Require().NoError(err)
	s.Assert().Equal(uint8(0x05), rec.Tag)
	s.Assert().Equal([]byte{0x0A, 0x0B}, rec.Value)
	s.Assert().Equal(4, b.ReaderIndex())
}

func (s *TLVSuite) TestEmptyValue() {
	b := New(0)

	n, err := b.PutTLV(0x7F, nil)
	s.Require().NoError(err)
	s.Assert().Equal(2, n)

	rec, err := b.GetTLV()
	s.Require().NoError(err)
	s.Assert().Equal(uint8(0x7F), rec.Tag)
	s.Assert().Empty(rec.Value)
}

func (s *TLVSuite) TestMaxValue() {
	b := New(0)
	value := bytes.Repeat([]byte{0xEE}, 255)

	n, err := b.PutTLV(0x01, value)
	s.Require().NoError(err)
	s.Assert().Equal(257, n)

	rec, err := b.GetTLV()
	s.Require().NoError(err)
	s.Assert().Equal(value, rec.Value)
}

func (s *TLVSuite) TestValueTooLong() {
	b := New(0)
	_, err := b.PutTLV(0x01, make([]byte, 256))
	s.Assert().ErrorIs(err, ErrValueTooLong)
	s.Assert().Zero(b.WriterIndex(), "nothing is written on rejection")
}

func (s *TLVSuite) TestWriteAllOrNothing() {
	b, err := NewBounded(2, 2)
	s.Require().NoError(err)

	_, err = b.PutTLV(0x05, []byte{0x0A, 0x0B})
	s.Assert().ErrorIs(err, ErrOverflow)
	s.Assert().Zero(b.WriterIndex(), "not even the header lands")
	v, err := b.GetByteAt(0)
	s.Require().NoError(err)
	s.Assert().Zero(v)
}

func (s *TLVSuite) TestTruncatedRecord() {
	b := Wrap([]byte{0x05, 0x04, 0x0A}) // header promises 4 bytes, 1 present
	_, err := b.GetTLV()
	s.Assert().ErrorIs(err, ErrUnderflow)

	b = Wrap([]byte{0x05})
	_, err = b.GetTLV()
	s.Assert().ErrorIs(err, ErrUnderflow)
}

func TestTLV(t *testing.T) {
	suite.Run(t, new(TLVSuite))
}
