package bytebuf

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type NumericSuite struct {
	suite.Suite
}

func (s *NumericSuite) orders() map[string]binary.ByteOrder {
	return map[string]binary.ByteOrder{"big": BE, "little": LE}
}

func (s *NumericSuite) TestIntegerRoundTrip() {
	for name, order := range s.orders() {
		s.T().Run(name, func(t *testing.T) {
			b := New(0).WithOrder(order)

			require.NoError(t, b.PutUint16(0xBBCC))
			require.NoError(t, b.PutInt16(-1234))
			require.NoError(t, b.PutUint32(0xDDEEFF00))
			require.NoError(t, b.PutInt32(-0x12345678))
			require.NoError(t, b.PutUint64(0xFFEEDDCCBBAA9988))
			require.NoError(t, b.PutInt64(-0x0102030405060708))

			u16, err := b.GetUint16()
			require.NoError(t, err)
			assert.Equal(t, uint16(0xBBCC), u16)
			i16, err := b.GetInt16()
			require.NoError(t, err)
			assert.Equal(t, int16(-1234), i16)
			u32, err := b.GetUint32()
			require.NoError(t, err)
			assert.Equal(t, uint32(0xDDEEFF00), u32)
			i32, err := b.GetInt32()
			require.NoError(t, err)
			assert.Equal(t, int32(-0x12345678), i32)
			u64, err := b.GetUint64()
			require.NoError(t, err)
			assert.Equal(t, uint64(0xFFEEDDCCBBAA9988), u64)
			i64, err := b.GetInt64()
			require.NoError(t, err)
			assert.Equal(t, int64(-0x0102030405060708), i64)

			assert.Equal(t, b.WriterIndex(), b.ReaderIndex())
		})
	}
}

func (s *NumericSuite) TestFloatRoundTrip() {
	for name, order := range s.orders() {
		s.T().Run(name, func(t *testing.T) {
			b := New(0).WithOrder(order)
			require.NoError(t, b.PutFloat32(3.1415927))
			require.NoError(t, b.PutFloat64(-2.718281828459045))
			require.NoError(t, b.PutFloat64(math.MaxFloat64))

			f32, err := b.GetFloat32()
			require.NoError(t, err)
			assert.Equal(t, float32(3.1415927), f32)
			f64, err := b.GetFloat64()
			require.NoError(t, err)
			assert.Equal(t, -2.718281828459045, f64)
			f64, err = b.GetFloat64()
			require.NoError(t, err)
			assert.Equal(t, math.MaxFloat64, f64)
		})
	}
}

func (s *NumericSuite) TestAbsoluteAccess() {
	b := Wrap(make([]byte, 16))

	s.Require().NoError(b.PutUint32At(4, 0xDEADBEEF))
	v, err := b.GetUint32At(4)
	s.Require().NoError(err)
	s.Assert().Equal(uint32(0xDEADBEEF), v)
	s.Assert().Zero(b.ReaderIndex(), "absolute access leaves the cursors alone")

	s.Require().NoError(b.PutInt64At(8, -7))
	i, err := b.GetInt64At(8)
	s.Require().NoError(err)
	s.Assert().Equal(int64(-7), i)
}

func (s *NumericSuite) TestWireLayout() {
	be := New(2)
	s.Require().NoError(be.PutUint16(0x0102))
	s.Assert().Equal([]byte{0x01, 0x02}, be.Bytes(), "big-endian puts the MSB first")

	le := New(2).WithOrder(LE)
	s.Require().NoError(le.PutUint16(0x0102))
	s.Assert().Equal([]byte{0x02, 0x01}, le.Bytes())
}

func (s *NumericSuite) TestBoundsErrors() {
	b := Wrap([]byte{1, 2, 3, 4})

	_, err := b.GetUint64()
	s.Assert().ErrorIs(err, ErrUnderflow)

	_, err = b.GetUint32At(2)
	s.Assert().ErrorIs(err, ErrOutOfRange)

	_, err = b.GetUint16At(-1)
	s.Assert().ErrorIs(err, ErrOutOfRange)
}

func TestNumeric(t *testing.T) {
	suite.Run(t, new(NumericSuite))
}
